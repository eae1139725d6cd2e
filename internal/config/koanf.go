// Package config provides internal configuration loading and processing.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/fmthook/fmthook/pkg/config"
)

var (
	// ErrInvalidTOML is returned when the TOML file cannot be parsed.
	ErrInvalidTOML = errors.New("invalid TOML")

	// ErrInvalidPermissions is returned when config file has insecure permissions.
	ErrInvalidPermissions = errors.New("config file has insecure permissions")
)

const (
	// GlobalConfigDir is the directory name for global configuration.
	GlobalConfigDir = ".fmthook"

	// GlobalConfigFile is the name of the global configuration file.
	GlobalConfigFile = "config.toml"

	// ProjectConfigDir is the directory name for project configuration.
	ProjectConfigDir = ".fmthook"

	// ProjectConfigFile is the primary project configuration file name.
	ProjectConfigFile = "config.toml"

	// ProjectConfigFileAlt is the alternative project configuration file name.
	ProjectConfigFileAlt = "fmthook.toml"
)

// KoanfLoader handles configuration loading from multiple sources using koanf.
// Precedence order (highest to lowest):
// 1. Environment Variables (FMTHOOK_*)
// 2. Project Config (.fmthook/config.toml or fmthook.toml)
// 3. Global Config (~/.fmthook/config.toml)
// 4. Defaults
type KoanfLoader struct {
	k        *koanf.Koanf
	homeDir  string
	workDir  string
	tomlOpts koanf.UnmarshalConf
}

// NewKoanfLoader creates a new KoanfLoader with default directories.
func NewKoanfLoader() (*KoanfLoader, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get home directory")
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get working directory")
	}

	return NewKoanfLoaderWithDirs(homeDir, workDir), nil
}

// NewKoanfLoaderWithDirs creates a new KoanfLoader with custom directories (for testing).
func NewKoanfLoaderWithDirs(homeDir, workDir string) *KoanfLoader {
	return &KoanfLoader{
		k:       koanf.New("."),
		homeDir: homeDir,
		workDir: workDir,
		tomlOpts: koanf.UnmarshalConf{
			Tag:       "koanf",
			FlatPaths: false,
		},
	}
}

// Load loads configuration from all sources with precedence.
// Defaults → Global TOML → Project TOML → Env Vars
func (l *KoanfLoader) Load() (*config.Config, error) {
	// Reset koanf instance for fresh load
	l.k = koanf.New(".")

	// 1. Load defaults first (lowest priority)
	if err := l.k.Load(confmap.Provider(defaultsToMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	// 2. Global config: ~/.fmthook/config.toml
	if err := l.loadTOMLFile(l.GlobalConfigPath()); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to load global config")
	}

	// 3. Project config: .fmthook/config.toml or fmthook.toml
	if projectPath := l.findProjectConfig(); projectPath != "" {
		if err := l.loadTOMLFile(projectPath); err != nil {
			return nil, errors.Wrap(err, "failed to load project config")
		}
	}

	// 4. Environment variables: FMTHOOK_*
	envOpt := env.Opt{
		Prefix:        "FMTHOOK_",
		TransformFunc: l.envTransform,
	}

	if err := l.k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	var cfg config.Config
	if err := l.k.UnmarshalWithConf("", &cfg, l.unmarshalConf(&cfg)); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

// unmarshalConf builds the koanf unmarshal configuration with custom decode
// hooks targeting cfg.
func (l *KoanfLoader) unmarshalConf(cfg *config.Config) koanf.UnmarshalConf {
	conf := l.tomlOpts
	decoderConfig := CustomDecoderConfig()
	// With an explicit DecoderConfig, koanf no longer applies conf.Tag.
	decoderConfig.TagName = conf.Tag
	decoderConfig.Result = cfg
	conf.DecoderConfig = decoderConfig

	return conf
}

// loadTOMLFile loads a TOML configuration file with security checks.
func (l *KoanfLoader) loadTOMLFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	// Reject world-writable files
	if info.Mode().Perm()&0o002 != 0 {
		return errors.Wrapf(
			ErrInvalidPermissions,
			"%s is world-writable (mode: %s)",
			path,
			info.Mode().Perm(),
		)
	}

	if err := l.k.Load(file.Provider(path), tomlparser.Parser()); err != nil {
		return errors.Wrapf(ErrInvalidTOML, "%s: %v", path, err)
	}

	return nil
}

// envTransform transforms environment variable names to config paths.
// FMTHOOK_FORMATTER_BINARY → formatter.binary
func (*KoanfLoader) envTransform(key, value string) (string, any) {
	key = strings.TrimPrefix(key, "FMTHOOK_")
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", ".")

	// Compound leaf keys keep their underscore in TOML.
	key = strings.Replace(key, "min.version", "min_version", 1)

	return key, value
}

// GlobalConfigPath returns the path to the global configuration file.
func (l *KoanfLoader) GlobalConfigPath() string {
	return filepath.Join(l.homeDir, GlobalConfigDir, GlobalConfigFile)
}

// ProjectConfigPaths returns the paths to check for project configuration.
func (l *KoanfLoader) ProjectConfigPaths() []string {
	return []string{
		filepath.Join(l.workDir, ProjectConfigDir, ProjectConfigFile),
		filepath.Join(l.workDir, ProjectConfigFileAlt),
	}
}

// findProjectConfig checks for project config files and returns the first found.
func (l *KoanfLoader) findProjectConfig() string {
	for _, path := range l.ProjectConfigPaths() {
		if fileExists(path) {
			return path
		}
	}

	return ""
}

// HasGlobalConfig checks if a global configuration file exists.
func (l *KoanfLoader) HasGlobalConfig() bool {
	return fileExists(l.GlobalConfigPath())
}

func fileExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}
