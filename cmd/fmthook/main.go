// Package main provides the CLI entry point for fmthook.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	internalconfig "github.com/fmthook/fmthook/internal/config"
	"github.com/fmthook/fmthook/internal/diff"
	"github.com/fmthook/fmthook/internal/exec"
	"github.com/fmthook/fmthook/internal/format"
	"github.com/fmthook/fmthook/internal/git"
	"github.com/fmthook/fmthook/internal/hook"
	"github.com/fmthook/fmthook/internal/tui"
	"github.com/fmthook/fmthook/pkg/config"
	"github.com/fmthook/fmthook/pkg/logger"
)

var (
	debugMode   bool
	noColorFlag bool
	noTUIFlag   bool
)

// errReported marks errors whose message has already been shown to the user.
var errReported = errors.New("reported")

func main() {
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() int {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}

		return 1
	}

	return 0
}

var rootCmd = &cobra.Command{
	Use:   "fmthook",
	Short: "Git pre-commit hook enforcing clang-format",
	Long: `fmthook checks that staged C-family source files are formatted with
clang-format before every commit. Run with no arguments it acts as the
pre-commit hook; use "fmthook install" to register it in a repository.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		checkVersionFlag()
	},
	RunE:              runHook,
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVar(
		&noTUIFlag,
		"no-tui",
		false,
		"Use the plain line prompt even on a terminal",
	)
}

// runHook is the pre-commit entry point git invokes through the installed
// hook stub. Exit 0 lets the commit proceed; anything else aborts it.
func runHook(cmd *cobra.Command, _ []string) error {
	cfg, log, err := loadToolConfig()
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "failed to get working directory")
	}

	commandRunner := exec.NewCommandRunner(time.Duration(cfg.Formatter.Timeout))
	gitRunner := git.NewCLIRunner(cwd, commandRunner)

	if _, err := gitRunner.GetRepoRoot(); err != nil {
		return err
	}

	engine := diff.NewEngine(
		gitRunner,
		format.NewClangFormat(cfg.Formatter.Binary, commandRunner),
		format.NewMatcher(cfg.Files.Patterns...),
		log,
	)

	decider := tui.New(noTUIFlag, os.Stdin, os.Stdout)
	runner := hook.NewRunner(gitRunner, engine, decider, os.Stdout, colorEnabled(), log)

	if err := runner.Run(cmd.Context()); err != nil {
		if errors.Is(err, hook.ErrCommitRejected) || errors.Is(err, hook.ErrUserAborted) {
			// The decision flow already told the user why.
			return errReported
		}

		return err
	}

	return nil
}

// loadToolConfig loads the tool configuration and builds the logger it asks
// for. The hook's stdout carries the commit interaction, so diagnostics only
// ever go to a file.
func loadToolConfig() (*config.Config, logger.Logger, error) {
	loader, err := internalconfig.NewKoanfLoader()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, nil, err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	return cfg, log, nil
}

//nolint:ireturn // logger selection depends on configuration
func newLogger(cfg *config.Config) (logger.Logger, error) {
	if cfg.Log == nil || cfg.Log.File == "" {
		return logger.NewNoOpLogger(), nil
	}

	log, err := logger.NewFileLogger(cfg.Log.File, debugMode || cfg.Log.Debug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}

	return log, nil
}

// colorEnabled reports whether diff output should be colorized.
func colorEnabled() bool {
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		return false
	}

	return tui.IsTerminal()
}
