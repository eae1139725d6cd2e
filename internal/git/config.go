package git

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Git config keys controlling the hook, matching the keys the original
// clang-format pre-commit hook documented.
const (
	// KeyInteractive toggles the interactive prompt on formatting
	// violations. Unset means true.
	KeyInteractive = "hooks.clangFormatDiffInteractive"

	// KeyStyle selects the clang-format style. Unset defers to the
	// formatter's own default.
	KeyStyle = "hooks.clangFormatDiffStyle"
)

// ErrInvalidConfigValue is returned when a git config value cannot be
// coerced to the expected type.
var ErrInvalidConfigValue = errors.New("invalid configuration value")

// HookConfig holds the per-repository hook settings. It is resolved once per
// invocation and immutable for the duration of a single hook run.
type HookConfig struct {
	// Interactive controls whether violations prompt the user. When false,
	// violations reject the commit outright.
	Interactive bool

	// Style is the formatter style name. Empty means the formatter default.
	Style string
}

// ResolveHookConfig reads the hook settings from the repository's git
// config. Unparseable values are surfaced as errors rather than silently
// replaced by defaults.
func ResolveHookConfig(runner Runner) (HookConfig, error) {
	cfg := HookConfig{Interactive: true}

	raw, set, err := runner.ConfigGet(KeyInteractive)
	if err != nil {
		return HookConfig{}, err
	}

	if set {
		interactive, err := parseGitBool(raw)
		if err != nil {
			return HookConfig{}, errors.Wrapf(err, "key %s", KeyInteractive)
		}

		cfg.Interactive = interactive
	}

	style, _, err := runner.ConfigGet(KeyStyle)
	if err != nil {
		return HookConfig{}, err
	}

	cfg.Style = style

	return cfg, nil
}

// parseGitBool coerces a string the way git-config(1) does for booleans.
func parseGitBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0", "":
		return false, nil
	default:
		return false, errors.Wrapf(ErrInvalidConfigValue, "cannot parse %q as bool", value)
	}
}
