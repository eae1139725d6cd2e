// Package main provides the CLI entry point for fmthook.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fmthook/fmthook/internal/exec"
	"github.com/fmthook/fmthook/internal/format"
	"github.com/fmthook/fmthook/internal/git"
	"github.com/fmthook/fmthook/internal/installer"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show hook, formatter, and configuration status",
	Long: `Show whether the pre-commit hook is installed in the current repository,
whether the formatter is usable, and the effective per-repository settings.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadToolConfig()
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "failed to get working directory")
	}

	commandRunner := exec.NewCommandRunner(time.Duration(cfg.Formatter.Timeout))
	gitRunner := git.NewCLIRunner(cwd, commandRunner)

	repoRoot, err := gitRunner.GetRepoRoot()
	if err != nil {
		return err
	}

	hooksDir, err := gitRunner.GetHooksDir()
	if err != nil {
		return err
	}

	hookPath := filepath.Join(hooksDir, installer.HookName)

	hookState, err := installer.DetectState(hookPath)
	if err != nil {
		return err
	}

	hookCfg, err := git.ResolveHookConfig(gitRunner)
	if err != nil {
		return err
	}

	formatter := format.NewClangFormat(cfg.Formatter.Binary, commandRunner)

	table := tablewriter.NewTable(os.Stdout)
	table.Header([]string{"Item", "Value", "Detail"})

	appendRow(table, "Repository", repoRoot, "")
	appendRow(table, "Hook", describeHookState(hookState, hookPath), hookPath)
	appendFormatterRows(cmd, table, formatter, cfg.Formatter.MinVersion)
	appendRow(table, "Interactive", fmt.Sprintf("%t", hookCfg.Interactive), git.KeyInteractive)
	appendRow(table, "Style", describeStyle(hookCfg.Style), git.KeyStyle)

	return errors.Wrap(table.Render(), "rendering status table")
}

func appendRow(table *tablewriter.Table, cells ...string) {
	_ = table.Append(cells)
}

func describeHookState(state installer.State, hookPath string) string {
	switch state {
	case installer.StateInstalledBySelf:
		return "installed"
	case installer.StateInstalledByOther:
		return "conflict: " + installer.InspectForeignHook(hookPath)
	case installer.StateAbsent:
		return "not installed"
	default:
		return "unknown"
	}
}

func describeStyle(style string) string {
	if style == "" {
		return "(formatter default)"
	}

	return style
}

// appendFormatterRows reports formatter availability and whether the
// detected version satisfies the configured minimum.
func appendFormatterRows(
	cmd *cobra.Command,
	table *tablewriter.Table,
	formatter format.Formatter,
	minVersion string,
) {
	if !formatter.IsAvailable() {
		detail := "not found on PATH"
		if alt := format.DetectBinary(exec.NewToolChecker()); alt != "" && alt != formatter.Binary() {
			detail = fmt.Sprintf("not found on PATH (%s is installed)", alt)
		}

		appendRow(table, "Formatter", formatter.Binary(), detail)

		return
	}

	version, err := formatter.Version(cmd.Context())
	if err != nil {
		appendRow(table, "Formatter", formatter.Binary(), "version unknown")

		return
	}

	detail := ""

	if constraint, cerr := semver.NewConstraint(">= " + minVersion); cerr == nil {
		if constraint.Check(version) {
			detail = "ok"
		} else {
			detail = fmt.Sprintf("older than required %s", minVersion)
		}
	}

	appendRow(table, "Formatter", fmt.Sprintf("%s %s", formatter.Binary(), version), detail)
}
