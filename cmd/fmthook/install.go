// Package main provides the CLI entry point for fmthook.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/fmthook/fmthook/internal/exec"
	"github.com/fmthook/fmthook/internal/git"
	"github.com/fmthook/fmthook/internal/installer"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the pre-commit hook in the current repository",
	Long: `Install the pre-commit hook in the repository containing the current
directory.

When run from a checkout of this tool nested inside another repository (for
instance a scripts submodule), the hook is installed into the containing
repository instead. An existing hook belonging to another tool is never
touched.`,
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadToolConfig()
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "failed to get working directory")
	}

	commandRunner := exec.NewCommandRunner(time.Duration(cfg.Formatter.Timeout))
	newRunner := func(dir string) git.Runner {
		return git.NewCLIRunner(dir, commandRunner)
	}

	inst := installer.New(cwd, newRunner, os.Stdout, log)

	if _, err := inst.Install(); err != nil {
		if errors.Is(err, installer.ErrAlreadyInstalled) ||
			errors.Is(err, installer.ErrInstallConflict) {
			fmt.Fprintln(os.Stdout, err)

			return errReported
		}

		return err
	}

	return nil
}
