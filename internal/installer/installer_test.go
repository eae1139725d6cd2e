package installer_test

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"mvdan.cc/sh/v3/syntax"

	"github.com/fmthook/fmthook/internal/git"
	"github.com/fmthook/fmthook/internal/installer"
	"github.com/fmthook/fmthook/pkg/logger"
)

func TestInstaller(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Installer Suite")
}

// fakeDiscover returns the longest registered root containing the path,
// mimicking upward repository discovery over a fixed set of roots.
func fakeDiscover(roots ...string) func(string) (string, error) {
	sorted := append([]string{}, roots...)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	return func(path string) (string, error) {
		for _, root := range sorted {
			if path == root || strings.HasPrefix(path+"/", root+"/") {
				return root, nil
			}
		}

		return "", git.ErrNotRepository
	}
}

var _ = Describe("Installer", func() {
	var (
		tmpDir        string
		repoRoot      string
		hooksDir      string
		out           *bytes.Buffer
		superprojects map[string]string
		newRunner     func(dir string) git.Runner
	)

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "fmthook-installer-*")
		Expect(err).ToNot(HaveOccurred())

		repoRoot = filepath.Join(tmpDir, "repo")
		hooksDir = filepath.Join(repoRoot, ".git", "hooks")
		Expect(os.MkdirAll(hooksDir, 0o755)).To(Succeed())

		out = &bytes.Buffer{}
		superprojects = map[string]string{}

		newRunner = func(dir string) git.Runner {
			runner := git.NewFakeRunner()
			runner.RepoRoot = dir
			runner.HooksDir = filepath.Join(dir, ".git", "hooks")
			runner.SuperprojectRoot = superprojects[dir]

			return runner
		}
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tmpDir)).To(Succeed())
	})

	newInstaller := func(cwd, exePath string, roots ...string) *installer.Installer {
		return installer.New(
			cwd,
			newRunner,
			out,
			logger.NewNoOpLogger(),
			installer.WithExePath(func() (string, error) { return exePath, nil }),
			installer.WithDiscover(fakeDiscover(roots...)),
		)
	}

	hookPath := func() string {
		return filepath.Join(hooksDir, "pre-commit")
	}

	Describe("Install", func() {
		Context("into a repository without a hook", func() {
			var exePath string

			BeforeEach(func() {
				exePath = filepath.Join(tmpDir, "bin", "fmthook")
			})

			It("should write an executable hook carrying the signature", func() {
				inst := newInstaller(repoRoot, exePath, repoRoot)

				outcome, err := inst.Install()

				Expect(err).ToNot(HaveOccurred())
				Expect(outcome.HookPath).To(Equal(hookPath()))
				Expect(outcome.RepoRoot).To(Equal(repoRoot))

				info, err := os.Stat(hookPath())
				Expect(err).ToNot(HaveOccurred())
				Expect(info.Mode().Perm() & 0o111).ToNot(BeZero())

				content, err := os.ReadFile(hookPath())
				Expect(err).ToNot(HaveOccurred())
				Expect(string(content)).To(ContainSubstring(installer.SignatureMarker))
				Expect(string(content)).To(HavePrefix("#!/bin/sh\n"))
			})

			It("should report success", func() {
				inst := newInstaller(repoRoot, exePath, repoRoot)

				_, err := inst.Install()

				Expect(err).ToNot(HaveOccurred())
				Expect(out.String()).To(Equal("Pre-commit hook installed.\n"))
			})

			It("should write a syntactically valid shell stub", func() {
				inst := newInstaller(repoRoot, exePath, repoRoot)

				_, err := inst.Install()
				Expect(err).ToNot(HaveOccurred())

				content, err := os.ReadFile(hookPath())
				Expect(err).ToNot(HaveOccurred())

				parser := syntax.NewParser()
				_, err = parser.Parse(bytes.NewReader(content), "pre-commit")
				Expect(err).ToNot(HaveOccurred())
			})

			It("should bake the absolute binary path into the stub", func() {
				inst := newInstaller(repoRoot, exePath, repoRoot)

				_, err := inst.Install()
				Expect(err).ToNot(HaveOccurred())

				content, err := os.ReadFile(hookPath())
				Expect(err).ToNot(HaveOccurred())
				Expect(string(content)).To(ContainSubstring(exePath))

				// PATH fallback when the baked path has moved.
				Expect(string(content)).To(ContainSubstring("FMTHOOK=fmthook"))
			})

			It("should create the hooks directory when missing", func() {
				Expect(os.RemoveAll(hooksDir)).To(Succeed())

				inst := newInstaller(repoRoot, exePath, repoRoot)

				_, err := inst.Install()

				Expect(err).ToNot(HaveOccurred())
				Expect(hookPath()).To(BeAnExistingFile())
			})
		})

		Context("when our hook is already installed", func() {
			BeforeEach(func() {
				exePath := filepath.Join(tmpDir, "bin", "fmthook")
				inst := newInstaller(repoRoot, exePath, repoRoot)
				_, err := inst.Install()
				Expect(err).ToNot(HaveOccurred())
				out.Reset()
			})

			It("should report it without rewriting the file", func() {
				before, err := os.ReadFile(hookPath())
				Expect(err).ToNot(HaveOccurred())

				inst := newInstaller(repoRoot, filepath.Join(tmpDir, "elsewhere", "fmthook"), repoRoot)

				_, err = inst.Install()

				Expect(errors.Is(err, installer.ErrAlreadyInstalled)).To(BeTrue())
				Expect(err.Error()).To(Equal("The hook is already installed."))

				after, readErr := os.ReadFile(hookPath())
				Expect(readErr).ToNot(HaveOccurred())
				Expect(after).To(Equal(before))
			})
		})

		Context("when a foreign hook exists", func() {
			const foreignHook = "#!/bin/sh\nexec pre-commit run\n"

			BeforeEach(func() {
				Expect(os.WriteFile(hookPath(), []byte(foreignHook), 0o755)).To(Succeed())
			})

			It("should refuse and leave the foreign hook untouched", func() {
				inst := newInstaller(repoRoot, filepath.Join(tmpDir, "bin", "fmthook"), repoRoot)

				_, err := inst.Install()

				Expect(errors.Is(err, installer.ErrInstallConflict)).To(BeTrue())

				content, readErr := os.ReadFile(hookPath())
				Expect(readErr).ToNot(HaveOccurred())
				Expect(string(content)).To(Equal(foreignHook))
			})
		})

		Context("from the tool's own checkout nested in another repository", func() {
			var (
				outerRoot string
				toolRoot  string
				exePath   string
			)

			BeforeEach(func() {
				outerRoot = repoRoot
				toolRoot = filepath.Join(outerRoot, "scripts", "fmthook")
				exePath = filepath.Join(toolRoot, "fmthook")
				Expect(os.MkdirAll(toolRoot, 0o755)).To(Succeed())
			})

			It("should install into the containing repository", func() {
				inst := newInstaller(toolRoot, exePath, outerRoot, toolRoot)

				outcome, err := inst.Install()

				Expect(err).ToNot(HaveOccurred())
				Expect(outcome.RepoRoot).To(Equal(outerRoot))
				Expect(hookPath()).To(BeAnExistingFile())
			})

			It("should prefer the superproject when the checkout is a submodule", func() {
				superprojects[toolRoot] = outerRoot

				// Discovery only knows the tool checkout; the superproject
				// link is what points outward.
				inst := newInstaller(toolRoot, exePath, toolRoot, outerRoot)

				outcome, err := inst.Install()

				Expect(err).ToNot(HaveOccurred())
				Expect(outcome.RepoRoot).To(Equal(outerRoot))
			})

			It("should stay in the checkout when the binary lives elsewhere", func() {
				subHooks := filepath.Join(toolRoot, ".git", "hooks")
				Expect(os.MkdirAll(subHooks, 0o755)).To(Succeed())

				inst := newInstaller(toolRoot, filepath.Join(tmpDir, "bin", "fmthook"), outerRoot, toolRoot)

				outcome, err := inst.Install()

				Expect(err).ToNot(HaveOccurred())
				Expect(outcome.RepoRoot).To(Equal(toolRoot))
			})
		})

		Context("outside any repository", func() {
			It("should fail with ErrNotRepository", func() {
				inst := newInstaller(tmpDir, filepath.Join(tmpDir, "fmthook"))

				_, err := inst.Install()

				Expect(errors.Is(err, git.ErrNotRepository)).To(BeTrue())
			})
		})
	})
})

var _ = Describe("DetectState", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "fmthook-state-*")
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tmpDir)).To(Succeed())
	})

	write := func(content string) string {
		path := filepath.Join(tmpDir, "pre-commit")
		Expect(os.WriteFile(path, []byte(content), 0o755)).To(Succeed())

		return path
	}

	It("should report an absent hook", func() {
		state, err := installer.DetectState(filepath.Join(tmpDir, "pre-commit"))

		Expect(err).ToNot(HaveOccurred())
		Expect(state).To(Equal(installer.StateAbsent))
	})

	It("should recognize its own signature", func() {
		path := write("#!/bin/sh\n" + installer.SignatureMarker + "\nexec fmthook\n")

		state, err := installer.DetectState(path)

		Expect(err).ToNot(HaveOccurred())
		Expect(state).To(Equal(installer.StateInstalledBySelf))
	})

	It("should classify anything else as foreign", func() {
		path := write("#!/bin/sh\nexec some-other-tool\n")

		state, err := installer.DetectState(path)

		Expect(err).ToNot(HaveOccurred())
		Expect(state).To(Equal(installer.StateInstalledByOther))
	})
})

var _ = Describe("InspectForeignHook", func() {
	var tmpDir string

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "fmthook-inspect-*")
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		Expect(os.RemoveAll(tmpDir)).To(Succeed())
	})

	write := func(content string) string {
		path := filepath.Join(tmpDir, "pre-commit")
		Expect(os.WriteFile(path, []byte(content), 0o755)).To(Succeed())

		return path
	}

	It("should name the command a shell hook runs", func() {
		path := write("#!/bin/sh\nexec pre-commit run --hook-stage commit\n")

		Expect(installer.InspectForeignHook(path)).To(Equal("shell script running pre-commit"))
	})

	It("should look past shell bookkeeping", func() {
		path := write("#!/bin/sh\nset -e\ncd \"$(dirname \"$0\")\"\n/usr/local/bin/lint-staged\n")

		Expect(installer.InspectForeignHook(path)).To(Equal("shell script running lint-staged"))
	})

	It("should not name commands inside substitutions", func() {
		path := write("#!/bin/sh\nROOT=$(git rev-parse --show-toplevel)\nnode_modules/.bin/husky run\n")

		Expect(installer.InspectForeignHook(path)).To(Equal("shell script running husky"))
	})

	It("should report non-shell interpreters from the shebang", func() {
		path := write("#!/usr/bin/env python3\nimport sys\nsys.exit(0)\n")

		Expect(installer.InspectForeignHook(path)).To(Equal("python3 script"))
	})

	It("should fall back for unparseable scripts", func() {
		path := write("#!/bin/sh\nif then fi (((\n")

		Expect(installer.InspectForeignHook(path)).To(Equal("unrecognized script"))
	})
})
