package format_test

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/fmthook/fmthook/internal/exec"
	"github.com/fmthook/fmthook/internal/format"
)

func TestFormat(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Format Suite")
}

var _ = Describe("Matcher", func() {
	var matcher *format.Matcher

	BeforeEach(func() {
		matcher = format.NewMatcher()
	})

	It("should match C-family source files", func() {
		for _, path := range []string{
			"main.c", "src/lib.cpp", "include/api.h", "gpu/kernel.cu", "wire.proto",
		} {
			Expect(matcher.Matches(path)).To(BeTrue(), "path %q", path)
		}
	})

	It("should match extensions case-insensitively", func() {
		Expect(matcher.Matches("LEGACY.CPP")).To(BeTrue())
	})

	It("should not match unrelated files", func() {
		for _, path := range []string{
			"README.md", "Makefile", "build.sh", "config.toml", "notes.txt",
		} {
			Expect(matcher.Matches(path)).To(BeFalse(), "path %q", path)
		}
	})

	Context("with extra glob patterns", func() {
		BeforeEach(func() {
			matcher = format.NewMatcher("templates/**/*.ipp", "*.tpp")
		})

		It("should match files covered by a pattern", func() {
			Expect(matcher.Matches("templates/detail/impl.ipp")).To(BeTrue())
			Expect(matcher.Matches("vector.tpp")).To(BeTrue())
		})

		It("should still match the built-in extensions", func() {
			Expect(matcher.Matches("main.cc")).To(BeTrue())
		})

		It("should not match outside the pattern scope", func() {
			Expect(matcher.Matches("other/impl.ipp")).To(BeFalse())
		})
	})
})

var _ = Describe("ClangFormat", func() {
	var (
		ctrl      *gomock.Controller
		runner    *exec.MockCommandRunner
		checker   *exec.MockToolChecker
		formatter *format.ClangFormat
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		runner = exec.NewMockCommandRunner(ctrl)
		checker = exec.NewMockToolChecker(ctrl)
		formatter = format.NewClangFormatWithChecker("clang-format", runner, checker)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("Format", func() {
		It("should pass the filename so the language is detected", func() {
			checker.EXPECT().RequireTool("clang-format").Return(nil)
			runner.EXPECT().
				RunWithStdin(
					gomock.Any(), gomock.Any(),
					"clang-format", "-assume-filename=src/main.cpp",
				).
				Return(&exec.CommandResult{Stdout: "int main() {}\n"}, nil)

			out, err := formatter.Format(context.Background(), []byte("int main(){}\n"), "src/main.cpp", "")

			Expect(err).ToNot(HaveOccurred())
			Expect(string(out)).To(Equal("int main() {}\n"))
		})

		It("should pass the style when one is configured", func() {
			checker.EXPECT().RequireTool("clang-format").Return(nil)
			runner.EXPECT().
				RunWithStdin(
					gomock.Any(), gomock.Any(),
					"clang-format", "-assume-filename=a.c", "-style=Chromium",
				).
				Return(&exec.CommandResult{Stdout: "ok\n"}, nil)

			_, err := formatter.Format(context.Background(), []byte("x"), "a.c", "Chromium")

			Expect(err).ToNot(HaveOccurred())
		})

		It("should fail when the tool is missing", func() {
			checker.EXPECT().
				RequireTool("clang-format").
				Return(&exec.ToolNotFoundError{Tool: "clang-format"})

			_, err := formatter.Format(context.Background(), []byte("x"), "a.c", "")

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("not found"))
		})

		It("should surface formatter failures with their output", func() {
			checker.EXPECT().RequireTool("clang-format").Return(nil)
			result := &exec.CommandResult{
				Stderr:   "Invalid value for -style\n",
				ExitCode: 1,
			}
			runner.EXPECT().
				RunWithStdin(gomock.Any(), gomock.Any(), "clang-format", gomock.Any(), gomock.Any()).
				Return(result, exec.NewExternalToolError("clang-format", result))

			_, err := formatter.Format(context.Background(), []byte("x"), "a.c", "Bogus")

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Invalid value for -style"))
		})
	})

	Describe("Version", func() {
		It("should parse a plain version string", func() {
			checker.EXPECT().RequireTool("clang-format").Return(nil)
			runner.EXPECT().
				Run(gomock.Any(), "clang-format", "--version").
				Return(&exec.CommandResult{Stdout: "clang-format version 15.0.7\n"}, nil)

			version, err := formatter.Version(context.Background())

			Expect(err).ToNot(HaveOccurred())
			Expect(version.String()).To(Equal("15.0.7"))
		})

		It("should tolerate distro prefixes and suffixes", func() {
			checker.EXPECT().RequireTool("clang-format").Return(nil)
			runner.EXPECT().
				Run(gomock.Any(), "clang-format", "--version").
				Return(&exec.CommandResult{
					Stdout: "Ubuntu clang-format version 14.0.0-1ubuntu1.1\n",
				}, nil)

			version, err := formatter.Version(context.Background())

			Expect(err).ToNot(HaveOccurred())
			Expect(version.Major()).To(Equal(uint64(14)))
		})

		It("should fail on unrecognized output", func() {
			checker.EXPECT().RequireTool("clang-format").Return(nil)
			runner.EXPECT().
				Run(gomock.Any(), "clang-format", "--version").
				Return(&exec.CommandResult{Stdout: "no version here\n"}, nil)

			_, err := formatter.Version(context.Background())

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("IsAvailable", func() {
		It("should delegate to the tool checker", func() {
			checker.EXPECT().IsAvailable("clang-format").Return(true)

			Expect(formatter.IsAvailable()).To(BeTrue())
		})
	})
})

var _ = Describe("DetectBinary", func() {
	var (
		ctrl    *gomock.Controller
		checker *exec.MockToolChecker
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		checker = exec.NewMockToolChecker(ctrl)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should probe the plain name before versioned ones", func() {
		var probed []string
		checker.EXPECT().
			FindTool(gomock.Any()).
			DoAndReturn(func(alternatives ...string) string {
				probed = alternatives
				return "clang-format-18"
			})

		Expect(format.DetectBinary(checker)).To(Equal("clang-format-18"))
		Expect(probed[0]).To(Equal(format.DefaultBinary))
		Expect(probed).To(ContainElement("clang-format-18"))
	})

	It("should return empty when nothing is installed", func() {
		checker.EXPECT().FindTool(gomock.Any()).Return("")

		Expect(format.DetectBinary(checker)).To(BeEmpty())
	})
})
