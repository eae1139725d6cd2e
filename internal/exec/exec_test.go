package exec_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fmthook/fmthook/internal/exec"
)

func TestExec(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Exec Suite")
}

var _ = Describe("CommandRunner", func() {
	var runner exec.CommandRunner

	BeforeEach(func() {
		runner = exec.NewCommandRunner(5 * time.Second)
	})

	Describe("Run", func() {
		It("should execute a simple command", func() {
			ctx := context.Background()
			result, err := runner.Run(ctx, "echo", "hello")

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Stdout).To(Equal("hello\n"))
			Expect(result.ExitCode).To(Equal(0))
		})

		It("should capture stderr", func() {
			ctx := context.Background()
			result, err := runner.Run(ctx, "sh", "-c", "echo error >&2")

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Stderr).To(Equal("error\n"))
		})

		It("should report the exit code of failing commands", func() {
			ctx := context.Background()
			result, err := runner.Run(ctx, "sh", "-c", "exit 42")

			Expect(err).To(HaveOccurred())
			Expect(result.ExitCode).To(Equal(42))
		})

		It("should respect context cancellation", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := runner.Run(ctx, "sleep", "10")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("RunWithStdin", func() {
		It("should pass stdin to command", func() {
			ctx := context.Background()
			stdin := strings.NewReader("test input")

			result, err := runner.RunWithStdin(ctx, stdin, "cat")

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Stdout).To(Equal("test input"))
		})
	})

	Describe("RunWithTimeout", func() {
		It("should execute command with timeout", func() {
			result, err := runner.RunWithTimeout(5*time.Second, "echo", "test")

			Expect(err).ToNot(HaveOccurred())
			Expect(result.Stdout).To(Equal("test\n"))
		})

		It("should timeout long-running commands", func() {
			_, err := runner.RunWithTimeout(100*time.Millisecond, "sleep", "10")
			Expect(err).To(HaveOccurred())
		})
	})
})

var _ = Describe("ToolChecker", func() {
	var checker exec.ToolChecker

	BeforeEach(func() {
		checker = exec.NewToolChecker()
	})

	Describe("IsAvailable", func() {
		It("should return true for available tools", func() {
			Expect(checker.IsAvailable("sh")).To(BeTrue())
		})

		It("should return false for unavailable tools", func() {
			Expect(checker.IsAvailable("nonexistent-tool-xyz")).To(BeFalse())
		})
	})

	Describe("RequireTool", func() {
		It("should not error for available tools", func() {
			Expect(checker.RequireTool("sh")).To(Succeed())
		})

		It("should error for unavailable tools", func() {
			err := checker.RequireTool("nonexistent-tool-xyz")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("not found"))

			var notFound *exec.ToolNotFoundError
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})
	})
})

var _ = Describe("ExternalToolError", func() {
	It("should include the tool name and captured output", func() {
		result := &exec.CommandResult{
			Stderr:   "fatal: bad revision\n",
			ExitCode: 128,
		}

		err := exec.NewExternalToolError("git rev-parse", result)

		Expect(err.Error()).To(ContainSubstring("git rev-parse"))
		Expect(err.Error()).To(ContainSubstring("fatal: bad revision"))
		Expect(err.ExitCode).To(Equal(128))
	})

	It("should fall back to stdout when stderr is empty", func() {
		result := &exec.CommandResult{
			Stdout:   "some diagnostic\n",
			ExitCode: 2,
		}

		err := exec.NewExternalToolError("clang-format", result)

		Expect(err.Error()).To(ContainSubstring("some diagnostic"))
	})
})
