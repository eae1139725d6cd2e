package logger_test

import (
	"bytes"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fmthook/fmthook/pkg/logger"
)

func TestLogger(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Logger Suite")
}

var _ = Describe("FileLogger", func() {
	var (
		buf *bytes.Buffer
		log *logger.FileLogger
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		log = logger.NewFileLoggerWithWriter(buf, false)
	})

	It("should write info entries with level and message", func() {
		log.Info("hook invoked", "files", 3)

		Expect(buf.String()).To(ContainSubstring("INFO hook invoked files=3"))
	})

	It("should write error entries", func() {
		log.Error("patch failed", "file", "main.c")

		Expect(buf.String()).To(ContainSubstring("ERROR patch failed file=main.c"))
	})

	It("should suppress debug entries by default", func() {
		log.Debug("state transition")

		Expect(buf.String()).To(BeEmpty())
	})

	It("should emit debug entries in debug mode", func() {
		log = logger.NewFileLoggerWithWriter(buf, true)

		log.Debug("state transition", "from", "Idle", "to", "Prompting")

		Expect(buf.String()).To(ContainSubstring("DEBUG state transition from=Idle to=Prompting"))
	})

	It("should quote values containing whitespace", func() {
		log.Info("config", "style", "file:with space")

		Expect(buf.String()).To(ContainSubstring(`style="file:with space"`))
	})

	Describe("With", func() {
		It("should prepend base key-value pairs to every entry", func() {
			scoped := log.With("component", "installer")

			scoped.Info("hook installed", "path", "/repo/.git/hooks/pre-commit")

			Expect(buf.String()).To(ContainSubstring("component=installer"))
			Expect(buf.String()).To(ContainSubstring("path=/repo/.git/hooks/pre-commit"))
		})

		It("should not affect the parent logger", func() {
			_ = log.With("component", "installer")

			log.Info("plain entry")

			Expect(buf.String()).ToNot(ContainSubstring("component="))
		})
	})
})

var _ = Describe("NoOpLogger", func() {
	It("should discard everything and chain", func() {
		log := logger.NewNoOpLogger()

		log.Info("ignored")
		log.Error("ignored")
		Expect(log.With("k", "v")).ToNot(BeNil())
	})
})
