package logger_test

import (
	"bytes"
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/papercomputeco/graycalc/pkg/logger"
)

var _ = Describe("NewLogger", func() {
	var buf *bytes.Buffer

	BeforeEach(func() {
		buf = &bytes.Buffer{}
	})

	It("drops debug entries by default", func() {
		log := logger.NewLogger(logger.Options{Output: buf})
		log.Debug("hidden")
		log.Info("shown")

		Expect(buf.String()).NotTo(ContainSubstring("hidden"))
		Expect(buf.String()).To(ContainSubstring("shown"))
	})

	It("keeps debug entries in debug mode", func() {
		log := logger.NewLogger(logger.Options{Debug: true, Output: buf})
		log.Debug("conversion complete", zap.String("type", "bin2dec"))

		Expect(buf.String()).To(ContainSubstring("conversion complete"))
		Expect(buf.String()).To(ContainSubstring("bin2dec"))
	})

	It("writes JSON lines when asked", func() {
		log := logger.NewLogger(logger.Options{JSON: true, Output: buf})
		log.Info("request", zap.Int("status", 200))

		var entry map[string]any
		Expect(json.Unmarshal(buf.Bytes(), &entry)).To(Succeed())
		Expect(entry["msg"]).To(Equal("request"))
		Expect(entry["level"]).To(Equal("info"))
		Expect(entry["status"]).To(BeEquivalentTo(200))
		Expect(entry).To(HaveKey("time"))
	})
})
