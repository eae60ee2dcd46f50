package convertcmder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/graycalc/pkg/config"
	"github.com/papercomputeco/graycalc/pkg/convert"
)

var _ = Describe("Convert Command", func() {
	var (
		ctx    context.Context
		tmpDir string
		out    *bytes.Buffer
	)

	BeforeEach(func() {
		ctx = context.Background()
		tmpDir = GinkgoT().TempDir()
		GinkgoT().Setenv("HOME", tmpDir)
		GinkgoT().Setenv(config.EnvPath, "")
		out = &bytes.Buffer{}
	})

	execute := func(args ...string) error {
		cmd := NewConvertCmd()
		cmd.SetArgs(args)
		cmd.SetOut(out)
		cmd.SetErr(GinkgoWriter)
		return cmd.ExecuteContext(ctx)
	}

	It("prints the value alone with --no-steps", func() {
		Expect(execute("bin2dec", "1010", "--no-steps")).To(Succeed())
		Expect(out.String()).To(Equal("10\n"))
	})

	It("prints the derivation by default", func() {
		Expect(execute("dec2bin", "10")).To(Succeed())
		Expect(out.String()).To(ContainSubstring("10 ÷ 2 = 5, Remainder = 0"))
		Expect(out.String()).To(ContainSubstring("Result: 1010"))
	})

	It("writes JSON with -o json", func() {
		Expect(execute("bin2gray", "1000", "-o", "json")).To(Succeed())

		var doc map[string]any
		Expect(json.Unmarshal(out.Bytes(), &doc)).To(Succeed())
		Expect(doc["result"]).To(Equal("1100"))
	})

	It("takes the output format from the config file", func() {
		path := filepath.Join(tmpDir, "c.toml")
		Expect(os.WriteFile(path, []byte("[output]\nformat = \"yaml\"\n"), 0o600)).To(Succeed())

		Expect(execute("gray2bin", "1100", "--config", path)).To(Succeed())
		Expect(out.String()).To(MatchRegexp(`(?m)^result: ["']?1000["']?$`))
	})

	It("returns the user-facing validation message", func() {
		err := execute("bin2dec", "102")
		Expect(err).To(MatchError("Invalid Binary Input"))
		Expect(errors.Is(err, convert.ErrInvalidInput)).To(BeTrue())
	})

	It("rejects an unknown type", func() {
		err := execute("oct2dec", "17")
		Expect(errors.Is(err, convert.ErrUnknownKind)).To(BeTrue())
	})

	It("rejects an unknown output format", func() {
		Expect(execute("bin2dec", "1", "-o", "xml")).To(HaveOccurred())
	})

	It("requires exactly two arguments", func() {
		Expect(execute("bin2dec")).To(HaveOccurred())
	})
})
