package mcpcmder

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MCP Command", func() {
	It("lists the tools in its help", func() {
		out := &bytes.Buffer{}
		cmd := NewMCPCmd("test")
		cmd.SetArgs([]string{"--help"})
		cmd.SetOut(out)
		cmd.SetErr(GinkgoWriter)

		Expect(cmd.Execute()).To(Succeed())
		Expect(out.String()).To(ContainSubstring("bin2dec, dec2bin, bin2gray, gray2bin and list_kinds"))
		Expect(out.String()).To(ContainSubstring("--debug"))
	})

	It("defaults debug logging to off", func() {
		flag := NewMCPCmd("test").Flags().Lookup("debug")
		Expect(flag).NotTo(BeNil())
		Expect(flag.DefValue).To(Equal("false"))
	})

	It("rejects arguments before serving", func() {
		cmd := NewMCPCmd("test")
		cmd.SetArgs([]string{"extra"})
		cmd.SetOut(GinkgoWriter)
		cmd.SetErr(GinkgoWriter)

		Expect(cmd.Execute()).To(MatchError(ContainSubstring("unknown command")))
	})
})
