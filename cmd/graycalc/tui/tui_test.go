package tuicmder

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("TUI Command", func() {
	It("rejects an unknown starting type before opening the screen", func() {
		cmd := NewTUICmd()
		cmd.SetArgs([]string{"--type", "hex"})
		cmd.SetOut(GinkgoWriter)
		cmd.SetErr(GinkgoWriter)

		Expect(cmd.Execute()).To(MatchError(ContainSubstring(`unknown conversion type "hex"`)))
	})

	It("defaults to binary to decimal", func() {
		cmd := NewTUICmd()
		Expect(cmd.Flags().Lookup("type").DefValue).To(Equal("bin2dec"))
	})
})
