package main

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Root Command", func() {
	It("registers every front-end", func() {
		root := newRootCmd()

		var names []string
		for _, c := range root.Commands() {
			names = append(names, c.Name())
		}
		Expect(names).To(ContainElements("serve", "convert", "kinds", "tui", "mcp"))
	})

	It("routes to the convert command", func() {
		GinkgoT().Setenv("HOME", GinkgoT().TempDir())
		GinkgoT().Setenv("GRAYCALC_CONFIG", "")

		out := &bytes.Buffer{}
		root := newRootCmd()
		root.SetOut(out)
		root.SetErr(GinkgoWriter)
		root.SetArgs([]string{"convert", "gray2bin", "0", "--no-steps"})

		Expect(root.Execute()).To(Succeed())
		Expect(out.String()).To(Equal("0\n"))
	})

	It("reports its version", func() {
		out := &bytes.Buffer{}
		root := newRootCmd()
		root.SetOut(out)
		root.SetArgs([]string{"--version"})

		Expect(root.Execute()).To(Succeed())
		Expect(out.String()).To(ContainSubstring("dev"))
	})
})
