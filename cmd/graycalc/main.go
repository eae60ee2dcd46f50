package main

import (
	"os"

	"github.com/spf13/cobra"

	convertcmder "github.com/papercomputeco/graycalc/cmd/graycalc/convert"
	kindscmder "github.com/papercomputeco/graycalc/cmd/graycalc/kinds"
	mcpcmder "github.com/papercomputeco/graycalc/cmd/graycalc/mcp"
	servecmder "github.com/papercomputeco/graycalc/cmd/graycalc/serve"
	tuicmder "github.com/papercomputeco/graycalc/cmd/graycalc/tui"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const rootLongDesc string = `graycalc converts values among binary, decimal and Gray code
and explains every step of the derivation.

Run it as a web page (serve), from the shell (convert), as an
interactive terminal screen (tui) or as an MCP tool server (mcp).`

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "graycalc",
		Short:        "Binary, decimal and Gray code converter",
		Long:         rootLongDesc,
		Version:      version,
		SilenceUsage: true,
	}

	root.AddCommand(
		servecmder.NewServeCmd(),
		convertcmder.NewConvertCmd(),
		kindscmder.NewKindsCmd(),
		tuicmder.NewTUICmd(),
		mcpcmder.NewMCPCmd(version),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
