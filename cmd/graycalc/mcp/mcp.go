package mcpcmder

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/papercomputeco/graycalc/mcpserver"
	"github.com/papercomputeco/graycalc/pkg/logger"
)

const mcpLongDesc string = `Serve the converter as MCP tools over stdio.

Tools: bin2dec, dec2bin, bin2gray, gray2bin and list_kinds.
Logs go to stderr; stdout carries the protocol.

Example client configuration:
  {"command": "graycalc", "args": ["mcp"]}`

const mcpShortDesc string = "Serve conversions as MCP tools"

type mcpCommander struct {
	debug bool
}

func NewMCPCmd(version string) *cobra.Command {
	cmder := &mcpCommander{}

	cmd := &cobra.Command{
		Use:          "mcp",
		Short:        mcpShortDesc,
		Long:         mcpLongDesc,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.NewLogger(logger.Options{Debug: cmder.debug, Output: os.Stderr})
			defer log.Sync()
			return mcpserver.Run(cmd.Context(), version, log)
		},
	}

	cmd.Flags().BoolVar(&cmder.debug, "debug", false, "Enable debug logging to stderr")

	return cmd
}
