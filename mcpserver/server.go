// Package mcpserver exposes the converter as MCP (Model Context Protocol)
// tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/papercomputeco/graycalc/pkg/convert"
)

const serverInstructions = `graycalc converts values among binary, decimal and Gray code.

Each conversion tool takes a single "value" string and returns the converted "result" plus "steps", an ordered derivation suitable for showing to a person.

- bin2dec: binary digits (0/1, most significant first) to an unsigned decimal, at most 64 bits
- dec2bin: decimal digits to binary, at most 64 bits
- bin2gray: binary digits to Gray code of the same width
- gray2bin: Gray code digits to binary of the same width

Invalid input is reported as a tool error with a short message such as "Invalid Binary Input".`

// New returns an MCP server with every converter tool registered.
func New(version string, logger *zap.Logger) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "graycalc", Version: version},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server, logger)
	return server
}

// Run serves MCP over stdio and blocks until the client disconnects or the
// context is cancelled.
func Run(ctx context.Context, version string, logger *zap.Logger) error {
	logger.Info("starting MCP server on stdio", zap.String("version", version))
	return New(version, logger).Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server, logger *zap.Logger) {
	for _, info := range convert.Kinds() {
		mcp.AddTool(server, &mcp.Tool{
			Name:        string(info.Kind),
			Description: toolDescriptions[info.Kind],
		}, convertHandler(info.Kind, logger))
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_kinds",
		Description: "List the supported conversions with a label, an input hint and an example value for each.",
	}, handleListKinds)
}

var toolDescriptions = map[convert.Kind]string{
	convert.BinToDec:  "Convert a binary digit string to its decimal value. Steps list every power of two that contributes to the sum.",
	convert.DecToBin:  "Convert a decimal number to binary by successive division by 2. Steps list each dividend, quotient and remainder.",
	convert.BinToGray: "Convert a binary digit string to Gray code (binary XOR binary shifted right by one). The result keeps the input width.",
	convert.GrayToBin: "Convert a Gray code digit string to binary with a running XOR from the most significant bit. The result keeps the input width.",
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
