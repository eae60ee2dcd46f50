package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/papercomputeco/graycalc/pkg/convert"
)

type convertInput struct {
	Value string `json:"value" jsonschema:"The digits to convert"`
}

type convertOutput struct {
	Result string   `json:"result"`
	Steps  []string `json:"steps,omitempty"`
}

func convertHandler(kind convert.Kind, logger *zap.Logger) mcp.ToolHandlerFor[convertInput, convertOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
		res, err := convert.Convert(convert.Request{Kind: kind, Value: input.Value})
		if err != nil {
			logger.Debug("conversion rejected", zap.String("tool", string(kind)), zap.Error(err))
			return errResult(err), convertOutput{}, nil
		}

		logger.Debug("conversion complete",
			zap.String("tool", string(kind)),
			zap.String("result", res.Value),
		)
		return nil, convertOutput{Result: res.Value, Steps: res.Steps}, nil
	}
}

type listKindsInput struct{}

type listKindsOutput struct {
	Kinds []convert.KindInfo `json:"kinds"`
}

func handleListKinds(_ context.Context, _ *mcp.CallToolRequest, _ listKindsInput) (*mcp.CallToolResult, listKindsOutput, error) {
	return nil, listKindsOutput{Kinds: convert.Kinds()}, nil
}
