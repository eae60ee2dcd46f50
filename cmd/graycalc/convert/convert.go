package convertcmder

import (
	"github.com/spf13/cobra"

	"github.com/papercomputeco/graycalc/pkg/config"
	"github.com/papercomputeco/graycalc/pkg/convert"
	"github.com/papercomputeco/graycalc/pkg/render"
)

const convertLongDesc string = `Convert a value and print the step-by-step derivation.

Types:
  bin2dec   binary to decimal
  dec2bin   decimal to binary
  bin2gray  binary to Gray code
  gray2bin  Gray code to binary

Examples:
  graycalc convert bin2dec 1010
  graycalc convert dec2bin 38 --no-steps
  graycalc convert bin2gray 1000 -o json`

const convertShortDesc string = "Convert a single value"

type convertCommander struct {
	configPath string
	output     string
	color      string
	noSteps    bool
}

func NewConvertCmd() *cobra.Command {
	cmder := &convertCommander{}

	cmd := &cobra.Command{
		Use:          "convert <type> <value>",
		Short:        convertShortDesc,
		Long:         convertLongDesc,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var names []string
			for _, k := range convert.Kinds() {
				names = append(names, string(k.Kind)+"\t"+k.Label)
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd, convert.Request{Kind: convert.Kind(args[0]), Value: args[1]})
		},
	}

	cmd.Flags().StringVarP(&cmder.configPath, "config", "c", "", "Path to config file (default ~/.graycalc/config.toml)")
	cmd.Flags().StringVarP(&cmder.output, "output", "o", "", "Output format: text, markdown, json or yaml")
	cmd.Flags().StringVar(&cmder.color, "color", "", "Colorize text output: auto, always or never")
	cmd.Flags().BoolVar(&cmder.noSteps, "no-steps", false, "Print only the converted value")

	return cmd
}

func (c *convertCommander) run(cmd *cobra.Command, req convert.Request) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.Format = c.output
	}
	if cmd.Flags().Changed("color") {
		cfg.Output.Color = c.color
	}

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	res, err := convert.Convert(req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styled, width := render.ShouldStyle(cfg.Output.Color, out)
	return render.Result(out, req, res, render.Options{
		Format:  format,
		NoSteps: c.noSteps,
		Styled:  styled,
		Width:   width,
	})
}
