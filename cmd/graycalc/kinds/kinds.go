package kindscmder

import (
	"github.com/spf13/cobra"

	"github.com/papercomputeco/graycalc/pkg/config"
	"github.com/papercomputeco/graycalc/pkg/convert"
	"github.com/papercomputeco/graycalc/pkg/render"
)

const kindsShortDesc string = "List supported conversions"

type kindsCommander struct {
	configPath string
	output     string
}

func NewKindsCmd() *cobra.Command {
	cmder := &kindsCommander{}

	cmd := &cobra.Command{
		Use:          "kinds",
		Short:        kindsShortDesc,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmder.run(cmd)
		},
	}

	cmd.Flags().StringVarP(&cmder.configPath, "config", "c", "", "Path to config file (default ~/.graycalc/config.toml)")
	cmd.Flags().StringVarP(&cmder.output, "output", "o", "", "Output format: text, markdown, json or yaml")

	return cmd
}

func (c *kindsCommander) run(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.Format = c.output
	}

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styled, _ := render.ShouldStyle(cfg.Output.Color, out)
	return render.Kinds(out, convert.Kinds(), render.Options{Format: format, Styled: styled})
}
