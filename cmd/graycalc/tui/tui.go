package tuicmder

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/papercomputeco/graycalc/pkg/convert"
	"github.com/papercomputeco/graycalc/pkg/tui"
)

const tuiLongDesc string = `Open an interactive converter in the terminal.

Type a value and press enter to convert it. Tab and shift+tab
switch between conversions; esc or ctrl+c quits.

Examples:
  graycalc tui
  graycalc tui --type gray2bin`

const tuiShortDesc string = "Interactive terminal converter"

type tuiCommander struct {
	kind string
}

func NewTUICmd() *cobra.Command {
	cmder := &tuiCommander{}

	cmd := &cobra.Command{
		Use:          "tui",
		Short:        tuiShortDesc,
		Long:         tuiLongDesc,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmder.run(cmd)
		},
	}

	cmd.Flags().StringVarP(&cmder.kind, "type", "t", string(convert.BinToDec), "Conversion to start with")

	return cmd
}

func (c *tuiCommander) run(cmd *cobra.Command) error {
	kind, err := convert.ParseKind(c.kind)
	if err != nil {
		return fmt.Errorf("unknown conversion type %q", c.kind)
	}

	p := tea.NewProgram(tui.New(kind),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}
	return nil
}
