// Package render formats conversion results and the kind table for terminals
// and scripts.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"go.yaml.in/yaml/v4"
	"golang.org/x/term"

	"github.com/papercomputeco/graycalc/pkg/convert"
)

// Format is an output format name.
type Format string

const (
	Text     Format = "text"
	Markdown Format = "markdown"
	JSON     Format = "json"
	YAML     Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Text, Markdown, JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, markdown, json or yaml)", s)
	}
}

// Options controls a single render.
type Options struct {
	Format Format

	// NoSteps prints only the converted value.
	NoSteps bool

	// Styled enables ANSI styling for Text output.
	Styled bool

	// Width wraps styled output. Zero means 80 columns.
	Width int

	// GlamourStyle picks the markdown theme for styled output. Empty detects
	// dark or light from the terminal background.
	GlamourStyle string
}

// document is the machine-readable shape of one conversion.
type document struct {
	Type   convert.Kind `json:"type" yaml:"type"`
	Input  string       `json:"input" yaml:"input"`
	Result string       `json:"result" yaml:"result"`
	Steps  []string     `json:"steps,omitempty" yaml:"steps,omitempty"`
}

var (
	resultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
)

// Result writes one conversion to w.
func Result(w io.Writer, req convert.Request, res convert.Result, opts Options) error {
	doc := document{Type: req.Kind, Input: req.Value, Result: res.Value}
	if !opts.NoSteps {
		doc.Steps = res.Steps
	}

	switch opts.Format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case YAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("could not marshal yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	case Markdown:
		_, err := io.WriteString(w, markdown(doc))
		return err
	case Text, "":
		if opts.Styled {
			return styled(w, doc, opts)
		}
		return plain(w, doc)
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
}

func plain(w io.Writer, doc document) error {
	if len(doc.Steps) == 0 {
		_, err := fmt.Fprintln(w, doc.Result)
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s = %s\n\nSteps:\n", doc.Type, doc.Input, doc.Result)
	for i, step := range doc.Steps {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func styled(w io.Writer, doc document, opts Options) error {
	if len(doc.Steps) == 0 {
		_, err := fmt.Fprintln(w, resultStyle.Render(doc.Result))
		return err
	}

	width := opts.Width
	if width <= 0 {
		width = 80
	}
	style := opts.GlamourStyle
	if style == "" {
		style = "light"
		if termenv.HasDarkBackground() {
			style = "dark"
		}
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("could not create markdown renderer: %w", err)
	}
	out, err := r.Render(markdown(doc))
	if err != nil {
		return fmt.Errorf("could not render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func markdown(doc document) string {
	label := string(doc.Type)
	if info, ok := doc.Type.Info(); ok {
		label = info.Label
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", label)
	fmt.Fprintf(&b, "**Input:** `%s`\n\n", doc.Input)
	fmt.Fprintf(&b, "**Result:** `%s`\n", doc.Result)
	if len(doc.Steps) > 0 {
		b.WriteString("\n## Steps\n\n")
		for i, step := range doc.Steps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
	}
	return b.String()
}

// Kinds writes the supported conversions to w.
func Kinds(w io.Writer, kinds []convert.KindInfo, opts Options) error {
	switch opts.Format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(kinds)
	case YAML:
		out, err := yaml.Marshal(kinds)
		if err != nil {
			return fmt.Errorf("could not marshal yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	case Markdown:
		_, err := io.WriteString(w, kindsMarkdown(kinds))
		return err
	}

	rows := make([][]string, len(kinds))
	for i, k := range kinds {
		rows[i] = []string{string(k.Kind), k.Label, k.Placeholder}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TYPE", "CONVERSION", "EXAMPLE").
		Rows(rows...)
	if opts.Styled {
		t = t.StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	} else {
		t = t.StyleFunc(func(_, _ int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
	}

	_, err := fmt.Fprintln(w, t.String())
	return err
}

func kindsMarkdown(kinds []convert.KindInfo) string {
	var b strings.Builder
	b.WriteString("| Type | Conversion | Example |\n|---|---|---|\n")
	for _, k := range kinds {
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", k.Kind, k.Label, k.Placeholder)
	}
	return b.String()
}

// IsTerminal reports whether w is an interactive terminal and, if so, its width.
func IsTerminal(w io.Writer) (bool, int) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false, 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return true, 0
	}
	return true, width
}

// ShouldStyle resolves a color setting (auto, always, never) for w.
func ShouldStyle(color string, w io.Writer) (styled bool, width int) {
	tty, width := IsTerminal(w)
	switch color {
	case "always":
		return true, width
	case "never":
		return false, width
	default:
		return tty, width
	}
}
