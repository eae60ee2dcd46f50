// Package tui is an interactive terminal front-end for the converter.
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/papercomputeco/graycalc/pkg/convert"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("39")).Padding(0, 1)
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	resultStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	stepStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model for the converter screen.
type Model struct {
	kinds []convert.KindInfo
	idx   int
	input textinput.Model

	result *convert.Result
	err    error
	hint   string
	width  int
}

// New returns a model with kind selected. An unknown kind falls back to the first one.
func New(kind convert.Kind) Model {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 256
	// Until the first WindowSizeMsg; a zero width cuts the placeholder to one rune.
	ti.Width = 40
	ti.Focus()

	m := Model{kinds: convert.Kinds(), input: ti}
	for i, info := range m.kinds {
		if info.Kind == kind {
			m.idx = i
		}
	}
	m.input.Placeholder = m.kinds[m.idx].Placeholder
	return m
}

// Kind is the selected conversion.
func (m Model) Kind() convert.Kind {
	return m.kinds[m.idx].Kind
}

// Result is the last successful conversion, or nil.
func (m Model) Result() *convert.Result {
	return m.result
}

// Err is the last conversion failure, or nil.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-4, 1)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			return m.selectKind(m.idx + 1), nil
		case "shift+tab":
			return m.selectKind(m.idx - 1), nil
		case "enter":
			return m.convert(), nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.hint = m.liveHint()
	return m, cmd
}

// selectKind switches conversion and clears the form, as the browser page does.
func (m Model) selectKind(i int) Model {
	n := len(m.kinds)
	m.idx = ((i % n) + n) % n
	m.input.Reset()
	m.input.Placeholder = m.kinds[m.idx].Placeholder
	m.result, m.err, m.hint = nil, nil, ""
	return m
}

func (m Model) convert() Model {
	res, err := convert.Convert(convert.Request{
		Kind:  m.Kind(),
		Value: strings.TrimSpace(m.input.Value()),
	})
	if err != nil {
		m.result, m.err = nil, err
		return m
	}
	m.result, m.err, m.hint = &res, nil, ""
	return m
}

// liveHint validates as the user types. Empty input is not an error yet.
func (m Model) liveHint() string {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		return ""
	}
	if err := convert.Validate(m.Kind(), value); errors.Is(err, convert.ErrInvalidInput) {
		return m.kinds[m.idx].Hint
	}
	return ""
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.fit("Number System Converter")))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.kinds))
	for i, info := range m.kinds {
		if i == m.idx {
			tabs[i] = activeStyle.Render(info.Label)
		} else {
			tabs[i] = inactiveStyle.Render(info.Label)
		}
	}
	b.WriteString(m.fit(lipgloss.JoinHorizontal(lipgloss.Top, tabs...)))
	b.WriteString("\n\n")

	b.WriteString(m.fit(m.input.View()))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.fit(m.err.Error())))
		b.WriteString("\n")
	case m.hint != "":
		b.WriteString(errorStyle.Render(m.fit(m.hint)))
		b.WriteString("\n")
	}

	if m.result != nil {
		b.WriteString("\n")
		b.WriteString(resultStyle.Render(m.fit(m.result.Value)))
		b.WriteString("\n\n")
		for _, step := range m.result.Steps {
			b.WriteString(stepStyle.Render(m.fit(step)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.fit("tab/shift+tab: conversion • enter: convert • esc: quit")))
	b.WriteString("\n")
	return b.String()
}

// fit truncates s to the terminal width once it is known.
func (m Model) fit(s string) string {
	if m.width <= 0 {
		return s
	}
	return ansi.Truncate(s, m.width, "…")
}
