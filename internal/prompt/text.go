// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type inputModel struct {
	title    string
	input    textinput.Model
	validate func(string) error

	value     string
	errText   string
	back      bool
	cancelled bool
	done      bool
}

func newInputModel(req InputRequest) inputModel {
	ti := textinput.New()
	ti.Placeholder = req.Placeholder
	ti.CharLimit = 200
	ti.Width = 50
	ti.SetValue(req.Default)
	ti.CursorEnd()
	ti.Focus()

	return inputModel{
		title:    req.Title,
		input:    ti,
		validate: req.Validate,
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit

		case "esc":
			m.back = true
			return m, tea.Quit

		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if m.validate != nil {
				if err := m.validate(value); err != nil {
					// Invalid input re-prompts in place, it never advances.
					m.errText = err.Error()
					return m, nil
				}
			}
			m.value = value
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	var b strings.Builder

	b.WriteString(promptTitleStyle.Render(m.title) + "\n")
	b.WriteString(m.input.View() + "\n")
	if m.errText != "" {
		b.WriteString(promptErrorStyle.Render("✗ "+m.errText) + "\n")
	}
	b.WriteString(promptHelpStyle.Render("enter accept · esc back"))
	return b.String()
}
