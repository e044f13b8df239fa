// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				MarginBottom(1)

	promptPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245"))

	promptSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("212")).
				Bold(true)

	promptActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("82"))

	promptDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	promptHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			MarginTop(1)

	promptErrorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))
)

type selectModel struct {
	title       string
	placeholder string
	items       []Item
	activeIndex int
	hasBack     bool

	cursor    int // 0 is the back item when hasBack
	back      bool
	cancelled bool
	done      bool
}

func newSelectModel(req SelectRequest) selectModel {
	m := selectModel{
		title:       req.Title,
		placeholder: req.Placeholder,
		items:       req.Items,
		activeIndex: req.ActiveIndex,
		hasBack:     req.WithBack,
	}
	m.cursor = m.offset() + req.ActiveIndex
	return m
}

// offset is the number of rows above the first real item.
func (m selectModel) offset() int {
	if m.hasBack {
		return 1
	}
	return 0
}

func (m selectModel) rows() int {
	return m.offset() + len(m.items)
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c":
		m.cancelled = true
		return m, tea.Quit

	case "esc":
		m.back = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < m.rows()-1 {
			m.cursor++
		}

	case "enter":
		if m.hasBack && m.cursor == 0 {
			m.back = true
		} else {
			m.done = true
		}
		return m, tea.Quit
	}

	return m, nil
}

// selected returns the chosen item. Only meaningful when done.
func (m selectModel) selected() Item {
	return m.items[m.cursor-m.offset()]
}

func (m selectModel) View() string {
	var b strings.Builder

	b.WriteString(promptTitleStyle.Render(m.title) + "\n")
	if m.placeholder != "" {
		b.WriteString(promptPlaceholderStyle.Render(m.placeholder) + "\n")
	}
	b.WriteString("\n")

	if m.hasBack {
		if m.cursor == 0 {
			b.WriteString(promptSelectedStyle.Render("> "+BackLabel) + "\n")
		} else {
			b.WriteString(promptDimStyle.Render("  "+BackLabel) + "\n")
		}
	}

	for i, item := range m.items {
		label := item.Label
		if m.offset()+i == m.cursor {
			label = promptSelectedStyle.Render("> " + item.Label)
		} else {
			label = "  " + label
		}
		if i == m.activeIndex {
			label += promptActiveStyle.Render(" ●")
		}
		if item.Detail != "" {
			label += promptDimStyle.Render(fmt.Sprintf("  %s", item.Detail))
		}
		b.WriteString(label + "\n")
	}

	b.WriteString(promptHelpStyle.Render("↑/↓ move · enter select · esc back"))
	return b.String()
}
