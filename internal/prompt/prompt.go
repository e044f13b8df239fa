// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

// Package prompt renders wizard steps as interactive terminal prompts. Each
// prompt runs its own bubbletea program: a cursor list for selections and a
// single-line text input for free text.
package prompt

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jajera/vsx-github-repo-factory/internal/clierr"
)

// ErrBack is returned when the user selects the injected back item or
// dismisses a prompt. Dismissing rewinds one step; it never cancels the whole
// flow except at the very first step.
var ErrBack = errors.New("back")

// BackLabel is the synthetic item injected at the top of selection prompts.
const BackLabel = "← Back"

// Item is one labeled choice in a selection prompt.
type Item struct {
	Label  string
	Value  string
	Detail string // optional dimmed annotation
}

// SelectRequest describes a selection prompt.
type SelectRequest struct {
	Title       string
	Placeholder string
	Items       []Item
	ActiveIndex int  // item marked active/default
	WithBack    bool // inject a back item
}

// InputRequest describes a free-text prompt.
type InputRequest struct {
	Title       string
	Placeholder string
	Default     string // pre-populated value, shown and editable
	Validate    func(string) error
}

// Terminal presents prompts on the controlling terminal.
type Terminal struct{}

// New returns a terminal-backed presenter.
func New() *Terminal {
	return &Terminal{}
}

// Select presents a list of labeled choices and returns the chosen item.
// Returns ErrBack on back/dismiss and clierr.ErrCancelled on interrupt.
func (t *Terminal) Select(ctx context.Context, req SelectRequest) (Item, error) {
	if err := ctx.Err(); err != nil {
		return Item{}, clierr.ErrCancelled
	}

	model := newSelectModel(req)
	out, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return Item{}, clierr.ErrCancelled
	}

	final := out.(selectModel)
	switch {
	case final.cancelled:
		return Item{}, clierr.ErrCancelled
	case final.back:
		return Item{}, ErrBack
	default:
		return final.selected(), nil
	}
}

// Input presents a free-text prompt and returns the entered text. Invalid
// input re-prompts in place and never propagates. Returns ErrBack on dismiss
// and clierr.ErrCancelled on interrupt.
func (t *Terminal) Input(ctx context.Context, req InputRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", clierr.ErrCancelled
	}

	model := newInputModel(req)
	out, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return "", clierr.ErrCancelled
	}

	final := out.(inputModel)
	switch {
	case final.cancelled:
		return "", clierr.ErrCancelled
	case final.back:
		return "", ErrBack
	default:
		return final.value, nil
	}
}
