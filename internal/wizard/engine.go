// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

package wizard

import (
	"context"
	"errors"

	"github.com/jajera/vsx-github-repo-factory/internal/clierr"
	"github.com/jajera/vsx-github-repo-factory/internal/prompt"
)

// Prompter presents one step to the user and returns the answer, prompt.ErrBack
// on back/dismiss, or clierr.ErrCancelled on interrupt.
type Prompter interface {
	Select(ctx context.Context, req prompt.SelectRequest) (prompt.Item, error)
	Input(ctx context.Context, req prompt.InputRequest) (string, error)
}

// Handler renders one step and writes the validated answer into the state.
// It returns nil when the step was answered, prompt.ErrBack to rewind, or
// clierr.ErrCancelled to abort the flow.
type Handler func(ctx context.Context, p Prompter, s *State) error

// Flow describes one wizard flow: its union step ordering, the pure
// state-to-sequence function, and a handler per step.
type Flow struct {
	Name     string
	Order    []Step
	Sequence func(*State) []Step
	Handlers map[Step]Handler

	// Clearers zero a step's accumulated value when the step drops out of the
	// sequence, so state never carries answers from inapplicable steps.
	Clearers map[Step]func(*State)

	// OnRewind runs after backward navigation lands on a step. It lets a flow
	// revert a whole sub-flow when the user backs out of its first step.
	OnRewind func(from, to Step, s *State)
}

// sequencer returns the flow's navigation helper.
func (f *Flow) sequencer() Sequencer {
	return Sequencer{Compute: f.Sequence, Order: f.Order}
}

// terminal returns the flow's designated terminal step. Every computable
// sequence ends in it.
func (f *Flow) terminal(s *State) Step {
	seq := f.Sequence(s)
	return seq[len(seq)-1]
}

// Engine drives a flow: it renders the current step, stores validated answers,
// advances or rewinds, and converts every abnormal exit into a cancellation.
type Engine struct {
	flow     *Flow
	prompter Prompter
	state    *State
}

// NewEngine returns an engine for one flow run over the given state.
func NewEngine(f *Flow, p Prompter, s *State) *Engine {
	return &Engine{flow: f, prompter: p, state: s}
}

// Run executes the wizard loop until the terminal step completes or the flow
// is cancelled. On success it returns the finalized immutable options; on
// cancellation it returns clierr.ErrCancelled and all accumulated state is
// discarded. A panic while rendering or validating a step aborts the whole
// wizard and surfaces as cancellation.
func (e *Engine) Run(ctx context.Context) (opts Options, err error) {
	defer func() {
		if r := recover(); r != nil {
			opts, err = Options{}, clierr.ErrCancelled
		}
	}()

	seq := e.flow.sequencer()
	current := e.flow.Sequence(e.state)[0]

	for {
		if ctx.Err() != nil {
			return Options{}, clierr.ErrCancelled
		}

		handler, ok := e.flow.Handlers[current]
		if !ok {
			// A step without a handler must never be visited.
			return Options{}, clierr.ErrCancelled
		}

		herr := handler(ctx, e.prompter, e.state)
		switch {
		case herr == nil:
			e.clearInapplicable()
			if current == e.flow.terminal(e.state) {
				return e.state.Finalize(), nil
			}
			current = seq.Next(current, e.state)

		case errors.Is(herr, prompt.ErrBack):
			prev := seq.Previous(current, e.state)
			if prev == current {
				// Backing out of the very first step cancels the flow.
				return Options{}, clierr.ErrCancelled
			}
			if e.flow.OnRewind != nil {
				e.flow.OnRewind(current, prev, e.state)
			}
			e.clearInapplicable()
			current = prev

		default:
			// Cancellation and unexpected prompt failures both abort; a
			// partial options object is never returned.
			return Options{}, clierr.ErrCancelled
		}
	}
}

// clearInapplicable zeroes the stored answer of every step absent from the
// freshly computed sequence. Going back out of "use template: yes" discards
// the template name this way, and re-answering it restores the README and
// license steps with clean values.
func (e *Engine) clearInapplicable() {
	seq := e.flow.Sequence(e.state)
	for _, step := range e.flow.Order {
		if IndexOf(step, seq) >= 0 {
			continue
		}
		if clear, ok := e.flow.Clearers[step]; ok {
			clear(e.state)
		}
	}
}
