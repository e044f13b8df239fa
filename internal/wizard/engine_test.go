// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

package wizard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jajera/vsx-github-repo-factory/internal/clierr"
	"github.com/jajera/vsx-github-repo-factory/internal/prompt"
)

// scriptAction is one scripted prompt interaction.
type scriptAction struct {
	value string // select: item value to pick; input: text to enter
	err   error  // returned instead of answering
	boom  bool   // panic while rendering
}

// scriptPrompter replays a fixed script of prompt interactions.
type scriptPrompter struct {
	t       *testing.T
	actions []scriptAction
	pos     int
}

func (p *scriptPrompter) next() scriptAction {
	require.Less(p.t, p.pos, len(p.actions), "script exhausted")
	a := p.actions[p.pos]
	p.pos++
	return a
}

func (p *scriptPrompter) Select(_ context.Context, req prompt.SelectRequest) (prompt.Item, error) {
	a := p.next()
	if a.boom {
		panic("render failure")
	}
	if a.err != nil {
		return prompt.Item{}, a.err
	}
	for _, item := range req.Items {
		if item.Value == a.value {
			return item, nil
		}
	}
	p.t.Fatalf("script value %q not among choices for %q", a.value, req.Title)
	return prompt.Item{}, nil
}

func (p *scriptPrompter) Input(_ context.Context, req prompt.InputRequest) (string, error) {
	a := p.next()
	if a.boom {
		panic("render failure")
	}
	if a.err != nil {
		return "", a.err
	}
	if req.Validate != nil {
		require.NoError(p.t, req.Validate(a.value), "script entered invalid input for %q", req.Title)
	}
	return a.value, nil
}

// testFlow is a minimal three-question flow: an extra free-text step exists
// only when the first answer is yes.
func testFlow() *Flow {
	order := []Step{StepUseTemplate, StepTemplateName, StepName, StepConfirm}
	return &Flow{
		Name:  "test",
		Order: order,
		Sequence: func(s *State) []Step {
			seq := []Step{StepUseTemplate}
			if s.UseTemplate {
				seq = append(seq, StepTemplateName)
			}
			return append(seq, StepName, StepConfirm)
		},
		Handlers: map[Step]Handler{
			StepUseTemplate: func(ctx context.Context, p Prompter, s *State) error {
				item, err := p.Select(ctx, prompt.SelectRequest{
					Title: "extra?",
					Items: []prompt.Item{{Label: "Yes", Value: "yes"}, {Label: "No", Value: "no"}},
				})
				if err != nil {
					return err
				}
				s.UseTemplate = item.Value == "yes"
				return nil
			},
			StepTemplateName: func(ctx context.Context, p Prompter, s *State) error {
				v, err := p.Input(ctx, prompt.InputRequest{Title: "extra value", Default: s.Template})
				if err != nil {
					return err
				}
				s.Template = v
				return nil
			},
			StepName: func(ctx context.Context, p Prompter, s *State) error {
				v, err := p.Input(ctx, prompt.InputRequest{Title: "name", Default: s.Name})
				if err != nil {
					return err
				}
				s.Name = v
				return nil
			},
			StepConfirm: func(ctx context.Context, p Prompter, s *State) error {
				_, err := p.Select(ctx, prompt.SelectRequest{
					Title: "confirm",
					Items: []prompt.Item{{Label: "Go", Value: "go"}},
				})
				if err != nil {
					return err
				}
				s.Confirmed = true
				return nil
			},
		},
		Clearers: map[Step]func(*State){
			StepTemplateName: func(s *State) { s.Template = "" },
		},
	}
}

func runTestFlow(t *testing.T, actions []scriptAction) (Options, error) {
	p := &scriptPrompter{t: t, actions: actions}
	engine := NewEngine(testFlow(), p, NewState())
	return engine.Run(context.Background())
}

func TestEngineForward(t *testing.T) {
	opts, err := runTestFlow(t, []scriptAction{
		{value: "yes"},
		{value: "alpha"},
		{value: "beta"},
		{value: "go"},
	})
	require.NoError(t, err)
	assert.Equal(t, "alpha", opts.Template)
	assert.Equal(t, "beta", opts.Name)
}

func TestEngineBackReAnswerClearsInvalidatedValue(t *testing.T) {
	opts, err := runTestFlow(t, []scriptAction{
		{value: "yes"},        // extra: yes
		{value: "alpha"},      // extra value entered
		{err: prompt.ErrBack}, // back from name to extra value
		{err: prompt.ErrBack}, // back again to the yes/no step
		{value: "no"},         // re-answer: extra step drops out
		{value: "beta"},       // name
		{value: "go"},
	})
	require.NoError(t, err)
	assert.Empty(t, opts.Template, "value of the removed step must be cleared")
	assert.Equal(t, "beta", opts.Name)
}

func TestEngineBackPrepopulatesPreviousAnswer(t *testing.T) {
	var seen string
	p := &scriptPrompter{t: t, actions: []scriptAction{
		{value: "no"},
		{value: "first"},
		{err: prompt.ErrBack}, // back from confirm to name
		{value: "second"},
		{value: "go"},
	}}

	f := testFlow()
	inner := f.Handlers[StepName]
	f.Handlers[StepName] = func(ctx context.Context, pr Prompter, s *State) error {
		seen = s.Name
		return inner(ctx, pr, s)
	}

	engine := NewEngine(f, p, NewState())
	opts, err := engine.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", seen, "revisited step sees its previous answer")
	assert.Equal(t, "second", opts.Name)
}

func TestEngineBackAtFirstStepCancels(t *testing.T) {
	_, err := runTestFlow(t, []scriptAction{
		{err: prompt.ErrBack},
	})
	assert.ErrorIs(t, err, clierr.ErrCancelled)
}

func TestEngineInterruptCancels(t *testing.T) {
	_, err := runTestFlow(t, []scriptAction{
		{value: "no"},
		{err: clierr.ErrCancelled},
	})
	assert.ErrorIs(t, err, clierr.ErrCancelled)
}

func TestEngineContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &scriptPrompter{t: t}
	engine := NewEngine(testFlow(), p, NewState())
	_, err := engine.Run(ctx)
	assert.ErrorIs(t, err, clierr.ErrCancelled)
	assert.Zero(t, p.pos, "no step runs after cancellation")
}

func TestEnginePanicSurfacesAsCancelled(t *testing.T) {
	opts, err := runTestFlow(t, []scriptAction{
		{value: "no"},
		{boom: true},
	})
	assert.ErrorIs(t, err, clierr.ErrCancelled)
	assert.Equal(t, Options{}, opts, "no partial options on abort")
}
