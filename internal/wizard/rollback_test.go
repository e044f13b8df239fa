// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jajera/vsx-github-repo-factory/internal/prompt"
)

func TestTrackerNoOfferBeforeCreate(t *testing.T) {
	var tr Tracker
	p := &scriptPrompter{t: t} // empty script: any prompt would fail the test

	deleted := false
	decision, err := tr.OfferRollback(context.Background(), p, func(context.Context, string) error {
		deleted = true
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, RollbackKept, decision)
	assert.False(t, deleted)
}

func TestTrackerDeleteChoice(t *testing.T) {
	var tr Tracker
	tr.MarkCreated("octo/demo")
	p := &scriptPrompter{t: t, actions: []scriptAction{{value: "delete"}}}

	var deleted string
	decision, err := tr.OfferRollback(context.Background(), p, func(_ context.Context, resource string) error {
		deleted = resource
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, RollbackDeleted, decision)
	assert.Equal(t, "octo/demo", deleted)
}

func TestTrackerKeepChoice(t *testing.T) {
	var tr Tracker
	tr.MarkCreated("octo/demo")
	p := &scriptPrompter{t: t, actions: []scriptAction{{value: "keep"}}}

	decision, err := tr.OfferRollback(context.Background(), p, func(context.Context, string) error {
		t.Fatal("delete must not run")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, RollbackKept, decision)
}

func TestTrackerDismissalKeeps(t *testing.T) {
	var tr Tracker
	tr.MarkCreated("octo/demo")
	p := &scriptPrompter{t: t, actions: []scriptAction{{err: prompt.ErrBack}}}

	decision, err := tr.OfferRollback(context.Background(), p, func(context.Context, string) error {
		t.Fatal("delete must not run")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, RollbackKept, decision)
}

func TestTrackerOffersAtMostOnce(t *testing.T) {
	var tr Tracker
	tr.MarkCreated("octo/demo")
	p := &scriptPrompter{t: t, actions: []scriptAction{{value: "keep"}}}

	_, err := tr.OfferRollback(context.Background(), p, nil)
	require.NoError(t, err)

	// The second offer is silent even if the first answer was keep.
	decision, err := tr.OfferRollback(context.Background(), p, func(context.Context, string) error {
		t.Fatal("delete must not run")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, RollbackKept, decision)
	assert.Equal(t, 1, p.pos, "only one prompt shown")
}

func TestTrackerDeleteFailureKeeps(t *testing.T) {
	var tr Tracker
	tr.MarkCreated("octo/demo")
	p := &scriptPrompter{t: t, actions: []scriptAction{{value: "delete"}}}

	decision, err := tr.OfferRollback(context.Background(), p, func(context.Context, string) error {
		return errors.New("api: forbidden")
	})
	require.Error(t, err)
	assert.Equal(t, RollbackKept, decision)
}
