// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

package wizard

import (
	"context"

	"github.com/jajera/vsx-github-repo-factory/internal/prompt"
)

// RollbackDecision is the outcome of a rollback offer.
type RollbackDecision int

const (
	RollbackKept RollbackDecision = iota
	RollbackDeleted
)

func (d RollbackDecision) String() string {
	if d == RollbackDeleted {
		return "deleted"
	}
	return "kept"
}

// Tracker records that the remote create call succeeded so that a later
// cancellation can offer to undo it. Rollback is offered at most once per flow
// run, and only after the create step actually completed.
type Tracker struct {
	created  bool
	resource string
	offered  bool
}

// MarkCreated records the created resource. Called exactly once, immediately
// after the remote create call reports success.
func (t *Tracker) MarkCreated(resource string) {
	t.created = true
	t.resource = resource
}

// Created reports whether the remote create call has completed.
func (t *Tracker) Created() bool {
	return t.created
}

// Resource returns the full identifier of the created resource.
func (t *Tracker) Resource() string {
	return t.resource
}

// OfferRollback presents a binary keep-or-delete choice for the created
// resource and invokes del when the user chooses delete. Calls before
// MarkCreated, and any call after the first, keep the resource silently.
func (t *Tracker) OfferRollback(ctx context.Context, p Prompter, del func(context.Context, string) error) (RollbackDecision, error) {
	if !t.created || t.offered {
		return RollbackKept, nil
	}
	t.offered = true

	item, err := p.Select(ctx, prompt.SelectRequest{
		Title:       "Cancelled: repository " + t.resource + " was already created",
		Placeholder: "Keep it or delete it?",
		Items: []prompt.Item{
			{Label: "Keep " + t.resource, Value: "keep"},
			{Label: "Delete " + t.resource, Value: "delete"},
		},
	})
	if err != nil || item.Value != "delete" {
		// Dismissing the offer keeps the resource.
		return RollbackKept, nil
	}

	if err := del(ctx, t.resource); err != nil {
		return RollbackKept, err
	}
	return RollbackDeleted, nil
}
