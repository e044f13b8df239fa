// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

// Package flow orchestrates the create, modify and delete flows: it builds
// the wizard for each flow, runs the remote operations in order, aggregates
// per-stage failures, and coordinates rollback on cancellation.
package flow

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jajera/vsx-github-repo-factory/internal/prompt"
)

// Result summarizes one flow execution. Non-fatal stage failures are
// collected in Errors; the caller reports them as a single aggregated warning
// when the primary action succeeded.
type Result struct {
	Repo         string
	URL          string
	IssueNumber  int
	IssueURL     string
	Branch       string
	WorkspaceDir string
	Patched      []string // setting keys that were sent
	Errors       []string
}

// Fail records a non-fatal stage failure.
func (r *Result) Fail(stage string, err error) {
	r.Errors = append(r.Errors, stage+": "+err.Error())
}

var titleCaser = cases.Title(language.English)

// settingLabel renders an API field key as a prompt label, e.g.
// "allow_squash_merge" becomes "Allow Squash Merge".
func settingLabel(key string) string {
	return titleCaser.String(strings.ReplaceAll(key, "_", " "))
}

// boolItems builds the two choices for a boolean setting prompt. The option
// matching the current value is always first and active, so accepting the
// default never changes the setting.
func boolItems(current bool) []prompt.Item {
	onOff := func(v bool) prompt.Item {
		if v {
			return prompt.Item{Label: "Enabled", Value: "true"}
		}
		return prompt.Item{Label: "Disabled", Value: "false"}
	}
	return []prompt.Item{onOff(current), onOff(!current)}
}

// yesNoItems builds a yes/no choice with the default first and active.
func yesNoItems(defaultYes bool) []prompt.Item {
	yes := prompt.Item{Label: "Yes", Value: "yes"}
	no := prompt.Item{Label: "No", Value: "no"}
	if defaultYes {
		return []prompt.Item{yes, no}
	}
	return []prompt.Item{no, yes}
}
