// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

// Package wizard implements the multi-step prompt engine behind the create
// and modify flows: step sequencing with conditional branching, backward
// navigation, and cancellation-consistent side-effect tracking.
package wizard

// Step identifies one prompt unit within a flow. Step values are scoped to a
// single flow; the declaration order of a flow's steps is its union ordering,
// used to resolve navigation when the current step drops out of the sequence.
type Step int

// Creation flow steps.
const (
	StepOwner Step = iota
	StepName
	StepDescription
	StepVisibility
	StepUseTemplate
	StepTemplateName
	StepAddReadme
	StepLicense
	StepCreateIssue
	StepIssueTitle
	StepIssueBody
	StepCreateBranch
	StepBranchName
	StepWorkspace
	StepConfirm
)

// Modification flow steps.
const (
	ModStepSelectRepo Step = iota + 100
	ModStepCategory
	ModStepDescription
	ModStepHomepage
	ModStepVisibility
	ModStepIssues
	ModStepProjects
	ModStepWiki
	ModStepDiscussions
	ModStepMergeCommit
	ModStepSquashMerge
	ModStepRebaseMerge
	ModStepDeleteBranchOnMerge
	ModStepAutoMerge
	ModStepUpdateBranch
	ModStepSignoff
	ModStepConfirm
)

var stepNames = map[Step]string{
	StepOwner:        "owner",
	StepName:         "name",
	StepDescription:  "description",
	StepVisibility:   "visibility",
	StepUseTemplate:  "use-template",
	StepTemplateName: "template-name",
	StepAddReadme:    "add-readme",
	StepLicense:      "license",
	StepCreateIssue:  "create-issue",
	StepIssueTitle:   "issue-title",
	StepIssueBody:    "issue-body",
	StepCreateBranch: "create-branch",
	StepBranchName:   "branch-name",
	StepWorkspace:    "workspace",
	StepConfirm:      "confirm",

	ModStepSelectRepo:          "select-repo",
	ModStepCategory:            "category",
	ModStepDescription:         "description",
	ModStepHomepage:            "homepage",
	ModStepVisibility:          "visibility",
	ModStepIssues:              "issues",
	ModStepProjects:            "projects",
	ModStepWiki:                "wiki",
	ModStepDiscussions:         "discussions",
	ModStepMergeCommit:         "merge-commit",
	ModStepSquashMerge:         "squash-merge",
	ModStepRebaseMerge:         "rebase-merge",
	ModStepDeleteBranchOnMerge: "delete-branch-on-merge",
	ModStepAutoMerge:           "auto-merge",
	ModStepUpdateBranch:        "update-branch",
	ModStepSignoff:             "commit-signoff",
	ModStepConfirm:             "confirm",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// CreateOrder is the union ordering of every possible creation flow step.
var CreateOrder = []Step{
	StepOwner, StepName, StepDescription, StepVisibility,
	StepUseTemplate, StepTemplateName, StepAddReadme, StepLicense,
	StepCreateIssue, StepIssueTitle, StepIssueBody,
	StepCreateBranch, StepBranchName, StepWorkspace, StepConfirm,
}

// ModifyOrder is the union ordering of every possible modification flow step.
var ModifyOrder = []Step{
	ModStepSelectRepo, ModStepCategory,
	ModStepDescription, ModStepHomepage, ModStepVisibility,
	ModStepIssues, ModStepProjects, ModStepWiki, ModStepDiscussions,
	ModStepMergeCommit, ModStepSquashMerge, ModStepRebaseMerge, ModStepDeleteBranchOnMerge,
	ModStepAutoMerge, ModStepUpdateBranch, ModStepSignoff,
	ModStepConfirm,
}
