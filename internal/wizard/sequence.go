// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

package wizard

// Conditional branching is resolved by recomputing the full step sequence from
// current state on every navigation request, never by patching a previously
// computed list. Re-answering an earlier step therefore always yields a
// downstream sequence consistent with the latest state.

// ComputeCreateSequence returns the ordered creation flow steps applicable to
// the given state. The sequence always ends in StepConfirm.
func ComputeCreateSequence(s *State) []Step {
	seq := []Step{StepOwner, StepName, StepDescription, StepVisibility, StepUseTemplate}
	if s.UseTemplate {
		seq = append(seq, StepTemplateName)
	} else {
		seq = append(seq, StepAddReadme, StepLicense)
	}
	seq = append(seq, StepCreateIssue)
	if s.CreateIssue {
		seq = append(seq, StepIssueTitle, StepIssueBody)
		// Branch linking is only offered when an issue exists.
		seq = append(seq, StepCreateBranch)
		if s.CreateBranch {
			seq = append(seq, StepBranchName)
		}
	}
	return append(seq, StepWorkspace, StepConfirm)
}

// ComputeModifySequence returns the ordered modification flow steps applicable
// to the given state. The category answer determines the entire rest of the
// sequence; until it is answered only the category and confirm steps exist.
func ComputeModifySequence(s *State) []Step {
	var seq []Step
	if !s.Preselected {
		seq = append(seq, ModStepSelectRepo)
	}
	seq = append(seq, ModStepCategory)

	if s.Category == CategoryBasic || s.Category == CategoryAll {
		seq = append(seq, ModStepDescription, ModStepHomepage, ModStepVisibility)
	}
	if s.Category == CategoryFeatures || s.Category == CategoryAll {
		seq = append(seq, ModStepIssues, ModStepProjects, ModStepWiki, ModStepDiscussions)
	}
	if s.Category == CategoryPR || s.Category == CategoryAll {
		seq = append(seq, ModStepMergeCommit, ModStepSquashMerge, ModStepRebaseMerge, ModStepDeleteBranchOnMerge)
	}
	if s.Category == CategoryGeneral || s.Category == CategoryAll {
		seq = append(seq, ModStepAutoMerge, ModStepUpdateBranch, ModStepSignoff)
	}
	return append(seq, ModStepConfirm)
}

// IndexOf returns the position of step in seq, or -1 when absent.
func IndexOf(step Step, seq []Step) int {
	for i, s := range seq {
		if s == step {
			return i
		}
	}
	return -1
}

// Sequencer navigates a flow's step sequence. Compute is the pure
// state-to-sequence function and Order the flow's union step ordering.
type Sequencer struct {
	Compute func(*State) []Step
	Order   []Step
}

// Next returns the step immediately following current in the freshly computed
// sequence. When current is last it returns the terminal step unchanged. When
// current has dropped out of the sequence, navigation continues from the
// nearest still-valid later step in the union ordering.
func (q Sequencer) Next(current Step, s *State) Step {
	seq := q.Compute(s)
	i := IndexOf(current, seq)
	if i < 0 {
		return q.nearest(current, seq, +1)
	}
	if i >= len(seq)-1 {
		return seq[len(seq)-1]
	}
	return seq[i+1]
}

// Previous returns the step immediately preceding current in the freshly
// computed sequence, or current unchanged when it is already first. When
// current has dropped out, navigation rewinds to the nearest still-valid
// earlier step in the union ordering.
func (q Sequencer) Previous(current Step, s *State) Step {
	seq := q.Compute(s)
	i := IndexOf(current, seq)
	if i == 0 {
		return current
	}
	if i < 0 {
		return q.nearest(current, seq, -1)
	}
	return seq[i-1]
}

// nearest walks the union ordering from current in the given direction and
// returns the first step present in seq. Falls back to the edge of seq when
// the walk runs off the ordering.
func (q Sequencer) nearest(current Step, seq []Step, dir int) Step {
	pos := IndexOf(current, q.Order)
	for i := pos + dir; i >= 0 && i < len(q.Order); i += dir {
		if IndexOf(q.Order[i], seq) >= 0 {
			return q.Order[i]
		}
	}
	if dir > 0 {
		return seq[len(seq)-1]
	}
	return seq[0]
}
