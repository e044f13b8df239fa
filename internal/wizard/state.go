// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

package wizard

// Modification flow setting categories.
const (
	CategoryBasic    = "basic"
	CategoryFeatures = "features"
	CategoryPR       = "pr"
	CategoryGeneral  = "general"
	CategoryAll      = "all"
)

// SettingKeys maps each modification setting step to the repository API field
// it patches.
var SettingKeys = map[Step]string{
	ModStepDescription:         "description",
	ModStepHomepage:            "homepage",
	ModStepVisibility:          "visibility",
	ModStepIssues:              "has_issues",
	ModStepProjects:            "has_projects",
	ModStepWiki:                "has_wiki",
	ModStepDiscussions:         "has_discussions",
	ModStepMergeCommit:         "allow_merge_commit",
	ModStepSquashMerge:         "allow_squash_merge",
	ModStepRebaseMerge:         "allow_rebase_merge",
	ModStepDeleteBranchOnMerge: "delete_branch_on_merge",
	ModStepAutoMerge:           "allow_auto_merge",
	ModStepUpdateBranch:        "allow_update_branch",
	ModStepSignoff:             "web_commit_signoff_required",
}

// Patch maps repository setting keys to their new values (bool or string).
// A key absent from the patch is never sent to the remote.
type Patch map[string]any

// State is the mutable record accumulated across the steps of one flow run.
// It is created empty at flow start and either finalized into an Options copy
// or discarded entirely on cancellation.
type State struct {
	// Creation flow answers.
	Owner        string
	Name         string
	Description  string
	Visibility   string
	UseTemplate  bool
	Template     string
	AddReadme    bool
	License      string
	CreateIssue  bool
	IssueTitle   string
	IssueBody    string
	CreateBranch bool
	BranchName   string
	Workspace    bool

	// Modification flow answers.
	Repo        string // owner/name
	Preselected bool   // repo supplied by the caller, selection step skipped
	Category    string
	Current     map[string]any // live remote settings, keyed like SettingKeys
	Patch       Patch

	Confirmed bool
}

// NewState returns an empty state for a flow run.
func NewState() *State {
	return &State{
		Current: make(map[string]any),
		Patch:   make(Patch),
	}
}

// Options is the immutable snapshot returned to the caller when a flow's
// wizard completes. No reference types are shared with the live state.
type Options struct {
	Owner        string
	Name         string
	Description  string
	Visibility   string
	Template     string
	AddReadme    bool
	License      string
	CreateIssue  bool
	IssueTitle   string
	IssueBody    string
	CreateBranch bool
	BranchName   string
	Workspace    bool

	Repo  string
	Patch Patch
}

// FullName returns the owner/name identifier for the creation flow.
func (o Options) FullName() string {
	if o.Owner == "" {
		return o.Name
	}
	return o.Owner + "/" + o.Name
}

// Finalize copies the state into an immutable Options snapshot.
func (s *State) Finalize() Options {
	patch := make(Patch, len(s.Patch))
	for k, v := range s.Patch {
		patch[k] = v
	}
	return Options{
		Owner:        s.Owner,
		Name:         s.Name,
		Description:  s.Description,
		Visibility:   s.Visibility,
		Template:     s.Template,
		AddReadme:    s.AddReadme,
		License:      s.License,
		CreateIssue:  s.CreateIssue,
		IssueTitle:   s.IssueTitle,
		IssueBody:    s.IssueBody,
		CreateBranch: s.CreateBranch,
		BranchName:   s.BranchName,
		Workspace:    s.Workspace,
		Repo:         s.Repo,
		Patch:        patch,
	}
}

// SetSetting records a new value for a setting key, or removes it again when
// the chosen value matches the current remote value. Revisiting a setting and
// picking the same value as the remote must leave the patch untouched.
func (s *State) SetSetting(key string, value any) {
	if cur, ok := s.Current[key]; ok && cur == value {
		delete(s.Patch, key)
		return
	}
	s.Patch[key] = value
}

// CurrentBool returns the live remote value for a boolean setting, or the
// pending patch value if the user already changed it this run.
func (s *State) CurrentBool(key string) bool {
	if v, ok := s.Patch[key]; ok {
		b, _ := v.(bool)
		return b
	}
	if v, ok := s.Current[key]; ok {
		b, _ := v.(bool)
		return b
	}
	return false
}

// CurrentString returns the live remote value for a string setting, or the
// pending patch value if the user already changed it this run.
func (s *State) CurrentString(key string) string {
	if v, ok := s.Patch[key]; ok {
		str, _ := v.(string)
		return str
	}
	if v, ok := s.Current[key]; ok {
		str, _ := v.(string)
		return str
	}
	return ""
}

// ClearPatch reverts all pending setting changes. Used when backing out of a
// settings sub-flow entirely.
func (s *State) ClearPatch() {
	s.Patch = make(Patch)
}
