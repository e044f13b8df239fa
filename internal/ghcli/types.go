// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

package ghcli

// Repo describes one repository as returned by gh repo list.
type Repo struct {
	Name        string `json:"name"`
	FullName    string `json:"nameWithOwner"`
	Description string `json:"description"`
	Visibility  string `json:"visibility"`
}

// Settings is the patchable subset of the repository settings payload
// returned by the repos API.
type Settings struct {
	Description         string `json:"description"`
	Homepage            string `json:"homepage"`
	Visibility          string `json:"visibility"`
	DefaultBranch       string `json:"default_branch"`
	HasIssues           bool   `json:"has_issues"`
	HasProjects         bool   `json:"has_projects"`
	HasWiki             bool   `json:"has_wiki"`
	HasDiscussions      bool   `json:"has_discussions"`
	AllowMergeCommit    bool   `json:"allow_merge_commit"`
	AllowSquashMerge    bool   `json:"allow_squash_merge"`
	AllowRebaseMerge    bool   `json:"allow_rebase_merge"`
	DeleteBranchOnMerge bool   `json:"delete_branch_on_merge"`
	AllowAutoMerge      bool   `json:"allow_auto_merge"`
	AllowUpdateBranch   bool   `json:"allow_update_branch"`
	WebCommitSignoff    bool   `json:"web_commit_signoff_required"`
}

// Map flattens the settings into API field keys, the shape the wizard state
// tracks current values in.
func (s Settings) Map() map[string]any {
	return map[string]any{
		"description":                 s.Description,
		"homepage":                    s.Homepage,
		"visibility":                  s.Visibility,
		"has_issues":                  s.HasIssues,
		"has_projects":                s.HasProjects,
		"has_wiki":                    s.HasWiki,
		"has_discussions":             s.HasDiscussions,
		"allow_merge_commit":          s.AllowMergeCommit,
		"allow_squash_merge":          s.AllowSquashMerge,
		"allow_rebase_merge":          s.AllowRebaseMerge,
		"delete_branch_on_merge":      s.DeleteBranchOnMerge,
		"allow_auto_merge":            s.AllowAutoMerge,
		"allow_update_branch":         s.AllowUpdateBranch,
		"web_commit_signoff_required": s.WebCommitSignoff,
	}
}

// Issue is the result of creating an issue.
type Issue struct {
	Number int    `json:"number"`
	URL    string `json:"html_url"`
}

// CreateRepoOptions are the arguments to CreateRepo.
type CreateRepoOptions struct {
	FullName    string
	Visibility  string // public or private
	Description string
	Template    string // owner/name, empty for a blank repository
	AddReadme   bool
	License     string // SPDX keyword, empty for none
}
