// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

package ghcli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner maps a joined argument string to a canned response and records
// every invocation.
type fakeRunner struct {
	responses map[string]string
	errs      map[string]error
	calls     []string
}

func (r *fakeRunner) Run(_ context.Context, args ...string) ([]byte, error) {
	key := strings.Join(args, " ")
	r.calls = append(r.calls, key)
	if err, ok := r.errs[key]; ok {
		return nil, err
	}
	if out, ok := r.responses[key]; ok {
		return []byte(out), nil
	}
	return nil, errors.New("unexpected gh invocation: " + key)
}

func TestCurrentUser(t *testing.T) {
	r := &fakeRunner{responses: map[string]string{
		"api user": `{"login":"octo"}`,
	}}
	c := NewClientWithRunner(r)

	login, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "octo", login)
}

func TestOrganizations(t *testing.T) {
	r := &fakeRunner{responses: map[string]string{
		"api user/orgs --paginate": `[{"login":"acme"},{"login":"initech"}]`,
	}}
	c := NewClientWithRunner(r)

	orgs, err := c.Organizations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"acme", "initech"}, orgs)
}

func TestRepoExists(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		exists bool
		fails  bool
	}{
		{name: "exists", err: nil, exists: true},
		{name: "not found", err: errors.New("GraphQL: Could not resolve to a Repository"), exists: false},
		{name: "other error", err: errors.New("error connecting to api.github.com"), fails: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := "repo view octo/demo --json name"
			r := &fakeRunner{responses: map[string]string{key: `{"name":"demo"}`}}
			if tt.err != nil {
				r.errs = map[string]error{key: tt.err}
			}
			c := NewClientWithRunner(r)

			exists, err := c.RepoExists(context.Background(), "octo/demo")
			if tt.fails {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.exists, exists)
		})
	}
}

func TestCreateRepoWithTemplate(t *testing.T) {
	r := &fakeRunner{responses: map[string]string{
		"repo create octo/demo --private --description demo repo --template octo/starter": "https://github.com/octo/demo\n",
	}}
	c := NewClientWithRunner(r)

	url, err := c.CreateRepo(context.Background(), CreateRepoOptions{
		FullName:    "octo/demo",
		Visibility:  "private",
		Description: "demo repo",
		Template:    "octo/starter",
		// AddReadme and License are ignored when a template is set.
		AddReadme: true,
		License:   "mit",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/octo/demo", url)
}

func TestCreateRepoFromScratch(t *testing.T) {
	r := &fakeRunner{responses: map[string]string{
		"repo create octo/demo --public --add-readme --license mit": "https://github.com/octo/demo\n",
	}}
	c := NewClientWithRunner(r)

	url, err := c.CreateRepo(context.Background(), CreateRepoOptions{
		FullName:   "octo/demo",
		Visibility: "public",
		AddReadme:  true,
		License:    "mit",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/octo/demo", url)
}

func TestDeleteRepo(t *testing.T) {
	r := &fakeRunner{responses: map[string]string{
		"repo delete octo/demo --yes": "",
	}}
	c := NewClientWithRunner(r)

	require.NoError(t, c.DeleteRepo(context.Background(), "octo/demo"))
	assert.Equal(t, []string{"repo delete octo/demo --yes"}, r.calls)
}

func TestListRepos(t *testing.T) {
	r := &fakeRunner{responses: map[string]string{
		"repo list octo --json name,nameWithOwner,description,visibility --limit 100": `[
			{"name":"demo","nameWithOwner":"octo/demo","description":"a demo","visibility":"PUBLIC"},
			{"name":"infra","nameWithOwner":"octo/infra","visibility":"PRIVATE"}
		]`,
	}}
	c := NewClientWithRunner(r)

	repos, err := c.ListRepos(context.Background(), "octo")
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "octo/demo", repos[0].FullName)
	assert.Equal(t, "public", repos[0].Visibility)
	assert.Equal(t, "private", repos[1].Visibility)
}

func TestGetSettings(t *testing.T) {
	r := &fakeRunner{responses: map[string]string{
		"api repos/octo/demo": `{
			"description":"a demo",
			"visibility":"public",
			"has_issues":true,
			"allow_squash_merge":false,
			"default_branch":"main"
		}`,
	}}
	c := NewClientWithRunner(r)

	settings, err := c.GetSettings(context.Background(), "octo/demo")
	require.NoError(t, err)
	assert.Equal(t, "a demo", settings.Description)
	assert.True(t, settings.HasIssues)
	assert.False(t, settings.AllowSquashMerge)
	assert.Equal(t, "main", settings.DefaultBranch)
}

func TestPatchSettings(t *testing.T) {
	r := &fakeRunner{responses: map[string]string{
		"api -X PATCH repos/octo/demo -F allow_squash_merge=true -f description=updated -F has_wiki=false": "{}",
	}}
	c := NewClientWithRunner(r)

	err := c.PatchSettings(context.Background(), "octo/demo", map[string]any{
		"description":        "updated",
		"has_wiki":           false,
		"allow_squash_merge": true,
	})
	require.NoError(t, err)
	assert.Len(t, r.calls, 1)
}

func TestPatchSettingsEmptyPatchSkipsCall(t *testing.T) {
	r := &fakeRunner{}
	c := NewClientWithRunner(r)

	require.NoError(t, c.PatchSettings(context.Background(), "octo/demo", nil))
	assert.Empty(t, r.calls)
}

func TestCreateIssue(t *testing.T) {
	r := &fakeRunner{responses: map[string]string{
		"api -X POST repos/octo/demo/issues -f title=Add CI -f body=Pipeline setup": `{"number":5,"html_url":"https://github.com/octo/demo/issues/5"}`,
	}}
	c := NewClientWithRunner(r)

	issue, err := c.CreateIssue(context.Background(), "octo/demo", "Add CI", "Pipeline setup")
	require.NoError(t, err)
	assert.Equal(t, 5, issue.Number)
	assert.Equal(t, "https://github.com/octo/demo/issues/5", issue.URL)
}

func TestCreateBranchLinkedToIssue(t *testing.T) {
	r := &fakeRunner{responses: map[string]string{
		"issue develop 5 --repo octo/demo --name 5-add-ci": "",
	}}
	c := NewClientWithRunner(r)

	require.NoError(t, c.CreateBranch(context.Background(), "octo/demo", "5-add-ci", 5))
}

func TestCreateBranchWithoutIssue(t *testing.T) {
	r := &fakeRunner{responses: map[string]string{
		"api repos/octo/demo":                    `{"default_branch":"main"}`,
		"api repos/octo/demo/git/ref/heads/main": `{"object":{"sha":"abc123"}}`,
		"api -X POST repos/octo/demo/git/refs -f ref=refs/heads/feature -f sha=abc123": "{}",
	}}
	c := NewClientWithRunner(r)

	require.NoError(t, c.CreateBranch(context.Background(), "octo/demo", "feature", 0))
	assert.Len(t, r.calls, 3)
}

func TestSettingsMap(t *testing.T) {
	s := Settings{
		Description:      "a demo",
		Visibility:       "public",
		HasIssues:        true,
		AllowSquashMerge: true,
	}
	m := s.Map()
	assert.Equal(t, "a demo", m["description"])
	assert.Equal(t, true, m["has_issues"])
	assert.Equal(t, false, m["has_wiki"])
	// default_branch is informational, not a patchable setting
	assert.NotContains(t, m, "default_branch")
}
