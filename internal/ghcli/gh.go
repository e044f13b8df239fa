// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

// Package ghcli wraps the GitHub CLI. Every remote operation shells out to
// the gh binary and parses its output; nothing here talks to the API
// directly.
package ghcli

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"sort"
	"strings"
)

// Runner executes one gh invocation and returns its combined output.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

type execRunner struct {
	bin string
}

func (r execRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.bin, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(output))
		if msg == "" {
			return nil, err
		}
		return nil, fmt.Errorf("%s", msg)
	}
	return output, nil
}

// Client exposes the repository lifecycle operations backed by gh.
type Client struct {
	run Runner
}

// NewClient returns a client shelling out to the given gh binary.
func NewClient(bin string) *Client {
	if bin == "" {
		bin = "gh"
	}
	return &Client{run: execRunner{bin: bin}}
}

// NewClientWithRunner returns a client with a custom runner. Used by tests.
func NewClientWithRunner(r Runner) *Client {
	return &Client{run: r}
}

// Installed reports whether the gh binary can be found.
func (c *Client) Installed() bool {
	if r, ok := c.run.(execRunner); ok {
		_, err := exec.LookPath(r.bin)
		return err == nil
	}
	return true
}

// AuthStatus verifies that gh is authenticated.
func (c *Client) AuthStatus(ctx context.Context) error {
	if _, err := c.run.Run(ctx, "auth", "status"); err != nil {
		return fmt.Errorf("not authenticated with GitHub. Run 'gh auth login' first.\n%w", err)
	}
	return nil
}

// CurrentUser returns the authenticated user's login, or an empty string when
// it cannot be determined.
func (c *Client) CurrentUser(ctx context.Context) (string, error) {
	output, err := c.run.Run(ctx, "api", "user")
	if err != nil {
		return "", fmt.Errorf("get current user: %w", err)
	}
	var user struct {
		Login string `json:"login"`
	}
	if err := json.Unmarshal(output, &user); err != nil {
		return "", fmt.Errorf("parse user: %w", err)
	}
	return user.Login, nil
}

// Organizations returns the logins of the organizations the user belongs to.
func (c *Client) Organizations(ctx context.Context) ([]string, error) {
	output, err := c.run.Run(ctx, "api", "user/orgs", "--paginate")
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	var orgs []struct {
		Login string `json:"login"`
	}
	if err := json.Unmarshal(output, &orgs); err != nil {
		return nil, fmt.Errorf("parse organizations: %w", err)
	}
	logins := make([]string, 0, len(orgs))
	for _, o := range orgs {
		logins = append(logins, o.Login)
	}
	return logins, nil
}

// RepoExists reports whether owner/name resolves to a repository the user can
// see.
func (c *Client) RepoExists(ctx context.Context, fullName string) (bool, error) {
	_, err := c.run.Run(ctx, "repo", "view", fullName, "--json", "name")
	if err == nil {
		return true, nil
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "could not resolve") || strings.Contains(msg, "not found") {
		return false, nil
	}
	return false, err
}

// CreateRepo creates a repository and returns its URL.
func (c *Client) CreateRepo(ctx context.Context, opts CreateRepoOptions) (string, error) {
	args := []string{"repo", "create", opts.FullName, "--" + opts.Visibility}
	if opts.Description != "" {
		args = append(args, "--description", opts.Description)
	}
	if opts.Template != "" {
		args = append(args, "--template", opts.Template)
	} else {
		if opts.AddReadme {
			args = append(args, "--add-readme")
		}
		if opts.License != "" {
			args = append(args, "--license", opts.License)
		}
	}

	output, err := c.run.Run(ctx, args...)
	if err != nil {
		return "", err
	}
	// gh prints the repository URL on success.
	url := strings.TrimSpace(string(output))
	if url == "" {
		url = "https://github.com/" + opts.FullName
	}
	return url, nil
}

// DeleteRepo deletes a repository. Requires the delete_repo scope.
func (c *Client) DeleteRepo(ctx context.Context, fullName string) error {
	_, err := c.run.Run(ctx, "repo", "delete", fullName, "--yes")
	return err
}

// ListRepos lists the repositories of owner, or of the authenticated user
// when owner is empty.
func (c *Client) ListRepos(ctx context.Context, owner string) ([]Repo, error) {
	args := []string{"repo", "list"}
	if owner != "" {
		args = append(args, owner)
	}
	args = append(args, "--json", "name,nameWithOwner,description,visibility", "--limit", "100")

	output, err := c.run.Run(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("list repositories: %w", err)
	}
	var repos []Repo
	if err := json.Unmarshal(output, &repos); err != nil {
		return nil, fmt.Errorf("parse repository list: %w", err)
	}
	// gh repo list reports visibility upper-case; settings use lower-case.
	for i := range repos {
		repos[i].Visibility = strings.ToLower(repos[i].Visibility)
	}
	return repos, nil
}

// GetSettings fetches the current settings of a repository.
func (c *Client) GetSettings(ctx context.Context, fullName string) (*Settings, error) {
	output, err := c.run.Run(ctx, "api", "repos/"+fullName)
	if err != nil {
		return nil, fmt.Errorf("get settings for %s: %w", fullName, err)
	}
	var settings Settings
	if err := json.Unmarshal(output, &settings); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &settings, nil
}

// PatchSettings applies the given setting changes. A key absent from the
// patch is never sent.
func (c *Client) PatchSettings(ctx context.Context, fullName string, patch map[string]any) error {
	if len(patch) == 0 {
		return nil
	}
	keys := make([]string, 0, len(patch))
	for key := range patch {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	args := []string{"api", "-X", "PATCH", "repos/" + fullName}
	for _, key := range keys {
		switch v := patch[key].(type) {
		case bool:
			args = append(args, "-F", fmt.Sprintf("%s=%t", key, v))
		default:
			args = append(args, "-f", fmt.Sprintf("%s=%v", key, v))
		}
	}
	if _, err := c.run.Run(ctx, args...); err != nil {
		return fmt.Errorf("patch settings for %s: %w", fullName, err)
	}
	return nil
}

// CreateIssue opens an issue and returns its number and URL.
func (c *Client) CreateIssue(ctx context.Context, fullName, title, body string) (*Issue, error) {
	args := []string{"api", "-X", "POST", "repos/" + fullName + "/issues", "-f", "title=" + title}
	if body != "" {
		args = append(args, "-f", "body="+body)
	}
	output, err := c.run.Run(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("create issue: %w", err)
	}
	var issue Issue
	if err := json.Unmarshal(output, &issue); err != nil {
		return nil, fmt.Errorf("parse issue: %w", err)
	}
	return &issue, nil
}

// CreateBranch creates a branch off the default branch. When issueNumber is
// set the branch is linked to the issue via gh issue develop; otherwise it is
// created directly through the git refs API.
func (c *Client) CreateBranch(ctx context.Context, fullName, branch string, issueNumber int) error {
	if issueNumber > 0 {
		_, err := c.run.Run(ctx, "issue", "develop", fmt.Sprintf("%d", issueNumber),
			"--repo", fullName, "--name", branch)
		if err != nil {
			return fmt.Errorf("create linked branch: %w", err)
		}
		return nil
	}

	settings, err := c.GetSettings(ctx, fullName)
	if err != nil {
		return err
	}
	defaultBranch := settings.DefaultBranch
	if defaultBranch == "" {
		defaultBranch = "main"
	}

	output, err := c.run.Run(ctx, "api", "repos/"+fullName+"/git/ref/heads/"+defaultBranch)
	if err != nil {
		return fmt.Errorf("resolve %s head: %w", defaultBranch, err)
	}
	var ref struct {
		Object struct {
			SHA string `json:"sha"`
		} `json:"object"`
	}
	if err := json.Unmarshal(output, &ref); err != nil {
		return fmt.Errorf("parse ref: %w", err)
	}

	_, err = c.run.Run(ctx, "api", "-X", "POST", "repos/"+fullName+"/git/refs",
		"-f", "ref=refs/heads/"+branch, "-f", "sha="+ref.Object.SHA)
	if err != nil {
		return fmt.Errorf("create branch %s: %w", branch, err)
	}
	return nil
}
