// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

// Package validate holds the input validation rules for repository, issue and
// branch fields.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

const maxRepoNameLength = 100

var (
	repoNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
	branchPattern   = regexp.MustCompile(`^[A-Za-z0-9._/-]+$`)
)

// RepoName validates a repository name against the platform rules.
func RepoName(name string) error {
	if name == "" {
		return fmt.Errorf("repository name is required")
	}
	if len(name) > maxRepoNameLength {
		return fmt.Errorf("repository name must be at most %d characters", maxRepoNameLength)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%q is not a valid repository name", name)
	}
	if !repoNamePattern.MatchString(name) {
		return fmt.Errorf("repository name may only contain letters, digits, '.', '_' and '-'")
	}
	return nil
}

// SuggestRepoName derives a valid repository name from free text, e.g. a
// project title typed with spaces.
func SuggestRepoName(text string) string {
	return slug.Make(text)
}

// FullRepoName validates an owner/name identifier.
func FullRepoName(fullName string) error {
	owner, name, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" {
		return fmt.Errorf("expected owner/name, got %q", fullName)
	}
	return RepoName(name)
}

// IssueTitle validates an issue title.
func IssueTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("issue title is required")
	}
	return nil
}

// BranchName validates a branch name.
func BranchName(name string) error {
	if name == "" {
		return fmt.Errorf("branch name is required")
	}
	if strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") ||
		strings.Contains(name, "..") || strings.HasSuffix(name, ".lock") {
		return fmt.Errorf("%q is not a valid branch name", name)
	}
	if !branchPattern.MatchString(name) {
		return fmt.Errorf("branch name may only contain letters, digits, '.', '_', '-' and '/'")
	}
	return nil
}
