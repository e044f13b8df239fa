// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepoName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"simple", "demo", true},
		{"with separators", "my-repo.v2_final", true},
		{"empty", "", false},
		{"spaces", "my repo", false},
		{"slash", "octo/demo", false},
		{"dot", ".", false},
		{"dot dot", "..", false},
		{"leading dot allowed", ".github", true},
		{"too long", strings.Repeat("a", 101), false},
		{"max length", strings.Repeat("a", 100), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RepoName(tt.input)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestSuggestRepoName(t *testing.T) {
	assert.Equal(t, "my-cool-project", SuggestRepoName("My Cool Project"))
	assert.Equal(t, "hello-world", SuggestRepoName("  Hello,   World!  "))
}

func TestFullRepoName(t *testing.T) {
	assert.NoError(t, FullRepoName("octo/demo"))
	assert.Error(t, FullRepoName("demo"))
	assert.Error(t, FullRepoName("/demo"))
	assert.Error(t, FullRepoName("octo/"))
}

func TestIssueTitle(t *testing.T) {
	assert.NoError(t, IssueTitle("Add CI"))
	assert.Error(t, IssueTitle(""))
	assert.Error(t, IssueTitle("   "))
}

func TestBranchName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"simple", "feature", true},
		{"with slash", "feat/login", true},
		{"numbered", "5-feature", true},
		{"empty", "", false},
		{"leading slash", "/feature", false},
		{"trailing slash", "feature/", false},
		{"double dot", "a..b", false},
		{"lock suffix", "feature.lock", false},
		{"spaces", "my branch", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := BranchName(tt.input)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
