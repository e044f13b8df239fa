// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

package clierr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "gh not logged in",
			err:      errors.New("You are not logged in to any GitHub hosts. Run gh auth login to authenticate."),
			expected: true,
		},
		{
			name:     "bad credentials",
			err:      errors.New("HTTP 401: Bad credentials"),
			expected: true,
		},
		{
			name:     "regular error",
			err:      errors.New("something went wrong"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsAuthError(tt.err)
			if got != tt.expected {
				t.Errorf("IsAuthError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "gh repo view missing repo",
			err:      errors.New("GraphQL: Could not resolve to a Repository with the name 'octocat/missing'."),
			expected: true,
		},
		{
			name:     "api 404",
			err:      errors.New("HTTP 404: Not Found (https://api.github.com/repos/octocat/missing)"),
			expected: true,
		},
		{
			name:     "regular error",
			err:      errors.New("boom"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsNotFound(tt.err)
			if got != tt.expected {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsNetworkError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "connection refused",
			err:      errors.New("dial tcp 140.82.113.4:443: connection refused"),
			expected: true,
		},
		{
			name:     "no such host",
			err:      errors.New("dial tcp: lookup api.github.com: no such host"),
			expected: true,
		},
		{
			name:     "regular error",
			err:      errors.New("invalid input"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsNetworkError(tt.err)
			if got != tt.expected {
				t.Errorf("IsNetworkError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, ""},
		{"auth", errors.New("gh auth login required"), TypeAuth},
		{"not found", errors.New("HTTP 404: Not Found"), TypeNotFound},
		{"network", errors.New("i/o timeout"), TypeNetwork},
		{"internal", errors.New("unexpected"), TypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyError(tt.err); got != tt.expected {
				t.Errorf("ClassifyError() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPretty(t *testing.T) {
	if got := Pretty(nil); got != "" {
		t.Errorf("Pretty(nil) = %q, want empty", got)
	}

	authMsg := Pretty(errors.New("You are not logged in to any GitHub hosts"))
	if !strings.Contains(authMsg, "gh auth login") {
		t.Errorf("Pretty(auth) missing hint: %q", authMsg)
	}

	nfMsg := Pretty(errors.New("HTTP 404: Not Found"))
	if !strings.Contains(nfMsg, "gh repo view") {
		t.Errorf("Pretty(not found) missing hint: %q", nfMsg)
	}

	plain := Pretty(errors.New("boom"))
	if plain != "Error: boom" {
		t.Errorf("Pretty(internal) = %q", plain)
	}
}

func TestWrapWithHint(t *testing.T) {
	if WrapWithHint(nil, "hint") != nil {
		t.Error("WrapWithHint(nil) should be nil")
	}

	base := errors.New("base failure")
	wrapped := WrapWithHint(base, "try again")
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should unwrap to base")
	}
	if !strings.Contains(wrapped.Error(), "Hint: try again") {
		t.Errorf("wrapped error missing hint: %q", wrapped.Error())
	}
}

func TestUnwrap(t *testing.T) {
	base := errors.New("base")
	double := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", base))
	if got := Unwrap(double); got != base {
		t.Errorf("Unwrap() = %v, want %v", got, base)
	}
	if got := Unwrap(base); got != base {
		t.Errorf("Unwrap(base) = %v, want %v", got, base)
	}
}
