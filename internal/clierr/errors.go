// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

// Package clierr provides error classification and user-friendly error formatting for the CLI.
// It helps distinguish between different error types and provides actionable hints.
package clierr

import (
	"errors"
	"fmt"
	"strings"
)

// Common error types for CLI output.
const (
	TypeAuth       = "auth"       // gh not authenticated or token lacks scopes
	TypeNotFound   = "not_found"  // Repository or resource not found
	TypeNetwork    = "network"    // Connection/network errors
	TypeInternal   = "internal"   // Internal/unexpected errors
	TypeValidation = "validation" // Input validation errors
)

// ErrCancelled is returned when the user cancels a flow. It is distinct from
// failure: callers must not report it as an error, and must never return a
// partial result alongside it.
var ErrCancelled = errors.New("cancelled")

// IsAuthError checks if the error indicates a missing or rejected gh authentication.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not logged in") ||
		strings.Contains(msg, "authentication") ||
		strings.Contains(msg, "gh auth login") ||
		strings.Contains(msg, "bad credentials") ||
		strings.Contains(msg, "must have admin rights")
}

// IsNotFound checks if the error indicates a missing repository or resource.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") ||
		strings.Contains(msg, "could not resolve") ||
		strings.Contains(msg, "no repositories found") ||
		strings.Contains(msg, "http 404")
}

// IsNetworkError checks if the error is a connection/network error.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "network is unreachable") ||
		strings.Contains(msg, "dial tcp") ||
		strings.Contains(msg, "i/o timeout") ||
		strings.Contains(msg, "context deadline exceeded")
}

// ClassifyError determines the type of error for appropriate handling.
func ClassifyError(err error) string {
	if err == nil {
		return ""
	}
	if IsAuthError(err) {
		return TypeAuth
	}
	if IsNotFound(err) {
		return TypeNotFound
	}
	if IsNetworkError(err) {
		return TypeNetwork
	}
	return TypeInternal
}

// Pretty formats an error with a user-friendly message and actionable hints.
func Pretty(err error) string {
	if err == nil {
		return ""
	}

	errType := ClassifyError(err)
	baseMsg := err.Error()

	switch errType {
	case TypeAuth:
		return fmt.Sprintf("Not authenticated: %s\n\nHint: Authenticate the GitHub CLI first:\n"+
			"  - gh auth login\n"+
			"  - gh auth status to verify the active account and scopes", baseMsg)

	case TypeNotFound:
		return fmt.Sprintf("Not found: %s\n\nHint: Check the repository name and your access:\n"+
			"  - gh repo view <owner>/<name> to verify it exists\n"+
			"  - Private repositories require a token with the repo scope", baseMsg)

	case TypeNetwork:
		return fmt.Sprintf("Connection error: %s\n\nHint: Check your connectivity to github.com:\n"+
			"  - gh api rate_limit to verify API access\n"+
			"  - Check proxy settings if behind a corporate network", baseMsg)

	default:
		return fmt.Sprintf("Error: %s", baseMsg)
	}
}

// WrapWithHint wraps an error with an additional hint message.
func WrapWithHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w\n\nHint: %s", err, hint)
}

// Unwrap returns the underlying error, stripping any wrapper.
func Unwrap(err error) error {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}
