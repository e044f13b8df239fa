// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

// Package scaffold writes the local workspace files for a newly created
// repository: a JSON descriptor and a notes file.
package scaffold

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

var notesTemplate = `# Repository notes

This workspace was scaffolded by repo-factory for %s.

- Remote: %s
- Descriptor: .repo-factory.json

Clone the repository next to this file or point your editor at the remote
directly. Delete this file once you no longer need it.
`

// Descriptor is the fixed two-key schema written next to the notes file.
type Descriptor struct {
	Repository string `json:"repository"`
	URL        string `json:"url"`
}

// Write creates the workspace directory for fullName and writes the
// descriptor and notes files into it. Returns the workspace path.
func Write(baseDir, fullName, url string) (string, error) {
	dir := filepath.Join(baseDir, filepath.Base(fullName))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create workspace dir: %w", err)
	}

	descriptor := Descriptor{Repository: fullName, URL: url}
	data, err := json.MarshalIndent(descriptor, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal descriptor: %w", err)
	}
	descriptorPath := filepath.Join(dir, ".repo-factory.json")
	if err := os.WriteFile(descriptorPath, append(data, '\n'), 0644); err != nil {
		return "", fmt.Errorf("writing .repo-factory.json: %w", err)
	}

	notes := fmt.Sprintf(notesTemplate, fullName, url)
	notesPath := filepath.Join(dir, "NOTES.md")
	if err := os.WriteFile(notesPath, []byte(notes), 0644); err != nil {
		return "", fmt.Errorf("writing NOTES.md: %w", err)
	}

	return dir, nil
}
