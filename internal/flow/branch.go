// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

package flow

import "fmt"

// BranchName combines an issue number and a base name into the branch to
// create. A zero issue number is treated as absent and leaves the name
// unprefixed.
func BranchName(issueNumber int, name string) string {
	if issueNumber <= 0 {
		return name
	}
	return fmt.Sprintf("%d-%s", issueNumber, name)
}
