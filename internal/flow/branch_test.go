// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBranchName(t *testing.T) {
	assert.Equal(t, "5-feature", BranchName(5, "feature"))
	assert.Equal(t, "feature", BranchName(0, "feature"))
	assert.Equal(t, "feature", BranchName(-1, "feature"))
	assert.Equal(t, "12-fix-login", BranchName(12, "fix-login"))
}
