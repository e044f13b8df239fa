// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/jajera/vsx-github-repo-factory/internal/flow"
	"github.com/jajera/vsx-github-repo-factory/internal/prompt"
)

var modifyCmd = &cobra.Command{
	Use:   "modify [owner/name]",
	Short: "Modify repository settings through the guided flow",
	Long: `Modify the settings of an existing repository.

The flow starts by picking a repository (skipped when one is given as an
argument) and a settings category: basic, features, pull requests, general,
or all. Each setting prompt presents the current remote value first, so
accepting every default sends no changes at all.

Examples:
  # Pick a repository interactively
  repo-factory modify

  # Modify a specific repository
  repo-factory modify octocat/hello-world
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cfg, logger, gh, err := setupFlow("modify")
		if err != nil {
			return err
		}
		defer logger.Close()

		preselected := ""
		if len(args) == 1 {
			preselected = args[0]
		}

		res, err := flow.NewModify(gh, prompt.New(), cfg, logger).Run(ctx, preselected)
		return report(res, err)
	},
}

func init() {
	rootCmd.AddCommand(modifyCmd)
}
