// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/jajera/vsx-github-repo-factory/internal/flow"
	"github.com/jajera/vsx-github-repo-factory/internal/prompt"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [owner/name]",
	Short: "Delete a repository with typed confirmation",
	Long: `Delete a GitHub repository.

The flow picks a repository (skipped when one is given as an argument) and
requires typing its full name before deleting. Requires a gh token with the
delete_repo scope.

Examples:
  # Pick a repository interactively
  repo-factory delete

  # Delete a specific repository
  repo-factory delete octocat/hello-world
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cfg, logger, gh, err := setupFlow("delete")
		if err != nil {
			return err
		}
		defer logger.Close()

		preselected := ""
		if len(args) == 1 {
			preselected = args[0]
		}

		res, err := flow.NewDelete(gh, prompt.New(), cfg, logger).Run(ctx, preselected)
		if err == nil && res != nil {
			logger.Log("deleted %s", res.Repo)
		}
		return report(res, err)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
