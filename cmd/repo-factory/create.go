// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jajera/vsx-github-repo-factory/internal/clierr"
	"github.com/jajera/vsx-github-repo-factory/internal/config"
	"github.com/jajera/vsx-github-repo-factory/internal/flow"
	"github.com/jajera/vsx-github-repo-factory/internal/ghcli"
	"github.com/jajera/vsx-github-repo-factory/internal/prompt"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a repository through the guided flow",
	Long: `Create a GitHub repository through a multi-step prompt flow.

The flow collects owner, name, description, visibility, an optional template
(or README and license), an optional first issue with a linked working branch,
and an optional local workspace. Nothing is created until you confirm the
summary at the end; cancelling after creation offers to delete the repository
again.

Examples:
  # Run the guided creation flow
  repo-factory create
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cfg, logger, gh, err := setupFlow("create")
		if err != nil {
			return err
		}
		defer logger.Close()

		res, err := flow.NewCreate(gh, prompt.New(), cfg, logger).Run(ctx)
		return report(res, err)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}

// setupFlow prepares the shared flow environment: configuration, flow log,
// gh client, and a context cancelled by interrupt.
func setupFlow(command string) (context.Context, *config.Config, *flow.Logger, *ghcli.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, nil, err
	}

	logger, err := flow.NewLogger(command)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt)
	return ctx, cfg, logger, ghcli.NewClient(cfg.GHBinary), nil
}

// report prints the flow outcome: a single aggregated warning when the
// primary action succeeded with non-fatal stage failures, a plain line on
// cancellation, and the error itself otherwise.
func report(res *flow.Result, err error) error {
	if err != nil {
		if errors.Is(err, clierr.ErrCancelled) {
			fmt.Println("Cancelled.")
			return nil
		}
		return err
	}

	if res.URL != "" {
		fmt.Printf("✓ %s\n", res.URL)
	} else if res.Repo != "" {
		fmt.Printf("✓ %s\n", res.Repo)
	}
	if res.IssueNumber > 0 {
		fmt.Printf("  issue #%d: %s\n", res.IssueNumber, res.IssueURL)
	}
	if res.Branch != "" {
		fmt.Printf("  branch: %s\n", res.Branch)
	}
	if len(res.Patched) > 0 {
		fmt.Printf("  updated: %s\n", strings.Join(res.Patched, ", "))
	}
	if res.WorkspaceDir != "" {
		fmt.Printf("  workspace: %s\n", res.WorkspaceDir)
	}

	if len(res.Errors) > 0 {
		fmt.Printf("\n⚠ %d step(s) did not complete:\n", len(res.Errors))
		for _, e := range res.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}
	return nil
}
