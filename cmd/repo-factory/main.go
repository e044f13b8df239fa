// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

// Command repo-factory drives GitHub repository lifecycle operations through
// a guided prompt flow backed by the gh CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jajera/vsx-github-repo-factory/internal/clierr"
)

var (
	// BuildTag is set during build
	BuildTag = "dev"
	// BuildDate is set during build
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "repo-factory",
	Short: "Create, modify and delete GitHub repositories interactively",
	Long: `repo-factory - guided GitHub repository lifecycle operations

repo-factory shells out to the GitHub CLI (gh) and walks you through a
multi-step prompt flow. It provides commands for:

  - Creating repositories (templates, README, license, first issue, branch)
  - Modifying repository settings by category
  - Deleting repositories with typed confirmation

Requires an installed and authenticated gh (run 'gh auth login').

Environment Variables:
  REPO_FACTORY_OWNER          Default repository owner (default: your account)
  REPO_FACTORY_VISIBILITY     Default visibility: public or private (default: private)
  REPO_FACTORY_GH_BINARY      gh executable to use (default: gh)
`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, clierr.Pretty(err))
		os.Exit(1)
	}
}

func init() {
	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("repo-factory version %s (built %s)\n", BuildTag, BuildDate)
		},
	})

	// Add completion command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for repo-factory.

Bash:
  $ source <(repo-factory completion bash)

Zsh:
  $ repo-factory completion zsh > "${fpath[1]}/_repo-factory"

Fish:
  $ repo-factory completion fish | source

PowerShell:
  PS> repo-factory completion powershell | Out-String | Invoke-Expression
`,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.ExactArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	})
}
