// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/jajera/vsx-github-repo-factory/internal/clierr"
	"github.com/jajera/vsx-github-repo-factory/internal/config"
	"github.com/jajera/vsx-github-repo-factory/internal/ghcli"
	"github.com/jajera/vsx-github-repo-factory/internal/prompt"
	"github.com/jajera/vsx-github-repo-factory/internal/validate"
	"github.com/jajera/vsx-github-repo-factory/internal/wizard"
)

// Delete drives the repository deletion flow: pick a repository, confirm by
// typing its full name, delete.
type Delete struct {
	gh       *ghcli.Client
	prompter wizard.Prompter
	cfg      *config.Config
	logger   *Logger
}

// NewDelete returns the deletion flow.
func NewDelete(gh *ghcli.Client, p wizard.Prompter, cfg *config.Config, logger *Logger) *Delete {
	return &Delete{gh: gh, prompter: p, cfg: cfg, logger: logger}
}

// Run executes the deletion flow. When preselected is non-empty the
// repository picker is skipped.
func (f *Delete) Run(ctx context.Context, preselected string) (*Result, error) {
	if !f.gh.Installed() {
		return nil, fmt.Errorf("gh executable not found")
	}
	if err := f.gh.AuthStatus(ctx); err != nil {
		return nil, err
	}

	repo := preselected
	if repo != "" {
		if err := validate.FullRepoName(repo); err != nil {
			return nil, err
		}
	}

	for {
		if repo == "" {
			selected, err := f.pickRepo(ctx)
			if err != nil {
				return nil, err
			}
			repo = selected
		}

		confirmed, err := f.confirm(ctx, repo)
		if err != nil {
			return nil, err
		}
		if confirmed {
			break
		}
		// Backed out of the confirmation: return to the picker, or cancel
		// when the repository was preselected.
		if preselected != "" {
			return nil, clierr.ErrCancelled
		}
		repo = ""
	}

	f.logger.Log("deleting %s", repo)
	if err := f.gh.DeleteRepo(ctx, repo); err != nil {
		f.logger.LogResult(nil, err)
		return nil, err
	}

	res := &Result{Repo: repo}
	f.logger.LogResult(res, nil)
	return res, nil
}

func (f *Delete) pickRepo(ctx context.Context) (string, error) {
	repos, err := f.gh.ListRepos(ctx, f.cfg.Owner)
	if err != nil {
		return "", err
	}
	if len(repos) == 0 {
		return "", fmt.Errorf("no repositories found")
	}

	items := make([]prompt.Item, 0, len(repos))
	for _, repo := range repos {
		items = append(items, prompt.Item{
			Label:  repo.FullName,
			Value:  repo.FullName,
			Detail: repo.Visibility,
		})
	}
	item, err := f.prompter.Select(ctx, prompt.SelectRequest{
		Title:       "Delete repository",
		Placeholder: "This cannot be undone",
		Items:       items,
	})
	if err != nil {
		// The picker is the first step; backing out cancels the flow.
		return "", clierr.ErrCancelled
	}
	return item.Value, nil
}

// confirm asks the user to type the full repository name. Returns false when
// the user backs out.
func (f *Delete) confirm(ctx context.Context, repo string) (bool, error) {
	_, err := f.prompter.Input(ctx, prompt.InputRequest{
		Title:       fmt.Sprintf("Type %q to confirm deletion", repo),
		Placeholder: repo,
		Validate: func(v string) error {
			if v != repo {
				return fmt.Errorf("does not match %s", repo)
			}
			return nil
		},
	})
	if errors.Is(err, prompt.ErrBack) {
		return false, nil
	}
	if err != nil {
		return false, clierr.ErrCancelled
	}
	return true, nil
}
