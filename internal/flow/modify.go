// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"fmt"
	"sort"

	"github.com/jajera/vsx-github-repo-factory/internal/config"
	"github.com/jajera/vsx-github-repo-factory/internal/ghcli"
	"github.com/jajera/vsx-github-repo-factory/internal/prompt"
	"github.com/jajera/vsx-github-repo-factory/internal/validate"
	"github.com/jajera/vsx-github-repo-factory/internal/wizard"
)

var categories = []prompt.Item{
	{Label: "Basic", Value: wizard.CategoryBasic, Detail: "description, homepage, visibility"},
	{Label: "Features", Value: wizard.CategoryFeatures, Detail: "issues, projects, wiki, discussions"},
	{Label: "Pull Requests", Value: wizard.CategoryPR, Detail: "merge strategies, branch cleanup"},
	{Label: "General", Value: wizard.CategoryGeneral, Detail: "auto-merge, branch updates, signoff"},
	{Label: "All", Value: wizard.CategoryAll, Detail: "every setting"},
}

// Modify drives the repository settings modification flow.
type Modify struct {
	gh       *ghcli.Client
	prompter wizard.Prompter
	cfg      *config.Config
	logger   *Logger
}

// NewModify returns the modification flow.
func NewModify(gh *ghcli.Client, p wizard.Prompter, cfg *config.Config, logger *Logger) *Modify {
	return &Modify{gh: gh, prompter: p, cfg: cfg, logger: logger}
}

// Run executes the modification flow. When preselected is non-empty the
// repository selection step is skipped.
func (f *Modify) Run(ctx context.Context, preselected string) (*Result, error) {
	if !f.gh.Installed() {
		return nil, fmt.Errorf("gh executable not found")
	}
	if err := f.gh.AuthStatus(ctx); err != nil {
		return nil, err
	}

	state := wizard.NewState()
	if preselected != "" {
		if err := validate.FullRepoName(preselected); err != nil {
			return nil, err
		}
		state.Repo = preselected
		state.Preselected = true
		if err := f.loadSettings(ctx, state); err != nil {
			return nil, err
		}
	}

	engine := wizard.NewEngine(f.buildFlow(), f.prompter, state)
	opts, err := engine.Run(ctx)
	if err != nil {
		return nil, err
	}

	f.logger.LogOptions(opts)
	return f.execute(ctx, opts)
}

// loadSettings fetches the live settings so prompts can present the current
// remote value first and active.
func (f *Modify) loadSettings(ctx context.Context, s *wizard.State) error {
	settings, err := f.gh.GetSettings(ctx, s.Repo)
	if err != nil {
		return err
	}
	s.Current = settings.Map()
	return nil
}

// buildFlow wires the modification flow steps. The category step determines
// the whole rest of the sequence; backing out of a settings sub-flow's first
// step reverts every pending change.
func (f *Modify) buildFlow() *wizard.Flow {
	fl := &wizard.Flow{
		Name:     "modify",
		Order:    wizard.ModifyOrder,
		Sequence: wizard.ComputeModifySequence,
		Handlers: map[wizard.Step]wizard.Handler{
			wizard.ModStepSelectRepo: f.selectRepoHandler(),
			wizard.ModStepCategory: func(ctx context.Context, p wizard.Prompter, s *wizard.State) error {
				active := 0
				for i, item := range categories {
					if item.Value == s.Category {
						active = i
					}
				}
				item, err := p.Select(ctx, prompt.SelectRequest{
					Title:       "What do you want to change?",
					Placeholder: s.Repo,
					Items:       categories,
					ActiveIndex: active,
					WithBack:    !s.Preselected,
				})
				if err != nil {
					return err
				}
				s.Category = item.Value
				return nil
			},

			wizard.ModStepDescription: f.stringSetting(wizard.ModStepDescription),
			wizard.ModStepHomepage:    f.stringSetting(wizard.ModStepHomepage),
			wizard.ModStepVisibility: func(ctx context.Context, p wizard.Prompter, s *wizard.State) error {
				key := wizard.SettingKeys[wizard.ModStepVisibility]
				current := s.CurrentString(key)
				items := []prompt.Item{
					{Label: "Private", Value: "private"},
					{Label: "Public", Value: "public"},
				}
				if current == "public" {
					items[0], items[1] = items[1], items[0]
				}
				item, err := p.Select(ctx, prompt.SelectRequest{
					Title:    settingLabel(key),
					Items:    items,
					WithBack: true,
				})
				if err != nil {
					return err
				}
				s.SetSetting(key, item.Value)
				return nil
			},

			wizard.ModStepConfirm: func(ctx context.Context, p wizard.Prompter, s *wizard.State) error {
				_, err := p.Select(ctx, prompt.SelectRequest{
					Title:       "Apply changes to " + s.Repo + "?",
					Placeholder: patchSummary(s.Patch),
					Items:       []prompt.Item{{Label: "Apply", Value: "apply"}},
					WithBack:    true,
				})
				if err != nil {
					return err
				}
				s.Confirmed = true
				return nil
			},
		},
		OnRewind: func(from, to wizard.Step, s *wizard.State) {
			// Exiting a settings sub-flow through its first step reverts to
			// no-settings-change rather than leaving a partial patch.
			if to == wizard.ModStepCategory || to == wizard.ModStepSelectRepo {
				s.ClearPatch()
			}
		},
	}

	for step := range wizard.SettingKeys {
		if _, done := fl.Handlers[step]; done {
			continue
		}
		fl.Handlers[step] = f.boolSetting(step)
	}

	return fl
}

// selectRepoHandler presents the repository picker and loads the selection's
// settings.
func (f *Modify) selectRepoHandler() wizard.Handler {
	return func(ctx context.Context, p wizard.Prompter, s *wizard.State) error {
		repos, err := f.gh.ListRepos(ctx, f.cfg.Owner)
		if err != nil {
			return err
		}
		if len(repos) == 0 {
			return fmt.Errorf("no repositories found")
		}
		items := make([]prompt.Item, 0, len(repos))
		active := 0
		for i, repo := range repos {
			if repo.FullName == s.Repo {
				active = i
			}
			items = append(items, prompt.Item{
				Label:  repo.FullName,
				Value:  repo.FullName,
				Detail: repo.Visibility,
			})
		}
		item, err := p.Select(ctx, prompt.SelectRequest{
			Title:       "Repository",
			Placeholder: "Which repository do you want to modify?",
			Items:       items,
			ActiveIndex: active,
		})
		if err != nil {
			return err
		}
		if item.Value != s.Repo {
			s.Repo = item.Value
			s.ClearPatch()
			if err := f.loadSettings(ctx, s); err != nil {
				return err
			}
		}
		return nil
	}
}

// stringSetting prompts for a free-text setting pre-populated with the
// current remote value.
func (f *Modify) stringSetting(step wizard.Step) wizard.Handler {
	key := wizard.SettingKeys[step]
	return func(ctx context.Context, p wizard.Prompter, s *wizard.State) error {
		value, err := p.Input(ctx, prompt.InputRequest{
			Title:       settingLabel(key),
			Placeholder: "leave empty to clear",
			Default:     s.CurrentString(key),
		})
		if err != nil {
			return err
		}
		s.SetSetting(key, value)
		return nil
	}
}

// boolSetting prompts for a boolean setting with the current remote value
// first and active, so accepting the default produces no change.
func (f *Modify) boolSetting(step wizard.Step) wizard.Handler {
	key := wizard.SettingKeys[step]
	return func(ctx context.Context, p wizard.Prompter, s *wizard.State) error {
		item, err := p.Select(ctx, prompt.SelectRequest{
			Title:    settingLabel(key),
			Items:    boolItems(s.CurrentBool(key)),
			WithBack: true,
		})
		if err != nil {
			return err
		}
		s.SetSetting(key, item.Value == "true")
		return nil
	}
}

// patchSummary renders the pending changes for the confirmation step.
func patchSummary(patch wizard.Patch) string {
	if len(patch) == 0 {
		return "no changes"
	}
	keys := make([]string, 0, len(patch))
	for key := range patch {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	summary := ""
	for i, key := range keys {
		if i > 0 {
			summary += " · "
		}
		summary += fmt.Sprintf("%s=%v", key, patch[key])
	}
	return summary
}

// execute sends the accumulated patch. An empty patch produces no remote
// call.
func (f *Modify) execute(ctx context.Context, opts wizard.Options) (*Result, error) {
	res := &Result{Repo: opts.Repo}
	if len(opts.Patch) == 0 {
		f.logger.Log("no changes")
		f.logger.LogResult(res, nil)
		return res, nil
	}

	if err := f.gh.PatchSettings(ctx, opts.Repo, opts.Patch); err != nil {
		f.logger.LogResult(res, err)
		return nil, err
	}
	for key := range opts.Patch {
		res.Patched = append(res.Patched, key)
	}
	sort.Strings(res.Patched)
	f.logger.LogResult(res, nil)
	return res, nil
}
