// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"fmt"
	"strings"

	"github.com/jajera/vsx-github-repo-factory/internal/clierr"
	"github.com/jajera/vsx-github-repo-factory/internal/config"
	"github.com/jajera/vsx-github-repo-factory/internal/ghcli"
	"github.com/jajera/vsx-github-repo-factory/internal/prompt"
	"github.com/jajera/vsx-github-repo-factory/internal/scaffold"
	"github.com/jajera/vsx-github-repo-factory/internal/validate"
	"github.com/jajera/vsx-github-repo-factory/internal/wizard"
)

// Licenses offered by the create flow. The empty keyword means no license.
var licenses = []prompt.Item{
	{Label: "None", Value: ""},
	{Label: "MIT License", Value: "mit"},
	{Label: "Apache License 2.0", Value: "apache-2.0"},
	{Label: "GNU GPLv3", Value: "gpl-3.0"},
	{Label: "BSD 3-Clause", Value: "bsd-3-clause"},
	{Label: "The Unlicense", Value: "unlicense"},
}

// Create drives the repository creation flow.
type Create struct {
	gh       *ghcli.Client
	prompter wizard.Prompter
	cfg      *config.Config
	logger   *Logger
	tracker  *wizard.Tracker
}

// NewCreate returns the creation flow.
func NewCreate(gh *ghcli.Client, p wizard.Prompter, cfg *config.Config, logger *Logger) *Create {
	return &Create{gh: gh, prompter: p, cfg: cfg, logger: logger, tracker: &wizard.Tracker{}}
}

// Run executes the creation flow end to end: preconditions, wizard,
// then the remote operations in fixed order. Returns clierr.ErrCancelled when
// the user cancels; a rollback offer is made when the repository was already
// created by then.
func (f *Create) Run(ctx context.Context) (*Result, error) {
	if !f.gh.Installed() {
		return nil, clierr.WrapWithHint(fmt.Errorf("gh executable not found"),
			"Install the GitHub CLI from https://cli.github.com and run 'gh auth login'.")
	}
	if err := f.gh.AuthStatus(ctx); err != nil {
		return nil, err
	}

	owners, err := f.ownerChoices(ctx)
	if err != nil {
		return nil, err
	}

	state := wizard.NewState()
	state.Owner = f.cfg.Owner
	state.Visibility = f.cfg.Visibility
	state.License = f.cfg.License
	state.AddReadme = true

	engine := wizard.NewEngine(f.buildFlow(owners), f.prompter, state)
	opts, err := engine.Run(ctx)
	if err != nil {
		return nil, err
	}

	f.logger.LogOptions(opts)
	return f.execute(ctx, opts)
}

// ownerChoices returns the authenticated user followed by their
// organizations.
func (f *Create) ownerChoices(ctx context.Context) ([]prompt.Item, error) {
	user, err := f.gh.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	items := []prompt.Item{{Label: user, Value: user, Detail: "personal account"}}

	orgs, err := f.gh.Organizations(ctx)
	if err != nil {
		// Organizations are optional; the personal account always works.
		f.logger.Log("warning: list organizations: %v", err)
		return items, nil
	}
	for _, org := range orgs {
		items = append(items, prompt.Item{Label: org, Value: org, Detail: "organization"})
	}
	return items, nil
}

// buildFlow wires the creation flow steps to their prompts.
func (f *Create) buildFlow(owners []prompt.Item) *wizard.Flow {
	cfg := f.cfg

	return &wizard.Flow{
		Name:     "create",
		Order:    wizard.CreateOrder,
		Sequence: wizard.ComputeCreateSequence,
		Handlers: map[wizard.Step]wizard.Handler{
			wizard.StepOwner: func(ctx context.Context, p wizard.Prompter, s *wizard.State) error {
				active := 0
				for i, item := range owners {
					if item.Value == s.Owner {
						active = i
					}
				}
				item, err := p.Select(ctx, prompt.SelectRequest{
					Title:       "Repository owner",
					Placeholder: "Where should the repository live?",
					Items:       owners,
					ActiveIndex: active,
				})
				if err != nil {
					return err
				}
				s.Owner = item.Value
				return nil
			},

			wizard.StepName: func(ctx context.Context, p wizard.Prompter, s *wizard.State) error {
				name, err := p.Input(ctx, prompt.InputRequest{
					Title:       "Repository name",
					Placeholder: "my-new-repo",
					Default:     s.Name,
					Validate: func(v string) error {
						if err := validate.RepoName(v); err != nil {
							if suggestion := validate.SuggestRepoName(v); suggestion != "" && suggestion != v {
								return fmt.Errorf("%s (try %q)", err, suggestion)
							}
							return err
						}
						return nil
					},
				})
				if err != nil {
					return err
				}
				s.Name = name
				return nil
			},

			wizard.StepDescription: func(ctx context.Context, p wizard.Prompter, s *wizard.State) error {
				desc, err := p.Input(ctx, prompt.InputRequest{
					Title:       "Description",
					Placeholder: "optional",
					Default:     s.Description,
				})
				if err != nil {
					return err
				}
				s.Description = desc
				return nil
			},

			wizard.StepVisibility: func(ctx context.Context, p wizard.Prompter, s *wizard.State) error {
				items := []prompt.Item{
					{Label: "Private", Value: "private"},
					{Label: "Public", Value: "public"},
				}
				active := 0
				if s.Visibility == "public" {
					active = 1
				}
				item, err := p.Select(ctx, prompt.SelectRequest{
					Title:       "Visibility",
					Items:       items,
					ActiveIndex: active,
					WithBack:    true,
				})
				if err != nil {
					return err
				}
				s.Visibility = item.Value
				return nil
			},

			wizard.StepUseTemplate: func(ctx context.Context, p wizard.Prompter, s *wizard.State) error {
				item, err := p.Select(ctx, prompt.SelectRequest{
					Title:       "Start from a template repository?",
					Items:       yesNoItems(s.UseTemplate),
					WithBack:    true,
				})
				if err != nil {
					return err
				}
				s.UseTemplate = item.Value == "yes"
				return nil
			},

			wizard.StepTemplateName: func(ctx context.Context, p wizard.Prompter, s *wizard.State) error {
				tmpl, err := p.Input(ctx, prompt.InputRequest{
					Title:       "Template repository",
					Placeholder: "owner/template-repo",
					Default:     s.Template,
					Validate:    validate.FullRepoName,
				})
				if err != nil {
					return err
				}
				s.Template = tmpl
				return nil
			},

			wizard.StepAddReadme: func(ctx context.Context, p wizard.Prompter, s *wizard.State) error {
				item, err := p.Select(ctx, prompt.SelectRequest{
					Title:    "Initialize with a README?",
					Items:    yesNoItems(s.AddReadme),
					WithBack: true,
				})
				if err != nil {
					return err
				}
				s.AddReadme = item.Value == "yes"
				return nil
			},

			wizard.StepLicense: func(ctx context.Context, p wizard.Prompter, s *wizard.State) error {
				active := 0
				for i, item := range licenses {
					if item.Value == s.License {
						active = i
					}
				}
				item, err := p.Select(ctx, prompt.SelectRequest{
					Title:       "License",
					Items:       licenses,
					ActiveIndex: active,
					WithBack:    true,
				})
				if err != nil {
					return err
				}
				s.License = item.Value
				return nil
			},

			wizard.StepCreateIssue: func(ctx context.Context, p wizard.Prompter, s *wizard.State) error {
				item, err := p.Select(ctx, prompt.SelectRequest{
					Title:    "Create a first issue?",
					Items:    yesNoItems(s.CreateIssue),
					WithBack: true,
				})
				if err != nil {
					return err
				}
				s.CreateIssue = item.Value == "yes"
				if !s.CreateIssue {
					// Branch linking is only offered when an issue exists.
					s.CreateBranch = false
				}
				return nil
			},

			wizard.StepIssueTitle: func(ctx context.Context, p wizard.Prompter, s *wizard.State) error {
				title, err := p.Input(ctx, prompt.InputRequest{
					Title:    "Issue title",
					Default:  s.IssueTitle,
					Validate: validate.IssueTitle,
				})
				if err != nil {
					return err
				}
				s.IssueTitle = title
				return nil
			},

			wizard.StepIssueBody: func(ctx context.Context, p wizard.Prompter, s *wizard.State) error {
				body, err := p.Input(ctx, prompt.InputRequest{
					Title:       "Issue body",
					Placeholder: "optional",
					Default:     s.IssueBody,
				})
				if err != nil {
					return err
				}
				s.IssueBody = body
				return nil
			},

			wizard.StepCreateBranch: func(ctx context.Context, p wizard.Prompter, s *wizard.State) error {
				item, err := p.Select(ctx, prompt.SelectRequest{
					Title:    "Create a working branch linked to the issue?",
					Items:    yesNoItems(s.CreateBranch),
					WithBack: true,
				})
				if err != nil {
					return err
				}
				s.CreateBranch = item.Value == "yes"
				return nil
			},

			wizard.StepBranchName: func(ctx context.Context, p wizard.Prompter, s *wizard.State) error {
				suggestion := s.BranchName
				if suggestion == "" {
					suggestion = validate.SuggestRepoName(s.IssueTitle)
				}
				name, err := p.Input(ctx, prompt.InputRequest{
					Title:       "Branch name",
					Placeholder: "feature",
					Default:     suggestion,
					Validate:    validate.BranchName,
				})
				if err != nil {
					return err
				}
				s.BranchName = name
				return nil
			},

			wizard.StepWorkspace: func(ctx context.Context, p wizard.Prompter, s *wizard.State) error {
				item, err := p.Select(ctx, prompt.SelectRequest{
					Title:    "Scaffold a local workspace?",
					Items:    yesNoItems(s.Workspace),
					WithBack: true,
				})
				if err != nil {
					return err
				}
				s.Workspace = item.Value == "yes"
				return nil
			},

			wizard.StepConfirm: func(ctx context.Context, p wizard.Prompter, s *wizard.State) error {
				_, err := p.Select(ctx, prompt.SelectRequest{
					Title:       fmt.Sprintf("Create %s/%s?", s.Owner, s.Name),
					Placeholder: summarize(s),
					Items:       []prompt.Item{{Label: "Create repository", Value: "create"}},
					WithBack:    true,
				})
				if err != nil {
					return err
				}
				s.Confirmed = true
				return nil
			},
		},
		Clearers: map[wizard.Step]func(*wizard.State){
			wizard.StepTemplateName: func(s *wizard.State) { s.Template = "" },
			wizard.StepAddReadme:    func(s *wizard.State) { s.AddReadme = true },
			wizard.StepLicense:      func(s *wizard.State) { s.License = cfg.License },
			wizard.StepIssueTitle:   func(s *wizard.State) { s.IssueTitle = "" },
			wizard.StepIssueBody:    func(s *wizard.State) { s.IssueBody = "" },
			wizard.StepCreateBranch: func(s *wizard.State) { s.CreateBranch = false },
			wizard.StepBranchName:   func(s *wizard.State) { s.BranchName = "" },
		},
	}
}

// summarize renders the collected options for the confirmation step.
func summarize(s *wizard.State) string {
	var lines []string
	lines = append(lines, "visibility: "+s.Visibility)
	if s.Template != "" {
		lines = append(lines, "template: "+s.Template)
	} else {
		lines = append(lines, fmt.Sprintf("readme: %v, license: %s", s.AddReadme, orNone(s.License)))
	}
	if s.CreateIssue {
		lines = append(lines, "issue: "+s.IssueTitle)
		if s.CreateBranch {
			lines = append(lines, "branch: "+s.BranchName)
		}
	}
	if s.Workspace {
		lines = append(lines, "workspace: yes")
	}
	return strings.Join(lines, " · ")
}

func orNone(v string) string {
	if v == "" {
		return "none"
	}
	return v
}

// execute runs the remote operations in strict order: existence check,
// create, settings patch, issue, branch, workspace. Only the create step is
// fatal; other failures accumulate. Cancellation always takes precedence and
// triggers the rollback offer once the repository exists.
func (f *Create) execute(ctx context.Context, opts wizard.Options) (*Result, error) {
	fullName := opts.FullName()
	res := &Result{Repo: fullName}

	f.logger.Section("EXECUTE")

	exists, err := f.gh.RepoExists(ctx, fullName)
	if err != nil {
		res.Fail("existence check", err)
	} else if exists {
		return nil, fmt.Errorf("repository %s already exists", fullName)
	}

	if err := f.cancelled(ctx, res); err != nil {
		return nil, err
	}

	url, err := f.gh.CreateRepo(ctx, ghcli.CreateRepoOptions{
		FullName:    fullName,
		Visibility:  opts.Visibility,
		Description: opts.Description,
		Template:    opts.Template,
		AddReadme:   opts.AddReadme,
		License:     opts.License,
	})
	if err != nil {
		f.logger.Log("create failed: %v", err)
		return nil, fmt.Errorf("create repository: %w", err)
	}
	f.tracker.MarkCreated(fullName)
	res.URL = url
	f.logger.Log("created %s", url)

	if err := f.cancelled(ctx, res); err != nil {
		return nil, err
	}

	if err := f.gh.PatchSettings(ctx, fullName, opts.Patch); err != nil {
		res.Fail("settings patch", err)
	}

	issueNumber := 0
	if opts.CreateIssue {
		if err := f.cancelled(ctx, res); err != nil {
			return nil, err
		}
		issue, err := f.gh.CreateIssue(ctx, fullName, opts.IssueTitle, opts.IssueBody)
		if err != nil {
			res.Fail("issue", err)
		} else {
			issueNumber = issue.Number
			res.IssueNumber = issue.Number
			res.IssueURL = issue.URL
			f.logger.Log("issue #%d created", issue.Number)
		}
	}

	if opts.CreateBranch {
		if err := f.cancelled(ctx, res); err != nil {
			return nil, err
		}
		branch := BranchName(issueNumber, opts.BranchName)
		if err := f.gh.CreateBranch(ctx, fullName, branch, issueNumber); err != nil {
			res.Fail("branch", err)
		} else {
			res.Branch = branch
			f.logger.Log("branch %s created", branch)
		}
	}

	if opts.Workspace {
		if err := f.cancelled(ctx, res); err != nil {
			return nil, err
		}
		dir, err := scaffold.Write(f.cfg.WorkspaceDir, fullName, res.URL)
		if err != nil {
			res.Fail("workspace", err)
		} else {
			res.WorkspaceDir = dir
			f.logger.Log("workspace scaffolded at %s", dir)
		}
	}

	f.logger.LogResult(res, nil)
	return res, nil
}

// cancelled checks the cancellation signal between stages. Once observed it
// offers rollback for an already-created repository and aborts the flow.
func (f *Create) cancelled(ctx context.Context, res *Result) error {
	if ctx.Err() == nil {
		return nil
	}
	f.logger.Log("cancelled")

	// The flow context is already dead; the rollback prompt and delete call
	// get a fresh one.
	offerCtx := context.WithoutCancel(ctx)
	decision, err := f.tracker.OfferRollback(offerCtx, f.prompter, func(ctx context.Context, fullName string) error {
		return f.gh.DeleteRepo(ctx, fullName)
	})
	if err != nil {
		f.logger.Log("rollback failed: %v", err)
	} else if f.tracker.Created() {
		f.logger.Log("rollback: %s", decision)
	}
	f.logger.LogResult(res, clierr.ErrCancelled)
	return clierr.ErrCancelled
}
