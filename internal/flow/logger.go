// Copyright (C) jajera.
// SPDX-License-Identifier: MIT

package flow

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jajera/vsx-github-repo-factory/internal/wizard"
)

// Logger logs one flow execution to a file under .repo-factory/logs.
type Logger struct {
	file      *os.File
	startTime time.Time
	command   string
	runID     string
}

// NewLogger creates a logger for one flow run.
func NewLogger(command string) (*Logger, error) {
	logDir := ".repo-factory/logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	runID := uuid.NewString()[:8]
	timestamp := time.Now().Format("2006-01-02-150405")
	logPath := filepath.Join(logDir, fmt.Sprintf("%s-%s-%s.log", command, timestamp, runID))

	file, err := os.Create(logPath)
	if err != nil {
		return nil, fmt.Errorf("create log file: %w", err)
	}

	logger := &Logger{
		file:      file,
		startTime: time.Now(),
		command:   command,
		runID:     runID,
	}
	logger.writeHeader()
	return logger, nil
}

func (l *Logger) writeHeader() {
	l.file.WriteString("=" + strings.Repeat("=", 79) + "\n")
	l.file.WriteString(fmt.Sprintf("repo-factory: %s (run %s)\n", l.command, l.runID))
	l.file.WriteString(fmt.Sprintf("Started: %s\n", l.startTime.Format(time.RFC3339)))
	l.file.WriteString("=" + strings.Repeat("=", 79) + "\n\n")
}

// Log writes a message to the log file.
func (l *Logger) Log(format string, args ...interface{}) {
	if l == nil || l.file == nil {
		return
	}
	timestamp := time.Now().Format("15:04:05")
	msg := fmt.Sprintf(format, args...)
	l.file.WriteString(fmt.Sprintf("[%s] %s\n", timestamp, msg))
}

// Section writes a section header.
func (l *Logger) Section(title string) {
	if l == nil || l.file == nil {
		return
	}
	l.file.WriteString(fmt.Sprintf("\n--- %s ---\n", title))
}

// LogOptions writes the finalized wizard options.
func (l *Logger) LogOptions(opts wizard.Options) {
	if l == nil || l.file == nil {
		return
	}
	l.Section("OPTIONS")
	if opts.Repo != "" {
		l.Log("Repository: %s", opts.Repo)
		for key, value := range opts.Patch {
			l.Log("  patch: %s=%v", key, value)
		}
		return
	}
	l.Log("Repository: %s (%s)", opts.FullName(), opts.Visibility)
	if opts.Template != "" {
		l.Log("  template: %s", opts.Template)
	} else {
		l.Log("  readme: %v, license: %s", opts.AddReadme, opts.License)
	}
	if opts.CreateIssue {
		l.Log("  issue: %s", opts.IssueTitle)
	}
	if opts.CreateBranch {
		l.Log("  branch: %s", opts.BranchName)
	}
	l.Log("  workspace: %v", opts.Workspace)
}

// LogResult writes the flow outcome.
func (l *Logger) LogResult(res *Result, err error) {
	if l == nil || l.file == nil {
		return
	}
	l.Section("RESULT")
	if err != nil {
		l.Log("ERROR: %v", err)
	}
	if res != nil {
		if res.URL != "" {
			l.Log("URL: %s", res.URL)
		}
		for _, e := range res.Errors {
			l.Log("warning: %s", e)
		}
	}
	l.Log("Duration: %s", time.Since(l.startTime).Round(time.Millisecond))
}

// Close closes the log file and returns its path.
func (l *Logger) Close() string {
	if l == nil || l.file == nil {
		return ""
	}
	l.file.WriteString(fmt.Sprintf("\n\nCompleted: %s\n", time.Now().Format(time.RFC3339)))
	l.file.WriteString(fmt.Sprintf("Duration: %s\n", time.Since(l.startTime).Round(time.Millisecond)))

	path := l.file.Name()
	l.file.Close()
	return path
}
