// Package app wires the project, guard, planner and executor packages into
// the yt commands.
package app

import "github.com/heyjunin/yt/pkg/config"

// Command is one of NewProject or TranscodeProject.
type Command interface {
	Name() string
	isCommand()
}

// NewProject scaffolds a project's folder structure.
type NewProject struct {
	Config config.ProjectConfig
}

// TranscodeProject transcodes every source file in a project's video folder.
type TranscodeProject struct {
	Config config.ProjectConfig
}

func (NewProject) Name() string       { return "new-proj" }
func (TranscodeProject) Name() string { return "transcode-proj" }

func (NewProject) isCommand()       {}
func (TranscodeProject) isCommand() {}
