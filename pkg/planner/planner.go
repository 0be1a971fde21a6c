// Package planner turns a project's source files into an ordered list of
// transcode jobs. Planning does no I/O.
package planner

import (
	"path/filepath"

	"github.com/heyjunin/yt/pkg/naming"
	"github.com/heyjunin/yt/pkg/project"
)

// Job is one transcoder invocation of a batch.
type Job struct {
	// Index is the 1-based position in the batch.
	Index      int
	InputPath  string
	OutputPath string
	// Dedup asks the transcoder to drop duplicate frames.
	Dedup bool
}

// InputName returns the source file name.
func (j Job) InputName() string {
	return filepath.Base(j.InputPath)
}

// OutputName returns the destination file name.
func (j Job) OutputName() string {
	return filepath.Base(j.OutputPath)
}

// Plan builds one job per source, in source order. Every output lands next
// to its source, and pruneDuplicates applies to the whole batch.
func Plan(sources []project.SourceFile, pruneDuplicates bool) []Job {
	jobs := make([]Job, 0, len(sources))
	for i, src := range sources {
		jobs = append(jobs, Job{
			Index:      i + 1,
			InputPath:  src.Path(),
			OutputPath: filepath.Join(src.Dir, naming.OutputName(src.Name)),
			Dedup:      pruneDuplicates,
		})
	}
	return jobs
}
