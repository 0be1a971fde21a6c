// Package executor runs a planned batch of transcode jobs against the
// external transcoder, one job at a time.
package executor

import (
	"context"
	"fmt"
	"io"

	"github.com/heyjunin/yt/pkg/logger"
	"github.com/heyjunin/yt/pkg/planner"
	"github.com/heyjunin/yt/pkg/progress"
	"github.com/heyjunin/yt/pkg/transcoder"
)

// JobState is the lifecycle of a single job.
type JobState int

const (
	Pending JobState = iota
	Running
	Succeeded
	Failed
)

func (s JobState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("JobState(%d)", int(s))
}

// JobOutcome records how one job ended.
type JobOutcome struct {
	Job   planner.Job
	State JobState
	// Err is set for Failed jobs.
	Err error
}

// BatchResult summarizes an Execute call.
type BatchResult struct {
	TotalJobs     int
	JobsAttempted int
	JobsFailed    []planner.Job
	// Outcomes holds one entry per job, in plan order, including jobs never started.
	Outcomes     []JobOutcome
	AllSucceeded bool
}

// Executor runs jobs sequentially. Progress lines and mock command lines are
// written to the display writer.
type Executor struct {
	options  transcoder.Options
	runner   transcoder.Runner
	display  io.Writer
	reporter progress.Reporter
	logger   logger.Logger
}

// New creates an Executor. A nil reporter or logger is replaced by a no-op.
func New(options transcoder.Options, runner transcoder.Runner, display io.Writer, reporter progress.Reporter, log logger.Logger) *Executor {
	if display == nil {
		display = io.Discard
	}
	if reporter == nil {
		reporter = progress.Discard{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Executor{
		options:  options,
		runner:   runner,
		display:  display,
		reporter: reporter,
		logger:   log,
	}
}

// Execute runs jobs in order. A failed job is recorded and the batch moves on.
// In mock mode the invocation is printed instead of run and counts as a success.
// If ctx is cancelled between jobs the remaining jobs stay Pending.
func (e *Executor) Execute(ctx context.Context, jobs []planner.Job, mock, verbose bool) BatchResult {
	result := BatchResult{
		TotalJobs: len(jobs),
		Outcomes:  make([]JobOutcome, len(jobs)),
	}
	for i, job := range jobs {
		result.Outcomes[i] = JobOutcome{Job: job, State: Pending}
	}

	if len(jobs) > 0 {
		e.reporter.Start(int64(len(jobs)))
		defer e.reporter.Complete()
	}

	for i, job := range jobs {
		if ctx.Err() != nil {
			e.logger.Warn("Interrupted, skipping remaining jobs", "executor", map[string]interface{}{
				"remaining": len(jobs) - i,
			})
			break
		}

		outcome := &result.Outcomes[i]
		outcome.State = Running
		result.JobsAttempted++

		fmt.Fprintf(e.display, "[%d/%d] Converting %s to %s\n", job.Index, len(jobs), job.InputName(), job.OutputName())

		inv := e.options.Invocation(job)
		if mock {
			fmt.Fprintln(e.display, inv.String())
			outcome.State = Succeeded
		} else if err := e.runner.Run(ctx, inv); err != nil {
			outcome.State = Failed
			outcome.Err = err
			result.JobsFailed = append(result.JobsFailed, job)
			e.logger.Error("Transcode failed", "executor", map[string]interface{}{
				"job":    job.Index,
				"input":  job.InputPath,
				"output": job.OutputPath,
				"error":  err.Error(),
			})
		} else {
			outcome.State = Succeeded
		}

		if verbose {
			e.logger.Debug("Job finished", "executor", map[string]interface{}{
				"job":   job.Index,
				"state": outcome.State.String(),
			})
		}
		e.reporter.Increment(job.InputName())
	}

	result.AllSucceeded = result.JobsAttempted == result.TotalJobs
	for _, o := range result.Outcomes {
		if o.State != Succeeded {
			result.AllSucceeded = false
			break
		}
	}
	return result
}
