package app

import (
	"context"
	"fmt"
	"io"

	"github.com/heyjunin/yt/pkg/errors"
	"github.com/heyjunin/yt/pkg/executor"
	"github.com/heyjunin/yt/pkg/guard"
	"github.com/heyjunin/yt/pkg/logger"
	"github.com/heyjunin/yt/pkg/planner"
	"github.com/heyjunin/yt/pkg/progress"
	"github.com/heyjunin/yt/pkg/project"
	"github.com/heyjunin/yt/pkg/transcoder"
)

// SummaryFunc renders a finished batch for the display writer.
type SummaryFunc func(w io.Writer, result executor.BatchResult)

// App holds the collaborators shared by every command.
type App struct {
	Transcoder transcoder.Options
	Runner     transcoder.Runner
	Guard      guard.Guard
	Display    io.Writer
	Reporter   progress.Reporter
	Logger     logger.Logger
	Summary    SummaryFunc
}

// Run executes cmd.
func (a *App) Run(ctx context.Context, cmd Command) error {
	switch c := cmd.(type) {
	case NewProject:
		return a.newProject(c)
	case TranscodeProject:
		return a.transcodeProject(ctx, c)
	default:
		return errors.New(errors.UsageError, errors.GetErrorMessage(errors.ErrUnknownCommand), fmt.Sprintf("%T", cmd), errors.ErrUnknownCommand)
	}
}

func (a *App) newProject(c NewProject) error {
	log := a.logger()
	log.Debug("Executing new-proj script", "app", c.Config.Fields())

	paths, err := project.Create(c.Config, log)
	if err != nil {
		return err
	}
	log.Info("Created project", "app", map[string]interface{}{"path": paths.ProjectRoot})
	return nil
}

func (a *App) transcodeProject(ctx context.Context, c TranscodeProject) error {
	cfg := c.Config
	log := a.logger()
	display := a.display()
	log.Debug("Executing transcode-proj script", "app", cfg.Fields())

	g := a.completionGuard()

	paths, err := project.Resolve(cfg)
	if err != nil {
		return err
	}
	if err := g.CheckNotAlreadyDone(paths); err != nil {
		return err
	}

	if !cfg.Mock {
		if err := project.CheckWritable(paths.VideoDir); err != nil {
			log.Warn("Completion marker will not be writable", "app", map[string]interface{}{
				"path":  paths.MarkerPath,
				"error": err.Error(),
			})
		}
		if err := a.Runner.Available(a.Transcoder.BinaryName()); err != nil {
			return err
		}
		release, err := g.Acquire(paths)
		if err != nil {
			return err
		}
		defer func() { _ = release() }()
		// A run holding the lock may have finished between the first check and Acquire.
		if err := g.CheckNotAlreadyDone(paths); err != nil {
			return err
		}
	}

	log.Debug("About to start transcoding logic", "app", map[string]interface{}{"video_dir": paths.VideoDir})

	sources, err := project.ListSourceFiles(paths)
	if err != nil {
		return err
	}
	jobs := planner.Plan(sources, cfg.PruneDuplicates)
	log.Debug("Planned transcode jobs", "app", map[string]interface{}{"jobs": len(jobs)})

	batch := executor.New(a.Transcoder, a.Runner, display, a.Reporter, log)
	result := batch.Execute(ctx, jobs, cfg.Mock, cfg.Verbose)

	if a.Summary != nil {
		a.Summary(display, result)
	}

	if !result.AllSucceeded {
		return errors.New(errors.TranscodeJobFailure,
			errors.GetErrorMessage(errors.ErrBatchIncomplete),
			fmt.Sprintf("%d failed, %d not started, of %d",
				len(result.JobsFailed), result.TotalJobs-result.JobsAttempted, result.TotalJobs),
			errors.ErrBatchIncomplete)
	}

	if err := g.MarkDone(paths, cfg.Mock); err != nil {
		return err
	}

	fmt.Fprintln(display, "Done transcoding all the video sources!")
	return nil
}

func (a *App) logger() logger.Logger {
	if a.Logger == nil {
		return logger.Nop()
	}
	return a.Logger
}

func (a *App) completionGuard() guard.Guard {
	if a.Guard == nil {
		return guard.NewMarkerGuard(a.logger())
	}
	return a.Guard
}

func (a *App) display() io.Writer {
	if a.Display == nil {
		return io.Discard
	}
	return a.Display
}
