// Package guard keeps a project from being transcoded twice.
//
// The completion marker is an empty file in the video folder; its existence
// is the only state that outlives a command. A batch lock in the project root
// keeps two concurrent invocations from running the same batch.
package guard

import (
	stderrors "errors"
	"io/fs"
	"os"

	"github.com/gofrs/flock"
	"github.com/heyjunin/yt/pkg/errors"
	"github.com/heyjunin/yt/pkg/logger"
	"github.com/heyjunin/yt/pkg/project"
)

// Guard gates a transcode batch on the completion marker.
type Guard interface {
	// CheckNotAlreadyDone fails with AlreadyTranscoded when the marker exists.
	CheckNotAlreadyDone(paths project.Paths) error
	// Acquire takes the project's batch lock. The returned release func must be called.
	Acquire(paths project.Paths) (func() error, error)
	// MarkDone creates the marker, or does nothing when mock is set.
	MarkDone(paths project.Paths, mock bool) error
}

// MarkerGuard is the filesystem Guard.
type MarkerGuard struct {
	logger logger.Logger
}

// NewMarkerGuard creates a MarkerGuard.
func NewMarkerGuard(log logger.Logger) *MarkerGuard {
	if log == nil {
		log = logger.NewLogger()
	}
	return &MarkerGuard{logger: log}
}

// CheckNotAlreadyDone implements Guard.
func (g *MarkerGuard) CheckNotAlreadyDone(paths project.Paths) error {
	_, err := os.Stat(paths.MarkerPath)
	switch {
	case err == nil:
		return errors.New(errors.AlreadyTranscoded,
			errors.GetErrorMessage(errors.ErrAlreadyTranscoded),
			".transcoded file found at path: "+paths.VideoDir, errors.ErrAlreadyTranscoded)
	case stderrors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return errors.Wrap(err, errors.SystemError,
			errors.GetErrorMessage(errors.ErrMarkerStatFailed), errors.ErrMarkerStatFailed)
	}
}

// Acquire implements Guard with a non-blocking flock on paths.LockPath.
// The lock file is left in place on release; removing it would let a waiter
// and a newcomer lock different inodes.
func (g *MarkerGuard) Acquire(paths project.Paths) (func() error, error) {
	lock := flock.New(paths.LockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, errors.Wrap(err, errors.SystemError,
			errors.GetErrorMessage(errors.ErrLockFailed), errors.ErrLockFailed)
	}
	if !ok {
		return nil, errors.New(errors.TranscodeInProgress,
			errors.GetErrorMessage(errors.ErrTranscodeInProgress),
			"lock held: "+paths.LockPath, errors.ErrTranscodeInProgress)
	}

	g.logger.Debug("Acquired project lock", "guard", map[string]interface{}{"path": paths.LockPath})
	return func() error {
		if err := lock.Unlock(); err != nil {
			g.logger.Warn("Failed to release project lock", "guard", map[string]interface{}{
				"path":  paths.LockPath,
				"error": err.Error(),
			})
			return err
		}
		return nil
	}, nil
}

// MarkDone implements Guard. A failure here does not undo any finished transcode.
func (g *MarkerGuard) MarkDone(paths project.Paths, mock bool) error {
	if mock {
		return nil
	}

	g.logger.Debug("About to create the transcode marker", "guard", map[string]interface{}{"path": paths.MarkerPath})
	f, err := os.OpenFile(paths.MarkerPath, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(err, errors.MarkerWriteError,
			errors.GetErrorMessage(errors.ErrMarkerWriteFailed), errors.ErrMarkerWriteFailed)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, errors.MarkerWriteError,
			errors.GetErrorMessage(errors.ErrMarkerWriteFailed), errors.ErrMarkerWriteFailed)
	}
	return nil
}
