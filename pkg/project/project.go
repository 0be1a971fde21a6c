// Package project resolves and creates the on-disk layout of a video project:
//
//	<videoRootDir>/<projectName>/
//	    audio/
//	    photo/
//	    video/
//	        .transcoded   (completion marker)
package project

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/heyjunin/yt/pkg/config"
	"github.com/heyjunin/yt/pkg/errors"
	"github.com/heyjunin/yt/pkg/logger"
	"github.com/heyjunin/yt/pkg/naming"
)

// Paths is the derived, read-only view of a project's layout.
type Paths struct {
	ProjectRoot string
	VideoDir    string
	MarkerPath  string
	LockPath    string
}

// PathsFor computes the layout of cfg's project without touching the filesystem.
func PathsFor(cfg config.ProjectConfig) Paths {
	root := filepath.Join(cfg.VideoRootDir, cfg.ProjectName)
	video := filepath.Join(root, naming.VideoDirName)
	return Paths{
		ProjectRoot: root,
		VideoDir:    video,
		MarkerPath:  filepath.Join(video, naming.MarkerName),
		LockPath:    filepath.Join(root, naming.LockName),
	}
}

// SourceFile is one entry of a project's video folder.
type SourceFile struct {
	Dir  string
	Name string
}

// Path returns the full path of the source file.
func (s SourceFile) Path() string {
	return filepath.Join(s.Dir, s.Name)
}

// BaseName returns the name up to its first ".".
func (s SourceFile) BaseName() string {
	return naming.BaseName(s.Name)
}

// Resolve computes cfg's project paths and checks that the project root and
// its video folder exist.
func Resolve(cfg config.ProjectConfig) (Paths, error) {
	paths := PathsFor(cfg)

	if !dirExists(paths.ProjectRoot) {
		return Paths{}, errors.New(errors.ProjectNotFound,
			errors.GetErrorMessage(errors.ErrProjectNotFound),
			"project name provided: "+cfg.ProjectName, errors.ErrProjectNotFound)
	}
	if !dirExists(paths.VideoDir) {
		return Paths{}, errors.New(errors.VideoFolderMissing,
			errors.GetErrorMessage(errors.ErrVideoFolderMissing),
			"project name provided: "+cfg.ProjectName, errors.ErrVideoFolderMissing)
	}
	return paths, nil
}

// ListSourceFiles returns the entries of the video folder, minus the
// completion marker, in directory listing order.
func ListSourceFiles(paths Paths) ([]SourceFile, error) {
	entries, err := os.ReadDir(paths.VideoDir)
	if err != nil {
		return nil, errors.Wrap(err, errors.SystemError,
			errors.GetErrorMessage(errors.ErrVideoFolderUnlisted), errors.ErrVideoFolderUnlisted)
	}

	marker := filepath.Base(paths.MarkerPath)
	files := make([]SourceFile, 0, len(entries))
	for _, e := range entries {
		if e.Name() == marker {
			continue
		}
		files = append(files, SourceFile{Dir: paths.VideoDir, Name: e.Name()})
	}
	return files, nil
}

// Create builds the folder structure for a new project. It fails with
// ProjectExists when the project root is already present.
func Create(cfg config.ProjectConfig, log logger.Logger) (Paths, error) {
	paths := PathsFor(cfg)

	if _, err := os.Stat(paths.ProjectRoot); err == nil {
		return Paths{}, errors.New(errors.ProjectExists,
			errors.GetErrorMessage(errors.ErrProjectExists),
			"failed path: "+paths.ProjectRoot, errors.ErrProjectExists)
	} else if !stderrors.Is(err, fs.ErrNotExist) {
		return Paths{}, errors.Wrap(err, errors.SystemError,
			errors.GetErrorMessage(errors.ErrProjectCreateFailed), errors.ErrProjectCreateFailed)
	}

	log.Debug("About to make project path", "project", map[string]interface{}{"path": paths.ProjectRoot})
	if err := os.MkdirAll(paths.ProjectRoot, 0o755); err != nil {
		return Paths{}, errors.Wrap(err, errors.SystemError,
			errors.GetErrorMessage(errors.ErrProjectCreateFailed), errors.ErrProjectCreateFailed)
	}

	for _, sub := range naming.Subfolders {
		subPath := filepath.Join(paths.ProjectRoot, sub)
		log.Debug("About to make project sub-path", "project", map[string]interface{}{"path": subPath})
		if err := os.Mkdir(subPath, 0o755); err != nil {
			return Paths{}, errors.Wrap(err, errors.SystemError,
				errors.GetErrorMessage(errors.ErrProjectCreateFailed), errors.ErrProjectCreateFailed)
		}
	}

	log.Debug("Finished making the folder structure for the new project", "project", nil)
	return paths, nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
