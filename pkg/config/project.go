package config

import "github.com/heyjunin/yt/pkg/errors"

// ProjectConfig is the validated input of a single command invocation.
// It is built once from flags and passed by value; nothing modifies it afterwards.
type ProjectConfig struct {
	ProjectName     string
	VideoRootDir    string
	Verbose         bool
	Mock            bool
	PruneDuplicates bool
}

// NewProjectConfig validates the flag values for command and returns the config.
// An empty project name is a UsageError.
func NewProjectConfig(command, projectName, videoRootDir string, verbose, mock, pruneDuplicates bool) (ProjectConfig, error) {
	if projectName == "" {
		return ProjectConfig{}, errors.New(errors.UsageError,
			"project name not provided to the "+command+" script!", "", errors.ErrProjectNameMissing)
	}
	if videoRootDir == "" {
		videoRootDir = DefaultVideoRootDir
	}
	root, err := ExpandPath(videoRootDir)
	if err != nil {
		return ProjectConfig{}, err
	}
	return ProjectConfig{
		ProjectName:     projectName,
		VideoRootDir:    root,
		Verbose:         verbose,
		Mock:            mock,
		PruneDuplicates: pruneDuplicates,
	}, nil
}

// Fields returns the config as structured log data.
func (c ProjectConfig) Fields() map[string]interface{} {
	return map[string]interface{}{
		"project":          c.ProjectName,
		"video_root_dir":   c.VideoRootDir,
		"verbose":          c.Verbose,
		"mock":             c.Mock,
		"prune_duplicates": c.PruneDuplicates,
	}
}
