// Package config holds the tool-level settings file and the per-invocation
// project configuration.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/heyjunin/yt/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

const (
	// DefaultVideoRootDir is where projects live unless overridden.
	DefaultVideoRootDir = "~/Videos/YouTube/sources/"
	// DefaultTranscoderBinary is looked up on PATH.
	DefaultTranscoderBinary = "ffmpeg"
	// DefaultConfigPath is read when no --config flag is given.
	DefaultConfigPath = "~/.config/yt/config.toml"
)

// Settings is the tool-level configuration loaded from TOML.
type Settings struct {
	VideoRootDir     string   `toml:"video_root_dir"`
	TranscoderBinary string   `toml:"transcoder_binary"`
	EncodingArgs     []string `toml:"encoding_args"`
	DedupArgs        []string `toml:"dedup_args"`
}

// Default returns the built-in settings: DNxHD video and 24-bit PCM audio,
// with "-vsync 2" dropping duplicate frames when requested.
func Default() Settings {
	return Settings{
		VideoRootDir:     DefaultVideoRootDir,
		TranscoderBinary: DefaultTranscoderBinary,
		EncodingArgs:     []string{"-c:v", "dnxhd", "-profile:v", "3", "-c:a", "pcm_s24le"},
		DedupArgs:        []string{"-vsync", "2"},
	}
}

// Load reads the settings file at path, or DefaultConfigPath when path is empty.
// A missing file is not an error; the defaults are returned with found=false.
func Load(path string) (Settings, bool, error) {
	settings := Default()

	if path == "" {
		path = DefaultConfigPath
	}
	resolved, err := ExpandPath(path)
	if err != nil {
		return Settings{}, false, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return settings, false, nil
		}
		return Settings{}, false, errors.Wrap(err, errors.SystemError, errors.GetErrorMessage(errors.ErrConfigRead), errors.ErrConfigRead)
	}

	if err := toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, false, errors.Wrap(err, errors.SystemError, errors.GetErrorMessage(errors.ErrConfigParse), errors.ErrConfigParse)
	}
	settings.normalize()
	return settings, true, nil
}

// normalize restores defaults for keys present but left empty in the file.
func (s *Settings) normalize() {
	def := Default()
	if strings.TrimSpace(s.VideoRootDir) == "" {
		s.VideoRootDir = def.VideoRootDir
	}
	if strings.TrimSpace(s.TranscoderBinary) == "" {
		s.TranscoderBinary = def.TranscoderBinary
	}
	if s.DedupArgs == nil {
		s.DedupArgs = def.DedupArgs
	}
}

// ExpandPath resolves a leading "~" against the user's home directory.
func ExpandPath(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.SystemError, errors.GetErrorMessage(errors.ErrHomeDir), errors.ErrHomeDir)
	}
	if p == "~" {
		return home, nil
	}
	return filepath.Join(home, p[2:]), nil
}
