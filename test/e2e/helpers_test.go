package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	// Path to the compiled yt binary (go build -o yt ./cmd/yt).
	binaryPath = "../../yt"

	fakeTranscoderScript = `#!/bin/sh
in="$2"
for out; do :; done
case "$in" in
  *bad*) echo "Invalid data found when processing input" >&2; exit 1 ;;
esac
echo "frame=1 fps=0.0 time=00:00:00.04" >&2
printf 'encoded' > "$out"
`
)

// writeFakeTranscoder installs a shell script that behaves like ffmpeg for
// the argument shape yt uses: it fails for inputs containing "bad" and
// otherwise writes the output file.
func writeFakeTranscoder(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake transcoder is a shell script")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	path := filepath.Join(t.TempDir(), "fake-ffmpeg")
	if err := os.WriteFile(path, []byte(fakeTranscoderScript), 0o755); err != nil {
		t.Fatalf("write fake transcoder: %v", err)
	}
	return path
}

// setupProject creates <root>/<name>/video with the given empty source files.
func setupProject(t *testing.T, root, name string, files ...string) string {
	t.Helper()
	videoDir := filepath.Join(root, name, "video")
	if err := os.MkdirAll(videoDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(videoDir, f), []byte("source"), 0o644); err != nil {
			t.Fatalf("write source: %v", err)
		}
	}
	return videoDir
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func binaryExists() bool {
	_, err := os.Stat(binaryPath)
	return err == nil
}
