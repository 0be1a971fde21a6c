// Package naming holds the on-disk naming conventions of a project:
// folder names, the completion marker, and transcoded output names.
package naming

import "strings"

const (
	// VideoDirName is the project subfolder holding source footage.
	VideoDirName = "video"
	// MarkerName is the empty file written after a fully successful batch.
	MarkerName = ".transcoded"
	// LockName is the batch lock file kept in the project root.
	LockName = ".transcode.lock"
	// OutputSuffix is appended to the base name of every transcoded file.
	OutputSuffix = "_transcoded"
	// OutputExtension is the container of every transcoded file.
	OutputExtension = ".mov"
)

// Subfolders are created, in order, by new-proj.
var Subfolders = []string{"audio", "photo", "video"}

// BaseName returns fileName up to its first ".".
// Names with several dots ("clip.01.mp4") lose everything after the first one.
func BaseName(fileName string) string {
	base, _, _ := strings.Cut(fileName, ".")
	return base
}

// OutputName returns the transcoded file name for a source file name.
func OutputName(fileName string) string {
	return BaseName(fileName) + OutputSuffix + OutputExtension
}
