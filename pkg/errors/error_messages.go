package errors

// ErrorMessages holds the standard user-facing message for each error code.
var ErrorMessages = map[int]string{
	ErrProjectNameMissing: "project name not provided",
	ErrInvalidFlag:        "invalid command-line flag",
	ErrScriptMissing:      "did not provide script name",
	ErrUnknownCommand:     "unknown command",

	ErrProjectNotFound:     "project folder does not exist",
	ErrVideoFolderMissing:  "no video/ folder detected for project",
	ErrProjectExists:       "project with this name already exists",
	ErrProjectCreateFailed: "failed to create project folder structure",
	ErrVideoFolderUnlisted: "failed to list the project's video folder",
	ErrVideoFolderReadOnly: "project's video folder is not writable",

	ErrAlreadyTranscoded:   "attempting to transcode the files for a project where the transcode already succeeded once",
	ErrMarkerWriteFailed:   "failed to create the completion marker",
	ErrMarkerStatFailed:    "failed to check for the completion marker",
	ErrTranscodeInProgress: "another transcode of this project is already running",
	ErrLockFailed:          "failed to acquire the project lock",

	ErrTranscoderNotFound: "transcoder binary not found",
	ErrTranscoderExit:     "transcoder exited with an error",
	ErrTranscoderStart:    "transcoder could not be started",
	ErrBatchIncomplete:    "not every transcode job succeeded",

	ErrConfigRead:  "failed to read configuration file",
	ErrConfigParse: "failed to parse configuration file",
	ErrHomeDir:     "failed to resolve the home directory",
}

// GetErrorMessage returns the standard message for an error code.
func GetErrorMessage(code int) string {
	if msg, ok := ErrorMessages[code]; ok {
		return msg
	}
	return "unknown error"
}
