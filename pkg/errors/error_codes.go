package errors

// Error codes grouped by component.
const (
	// Command-line input (1000-1099)
	ErrProjectNameMissing = 1000
	ErrInvalidFlag        = 1001
	ErrScriptMissing      = 1002
	ErrUnknownCommand     = 1003

	// Project layout (1100-1199)
	ErrProjectNotFound     = 1100
	ErrVideoFolderMissing  = 1101
	ErrProjectExists       = 1102
	ErrProjectCreateFailed = 1103
	ErrVideoFolderUnlisted = 1104
	ErrVideoFolderReadOnly = 1105

	// Completion guard (1200-1299)
	ErrAlreadyTranscoded   = 1200
	ErrMarkerWriteFailed   = 1201
	ErrMarkerStatFailed    = 1202
	ErrTranscodeInProgress = 1203
	ErrLockFailed          = 1204

	// Transcoder (1300-1399)
	ErrTranscoderNotFound = 1300
	ErrTranscoderExit     = 1301
	ErrTranscoderStart    = 1302
	ErrBatchIncomplete    = 1303

	// Configuration (1400-1499)
	ErrConfigRead  = 1400
	ErrConfigParse = 1401
	ErrHomeDir     = 1402
)
