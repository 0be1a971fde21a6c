package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorType defines distinct categories for errors originating from yt components.
type ErrorType string

const (
	// UsageError represents missing or invalid command-line input.
	UsageError ErrorType = "usage_error"
	// ProjectNotFound indicates the project root directory does not exist.
	ProjectNotFound ErrorType = "project_not_found"
	// VideoFolderMissing indicates the project has no video/ subfolder.
	VideoFolderMissing ErrorType = "video_folder_missing"
	// AlreadyTranscoded indicates the completion marker is present for the project.
	AlreadyTranscoded ErrorType = "already_transcoded"
	// TranscodeInProgress indicates another invocation holds the project's batch lock.
	TranscodeInProgress ErrorType = "transcode_in_progress"
	// TranscoderUnavailable indicates the external transcoder binary cannot be found.
	TranscoderUnavailable ErrorType = "transcoder_unavailable"
	// TranscodeJobFailure represents a single transcoder invocation that did not succeed.
	TranscodeJobFailure ErrorType = "transcode_job_failure"
	// MarkerWriteError indicates the completion marker could not be created.
	MarkerWriteError ErrorType = "marker_write_error"
	// ProjectExists indicates new-proj was asked to create a project that is already there.
	ProjectExists ErrorType = "project_exists"
	// SystemError represents underlying system issues such as file I/O failures.
	SystemError ErrorType = "system_error"
)

// StructuredError represents a detailed error originating from yt operations.
// It includes a type, message, optional details, timestamp, and a specific error code.
type StructuredError struct {
	// Type categorizes the error (e.g., ProjectNotFound, MarkerWriteError).
	Type ErrorType `json:"type"`
	// Message provides a concise, human-readable description of the error.
	Message string `json:"message"`
	// Details offers additional context or the underlying error message, if available.
	Details string `json:"details,omitempty"`
	// Timestamp marks when the error occurred in RFC3339 format.
	Timestamp string `json:"timestamp"`
	// Code provides a specific integer code, see error_codes.go.
	Code int `json:"code"`

	cause error
}

// Error implements the standard `error` interface for StructuredError.
func (e *StructuredError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("[%s] %s", e.Type, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Message, e.Details)
}

// Unwrap returns the error passed to Wrap, if any.
func (e *StructuredError) Unwrap() error {
	return e.cause
}

// JSON returns the StructuredError serialized as a JSON string.
func (e *StructuredError) JSON() (string, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// New creates a new StructuredError instance.
// It automatically sets the Timestamp to the current time.
func New(errorType ErrorType, message, details string, code int) *StructuredError {
	return &StructuredError{
		Type:      errorType,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().Format(time.RFC3339),
		Code:      code,
	}
}

// Wrap creates a new StructuredError, using the message from an existing error
// as the Details field. If err is nil, Details will be empty.
func Wrap(err error, errorType ErrorType, message string, code int) *StructuredError {
	details := ""
	if err != nil {
		details = err.Error()
	}
	se := New(errorType, message, details, code)
	se.cause = err
	return se
}

// As returns the first StructuredError in err's chain.
func As(err error) (*StructuredError, bool) {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsType reports whether err's chain contains a StructuredError of the given type.
func IsType(err error, errorType ErrorType) bool {
	se, ok := As(err)
	return ok && se.Type == errorType
}

// IsFatalPrecondition reports whether the error aborts a command before any work is done.
func IsFatalPrecondition(err error) bool {
	se, ok := As(err)
	if !ok {
		return false
	}
	switch se.Type {
	case UsageError, ProjectNotFound, VideoFolderMissing, AlreadyTranscoded,
		TranscodeInProgress, TranscoderUnavailable, ProjectExists:
		return true
	}
	return false
}
