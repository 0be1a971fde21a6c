// Package transcoder is the boundary to the external transcoding tool
// (ffmpeg by default). It builds command lines and runs them; it does no
// encoding of its own.
package transcoder

import (
	"bufio"
	"context"
	stderrors "errors"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/heyjunin/yt/pkg/errors"
	"github.com/heyjunin/yt/pkg/logger"
)

// stderrTailLines is how much transcoder output is kept for error details.
const stderrTailLines = 5

// Invocation is a fully rendered transcoder command.
type Invocation struct {
	Binary string
	Args   []string
}

// String renders the invocation as a shell command line.
func (inv Invocation) String() string {
	parts := make([]string, 0, len(inv.Args)+1)
	parts = append(parts, shellQuote(inv.Binary))
	for _, a := range inv.Args {
		parts = append(parts, shellQuote(a))
	}
	return strings.Join(parts, " ")
}

// Runner executes transcoder invocations.
type Runner interface {
	// Available reports whether binary can be started at all.
	Available(binary string) error
	// Run blocks until the invocation exits. A non-zero exit is an error.
	Run(ctx context.Context, inv Invocation) error
}

// ExecRunner runs invocations as child processes.
type ExecRunner struct {
	logger logger.Logger
	// stderr, when set, receives the transcoder's own output as it runs.
	stderr io.Writer
}

// NewExecRunner creates an ExecRunner with the default logger.
func NewExecRunner() *ExecRunner {
	return NewExecRunnerWithDeps(logger.NewLogger(), nil)
}

// NewExecRunnerWithDeps creates an ExecRunner with a custom logger and an
// optional writer that mirrors the transcoder's stderr.
func NewExecRunnerWithDeps(log logger.Logger, stderr io.Writer) *ExecRunner {
	if log == nil {
		log = logger.Nop()
	}
	return &ExecRunner{logger: log, stderr: stderr}
}

// Available implements Runner.
func (r *ExecRunner) Available(binary string) error {
	path, err := exec.LookPath(binary)
	if err != nil {
		return errors.Wrap(err, errors.TranscoderUnavailable,
			errors.GetErrorMessage(errors.ErrTranscoderNotFound), errors.ErrTranscoderNotFound)
	}
	r.logger.Debug("Transcoder found", "transcoder", map[string]interface{}{"path": path})
	return nil
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, inv Invocation) error {
	r.logger.Debug("Executing transcoder command", "transcoder", map[string]interface{}{
		"command": inv.String(),
	})

	cmd := exec.CommandContext(ctx, inv.Binary, inv.Args...)
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return errors.Wrap(err, errors.TranscodeJobFailure,
			errors.GetErrorMessage(errors.ErrTranscoderStart), errors.ErrTranscoderStart)
	}
	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, errors.TranscodeJobFailure,
			errors.GetErrorMessage(errors.ErrTranscoderStart), errors.ErrTranscoderStart)
	}

	tail := make([]string, 0, stderrTailLines)
	scanner := bufio.NewScanner(stderr)
	scanner.Split(scanLinesOrCR)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if r.stderr != nil {
			_, _ = io.WriteString(r.stderr, line+"\n")
		}
		if len(tail) == stderrTailLines {
			tail = tail[1:]
		}
		tail = append(tail, line)
	}
	_, _ = io.Copy(io.Discard, stderr)

	if err := cmd.Wait(); err != nil {
		se := errors.Wrap(err, errors.TranscodeJobFailure,
			errors.GetErrorMessage(errors.ErrTranscoderExit), errors.ErrTranscoderExit)
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			se.Details = "exit status " + strconv.Itoa(exitErr.ExitCode())
		}
		if len(tail) > 0 {
			se.Details += ": " + strings.Join(tail, " | ")
		}
		return se
	}
	return nil
}

// scanLinesOrCR splits on "\n" or "\r"; ffmpeg redraws its status line with "\r".
func scanLinesOrCR(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	for i, b := range data {
		if b == '\n' || b == '\r' {
			return i + 1, data[:i], nil
		}
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	for _, c := range s {
		if !isShellSafe(c) {
			return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
		}
	}
	return s
}

func isShellSafe(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.ContainsRune("-_./:=+,@%", c)
}
