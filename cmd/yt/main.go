// Command yt manages video-editing projects: it scaffolds a project's folder
// structure and transcodes the project's source footage with ffmpeg.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/heyjunin/yt/pkg/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCommand(stdout, stderr)
	root.SetArgs(args)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}

	printError(stderr, err)
	if errors.IsFatalPrecondition(err) || !isStructured(err) {
		fmt.Fprint(stderr, "\n"+cmd.UsageString())
	}
	return 1
}

func printError(w io.Writer, err error) {
	se, ok := errors.As(err)
	if !ok {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "Error: %s\n", se.Message)
	if se.Details != "" {
		fmt.Fprintln(w, se.Details)
	}
}

func isStructured(err error) bool {
	_, ok := errors.As(err)
	return ok
}
