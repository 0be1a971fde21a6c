package executor

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/heyjunin/yt/pkg/errors"
	"github.com/heyjunin/yt/pkg/planner"
	"github.com/heyjunin/yt/pkg/project"
	"github.com/heyjunin/yt/pkg/transcoder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records invocations and fails the ones whose 1-based call number is in failOn.
type fakeRunner struct {
	calls  []transcoder.Invocation
	failOn map[int]bool
	onRun  func(call int)
}

func (f *fakeRunner) Available(string) error { return nil }

func (f *fakeRunner) Run(_ context.Context, inv transcoder.Invocation) error {
	f.calls = append(f.calls, inv)
	n := len(f.calls)
	if f.onRun != nil {
		f.onRun(n)
	}
	if f.failOn[n] {
		return errors.New(errors.TranscodeJobFailure, "transcoder exited with an error", "exit status 1", errors.ErrTranscoderExit)
	}
	return nil
}

// countingReporter counts reporter calls.
type countingReporter struct {
	started    int64
	increments int
	completed  bool
}

func (r *countingReporter) Start(total int64) { r.started = total }
func (r *countingReporter) Increment(string)  { r.increments++ }
func (r *countingReporter) Complete()         { r.completed = true }

func threeJobs(prune bool) []planner.Job {
	return planner.Plan([]project.SourceFile{
		{Dir: "/v/p/video", Name: "a.mp4"},
		{Dir: "/v/p/video", Name: "b.mp4"},
		{Dir: "/v/p/video", Name: "c.mp4"},
	}, prune)
}

func TestExecuteAllSucceed(t *testing.T) {
	runner := &fakeRunner{}
	reporter := &countingReporter{}
	var display bytes.Buffer

	result := New(transcoder.Options{}, runner, &display, reporter, nil).
		Execute(context.Background(), threeJobs(false), false, false)

	assert.True(t, result.AllSucceeded)
	assert.Equal(t, 3, result.TotalJobs)
	assert.Equal(t, 3, result.JobsAttempted)
	assert.Empty(t, result.JobsFailed)
	require.Len(t, runner.calls, 3)
	assert.Equal(t, []string{"-i", "/v/p/video/a.mp4", "-c:v", "dnxhd", "-profile:v", "3", "-c:a", "pcm_s24le", "/v/p/video/a_transcoded.mov"}, runner.calls[0].Args)

	assert.Equal(t, int64(3), reporter.started)
	assert.Equal(t, 3, reporter.increments)
	assert.True(t, reporter.completed)

	lines := strings.Split(strings.TrimSpace(display.String()), "\n")
	assert.Equal(t, []string{
		"[1/3] Converting a.mp4 to a_transcoded.mov",
		"[2/3] Converting b.mp4 to b_transcoded.mov",
		"[3/3] Converting c.mp4 to c_transcoded.mov",
	}, lines)
}

func TestExecuteContinuesAfterFailure(t *testing.T) {
	runner := &fakeRunner{failOn: map[int]bool{2: true}}

	result := New(transcoder.Options{}, runner, nil, nil, nil).
		Execute(context.Background(), threeJobs(false), false, true)

	assert.False(t, result.AllSucceeded)
	assert.Equal(t, 3, result.JobsAttempted)
	require.Len(t, runner.calls, 3)
	require.Len(t, result.JobsFailed, 1)
	assert.Equal(t, 2, result.JobsFailed[0].Index)

	assert.Equal(t, Succeeded, result.Outcomes[0].State)
	assert.Equal(t, Failed, result.Outcomes[1].State)
	assert.True(t, errors.IsType(result.Outcomes[1].Err, errors.TranscodeJobFailure))
	assert.Equal(t, Succeeded, result.Outcomes[2].State)
}

func TestExecuteMockNeverRuns(t *testing.T) {
	runner := &fakeRunner{failOn: map[int]bool{1: true, 2: true, 3: true}}
	var display bytes.Buffer

	result := New(transcoder.Options{}, runner, &display, nil, nil).
		Execute(context.Background(), threeJobs(true), true, false)

	assert.True(t, result.AllSucceeded)
	assert.Equal(t, 3, result.JobsAttempted)
	assert.Empty(t, runner.calls)
	assert.Contains(t, display.String(), "[2/3] Converting b.mp4 to b_transcoded.mov\n"+
		"ffmpeg -i /v/p/video/b.mp4 -c:v dnxhd -profile:v 3 -c:a pcm_s24le -vsync 2 /v/p/video/b_transcoded.mov\n")
}

func TestExecuteStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runner := &fakeRunner{onRun: func(call int) {
		if call == 1 {
			cancel()
		}
	}}

	result := New(transcoder.Options{}, runner, nil, nil, nil).Execute(ctx, threeJobs(false), false, false)

	assert.False(t, result.AllSucceeded)
	assert.Equal(t, 1, result.JobsAttempted)
	assert.Empty(t, result.JobsFailed)
	assert.Equal(t, Pending, result.Outcomes[1].State)
	assert.Equal(t, Pending, result.Outcomes[2].State)
}

func TestExecuteEmptyBatch(t *testing.T) {
	reporter := &countingReporter{}
	result := New(transcoder.Options{}, &fakeRunner{}, nil, reporter, nil).
		Execute(context.Background(), nil, false, false)

	assert.True(t, result.AllSucceeded)
	assert.Zero(t, result.TotalJobs)
	assert.False(t, reporter.completed)
}

func TestJobStateString(t *testing.T) {
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "succeeded", Succeeded.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "JobState(9)", JobState(9).String())
}
