package progress

import (
	"bytes"
	"strings"
	"testing"
)

func newTestReporter() *DefaultReporter {
	return NewReporter(WithWriter(&bytes.Buffer{}), WithVisibility(false))
}

func TestNewReporter(t *testing.T) {
	reporter := newTestReporter()

	if reporter == nil {
		t.Fatal("NewReporter() returned nil")
	}
	if reporter.opts.description != "Transcoding" {
		t.Errorf("description = %q, want %q", reporter.opts.description, "Transcoding")
	}
	if reporter.Bar != nil {
		t.Error("Bar should not exist before Start")
	}
}

func TestReporterStart(t *testing.T) {
	reporter := newTestReporter()
	reporter.Start(3)

	if reporter.Total != 3 {
		t.Errorf("Total = %d, want %d", reporter.Total, 3)
	}
	if reporter.Current != 0 {
		t.Errorf("Current = %d, want %d", reporter.Current, 0)
	}
	if reporter.Started.IsZero() {
		t.Error("Started should be set")
	}
	if reporter.Bar == nil {
		t.Error("Progress bar should be initialized")
	}
}

func TestReporterIncrement(t *testing.T) {
	reporter := newTestReporter()
	reporter.Start(4)

	reporter.Increment("a.mp4")

	if reporter.Current != 1 {
		t.Errorf("Current = %d, want %d", reporter.Current, 1)
	}
	if got := reporter.Bar.State().CurrentPercent; got != 0.25 {
		t.Errorf("CurrentPercent = %f, want %f", got, 0.25)
	}
}

func TestReporterDrawsDescription(t *testing.T) {
	var out bytes.Buffer
	reporter := NewReporter(WithWriter(&out), WithDescription("Transcoding vlog"))
	reporter.Start(2)

	reporter.Increment("a.mp4")

	if !strings.Contains(out.String(), "Transcoding vlog a.mp4") {
		t.Errorf("bar output %q does not name the item", out.String())
	}
}

func TestReporterIncrementCapsAtTotal(t *testing.T) {
	reporter := newTestReporter()
	reporter.Start(2)
	for i := 0; i < 5; i++ {
		reporter.Increment("x")
	}
	if reporter.Current != 2 {
		t.Errorf("Current = %d, want %d", reporter.Current, 2)
	}
}

func TestReporterIncrementBeforeStart(t *testing.T) {
	reporter := newTestReporter()
	reporter.Increment("x")
	if reporter.Current != 0 {
		t.Errorf("Current = %d, want %d", reporter.Current, 0)
	}
}

func TestReporterComplete(t *testing.T) {
	reporter := newTestReporter()
	reporter.Start(2)
	reporter.Increment("a")

	reporter.Complete()

	if reporter.Bar != nil {
		t.Error("Bar should be released after Complete")
	}

	reporter.Complete()
	reporter.Increment("b")
	if reporter.Current != 1 {
		t.Errorf("Current = %d after Complete, want %d", reporter.Current, 1)
	}
}
