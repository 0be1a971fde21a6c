package progress

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives progress from a batch: one Start, an Increment per
// finished item, and a final Complete.
type Reporter interface {
	Start(total int64)
	Increment(item string)
	Complete()
}

type reporterOptions struct {
	description string
	writer      io.Writer
	visible     bool
}

// ReporterOption configures a DefaultReporter.
type ReporterOption func(*reporterOptions)

// WithDescription sets the text drawn in front of the bar. Defaults to "Transcoding".
func WithDescription(desc string) ReporterOption {
	return func(opts *reporterOptions) {
		opts.description = desc
	}
}

// WithWriter sets where the bar is drawn. Defaults to os.Stderr.
func WithWriter(w io.Writer) ReporterOption {
	return func(opts *reporterOptions) {
		opts.writer = w
	}
}

// WithVisibility hides the bar when false; events are still tracked.
func WithVisibility(visible bool) ReporterOption {
	return func(opts *reporterOptions) {
		opts.visible = visible
	}
}

// DefaultReporter draws a github.com/schollz/progressbar/v3 bar.
type DefaultReporter struct {
	Total   int64
	Current int64
	Started time.Time
	Bar     *progressbar.ProgressBar
	opts    reporterOptions
	mu      sync.Mutex
}

// NewReporter creates a new DefaultReporter.
func NewReporter(opts ...ReporterOption) *DefaultReporter {
	options := reporterOptions{
		description: "Transcoding",
		writer:      os.Stderr,
		visible:     true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	return &DefaultReporter{opts: options}
}

// Start sets the number of items in the batch and draws an empty bar.
func (r *DefaultReporter) Start(total int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Total = total
	r.Current = 0
	r.Started = time.Now()

	r.Bar = progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(r.opts.description),
		progressbar.OptionSetWriter(r.opts.writer),
		progressbar.OptionSetVisibility(r.opts.visible),
		progressbar.OptionShowCount(),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionOnCompletion(func() {
			_, _ = io.WriteString(r.opts.writer, "\n")
		}),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

// Increment advances the bar by one finished item and names it in the description.
func (r *DefaultReporter) Increment(item string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Bar == nil {
		return
	}
	if r.Current < r.Total {
		r.Current++
	}
	if item != "" {
		r.Bar.Describe(r.opts.description + " " + item)
	}
	_ = r.Bar.Set64(r.Current)
}

// Complete finishes the bar. Further updates are ignored.
func (r *DefaultReporter) Complete() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Bar == nil {
		return
	}

	_ = r.Bar.Finish()
	r.Bar = nil
}

// Discard is a Reporter that does nothing.
type Discard struct{}

func (Discard) Start(int64)      {}
func (Discard) Increment(string) {}
func (Discard) Complete()        {}
