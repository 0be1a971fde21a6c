package transcoder

import (
	"slices"

	"github.com/heyjunin/yt/pkg/config"
	"github.com/heyjunin/yt/pkg/planner"
)

// Options describes how the external transcoder is invoked.
type Options struct {
	// Binary is the transcoder executable, looked up on PATH when not absolute.
	Binary string
	// EncodingArgs sit between the input and the output path.
	EncodingArgs []string
	// DedupArgs are added after EncodingArgs for jobs with Dedup set.
	DedupArgs []string
}

// OptionsFromSettings builds Options from the loaded settings file.
// An explicitly empty argument list stays empty.
func OptionsFromSettings(s config.Settings) Options {
	return Options{
		Binary:       s.TranscoderBinary,
		EncodingArgs: slices.Clone(s.EncodingArgs),
		DedupArgs:    slices.Clone(s.DedupArgs),
	}
}

// BinaryName is the executable Invocation will start.
func (o Options) BinaryName() string {
	return o.withDefaults().Binary
}

// withDefaults fills fields left nil; a non-nil empty slice means "no arguments".
func (o Options) withDefaults() Options {
	def := config.Default()
	if o.Binary == "" {
		o.Binary = def.TranscoderBinary
	}
	if o.EncodingArgs == nil {
		o.EncodingArgs = def.EncodingArgs
	}
	if o.DedupArgs == nil {
		o.DedupArgs = def.DedupArgs
	}
	return o
}

// Invocation builds the command line for job:
//
//	<binary> -i <input> <encoding args> [<dedup args>] <output>
func (o Options) Invocation(job planner.Job) Invocation {
	o = o.withDefaults()

	args := make([]string, 0, 3+len(o.EncodingArgs)+len(o.DedupArgs))
	args = append(args, "-i", job.InputPath)
	args = append(args, o.EncodingArgs...)
	if job.Dedup {
		args = append(args, o.DedupArgs...)
	}
	args = append(args, job.OutputPath)

	return Invocation{Binary: o.Binary, Args: args}
}
