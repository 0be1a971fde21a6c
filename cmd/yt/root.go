package main

import (
	"io"

	"github.com/google/uuid"
	"github.com/heyjunin/yt/pkg/app"
	"github.com/heyjunin/yt/pkg/config"
	"github.com/heyjunin/yt/pkg/errors"
	"github.com/heyjunin/yt/pkg/guard"
	"github.com/heyjunin/yt/pkg/logger"
	"github.com/heyjunin/yt/pkg/progress"
	"github.com/heyjunin/yt/pkg/transcoder"
	"github.com/spf13/cobra"
)

// commandContext carries what the root command resolves before any subcommand runs.
type commandContext struct {
	stdout     io.Writer
	stderr     io.Writer
	configPath string
	verbose    bool
	settings   config.Settings
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	cc := &commandContext{stdout: stdout, stderr: stderr, settings: config.Default()}

	rootCmd := &cobra.Command{
		Use:   "yt",
		Short: "Manage YouTube video projects",
		Long: `yt manages the lifecycle of video-editing projects.

new-proj creates the audio/, photo/ and video/ folders of a new project.
transcode-proj transcodes every file in a project's video/ folder once.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cc.init()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New(errors.UsageError, errors.GetErrorMessage(errors.ErrScriptMissing), "", errors.ErrScriptMissing)
		},
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(err, errors.UsageError, errors.GetErrorMessage(errors.ErrInvalidFlag), errors.ErrInvalidFlag)
	})
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVarP(&cc.configPath, "config", "c", "", "Configuration file path (default "+config.DefaultConfigPath+")")
	rootCmd.PersistentFlags().BoolVarP(&cc.verbose, "verbose", "v", false, "Print debug output during script execution")

	rootCmd.AddCommand(newNewProjCommand(cc))
	rootCmd.AddCommand(newTranscodeProjCommand(cc))

	return rootCmd
}

func (cc *commandContext) init() error {
	settings, found, err := config.Load(cc.configPath)
	if err != nil {
		return err
	}
	cc.settings = settings

	logger.Init(logger.Options{
		Verbose: cc.verbose,
		RunID:   uuid.NewString(),
		Out:     cc.stderr,
	})
	logger.Debug("Loaded settings", "main", map[string]interface{}{
		"config_found":      found,
		"video_root_dir":    settings.VideoRootDir,
		"transcoder_binary": settings.TranscoderBinary,
	})
	return nil
}

// rootDir returns the flag value, falling back to the settings file.
func (cc *commandContext) rootDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return cc.settings.VideoRootDir
}

func (cc *commandContext) newApp(opts transcoder.Options, projectName string) *app.App {
	log := logger.NewLogger()

	var mirror io.Writer
	if cc.verbose {
		mirror = cc.stderr
	}

	return &app.App{
		Transcoder: opts,
		Runner:     transcoder.NewExecRunnerWithDeps(log, mirror),
		Guard:      guard.NewMarkerGuard(log),
		Display:    cc.stdout,
		Reporter: progress.NewReporter(
			progress.WithDescription("Transcoding "+projectName),
			progress.WithWriter(cc.stderr),
			progress.WithVisibility(!cc.verbose && logger.IsTerminal(cc.stderr)),
		),
		Logger:  log,
		Summary: renderSummary,
	}
}
