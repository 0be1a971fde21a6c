package main

import (
	"github.com/heyjunin/yt/pkg/app"
	"github.com/heyjunin/yt/pkg/config"
	"github.com/heyjunin/yt/pkg/transcoder"
	"github.com/spf13/cobra"
)

func newTranscodeProjCommand(cc *commandContext) *cobra.Command {
	var (
		projName        string
		videoRootDir    string
		mock            bool
		pruneDuplicates bool
		ffmpegBinary    string
	)

	cmd := &cobra.Command{
		Use:   "transcode-proj",
		Short: "Transcode all the files in a project's video/ folder",
		Long: `The transcode-proj script will transcode all the files in the
projName/video/ folder, one at a time, and then mark the project as
transcoded so the (expensive) batch is never repeated by accident.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewProjectConfig("transcode-proj", projName, cc.rootDir(videoRootDir), cc.verbose, mock, pruneDuplicates)
			if err != nil {
				return err
			}

			opts := transcoder.OptionsFromSettings(cc.settings)
			if ffmpegBinary != "" {
				opts.Binary = ffmpegBinary
			}
			return cc.newApp(opts, cfg.ProjectName).Run(cmd.Context(), app.TranscodeProject{Config: cfg})
		},
	}

	cmd.Flags().StringVarP(&projName, "proj-name", "n", "", "The name of the project for which to transcode source footage (required)")
	cmd.Flags().StringVarP(&videoRootDir, "video-root-dir", "r", "", "The video root directory (default "+config.DefaultVideoRootDir+")")
	cmd.Flags().BoolVarP(&mock, "mock", "m", false, "Print the transcode commands without running them")
	cmd.Flags().BoolVarP(&pruneDuplicates, "prune-duplicates", "p", false, "Ask ffmpeg to drop duplicate frames from the output")
	cmd.Flags().StringVar(&ffmpegBinary, "ffmpeg", "", "Path to the transcoder binary (default from config, else ffmpeg)")

	return cmd
}
