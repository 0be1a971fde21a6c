package main

import (
	"github.com/heyjunin/yt/pkg/app"
	"github.com/heyjunin/yt/pkg/config"
	"github.com/heyjunin/yt/pkg/transcoder"
	"github.com/spf13/cobra"
)

func newNewProjCommand(cc *commandContext) *cobra.Command {
	var projName, videoRootDir string

	cmd := &cobra.Command{
		Use:   "new-proj",
		Short: "Create the folder structure of a new project",
		Long: `The new-proj script will create the common folder structure
(audio/, photo/, video/) at the root directory with the provided project name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewProjectConfig("new-proj", projName, cc.rootDir(videoRootDir), cc.verbose, false, false)
			if err != nil {
				return err
			}
			return cc.newApp(transcoder.OptionsFromSettings(cc.settings), cfg.ProjectName).
				Run(cmd.Context(), app.NewProject{Config: cfg})
		},
	}

	cmd.Flags().StringVarP(&projName, "proj-name", "n", "", "The name of the new project (required)")
	cmd.Flags().StringVarP(&videoRootDir, "video-root-dir", "r", "", "The video root directory (default "+config.DefaultVideoRootDir+")")

	return cmd
}
