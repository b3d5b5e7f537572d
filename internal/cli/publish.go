package cli

import (
	"github.com/lab2view/laravel-repository-generator/internal/config"
	"github.com/lab2view/laravel-repository-generator/internal/publisher"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewPublishCmd creates the publish command
func NewPublishCmd() *cobra.Command {
	var opts publisher.Options

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish the configuration file into the project",
		Long: `Writes config/repository-generator.yaml. With --stubs the stubs are
copied to stubs/repository-generator for customization; with --base the
base repository, interface and policy are written into the application
and the configuration points at them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir, configPath := projectFlags(cmd)
			opts.ProjectDir = projectDir

			cfg, err := config.Load(projectDir, configPath)
			if err != nil {
				return err
			}

			published, err := publisher.Publish(cfg, opts)
			if err != nil {
				return err
			}

			written := 0
			for _, p := range published {
				if p.Written {
					written++
				}
			}
			logrus.Infof("Published %d of %d files", written, len(published))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Stubs, "stubs", false, "Publish the stubs")
	cmd.Flags().BoolVar(&opts.Base, "base", false, "Publish the base repository, interface and policy")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Overwrite published files")

	return cmd
}
