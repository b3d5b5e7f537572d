package cli

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

// logFile is the rotating log opened by --log-file, if any
var logFile *lumberjack.Logger

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "repository-generator",
		Short: "Generate repositories, contracts and policies for Laravel models",
		Long: `Repository-generator scans the models directory of a Laravel application
and generates one repository per model, optionally with a repository
contract and an authorization policy.

Generated artifacts:
  - Repositories (app/Repositories)
  - Contracts (app/Contracts, with --contracts)
  - Policies (app/Policies, with --policies)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}

			if path, _ := cmd.Flags().GetString("log-file"); path != "" {
				logFile = &lumberjack.Logger{
					Filename:   path,
					MaxSize:    10,
					MaxBackups: 3,
					MaxAge:     28,
				}
				logrus.SetOutput(io.MultiWriter(os.Stderr, logFile))
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().String("log-file", "", "Also write logs to this file (rotated)")
	rootCmd.PersistentFlags().String("project-dir", ".", "Root directory of the Laravel application")
	rootCmd.PersistentFlags().String("config", "", "Configuration file (default config/repository-generator.yaml)")

	// Add subcommands
	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewPublishCmd())

	return rootCmd
}

// Execute runs cmd and logs its error. The log file is closed and logging is
// reset to stderr whether or not the command failed.
func Execute(cmd *cobra.Command) error {
	defer closeLogFile()

	if err := cmd.Execute(); err != nil {
		logrus.Error(err)
		return err
	}
	return nil
}

func closeLogFile() {
	if logFile == nil {
		return
	}
	logrus.SetOutput(os.Stderr)
	_ = logFile.Close()
	logFile = nil
}

// projectFlags returns the project directory and configuration path
func projectFlags(cmd *cobra.Command) (string, string) {
	projectDir, _ := cmd.Flags().GetString("project-dir")
	configPath, _ := cmd.Flags().GetString("config")
	return projectDir, configPath
}
