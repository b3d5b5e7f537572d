package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/lab2view/laravel-repository-generator/internal/config"
	"github.com/lab2view/laravel-repository-generator/internal/models"
	"github.com/lab2view/laravel-repository-generator/internal/orchestrator"
	"github.com/lab2view/laravel-repository-generator/internal/prompt"
	"github.com/lab2view/laravel-repository-generator/internal/scanner"
	"github.com/lab2view/laravel-repository-generator/internal/stubs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewGenerateCmd creates the generate command
func NewGenerateCmd() *cobra.Command {
	var opts models.RunOptions

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"make:repositories"},
		Short:   "Generate repositories for every model",
		Long: `Scans the models directory and generates a repository for each model.
Contracts and policies are generated too when requested. Existing files
are only replaced after confirmation, or with --force.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectDir, configPath := projectFlags(cmd)
			opts.ProjectDir = projectDir

			if err := validateOptions(&opts); err != nil {
				return err
			}

			cfg, err := config.Load(projectDir, configPath)
			if err != nil {
				return err
			}

			logrus.Info("Starting repository generation...")
			logrus.Debugf("Configuration: %+v", cfg)

			// Run generation
			return runGeneration(cmd.Context(), cmd, cfg, opts)
		},
	}

	// Artifact flags
	cmd.Flags().BoolVarP(&opts.Contracts, "contracts", "c", false, "Also generate repository contracts")
	cmd.Flags().BoolVarP(&opts.Policies, "policies", "p", false, "Also generate policies")

	// Namespace overrides
	cmd.Flags().StringVar(&opts.ModelsNamespace, "models-namespace", "", "Namespace of the models to scan")
	cmd.Flags().StringVar(&opts.ContractsNamespace, "contracts-namespace", "", "Namespace of the generated contracts")
	cmd.Flags().StringVar(&opts.RepositoriesNamespace, "repositories-namespace", "", "Namespace of the generated repositories")
	cmd.Flags().StringVar(&opts.PoliciesNamespace, "policies-namespace", "", "Namespace of the generated policies")

	// Overwrite behaviour
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Overwrite existing files without asking")
	cmd.Flags().BoolVarP(&opts.NoInteraction, "no-interaction", "n", false, "Never ask, keep existing files")
	cmd.Flags().BoolVar(&opts.Diff, "diff", false, "Log a diff for every existing file")

	return cmd
}

func validateOptions(opts *models.RunOptions) error {
	if opts.Force && opts.NoInteraction {
		return models.NewConfigError("", fmt.Errorf("--force and --no-interaction cannot be combined"))
	}
	return nil
}

func runGeneration(ctx context.Context, cmd *cobra.Command, cfg models.GeneratorConfig, opts models.RunOptions) error {
	stubsDir := cfg.StubsPath
	if stubsDir != "" && !filepath.IsAbs(stubsDir) {
		stubsDir = filepath.Join(opts.ProjectDir, stubsDir)
	}

	orch := orchestrator.New(
		scanner.NewFileSystemScanner(cfg.ExcludeModels...),
		stubs.NewStore(stubsDir),
		prompt.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout()),
	)

	report, err := orch.Run(ctx, orchestrator.RunConfig{Config: cfg, Options: opts})
	if err != nil {
		return err
	}
	if len(report.Models) == 0 {
		return nil
	}

	for _, kind := range []models.ArtifactKind{models.KindContract, models.KindPolicy, models.KindRepository} {
		created := report.Count(kind, models.StatusCreated)
		overridden := report.Count(kind, models.StatusOverridden)
		skipped := report.Count(kind, models.StatusSkipped)
		if created+overridden+skipped == 0 {
			continue
		}
		logrus.Infof("%s: %d created, %d overridden, %d skipped", kind, created, overridden, skipped)
	}

	logrus.Info("Repository generation completed successfully!")
	return nil
}
