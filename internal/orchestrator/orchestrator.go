// Package orchestrator runs one generation: scan models, then generate
// contracts, policies and repositories in that order.
package orchestrator

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/lab2view/laravel-repository-generator/internal/generator"
	"github.com/lab2view/laravel-repository-generator/internal/generator/contract"
	"github.com/lab2view/laravel-repository-generator/internal/generator/policy"
	"github.com/lab2view/laravel-repository-generator/internal/generator/repository"
	"github.com/lab2view/laravel-repository-generator/internal/models"
	"github.com/lab2view/laravel-repository-generator/internal/placeholder"
	"github.com/lab2view/laravel-repository-generator/internal/prompt"
	"github.com/lab2view/laravel-repository-generator/internal/resolver"
	"github.com/lab2view/laravel-repository-generator/internal/scanner"
	"github.com/lab2view/laravel-repository-generator/internal/utils"
	"github.com/lab2view/laravel-repository-generator/internal/writer"
	"github.com/sirupsen/logrus"
)

// StubSource provides stub templates by name
type StubSource interface {
	Get(name string) (string, error)
}

// RunConfig is everything one run needs. It is built once and not modified
// afterwards.
type RunConfig struct {
	Config  models.GeneratorConfig
	Options models.RunOptions
}

// Report lists what a run did, in generation order
type Report struct {
	ModelsDir string
	Models    []models.ModelName
	Files     []models.GeneratedFile
}

// Count returns how many files of kind ended with status
func (r *Report) Count(kind models.ArtifactKind, status models.FileStatus) int {
	n := 0
	for _, f := range r.Files {
		if f.Kind == kind && f.Status == status {
			n++
		}
	}
	return n
}

// Orchestrator wires scanner, stubs, generators and writer together
type Orchestrator struct {
	scanner   scanner.ModelScanner
	stubs     StubSource
	confirmer prompt.Confirmer
}

// New creates an orchestrator. confirmer answers the overwrite question
// unless the run is forced or non-interactive.
func New(sc scanner.ModelScanner, stubs StubSource, confirmer prompt.Confirmer) *Orchestrator {
	return &Orchestrator{
		scanner:   sc,
		stubs:     stubs,
		confirmer: confirmer,
	}
}

// Run executes the generation. Configuration and permission errors abort the
// run before the step that raised them writes anything.
func (o *Orchestrator) Run(ctx context.Context, run RunConfig) (*Report, error) {
	opts := run.Options

	// Init
	res, err := resolver.New(run.Config, opts)
	if err != nil {
		return nil, err
	}

	generators := o.generators(run.Config, res, opts)
	for _, gen := range generators {
		if err := utils.CheckWritable(gen.Target().Dir); err != nil {
			return nil, err
		}
	}

	// ScanModels
	report := &Report{ModelsDir: res.Target(models.KindModel).Dir}
	report.Models, err = o.scanner.Scan(ctx, report.ModelsDir)
	if err != nil {
		return nil, err
	}

	if len(report.Models) == 0 {
		logrus.Warn("Repository generator has stopped!")
		logrus.Infof("There are no model files to use in directory: %q", report.ModelsDir)
		return report, nil
	}

	logrus.Infof("Found %d models in %s", len(report.Models), report.ModelsDir)

	// Generate contracts, policies, repositories
	confirmer := o.confirmerFor(opts)
	for _, gen := range generators {
		if err := o.generate(ctx, gen, report, confirmer, opts.Diff); err != nil {
			return report, err
		}
	}

	return report, nil
}

// generators returns the requested generators in run order
func (o *Orchestrator) generators(cfg models.GeneratorConfig, res *resolver.Resolver, opts models.RunOptions) []generator.Generator {
	var gens []generator.Generator
	if opts.Contracts {
		gens = append(gens, contract.NewGenerator(cfg, res))
	}
	if opts.Policies {
		gens = append(gens, policy.NewGenerator(cfg, res))
	}
	return append(gens, repository.NewGenerator(cfg, res, opts.Contracts))
}

func (o *Orchestrator) confirmerFor(opts models.RunOptions) prompt.Confirmer {
	switch {
	case opts.Force:
		return prompt.Static(true)
	case opts.NoInteraction || o.confirmer == nil:
		return prompt.Static(false)
	default:
		return o.confirmer
	}
}

// generate runs one artifact-kind batch
func (o *Orchestrator) generate(ctx context.Context, gen generator.Generator, report *Report, confirmer prompt.Confirmer, showDiff bool) error {
	kind := gen.Kind()
	target := gen.Target()

	stub, err := o.stubs.Get(gen.StubName())
	if err != nil {
		return err
	}

	logrus.Debugf("Generating %s files in %s", kind, target.Dir)

	batch, err := writer.Open(target, confirmer, showDiff)
	if err != nil {
		return err
	}

	for _, model := range report.Models {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		set := gen.Placeholders(model)
		content := set.Apply(stub)
		if left := placeholder.Missing(content); len(left) > 0 {
			logrus.Debugf("Unknown placeholders left in %s stub: %v", gen.StubName(), left)
		}

		path := target.Path(generator.FileName(gen, model))
		status, err := batch.Write(path, []byte(content))
		if err != nil {
			return fmt.Errorf("failed to write %s file %s: %w", kind, filepath.Base(path), err)
		}

		class := gen.ClassName(model)
		switch status {
		case models.StatusCreated:
			logrus.Infof("Created %s file: %s", kind, class)
		case models.StatusOverridden:
			logrus.Infof("Overridden %s file: %s", kind, class)
		default:
			logrus.Debugf("Skipped existing %s file: %s", kind, class)
		}

		report.Files = append(report.Files, models.GeneratedFile{
			Kind:   kind,
			Model:  model,
			Class:  class,
			Path:   path,
			Status: status,
		})
	}

	return nil
}
