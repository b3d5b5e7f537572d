// Package publisher copies the generator's configuration, stubs and base
// artifacts into a project so they can be customized there.
package publisher

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lab2view/laravel-repository-generator/internal/config"
	"github.com/lab2view/laravel-repository-generator/internal/generator"
	"github.com/lab2view/laravel-repository-generator/internal/models"
	"github.com/lab2view/laravel-repository-generator/internal/placeholder"
	"github.com/lab2view/laravel-repository-generator/internal/resolver"
	"github.com/lab2view/laravel-repository-generator/internal/stubs"
	"github.com/lab2view/laravel-repository-generator/internal/utils"
	"github.com/sirupsen/logrus"
)

// StubsDir is where stubs are published, relative to the project
const StubsDir = "stubs/repository-generator"

// Options selects what gets published
type Options struct {
	ProjectDir string
	Stubs      bool // Publish every stub for customization
	Base       bool // Publish the base repository, interface and policy
	Force      bool // Replace files that already exist
}

// Published records one published file
type Published struct {
	Path    string
	Written bool // False when an existing file was kept
}

// Publish writes the configuration file and, depending on opts, the stubs and
// base artifacts. The written configuration points at whatever was published.
func Publish(cfg models.GeneratorConfig, opts Options) ([]Published, error) {
	projectDir := opts.ProjectDir
	if projectDir == "" {
		projectDir = "."
	}

	previous := cfg
	if opts.Stubs && cfg.StubsPath == "" {
		cfg.StubsPath = StubsDir
	}
	if opts.Base {
		cfg.BaseRepositoryClass = cfg.RepositoriesNamespace + resolver.Separator + generator.BaseName(cfg.BaseRepositoryFile)
		cfg.BaseContractInterface = cfg.ContractsNamespace + resolver.Separator + generator.BaseName(cfg.BaseContractFile)
		cfg.BasePolicyClass = cfg.PoliciesNamespace + resolver.Separator + generator.BaseName(cfg.BasePolicyFile)
	}

	var published []Published
	write := func(path string, content []byte) error {
		p, err := publishFile(path, content, opts.Force)
		if err != nil {
			return err
		}
		published = append(published, p)
		return nil
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return nil, models.NewConfigError("", fmt.Errorf("failed to render config: %w", err))
	}
	if err := write(filepath.Join(projectDir, config.DefaultFile), data); err != nil {
		return published, err
	}
	if kept := published[0]; !kept.Written {
		if stale := staleKeys(previous, cfg); len(stale) > 0 {
			logrus.Warnf("%s was kept, so %s still point at the previous values; rerun with --force to update them",
				kept.Path, strings.Join(stale, ", "))
		}
	}

	store := stubs.NewStore("")
	if opts.Stubs {
		for _, name := range stubs.Names() {
			content, err := store.Get(name)
			if err != nil {
				return published, err
			}
			if err := write(filepath.Join(projectDir, cfg.StubsPath, stubs.FileName(name)), []byte(content)); err != nil {
				return published, err
			}
		}
	}

	if opts.Base {
		res, err := resolver.New(cfg, models.RunOptions{ProjectDir: projectDir})
		if err != nil {
			return published, err
		}
		for _, artifact := range baseArtifacts(cfg, res) {
			stub, err := store.Get(artifact.stub)
			if err != nil {
				return published, err
			}
			if err := write(artifact.path, []byte(artifact.set.Apply(stub))); err != nil {
				return published, err
			}
		}
	}

	return published, nil
}

// staleKeys lists the config keys publishing changed, by yaml name
func staleKeys(previous, published models.GeneratorConfig) []string {
	var keys []string
	for _, field := range []struct {
		key       string
		old, want string
	}{
		{"stubs_path", previous.StubsPath, published.StubsPath},
		{"base_repository_class", previous.BaseRepositoryClass, published.BaseRepositoryClass},
		{"base_contract_interface", previous.BaseContractInterface, published.BaseContractInterface},
		{"base_policy_class", previous.BasePolicyClass, published.BasePolicyClass},
	} {
		if field.old != field.want {
			keys = append(keys, field.key)
		}
	}
	return keys
}

type baseArtifact struct {
	stub string
	path string
	set  placeholder.Set
}

func baseArtifacts(cfg models.GeneratorConfig, res *resolver.Resolver) []baseArtifact {
	contracts := res.Target(models.KindContract)
	repositories := res.Target(models.KindRepository)
	policies := res.Target(models.KindPolicy)

	var contractSet placeholder.Set
	contractSet.Add(placeholder.ContractsNamespace, contracts.Namespace)
	contractSet.Add(placeholder.BaseContract, generator.BaseName(cfg.BaseContractFile))

	var repositorySet placeholder.Set
	repositorySet.Add(placeholder.RepositoriesNamespace, repositories.Namespace)
	repositorySet.Add(placeholder.UseStatementForContract, generator.BaseUseStatement(res, repositories, cfg.BaseContractInterface))
	repositorySet.Add(placeholder.BaseRepository, generator.BaseName(cfg.BaseRepositoryFile))
	repositorySet.Add(placeholder.BaseContract, generator.BaseName(cfg.BaseContractFile))

	userUse := ""
	if res.ClassExists(cfg.UserClass) {
		userUse = generator.UseStatement(cfg.UserClass)
	}
	user := "User"
	if cfg.UserClass != "" {
		user = resolver.ShortName(cfg.UserClass)
	}

	var policySet placeholder.Set
	policySet.Add(placeholder.PoliciesNamespace, policies.Namespace)
	policySet.Add(placeholder.UseStatementForUserModel, userUse)
	policySet.Add(placeholder.BasePolicy, generator.BaseName(cfg.BasePolicyFile))
	policySet.Add(placeholder.User, user)

	return []baseArtifact{
		{stub: stubs.RepositoryInterface, path: contracts.BasePath(), set: contractSet},
		{stub: stubs.BaseRepository, path: repositories.BasePath(), set: repositorySet},
		{stub: stubs.BasePolicy, path: policies.BasePath(), set: policySet},
	}
}

func publishFile(path string, content []byte, force bool) (Published, error) {
	if utils.FileExists(path) && !force {
		logrus.Infof("Kept existing file: %s", path)
		return Published{Path: path}, nil
	}

	if err := utils.CheckWritable(filepath.Dir(path)); err != nil {
		return Published{}, err
	}
	if err := utils.WriteFile(path, content, 0644); err != nil {
		return Published{}, &models.GenError{Type: models.ErrFileOp, Path: path, Err: err}
	}

	logrus.Infof("Published file: %s", path)
	return Published{Path: path, Written: true}, nil
}
