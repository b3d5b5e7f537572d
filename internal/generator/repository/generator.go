package repository

import (
	"github.com/lab2view/laravel-repository-generator/internal/generator"
	"github.com/lab2view/laravel-repository-generator/internal/generator/contract"
	"github.com/lab2view/laravel-repository-generator/internal/models"
	"github.com/lab2view/laravel-repository-generator/internal/placeholder"
	"github.com/lab2view/laravel-repository-generator/internal/resolver"
	"github.com/lab2view/laravel-repository-generator/internal/stubs"
	"github.com/lab2view/laravel-repository-generator/internal/utils"
)

// Class name suffixes. With contracts the interface takes the plain
// "Repository" name and the implementation becomes "RepositoryEloquent".
const (
	Suffix         = "Repository"
	EloquentSuffix = "RepositoryEloquent"
)

// Generator implements the generator.Generator interface for repositories
type Generator struct {
	cfg           models.GeneratorConfig
	res           *resolver.Resolver
	withContracts bool
}

// NewGenerator creates a new repository generator. withContracts selects the
// contract-aware stub and class names.
func NewGenerator(cfg models.GeneratorConfig, res *resolver.Resolver, withContracts bool) generator.Generator {
	return &Generator{cfg: cfg, res: res, withContracts: withContracts}
}

// Kind implements generator.Generator
func (g *Generator) Kind() models.ArtifactKind {
	return models.KindRepository
}

// Target implements generator.Generator
func (g *Generator) Target() resolver.Target {
	return g.res.Target(models.KindRepository)
}

// StubName implements generator.Generator
func (g *Generator) StubName() string {
	if g.withContracts {
		return stubs.RepositoryEloquent
	}
	return stubs.Repository
}

// ClassName implements generator.Generator
func (g *Generator) ClassName(model models.ModelName) string {
	if g.withContracts {
		return string(model) + EloquentSuffix
	}
	return string(model) + Suffix
}

// Placeholders implements generator.Generator. The contract is only
// referenced when its file exists at the time the repository is rendered.
func (g *Generator) Placeholders(model models.ModelName) placeholder.Set {
	target := g.Target()

	var set placeholder.Set
	set.Add(placeholder.UseStatementForRepository, generator.BaseUseStatement(g.res, target, g.cfg.BaseRepositoryClass))
	set.Add(placeholder.RepositoriesNamespace, target.Namespace)
	set.Add(placeholder.BaseRepository, generator.BaseName(g.cfg.BaseRepositoryFile))
	set.Add(placeholder.Repository, g.ClassName(model))
	set.Add(placeholder.ModelsNamespace, g.res.Target(models.KindModel).Namespace)
	set.Add(placeholder.Model, string(model))

	if g.withContracts {
		var use, implements string
		contracts := g.res.Target(models.KindContract)
		name := string(model) + contract.Suffix
		if utils.FileExists(contracts.Path(name + ".php")) {
			use = generator.UseStatement(contracts.Namespace + resolver.Separator + name)
			implements = " implements " + name
		}
		set.Add(placeholder.UseStatementForContract, use)
		set.Add(placeholder.ImplementsContract, implements)
	}

	return set
}
