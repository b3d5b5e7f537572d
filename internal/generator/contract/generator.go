package contract

import (
	"github.com/lab2view/laravel-repository-generator/internal/generator"
	"github.com/lab2view/laravel-repository-generator/internal/models"
	"github.com/lab2view/laravel-repository-generator/internal/placeholder"
	"github.com/lab2view/laravel-repository-generator/internal/resolver"
	"github.com/lab2view/laravel-repository-generator/internal/stubs"
)

// Suffix is appended to the model name to form the interface name
const Suffix = "Repository"

// Generator implements the generator.Generator interface for repository
// interfaces
type Generator struct {
	cfg models.GeneratorConfig
	res *resolver.Resolver
}

// NewGenerator creates a new contract generator
func NewGenerator(cfg models.GeneratorConfig, res *resolver.Resolver) generator.Generator {
	return &Generator{cfg: cfg, res: res}
}

// Kind implements generator.Generator
func (g *Generator) Kind() models.ArtifactKind {
	return models.KindContract
}

// Target implements generator.Generator
func (g *Generator) Target() resolver.Target {
	return g.res.Target(models.KindContract)
}

// StubName implements generator.Generator
func (g *Generator) StubName() string {
	return stubs.Contract
}

// ClassName implements generator.Generator
func (g *Generator) ClassName(model models.ModelName) string {
	return string(model) + Suffix
}

// Placeholders implements generator.Generator
func (g *Generator) Placeholders(model models.ModelName) placeholder.Set {
	target := g.Target()

	var set placeholder.Set
	set.Add(placeholder.UseStatementForContract, generator.BaseUseStatement(g.res, target, g.cfg.BaseContractInterface))
	set.Add(placeholder.ContractsNamespace, target.Namespace)
	set.Add(placeholder.BaseContract, generator.BaseName(g.cfg.BaseContractFile))
	set.Add(placeholder.Contract, g.ClassName(model))
	return set
}
