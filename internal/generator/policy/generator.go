package policy

import (
	"strings"

	"github.com/lab2view/laravel-repository-generator/internal/generator"
	"github.com/lab2view/laravel-repository-generator/internal/models"
	"github.com/lab2view/laravel-repository-generator/internal/placeholder"
	"github.com/lab2view/laravel-repository-generator/internal/resolver"
	"github.com/lab2view/laravel-repository-generator/internal/stubs"
	"github.com/sirupsen/logrus"
)

// Suffix is appended to the model name to form the policy name
const Suffix = "Policy"

// defaultUser is the type hint used when no user class is configured
const defaultUser = "User"

// Generator implements the generator.Generator interface for authorization
// policies
type Generator struct {
	cfg      models.GeneratorConfig
	res      *resolver.Resolver
	userUse  string
	userName string
}

// NewGenerator creates a new policy generator. Whether the user class can be
// imported is decided once, here.
func NewGenerator(cfg models.GeneratorConfig, res *resolver.Resolver) generator.Generator {
	g := &Generator{cfg: cfg, res: res, userName: defaultUser}

	if cfg.UserClass != "" {
		g.userName = resolver.ShortName(cfg.UserClass)
		if res.ClassExists(cfg.UserClass) {
			g.userUse = generator.UseStatement(cfg.UserClass)
		} else {
			logrus.Debugf("User class %s not found, policies will not import it", cfg.UserClass)
		}
	}

	return g
}

// Kind implements generator.Generator
func (g *Generator) Kind() models.ArtifactKind {
	return models.KindPolicy
}

// Target implements generator.Generator
func (g *Generator) Target() resolver.Target {
	return g.res.Target(models.KindPolicy)
}

// StubName implements generator.Generator
func (g *Generator) StubName() string {
	return stubs.Policy
}

// ClassName implements generator.Generator
func (g *Generator) ClassName(model models.ModelName) string {
	return string(model) + Suffix
}

// Placeholders implements generator.Generator
func (g *Generator) Placeholders(model models.ModelName) placeholder.Set {
	target := g.Target()

	var set placeholder.Set
	set.Add(placeholder.UseStatementForUserModel, g.userUse)
	set.Add(placeholder.PoliciesNamespace, target.Namespace)
	set.Add(placeholder.Policy, g.ClassName(model))
	set.Add(placeholder.ModelsNamespace, g.res.Target(models.KindModel).Namespace)
	set.Add(placeholder.Model, string(model))
	set.Add(placeholder.ModelVariable, strings.ToLower(string(model)))
	set.Add(placeholder.UseStatementForPolicy, generator.BaseUseStatement(g.res, target, g.cfg.BasePolicyClass))
	set.Add(placeholder.BasePolicy, generator.BaseName(g.cfg.BasePolicyFile))
	set.Add(placeholder.User, g.userName)
	return set
}
