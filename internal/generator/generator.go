package generator

import (
	"path/filepath"
	"strings"

	"github.com/lab2view/laravel-repository-generator/internal/models"
	"github.com/lab2view/laravel-repository-generator/internal/placeholder"
	"github.com/lab2view/laravel-repository-generator/internal/resolver"
)

// Generator interface for per-kind artifact generators
type Generator interface {
	// Kind returns the artifact kind this generator produces
	Kind() models.ArtifactKind

	// Target returns where the artifacts are written
	Target() resolver.Target

	// StubName returns the stub the artifacts are rendered from
	StubName() string

	// ClassName returns the generated class name for model
	ClassName(model models.ModelName) string

	// Placeholders returns the ordered replacements for model
	Placeholders(model models.ModelName) placeholder.Set
}

// FileName returns the file a generator writes for model
func FileName(g Generator, model models.ModelName) string {
	return g.ClassName(model) + ".php"
}

// UseStatement renders a PHP import of class
func UseStatement(class string) string {
	return "use " + strings.TrimLeft(class, resolver.Separator) + ";"
}

// BaseUseStatement imports the base class of an artifact unless the base
// artifact lives in the same directory as the generated one.
func BaseUseStatement(res *resolver.Resolver, target resolver.Target, baseClass string) string {
	if dir, ok := res.ClassDir(baseClass); ok && filepath.Clean(dir) == filepath.Clean(target.Dir) {
		return ""
	}
	return UseStatement(baseClass)
}

// BaseName returns the class name of a base artifact from its file name
func BaseName(file string) string {
	return strings.TrimSuffix(file, ".php")
}
