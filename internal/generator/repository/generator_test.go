package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lab2view/laravel-repository-generator/internal/config"
	"github.com/lab2view/laravel-repository-generator/internal/generator"
	"github.com/lab2view/laravel-repository-generator/internal/models"
	"github.com/lab2view/laravel-repository-generator/internal/placeholder"
	"github.com/lab2view/laravel-repository-generator/internal/resolver"
	"github.com/lab2view/laravel-repository-generator/internal/stubs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T, cfg models.GeneratorConfig) (*resolver.Resolver, string) {
	t.Helper()
	project := t.TempDir()
	res, err := resolver.New(cfg, models.RunOptions{ProjectDir: project})
	require.NoError(t, err)
	return res, project
}

func render(t *testing.T, gen generator.Generator, model models.ModelName) string {
	t.Helper()
	stub, err := stubs.NewStore("").Get(gen.StubName())
	require.NoError(t, err)
	return gen.Placeholders(model).Apply(stub)
}

func TestPlainRepository(t *testing.T) {
	res, _ := newResolver(t, config.Defaults())
	gen := NewGenerator(config.Defaults(), res, false)

	assert.Equal(t, models.KindRepository, gen.Kind())
	assert.Equal(t, stubs.Repository, gen.StubName())
	assert.Equal(t, "ProductRepository", gen.ClassName("Product"))
	assert.Equal(t, "ProductRepository.php", generator.FileName(gen, "Product"))

	set := gen.Placeholders("Product")
	var tokens []string
	for _, p := range set {
		tokens = append(tokens, p.Token)
	}
	assert.Equal(t, []string{
		placeholder.UseStatementForRepository,
		placeholder.RepositoriesNamespace,
		placeholder.BaseRepository,
		placeholder.Repository,
		placeholder.ModelsNamespace,
		placeholder.Model,
	}, tokens)

	content := render(t, gen, "Product")
	assert.Contains(t, content, `use App\Models\Product;`)
	assert.Contains(t, content, "@param Product $model")
	assert.Empty(t, placeholder.Missing(content))
}

func TestContractRepositoryWithoutContractFile(t *testing.T) {
	res, _ := newResolver(t, config.Defaults())
	gen := NewGenerator(config.Defaults(), res, true)

	assert.Equal(t, stubs.RepositoryEloquent, gen.StubName())
	assert.Equal(t, "ProductRepositoryEloquent", gen.ClassName("Product"))

	set := gen.Placeholders("Product")
	use, ok := set.Value(placeholder.UseStatementForContract)
	assert.True(t, ok)
	assert.Equal(t, "", use)

	content := render(t, gen, "Product")
	assert.NotContains(t, content, "implements")
	assert.NotContains(t, content, `App\Contracts`)
	assert.Contains(t, content, "class ProductRepositoryEloquent extends BaseRepository\n")
}

func TestContractRepositoryWithContractFile(t *testing.T) {
	res, project := newResolver(t, config.Defaults())
	contracts := filepath.Join(project, "app", "Contracts")
	require.NoError(t, os.MkdirAll(contracts, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(contracts, "ProductRepository.php"), []byte("<?php\n"), 0644))

	content := render(t, NewGenerator(config.Defaults(), res, true), "Product")
	assert.Contains(t, content, `use App\Contracts\ProductRepository;`)
	assert.Contains(t, content, "class ProductRepositoryEloquent extends BaseRepository implements ProductRepository\n")
}

func TestLocalBaseRepositoryIsNotImported(t *testing.T) {
	cfg := config.Defaults()
	cfg.BaseRepositoryClass = `App\Repositories\BaseRepository`
	res, _ := newResolver(t, cfg)

	content := render(t, NewGenerator(cfg, res, false), "Product")
	assert.NotContains(t, content, "use App\\Repositories\\BaseRepository;")
	assert.Contains(t, content, "extends BaseRepository")
}
