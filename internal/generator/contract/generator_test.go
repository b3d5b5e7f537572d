package contract

import (
	"testing"

	"github.com/lab2view/laravel-repository-generator/internal/config"
	"github.com/lab2view/laravel-repository-generator/internal/models"
	"github.com/lab2view/laravel-repository-generator/internal/placeholder"
	"github.com/lab2view/laravel-repository-generator/internal/resolver"
	"github.com/lab2view/laravel-repository-generator/internal/stubs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractPlaceholders(t *testing.T) {
	res, err := resolver.New(config.Defaults(), models.RunOptions{ProjectDir: t.TempDir()})
	require.NoError(t, err)
	gen := NewGenerator(config.Defaults(), res)

	assert.Equal(t, models.KindContract, gen.Kind())
	assert.Equal(t, "OrderRepository", gen.ClassName("Order"))

	set := gen.Placeholders("Order")
	assert.Equal(t, placeholder.Set{
		{Token: placeholder.UseStatementForContract, Value: `use Lab2view\RepositoryGenerator\RepositoryInterface;`},
		{Token: placeholder.ContractsNamespace, Value: `App\Contracts`},
		{Token: placeholder.BaseContract, Value: "RepositoryInterface"},
		{Token: placeholder.Contract, Value: "OrderRepository"},
	}, set)

	stub, err := stubs.NewStore("").Get(gen.StubName())
	require.NoError(t, err)
	content := set.Apply(stub)
	assert.Contains(t, content, "interface OrderRepository extends RepositoryInterface")
	assert.Empty(t, placeholder.Missing(content))
}

func TestContractOverrideNamespace(t *testing.T) {
	res, err := resolver.New(config.Defaults(), models.RunOptions{
		ProjectDir:         t.TempDir(),
		ContractsNamespace: "app/repositories/contracts",
	})
	require.NoError(t, err)

	value, ok := NewGenerator(config.Defaults(), res).Placeholders("Order").Value(placeholder.ContractsNamespace)
	assert.True(t, ok)
	assert.Equal(t, `App\Repositories\Contracts`, value)
}
