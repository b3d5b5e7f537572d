package stubs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lab2view/laravel-repository-generator/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEmbedded(t *testing.T) {
	store := NewStore("")

	for _, name := range []string{Repository, RepositoryEloquent, Contract, Policy} {
		content, err := store.Get(name)
		require.NoError(t, err, name)
		assert.Contains(t, content, "<?php")
	}
}

func TestGetUnknownStub(t *testing.T) {
	_, err := NewStore("").Get("Observer")
	require.Error(t, err)
	assert.True(t, models.IsType(err, models.ErrStub))
	assert.True(t, models.IsConfiguration(err))
}

func TestCustomStubTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Contract.stub"), []byte("custom {{ contract }}"), 0644))

	store := NewStore(dir)

	content, err := store.Get(Contract)
	require.NoError(t, err)
	assert.Equal(t, "custom {{ contract }}", content)

	// Stubs missing from the custom directory fall back to the bundled ones
	content, err = store.Get(Policy)
	require.NoError(t, err)
	assert.Contains(t, content, "class {{ policy }}")
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{
		BasePolicy, BaseRepository, Contract, Policy, Repository, RepositoryEloquent, RepositoryInterface,
	}, Names())
}
