package publisher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lab2view/laravel-repository-generator/internal/config"
	"github.com/lab2view/laravel-repository-generator/internal/stubs"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishConfigOnly(t *testing.T) {
	project := t.TempDir()

	published, err := Publish(config.Defaults(), Options{ProjectDir: project})
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.True(t, published[0].Written)

	cfg, err := config.Load(project, "")
	require.NoError(t, err)
	assert.Equal(t, config.Defaults(), cfg)
}

func TestPublishKeepsExistingFiles(t *testing.T) {
	project := t.TempDir()
	path := filepath.Join(project, config.DefaultFile)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("app_path: src\n"), 0644))

	published, err := Publish(config.Defaults(), Options{ProjectDir: project})
	require.NoError(t, err)
	assert.False(t, published[0].Written)

	data, _ := os.ReadFile(path)
	assert.Equal(t, "app_path: src\n", string(data))

	_, err = Publish(config.Defaults(), Options{ProjectDir: project, Force: true})
	require.NoError(t, err)
	data, _ = os.ReadFile(path)
	assert.Contains(t, string(data), "app_path: app")
}

func TestPublishStubs(t *testing.T) {
	project := t.TempDir()

	_, err := Publish(config.Defaults(), Options{ProjectDir: project, Stubs: true})
	require.NoError(t, err)

	for _, name := range stubs.Names() {
		assert.FileExists(t, filepath.Join(project, StubsDir, stubs.FileName(name)))
	}

	cfg, err := config.Load(project, "")
	require.NoError(t, err)
	assert.Equal(t, StubsDir, cfg.StubsPath)
}

func TestPublishBaseArtifacts(t *testing.T) {
	project := t.TempDir()

	_, err := Publish(config.Defaults(), Options{ProjectDir: project, Base: true})
	require.NoError(t, err)

	repo, err := os.ReadFile(filepath.Join(project, "app", "Repositories", "BaseRepository.php"))
	require.NoError(t, err)
	assert.Contains(t, string(repo), `namespace App\Repositories;`)
	assert.Contains(t, string(repo), `use App\Contracts\RepositoryInterface;`)
	assert.Contains(t, string(repo), "abstract class BaseRepository implements RepositoryInterface")

	contract, err := os.ReadFile(filepath.Join(project, "app", "Contracts", "RepositoryInterface.php"))
	require.NoError(t, err)
	assert.Contains(t, string(contract), "interface RepositoryInterface")

	policy, err := os.ReadFile(filepath.Join(project, "app", "Policies", "BasePolicy.php"))
	require.NoError(t, err)
	assert.Contains(t, string(policy), "abstract class BasePolicy")
	assert.Contains(t, string(policy), "public function before(?User $user, string $ability): ?bool")

	cfg, err := config.Load(project, "")
	require.NoError(t, err)
	assert.Equal(t, `App\Repositories\BaseRepository`, cfg.BaseRepositoryClass)
	assert.Equal(t, `App\Contracts\RepositoryInterface`, cfg.BaseContractInterface)
	assert.Equal(t, `App\Policies\BasePolicy`, cfg.BasePolicyClass)
}

func TestPublishBaseWarnsWhenConfigIsKept(t *testing.T) {
	project := t.TempDir()
	_, err := Publish(config.Defaults(), Options{ProjectDir: project})
	require.NoError(t, err)

	hook := test.NewGlobal()
	defer hook.Reset()

	cfg, err := config.Load(project, "")
	require.NoError(t, err)
	published, err := Publish(cfg, Options{ProjectDir: project, Base: true})
	require.NoError(t, err)
	assert.False(t, published[0].Written)
	assert.FileExists(t, filepath.Join(project, "app", "Repositories", "BaseRepository.php"))

	var warnings []string
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warnings = append(warnings, entry.Message)
		}
	}
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "base_repository_class, base_contract_interface, base_policy_class")
	assert.Contains(t, warnings[0], "--force")

	kept, err := config.Load(project, "")
	require.NoError(t, err)
	assert.Equal(t, config.Defaults().BaseRepositoryClass, kept.BaseRepositoryClass)

	hook.Reset()
	_, err = Publish(cfg, Options{ProjectDir: project, Base: true, Force: true})
	require.NoError(t, err)
	cfg, err = config.Load(project, "")
	require.NoError(t, err)
	_, err = Publish(cfg, Options{ProjectDir: project, Base: true})
	require.NoError(t, err)
	for _, entry := range hook.AllEntries() {
		assert.NotEqual(t, logrus.WarnLevel, entry.Level, entry.Message)
	}
}
