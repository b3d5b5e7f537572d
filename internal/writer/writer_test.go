package writer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lab2view/laravel-repository-generator/internal/models"
	"github.com/lab2view/laravel-repository-generator/internal/resolver"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingConfirmer records how often it was asked
type countingConfirmer struct {
	answer bool
	asked  int
	err    error
}

func (c *countingConfirmer) Confirm(string) (bool, error) {
	c.asked++
	return c.answer, c.err
}

func newTarget(t *testing.T) resolver.Target {
	t.Helper()
	return resolver.Target{
		Kind:      models.KindRepository,
		Namespace: `App\Repositories`,
		Dir:       filepath.Join(t.TempDir(), "app", "Repositories"),
		BaseFile:  "BaseRepository.php",
	}
}

func TestOpenCreatesDirectoryWithoutPrompt(t *testing.T) {
	target := newTarget(t)
	confirmer := &countingConfirmer{}

	b, err := Open(target, confirmer, false)
	require.NoError(t, err)
	assert.DirExists(t, target.Dir)
	assert.Equal(t, 0, confirmer.asked)
	assert.Empty(t, b.Existing())
	assert.False(t, b.Overwrite())

	status, err := b.Write(target.Path("UserRepository.php"), []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusCreated, status)
}

func TestBaseArtifactIsNeverACollision(t *testing.T) {
	target := newTarget(t)
	require.NoError(t, os.MkdirAll(target.Dir, 0755))
	require.NoError(t, os.WriteFile(target.BasePath(), []byte("base"), 0644))

	confirmer := &countingConfirmer{answer: true}
	b, err := Open(target, confirmer, false)
	require.NoError(t, err)

	assert.Empty(t, b.Existing())
	assert.Equal(t, 0, confirmer.asked, "the base file alone must not trigger the prompt")
}

func TestOverwriteDeclined(t *testing.T) {
	target := newTarget(t)
	require.NoError(t, os.MkdirAll(target.Dir, 0755))
	existing := target.Path("UserRepository.php")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0644))
	require.NoError(t, os.WriteFile(target.BasePath(), []byte("base"), 0644))

	confirmer := &countingConfirmer{answer: false}
	b, err := Open(target, confirmer, true)
	require.NoError(t, err)
	assert.Equal(t, []string{existing}, b.Existing())

	status, err := b.Write(existing, []byte("new"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusSkipped, status)

	status, err = b.Write(target.Path("OrderRepository.php"), []byte("order"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusCreated, status)

	data, _ := os.ReadFile(existing)
	assert.Equal(t, "old", string(data))
	assert.Equal(t, 1, confirmer.asked)
}

func TestOverwriteAcceptedHoldsForWholeBatch(t *testing.T) {
	target := newTarget(t)
	require.NoError(t, os.MkdirAll(target.Dir, 0755))
	user := target.Path("UserRepository.php")
	order := target.Path("OrderRepository.php")
	require.NoError(t, os.WriteFile(user, []byte("old user"), 0644))
	require.NoError(t, os.WriteFile(order, []byte("old order"), 0644))

	confirmer := &countingConfirmer{answer: true}
	b, err := Open(target, confirmer, false)
	require.NoError(t, err)

	for _, path := range []string{order, user} {
		status, err := b.Write(path, []byte("new"))
		require.NoError(t, err)
		assert.Equal(t, models.StatusOverridden, status)
		data, _ := os.ReadFile(path)
		assert.Equal(t, "new", string(data))
	}
	assert.Equal(t, 1, confirmer.asked)
}

func TestNewBatchStartsWithOverwriteOff(t *testing.T) {
	target := newTarget(t)
	require.NoError(t, os.MkdirAll(target.Dir, 0755))
	require.NoError(t, os.WriteFile(target.Path("UserRepository.php"), []byte("old"), 0644))

	first, err := Open(target, &countingConfirmer{answer: true}, false)
	require.NoError(t, err)
	assert.True(t, first.Overwrite())

	second, err := Open(target, &countingConfirmer{answer: false}, false)
	require.NoError(t, err)
	assert.False(t, second.Overwrite())
}

func TestOpenPropagatesPromptError(t *testing.T) {
	target := newTarget(t)
	require.NoError(t, os.MkdirAll(target.Dir, 0755))
	require.NoError(t, os.WriteFile(target.Path("UserRepository.php"), []byte("old"), 0644))

	_, err := Open(target, &countingConfirmer{err: errors.New("closed")}, false)
	assert.EqualError(t, err, "closed")
}

func TestDiffIsLoggedForExistingFiles(t *testing.T) {
	target := newTarget(t)
	require.NoError(t, os.MkdirAll(target.Dir, 0755))
	same := target.Path("SameRepository.php")
	changed := target.Path("ChangedRepository.php")
	require.NoError(t, os.WriteFile(same, []byte("a\n"), 0644))
	require.NoError(t, os.WriteFile(changed, []byte("a\nb\n"), 0644))

	hook := test.NewGlobal()
	defer hook.Reset()

	batch, err := Open(target, &countingConfirmer{answer: false}, true)
	require.NoError(t, err)

	_, err = batch.Write(same, []byte("a\n"))
	require.NoError(t, err)
	_, err = batch.Write(changed, []byte("a\nc\n"))
	require.NoError(t, err)

	var messages []string
	for _, entry := range hook.AllEntries() {
		messages = append(messages, entry.Message)
	}
	assert.Contains(t, messages, "SameRepository.php: unchanged")
	require.Len(t, messages, 2)
	assert.Contains(t, messages[1], "ChangedRepository.php: +1 -1")
}

func TestSymlinkedFileIsACollision(t *testing.T) {
	target := newTarget(t)
	require.NoError(t, os.MkdirAll(target.Dir, 0755))
	real := filepath.Join(t.TempDir(), "UserRepository.php")
	require.NoError(t, os.WriteFile(real, []byte("hand edited"), 0644))
	link := target.Path("UserRepository.php")
	require.NoError(t, os.Symlink(real, link))

	confirmer := &countingConfirmer{answer: false}
	b, err := Open(target, confirmer, false)
	require.NoError(t, err)
	assert.Equal(t, []string{link}, b.Existing())
	assert.Equal(t, 1, confirmer.asked)

	status, err := b.Write(link, []byte("generated"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusSkipped, status)

	data, _ := os.ReadFile(real)
	assert.Equal(t, "hand edited", string(data))
}
