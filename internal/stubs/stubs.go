// Package stubs looks up the template files that generated artifacts are
// rendered from.
//
// Stubs ship embedded in the binary. A project may keep customized copies in
// a directory of <Name>.stub files, which take precedence.
package stubs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lab2view/laravel-repository-generator/internal/models"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.stub
var templateFS embed.FS

// Stub names
const (
	Repository          = "Repository"
	RepositoryEloquent  = "RepositoryEloquent"
	Contract            = "Contract"
	Policy              = "Policy"
	BaseRepository      = "BaseRepository"
	RepositoryInterface = "RepositoryInterface"
	BasePolicy          = "BasePolicy"
)

const extension = ".stub"

// Store resolves stub names to template text
type Store struct {
	customDir string
	cache     map[string]string
}

// NewStore creates a store. customDir may be empty.
func NewStore(customDir string) *Store {
	return &Store{
		customDir: customDir,
		cache:     make(map[string]string),
	}
}

// Get returns the template text for name
func (s *Store) Get(name string) (string, error) {
	if content, ok := s.cache[name]; ok {
		return content, nil
	}

	content, err := s.load(name)
	if err != nil {
		return "", err
	}

	s.cache[name] = content
	return content, nil
}

func (s *Store) load(name string) (string, error) {
	if s.customDir != "" {
		path := filepath.Join(s.customDir, name+extension)
		data, err := os.ReadFile(path)
		if err == nil {
			logrus.Debugf("Using custom stub %s", path)
			return string(data), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", models.NewConfigError(path, fmt.Errorf("failed to read stub: %w", err))
		}
	}

	data, err := templateFS.ReadFile("templates/" + name + extension)
	if err != nil {
		return "", models.NewStubError(name)
	}
	return string(data), nil
}

// Names lists the bundled stubs in alphabetical order
func Names() []string {
	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), extension))
	}
	sort.Strings(names)
	return names
}

// FileName returns the on-disk file name for a stub
func FileName(name string) string {
	return name + extension
}
