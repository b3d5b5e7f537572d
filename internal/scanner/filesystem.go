package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lab2view/laravel-repository-generator/internal/models"
	"github.com/lab2view/laravel-repository-generator/internal/utils"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/sirupsen/logrus"
)

// FileSystemScanner implements ModelScanner by listing model files
type FileSystemScanner struct {
	exclude *ignore.GitIgnore
}

// NewFileSystemScanner creates a scanner. Files matching any of the
// gitignore-style exclude patterns are left out.
func NewFileSystemScanner(exclude ...string) *FileSystemScanner {
	s := &FileSystemScanner{}
	if len(exclude) > 0 {
		s.exclude = ignore.CompileIgnoreLines(exclude...)
	}
	return s
}

// Scan lists the *.php files directly inside dir (not recursive) and returns
// their names without extension, in directory listing order.
func (s *FileSystemScanner) Scan(ctx context.Context, dir string) ([]models.ModelName, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, models.NewConfigError(dir, errors.New("the models directory does not exist"))
		}
		return nil, models.NewConfigError(dir, fmt.Errorf("failed to read models directory: %w", err))
	}
	if !info.IsDir() {
		return nil, models.NewConfigError(dir, errors.New("the models directory is not a directory"))
	}

	files, err := utils.ListFiles(dir, ModelExtension)
	if err != nil {
		return nil, models.NewConfigError(dir, fmt.Errorf("failed to scan directory: %w", err))
	}

	var names []models.ModelName
	for _, file := range files {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		base := filepath.Base(file)
		if s.exclude != nil && s.exclude.MatchesPath(base) {
			logrus.Debugf("Excluded model file: %s", base)
			continue
		}

		name := models.ModelName(strings.TrimSuffix(base, ModelExtension))
		logrus.Debugf("Found model: %s", name)
		names = append(names, name)
	}

	logrus.Debugf("Found %d models in %s", len(names), dir)
	return names, nil
}
