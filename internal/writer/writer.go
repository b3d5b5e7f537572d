// Package writer writes generated files and applies the overwrite policy of
// one artifact-kind batch.
package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lab2view/laravel-repository-generator/internal/models"
	"github.com/lab2view/laravel-repository-generator/internal/prompt"
	"github.com/lab2view/laravel-repository-generator/internal/resolver"
	"github.com/lab2view/laravel-repository-generator/internal/utils"
	"github.com/sirupsen/logrus"
)

const fileMode = 0644

// Batch writes the files of one artifact kind. The overwrite flag is decided
// once, when the batch opens, and holds until the batch is done.
type Batch struct {
	target    resolver.Target
	existing  map[string]bool
	ordered   []string
	overwrite bool
	showDiff  bool
}

// Open creates the target directory, collects the files already generated
// there (the base artifact excluded) and, when there are any, asks confirmer
// once whether they may be overwritten.
func Open(target resolver.Target, confirmer prompt.Confirmer, showDiff bool) (*Batch, error) {
	if err := utils.EnsureDir(target.Dir); err != nil {
		return nil, &models.GenError{Type: models.ErrFileOp, Path: target.Dir, Err: fmt.Errorf("failed to create directory: %w", err)}
	}

	files, err := utils.ListFiles(target.Dir, ".php")
	if err != nil {
		return nil, &models.GenError{Type: models.ErrFileOp, Path: target.Dir, Err: fmt.Errorf("failed to list files: %w", err)}
	}

	b := &Batch{
		target:   target,
		existing: make(map[string]bool),
		showDiff: showDiff,
	}

	base := target.BasePath()
	for _, file := range files {
		if base != "" && filepath.Clean(file) == filepath.Clean(base) {
			continue
		}
		b.existing[file] = true
		b.ordered = append(b.ordered, file)
	}

	if len(b.ordered) > 0 {
		logrus.Debugf("Found %d existing %s files in %s", len(b.ordered), target.Kind, target.Dir)
		answer, err := confirmer.Confirm(prompt.OverwriteQuestion)
		if err != nil {
			return nil, err
		}
		b.overwrite = prompt.Decide(true, answer) == prompt.DecisionWrite
	}

	return b, nil
}

// Existing returns the files that were present when the batch opened
func (b *Batch) Existing() []string {
	return append([]string(nil), b.ordered...)
}

// Overwrite reports whether existing files are written again
func (b *Batch) Overwrite() bool {
	return b.overwrite
}

// Write stores content at path unless path already existed and overwriting
// was declined.
func (b *Batch) Write(path string, content []byte) (models.FileStatus, error) {
	if !b.existing[path] {
		if err := utils.WriteFile(path, content, fileMode); err != nil {
			return models.StatusSkipped, &models.GenError{Type: models.ErrFileOp, Path: path, Err: err}
		}
		return models.StatusCreated, nil
	}

	if b.showDiff {
		b.logDiff(path, content)
	}

	if !b.overwrite {
		return models.StatusSkipped, nil
	}

	if err := utils.WriteFile(path, content, fileMode); err != nil {
		return models.StatusSkipped, &models.GenError{Type: models.ErrFileOp, Path: path, Err: err}
	}
	return models.StatusOverridden, nil
}

func (b *Batch) logDiff(path string, content []byte) {
	if sum, err := utils.FileChecksum(path); err == nil && sum == utils.Checksum(content) {
		logrus.Infof("%s: unchanged", filepath.Base(path))
		return
	}

	current, err := os.ReadFile(path)
	if err != nil {
		logrus.Warnf("Failed to read %s for diff: %v", path, err)
		return
	}
	logrus.Info(utils.FormatDiff(filepath.Base(path), string(current), string(content)))
}
