package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lab2view/laravel-repository-generator/internal/models"
)

// WriteFile writes data to a file, creating directories as needed
func WriteFile(path string, data []byte, perm os.FileMode) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(path, data, perm)
}

// EnsureDir ensures a directory exists, creating it if necessary
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// FileExists reports whether path exists and is a regular file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// DirExists reports whether path exists and is a directory
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ListFiles returns the regular files directly inside dir whose name ends in
// ext, in directory listing order. Symlinks to regular files are included.
func ListFiles(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !isRegular(path, entry) {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

func isRegular(path string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		return err == nil && info.Mode().IsRegular()
	}
	return entry.Type().IsRegular()
}

// CheckWritable fails with a permission error when dir cannot be written to.
// A directory that does not exist yet is checked through its nearest existing
// ancestor, which is where it will be created.
func CheckWritable(dir string) error {
	target := filepath.Clean(dir)
	for {
		info, err := os.Stat(target)
		if err == nil {
			if !info.IsDir() {
				return models.NewPermissionError(target)
			}
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return models.NewPermissionError(target)
		}

		parent := filepath.Dir(target)
		if parent == target {
			return models.NewPermissionError(dir)
		}
		target = parent
	}

	if !isWritable(target) {
		return models.NewPermissionError(target)
	}
	return nil
}
