//go:build !unix

package utils

import "os"

// isWritable probes dir with a temporary file where access(2) is unavailable
func isWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".writable-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}
