package util

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves a leading ~/ against the user's home directory and
// makes the path absolute.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}
