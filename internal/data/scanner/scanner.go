package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tokenbar/tokenbar/internal/core/constants"
	"github.com/tokenbar/tokenbar/internal/util"
)

// SourceDiscovery resolves which log directories to scan and enumerates the
// candidate JSONL files beneath them.
type SourceDiscovery struct {
	override string // single directory or colon-separated list
	maxAge   time.Duration
}

// NewSourceDiscovery creates a discovery over the override paths, or the
// platform default directories when the override is empty.
func NewSourceDiscovery(override string) *SourceDiscovery {
	return &SourceDiscovery{
		override: override,
		maxAge:   constants.RecentFileWindow,
	}
}

// Roots returns the existing directories to scan. Missing or inaccessible
// directories are silently excluded; they are not an error.
func (d *SourceDiscovery) Roots() []string {
	var candidates []string
	if d.override != "" {
		for _, p := range strings.Split(d.override, ":") {
			if p != "" {
				candidates = append(candidates, util.ExpandPath(p))
			}
		}
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			util.LogDebugf("Cannot resolve home directory: %v", err)
			return nil
		}
		candidates = []string{
			filepath.Join(home, ".claude", "projects"),
			filepath.Join(home, ".config", "claude", "projects"),
		}
	}

	roots := make([]string, 0, len(candidates))
	for _, dir := range candidates {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			util.LogDebugf("Skipping log root %s: not a readable directory", dir)
			continue
		}
		roots = append(roots, dir)
	}
	return roots
}

// Scan enumerates all regular .jsonl files under the roots, excluding hidden
// entries, keeping only files modified within the trailing recency window.
// A file whose modification time cannot be determined is included rather
// than excluded: skipping live data is worse than one wasted parse.
func (d *SourceDiscovery) Scan(now time.Time) []string {
	start := time.Now()
	cutoff := now.Add(-d.maxAge)

	var files []string
	for _, root := range d.Roots() {
		err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
			base := filepath.Base(path)
			if err != nil {
				// Fail open for candidate files we could not stat
				if (info == nil || !info.IsDir()) && isJSONL(base) && !isHidden(base) {
					files = append(files, path)
				}
				util.LogDebugf("Scan error at %s: %v", path, err)
				return nil
			}

			if info.IsDir() {
				if isHidden(base) && path != root {
					return filepath.SkipDir
				}
				return nil
			}
			if isHidden(base) || !isJSONL(base) || !info.Mode().IsRegular() {
				return nil
			}
			if info.ModTime().Before(cutoff) {
				return nil
			}

			files = append(files, path)
			return nil
		})
		if err != nil {
			util.LogDebug(fmt.Sprintf("Walk failed for %s: %v", root, err))
		}
	}

	util.LogDebugf("Source scan found %d recent files in %v", len(files), time.Since(start))
	return files
}

func isJSONL(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".jsonl")
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
