package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrRootNotFound is returned when no ancestor holds a site indicator.
var ErrRootNotFound = errors.New("root not found")

// DefaultContentDir is the content directory used when none is configured.
const DefaultContentDir = "content"

// rootIndicators mark the top of a static site.
// "config" matches the config/_default/ directory layout.
var rootIndicators = []string{
	"hugo.toml", "hugo.yaml", "hugo.yml", "hugo.json",
	"config.toml", "config.yaml", "config.yml", "config.json",
	"config",
	".git",
}

// FindRoot recursively looks upwards for a site root.
// The first directory that holds contentDir, or any site root indicator, wins.
// An absolute contentDir is not searched for; only the indicators count then.
// If found, returns the absolute path to the root.
func FindRoot(startDir, contentDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	if contentDir == "" {
		contentDir = DefaultContentDir
	}

	dir := abs
	for {
		if !filepath.IsAbs(contentDir) && isDir(filepath.Join(dir, contentDir)) {
			return dir, nil
		}
		for _, name := range rootIndicators {
			if hasFile(dir, name) {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", ErrRootNotFound
}

// ResolveRoot is FindRoot falling back to startDir itself.
func ResolveRoot(startDir, contentDir string) (string, error) {
	root, err := FindRoot(startDir, contentDir)
	if errors.Is(err, ErrRootNotFound) {
		return filepath.Abs(startDir)
	}
	return root, err
}

func hasFile(dir, name string) bool {
	path := filepath.Join(dir, name)
	_, err := os.Stat(path)
	return err == nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
