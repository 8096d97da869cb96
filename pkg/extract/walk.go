package extract

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// WalkFunc is invoked once per eligible file, in discovery order, with the
// candidate and its raw content.
type WalkFunc func(c FileCandidate, content string) error

// Walk recursively enumerates files under root depth-first, applying the
// filter and invoking fn for each eligible file. Entries are visited in the
// order the filesystem listing returns them. Subdirectories are always
// descended into; ignore patterns apply to files only. Any filesystem error
// aborts the walk.
func Walk(root string, filter *PathFilter, fn WalkFunc, logger *zap.Logger) error {
	return walkDir(root, root, filter, fn, logger)
}

func walkDir(root, dir string, filter *PathFilter, fn WalkFunc, logger *zap.Logger) error {
	entries, err := readDirUnsorted(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	for _, entry := range entries {
		entryPath := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if err := walkDir(root, entryPath, filter, fn, logger); err != nil {
				return err
			}
			continue
		}

		rel, err := filepath.Rel(root, entryPath)
		if err != nil {
			return fmt.Errorf("failed to resolve relative path for %q: %w", entryPath, err)
		}
		relPath := filepath.ToSlash(rel)

		if !filter.Eligible(relPath) {
			logger.Debug("Skipping ineligible file", zap.String("file", relPath))
			continue
		}

		content, err := os.ReadFile(entryPath)
		if err != nil {
			return fmt.Errorf("failed to read file %q: %w", entryPath, err)
		}

		candidate := FileCandidate{
			AbsPath:      entryPath,
			RelPath:      relPath,
			Extension:    strings.TrimPrefix(path.Ext(entry.Name()), "."),
			RawLineCount: len(strings.Split(string(content), "\n")),
		}
		if err := fn(candidate, string(content)); err != nil {
			return err
		}
	}

	return nil
}

// readDirUnsorted lists directory entries in the order the filesystem
// returns them. os.ReadDir sorts by name, which would break discovery order.
func readDirUnsorted(dir string) ([]os.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.ReadDir(-1)
}
