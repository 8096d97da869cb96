package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RenderTree produces a branch-drawing ASCII tree of the directory structure
// rooted at dirPath. Every filesystem entry appears regardless of extraction
// eligibility, in the order the filesystem listing returns entries.
func RenderTree(dirPath string) (string, error) {
	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory path %q: %w", dirPath, err)
	}

	var treeBuilder strings.Builder
	treeBuilder.WriteString(filepath.Base(absPath) + "/")

	subtree, err := renderSubtree(absPath, "")
	if err != nil {
		return "", err
	}
	if subtree != "" {
		treeBuilder.WriteString("\n")
		treeBuilder.WriteString(subtree)
	}

	return treeBuilder.String(), nil
}

// renderSubtree builds the tree structure recursively.
func renderSubtree(directory, prefix string) (string, error) {
	entries, err := readDirUnsorted(directory)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %q: %w", directory, err)
	}

	var output []string
	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		if entry.IsDir() {
			output = append(output, prefix+connector+entry.Name()+"/")
			subtree, err := renderSubtree(filepath.Join(directory, entry.Name()), prefix+extension)
			if err != nil {
				return "", err
			}
			if subtree != "" {
				output = append(output, subtree)
			}
		} else {
			output = append(output, prefix+connector+entry.Name())
		}
	}

	return strings.Join(output, "\n"), nil
}
