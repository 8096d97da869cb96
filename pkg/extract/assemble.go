package extract

import (
	"fmt"
	"strings"
)

// Assemble joins the rendered tree and all content blocks into the final
// artifact. Each block is labeled with its relative path; blocks are
// separated by a blank line.
func Assemble(tree string, blocks []ContentBlock) string {
	sections := []string{
		"Directory structure:\n" + tree,
		"File contents:",
	}
	for _, block := range blocks {
		sections = append(sections, fmt.Sprintf("** [%s] **\n%s", block.RelPath, block.Text))
	}
	return strings.Join(sections, "\n\n")
}
