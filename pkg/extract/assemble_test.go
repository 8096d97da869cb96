package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssemble_NoBlocks_EndsAfterContentsHeader(t *testing.T) {
	got := Assemble("root/", nil)

	assert.Equal(t, "Directory structure:\nroot/\n\nFile contents:", got)
}

func TestAssemble_BlocksLabeledAndSeparatedByBlankLine(t *testing.T) {
	tree := "root/\n├── a.ts\n└── b.ts"
	blocks := []ContentBlock{
		{RelPath: "a.ts", Text: "const x = 1;"},
		{RelPath: "b.ts", Text: "const y = 2;"},
	}

	got := Assemble(tree, blocks)

	want := `Directory structure:
root/
├── a.ts
└── b.ts

File contents:

** [a.ts] **
const x = 1;

** [b.ts] **
const y = 2;`
	assert.Equal(t, want, got)
}

func TestAssemble_RelativePathsKeptVerbatimInLabels(t *testing.T) {
	got := Assemble("root/", []ContentBlock{{RelPath: "src/deep/app.tsx", Text: "x"}})

	assert.Contains(t, got, "** [src/deep/app.tsx] **\nx")
}
