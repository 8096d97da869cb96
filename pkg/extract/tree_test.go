package extract

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTree_EmptyDirectory_RootLineOnly(t *testing.T) {
	root := t.TempDir()

	got, err := RenderTree(root)

	require.NoError(t, err)
	assert.Equal(t, filepath.Base(root)+"/", got)
}

func TestRenderTree_SingleChain_UsesBranchConnectors(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "sub/file.ts", "x")

	got, err := RenderTree(root)

	require.NoError(t, err)
	want := filepath.Base(root) + "/\n" +
		"└── sub/\n" +
		"    └── file.ts"
	assert.Equal(t, want, got)
}

func TestRenderTree_SiblingEntries_MiddleAndLastConnectors(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "one.ts", "x")
	writeFile(t, root, "two.ts", "x")

	got, err := RenderTree(root)

	require.NoError(t, err)
	// Listing order is filesystem-dependent, but exactly one entry is last.
	assert.Equal(t, 1, strings.Count(got, "├── "))
	assert.Equal(t, 1, strings.Count(got, "└── "))
}

func TestRenderTree_ContinuationPrefixForNestedEntries(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "sub/inner/deep.ts", "x")

	got, err := RenderTree(root)

	require.NoError(t, err)
	assert.Contains(t, got, "└── sub/\n    └── inner/\n        └── deep.ts")
}

func TestRenderTree_IneligibleEntriesStillListed(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "readme.svg", "<svg/>")
	writeFile(t, root, "components/button.tsx", "x")

	got, err := RenderTree(root)

	require.NoError(t, err)
	assert.Contains(t, got, "readme.svg")
	assert.Contains(t, got, "components/")
	assert.Contains(t, got, "button.tsx")
}

func TestRenderTree_MissingDirectory_ReturnsError(t *testing.T) {
	root := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := RenderTree(root)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read directory")
}
