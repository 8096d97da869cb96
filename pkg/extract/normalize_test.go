package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_CollapsesWhitespaceRuns(t *testing.T) {
	assert.Equal(t, "a b c", Normalize("a\t\tb\n\n  c"))
	assert.Equal(t, "const x = 1;", Normalize("const   x =\n\t1;"))
}

func TestNormalize_TrimsLeadingAndTrailingSpace(t *testing.T) {
	assert.Equal(t, "x", Normalize("  x  "))
	assert.Equal(t, "x y", Normalize("\n\tx y\n"))
}

func TestNormalize_EmptyAndBlankInput_YieldEmpty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \n\t  "))
}

func TestNormalize_Idempotent(t *testing.T) {
	samples := []string{
		"",
		"already normal",
		"  a\t b \n c  ",
		"function f() {\n\treturn 1;\n}\n",
	}
	for _, s := range samples {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "input %q", s)
	}
}
