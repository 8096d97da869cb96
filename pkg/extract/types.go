package extract

import "io"

// LongFileThreshold is the raw line count above which a file goes through
// interactive triage before its content enters the output.
const LongFileThreshold = 300

// DefaultExtensions is the allow-set of source file extensions, without the
// leading dot. Matching is case-sensitive.
var DefaultExtensions = []string{"js", "ts", "jsx", "tsx"}

// DefaultIgnorePatterns are glob patterns matched against slash-separated
// paths relative to the scan root.
var DefaultIgnorePatterns = []string{"components/*.*", "*.svg"}

// Options holds the configuration for a single extraction run.
type Options struct {
	Directory   string             // Directory to scan.
	PromptIn    io.Reader          // Source for triage answers; defaults to os.Stdin.
	Out         io.Writer          // Destination for the tree, artifact and status lines; defaults to os.Stdout.
	CopyFunc    func(string) error // Clipboard sink; defaults to clipboard.WriteAll.
	CountTokens bool               // If true, report the artifact's token count.
	TokenModel  string             // Model whose encoding is used for token counts.
}

// FileCandidate describes a discovered eligible file before a triage
// decision is made.
type FileCandidate struct {
	AbsPath      string // Absolute path of the file.
	RelPath      string // Slash-separated path relative to the scan root.
	Extension    string // File extension without the leading dot.
	RawLineCount int    // Number of raw lines in the file content.
}

// ContentBlock holds one included file's labeled, normalized content.
type ContentBlock struct {
	RelPath string // Slash-separated path relative to the scan root.
	Text    string // Whitespace-normalized content, possibly trimmed.
}
