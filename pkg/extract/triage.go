package extract

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"promptclip/pkg/console"
)

// Policy is the run-scoped triage mode governing files over the threshold.
type Policy int

const (
	// PolicyUnset prompts for each long file.
	PolicyUnset Policy = iota
	// PolicyExtractAll includes every long file in full without prompting.
	PolicyExtractAll
	// PolicySkipAll omits every long file without prompting.
	PolicySkipAll
)

// Decision describes how a single file's content enters the output.
type Decision struct {
	Include bool // Whether the file's content is included at all.
	TrimTo  int  // If positive, include only the first TrimTo raw lines.
}

// Triage resolves long-file decisions for one run. Files at or under the
// threshold always pass through in full; files over it are resolved by the
// current policy, or by prompting while the policy is unset.
type Triage struct {
	threshold int
	policy    Policy
	in        *bufio.Reader
	out       io.Writer
	logger    *zap.Logger
}

// NewTriage builds a triage controller reading answers from in and writing
// prompts to out. The policy starts unset.
func NewTriage(threshold int, in io.Reader, out io.Writer, logger *zap.Logger) *Triage {
	return &Triage{
		threshold: threshold,
		in:        bufio.NewReader(in),
		out:       out,
		logger:    logger,
	}
}

// Policy returns the current policy mode.
func (t *Triage) Policy() Policy {
	return t.policy
}

// Decide resolves how c's content enters the output. A "y" answer moves the
// policy to extract-all and a "n" answer to skip-all, both permanently for
// the rest of the run. A positive integer trims only the current file and
// leaves the policy unset, so the next long file prompts again. Any other
// answer skips the current file and leaves the policy unset.
func (t *Triage) Decide(c FileCandidate) Decision {
	if c.RawLineCount <= t.threshold {
		return Decision{Include: true}
	}

	switch t.policy {
	case PolicyExtractAll:
		return Decision{Include: true}
	case PolicySkipAll:
		return Decision{}
	}

	answer, err := t.prompt(c)
	if err != nil {
		t.logger.Warn("Failed to read triage answer", zap.String("file", c.RelPath), zap.Error(err))
		fmt.Fprintln(t.out, console.FWarning(fmt.Sprintf("Could not read input, skipping %s", c.RelPath)))
		return Decision{}
	}

	switch answer {
	case "y":
		t.policy = PolicyExtractAll
		t.logger.Debug("Triage policy set to extract-all", zap.String("file", c.RelPath))
		return Decision{Include: true}
	case "n":
		t.policy = PolicySkipAll
		t.logger.Debug("Triage policy set to skip-all", zap.String("file", c.RelPath))
		return Decision{}
	}

	n, err := strconv.Atoi(answer)
	if err != nil || n <= 0 {
		t.logger.Warn("Invalid triage answer",
			zap.String("file", c.RelPath),
			zap.String("answer", answer))
		fmt.Fprintln(t.out, console.FWarning(fmt.Sprintf("Invalid input %q, skipping %s", answer, c.RelPath)))
		return Decision{}
	}

	return Decision{Include: true, TrimTo: n}
}

// prompt asks about a single over-threshold file and returns the trimmed
// one-line answer. A final line without a trailing newline still counts.
func (t *Triage) prompt(c FileCandidate) (string, error) {
	fmt.Fprintf(t.out, "File \"%s\" has over %d lines. Do you want to extract it? (y - all, n - skip all, number to trim): ", c.RelPath, t.threshold)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// TrimLines returns the first n raw lines of content with an ellipsis marker
// appended as an extra line. When n is at least the line count the full
// content is kept and the marker is still appended.
func TrimLines(content string, n int) string {
	lines := strings.Split(content, "\n")
	if n < len(lines) {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n") + "\n..."
}
