// Package extract walks a directory tree, selects source files, and
// assembles their minimized content into one prompt-ready text artifact.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"promptclip/pkg/console"
)

// Run performs a full extraction against opts.Directory and writes the
// rendered tree and the assembled artifact to opts.Out. The artifact is also
// handed to the clipboard sink; clipboard failure is reported as a warning,
// not an error.
func Run(opts Options, logger *zap.Logger) error {
	startTime := time.Now()

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	promptIn := opts.PromptIn
	if promptIn == nil {
		promptIn = os.Stdin
	}
	copyFunc := opts.CopyFunc
	if copyFunc == nil {
		copyFunc = clipboard.WriteAll
	}

	rootDir, err := filepath.Abs(opts.Directory)
	if err != nil {
		return fmt.Errorf("failed to resolve directory path: %w", err)
	}
	logger.Info("Starting extraction", zap.String("directory", rootDir))

	tree, err := RenderTree(rootDir)
	if err != nil {
		return fmt.Errorf("failed to render directory tree: %w", err)
	}
	fmt.Fprintln(out, tree)

	filter := NewPathFilter()
	triage := NewTriage(LongFileThreshold, promptIn, out, logger)

	var blocks []ContentBlock
	err = Walk(rootDir, filter, func(c FileCandidate, content string) error {
		decision := triage.Decide(c)
		if !decision.Include {
			logger.Debug("Omitting file", zap.String("file", c.RelPath))
			return nil
		}
		text := content
		if decision.TrimTo > 0 {
			text = TrimLines(content, decision.TrimTo)
			logger.Debug("Trimmed file",
				zap.String("file", c.RelPath),
				zap.Int("lines", decision.TrimTo))
		}
		blocks = append(blocks, ContentBlock{RelPath: c.RelPath, Text: Normalize(text)})
		return nil
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to collect files: %w", err)
	}

	artifact := Assemble(tree, blocks)
	fmt.Fprintln(out, artifact)

	if err := copyFunc(artifact); err != nil {
		logger.Warn("Failed to copy to clipboard", zap.Error(err))
		fmt.Fprintln(out, console.FWarning("Warning: could not copy to clipboard: "+err.Error()))
	} else {
		fmt.Fprintln(out, console.FSuccess("Copied to clipboard."))
	}

	if opts.CountTokens {
		count, err := CountTokens(artifact, opts.TokenModel)
		if err != nil {
			logger.Warn("Failed to count tokens", zap.Error(err))
			fmt.Fprintln(out, console.FWarning("Warning: could not count tokens: "+err.Error()))
		} else {
			model := opts.TokenModel
			if model == "" {
				model = DefaultTokenModel
			}
			fmt.Fprintln(out, console.FInfo(fmt.Sprintf("Token count (%s): %d", model, count)))
		}
	}

	logger.Info("Extraction completed",
		zap.Int("includedFiles", len(blocks)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}
