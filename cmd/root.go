package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"promptclip/pkg/extract"
	"promptclip/pkg/logging"
	"promptclip/pkg/version"
)

var (
	verbose     bool
	countTokens bool
	tokenModel  string
)

// RootCmd is the base command. It runs the extraction against the directory
// given as the single positional argument.
var RootCmd = &cobra.Command{
	Use:   "promptclip <directory>",
	Short: "Promptclip flattens a source tree into one prompt-ready blob",
	Long: `Promptclip walks a directory tree, selects source files by extension,
minimizes their content to single-line form, and copies the assembled text
to the clipboard together with a directory-tree diagram.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Usage only helps for argument errors, which cobra catches
		// before RunE.
		cmd.SilenceUsage = true

		directory := args[0]
		info, err := os.Stat(directory)
		if err != nil {
			return fmt.Errorf("invalid directory %q: %w", directory, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("path %q is not a directory", directory)
		}

		logger, err := logging.Setup(verbose, "promptclip", version.Version)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logging.Sync(logger)

		opts := extract.Options{
			Directory:   directory,
			CountTokens: countTokens,
			TokenModel:  tokenModel,
		}
		return extract.Run(opts, logger)
	},
}

// Execute runs the root command and exits nonzero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	RootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	RootCmd.Flags().BoolVarP(&countTokens, "tokens", "t", false, "Report the assembled text's token count")
	RootCmd.Flags().StringVar(&tokenModel, "model", extract.DefaultTokenModel, "Model whose encoding is used for token counting")
}
