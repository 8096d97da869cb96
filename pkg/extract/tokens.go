package extract

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// DefaultTokenModel selects the encoding used for token counts when no model
// is configured.
const DefaultTokenModel = "gpt-4o"

// CountTokens returns the number of tokens text encodes to under the given
// model's encoding.
func CountTokens(text, model string) (int, error) {
	if model == "" {
		model = DefaultTokenModel
	}
	tokenizer, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return 0, fmt.Errorf("failed to get tokenizer for model %q: %w", model, err)
	}
	return len(tokenizer.Encode(text, nil, nil)), nil
}
