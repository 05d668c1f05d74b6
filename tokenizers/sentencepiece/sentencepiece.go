// Package sentencepiece implements an api.Tokenizer based on a SentencePiece model, so that sub-word
// pieces can be tagged and mapped back to slots in the original text.
package sentencepiece

import (
	"strings"

	esentencepiece "github.com/eliben/go-sentencepiece"
	"github.com/gomlx/go-slotfill/tokenizers/api"
	"github.com/pkg/errors"
)

// metaspace is U+2581 (lower one eighth block), which SentencePiece uses in place of spaces.
const metaspace = "▁"

// Tokenizer implements api.Tokenizer with a SentencePiece processor by Google.
type Tokenizer struct {
	*esentencepiece.Processor
}

// Compile time assert that sentencepiece.Tokenizer implements api.Tokenizer interface.
var _ api.Tokenizer = &Tokenizer{}

// NewFromPath creates a tokenizer from a local SentencePiece model file, usually named "tokenizer.model".
func NewFromPath(modelPath string) (*Tokenizer, error) {
	proc, err := esentencepiece.NewProcessorFromPath(modelPath)
	if err != nil {
		return nil, errors.Wrapf(err, "can't create sentencepiece tokenizer from %q", modelPath)
	}
	return &Tokenizer{Processor: proc}, nil
}

// Tokenize implements api.Tokenizer. Token values are the pieces without the metaspace marker, and
// pieces that only stand for a space are dropped.
func (p *Tokenizer) Tokenize(text string) []api.Token {
	encoded := p.Processor.Encode(text)
	pieces := make([]string, len(encoded))
	for ii, t := range encoded {
		pieces[ii] = t.Text
	}
	return alignPieces(text, pieces)
}

// alignPieces maps pieces back to byte spans in text by matching them in order.
func alignPieces(text string, pieces []string) []api.Token {
	tokens := make([]api.Token, 0, len(pieces))
	pos := 0
	for _, piece := range pieces {
		matchPiece, hasLeadingSpace := strings.CutPrefix(piece, metaspace)

		// Skip any whitespace in the original text before this token.
		if hasLeadingSpace {
			for pos < len(text) && (text[pos] == ' ' || text[pos] == '\t' || text[pos] == '\n' || text[pos] == '\r') {
				pos++
			}
		}
		if matchPiece == "" {
			continue
		}

		start := pos
		if foundAt := findSubstring(text, matchPiece, pos); foundAt >= 0 {
			start = foundAt
			pos = foundAt + len(matchPiece)
		} else {
			// Pieces may not match verbatim (e.g. byte fallback or normalization): advance by piece length.
			pos = min(pos+len(matchPiece), len(text))
		}
		if start >= pos {
			continue
		}
		tokens = append(tokens, api.Token{Value: matchPiece, Start: start, End: pos})
	}
	return tokens
}

// findSubstring finds the first occurrence of substr in s starting from position start.
// Returns the byte position of the match, or -1 if not found.
func findSubstring(s, substr string, start int) int {
	if start >= len(s) {
		return -1
	}
	idx := strings.Index(s[start:], substr)
	if idx < 0 {
		return -1
	}
	return start + idx
}
