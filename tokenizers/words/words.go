// Package words implements a rule-based api.Tokenizer: runs of letters and digits form a token, each
// punctuation or symbol character is a token of its own, and whitespace separates tokens.
//
// Offsets always refer to the original text; only token values are affected by the optional
// normalization and lowercasing.
package words

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gomlx/go-slotfill/tokenizers/api"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Tokenizer splits text on whitespace and punctuation. Create it with New and configure it with the
// With* methods before use. It is safe for concurrent use.
type Tokenizer struct {
	lowercase bool
	language  language.Tag
	nfc       bool
}

// Compile time assert that words.Tokenizer implements api.Tokenizer interface.
var _ api.Tokenizer = &Tokenizer{}

// New returns a tokenizer that keeps token values exactly as they appear in the text.
func New() *Tokenizer {
	return &Tokenizer{language: language.Und}
}

// WithLowercase sets whether token values are lowercased. Offsets are unchanged.
func (t *Tokenizer) WithLowercase(lowercase bool) *Tokenizer {
	t.lowercase = lowercase
	return t
}

// WithLanguage sets the language used for lowercasing. Default is language.Und.
func (t *Tokenizer) WithLanguage(tag language.Tag) *Tokenizer {
	t.language = tag
	return t
}

// WithNFC sets whether token values are normalized to Unicode NFC.
func (t *Tokenizer) WithNFC(nfc bool) *Tokenizer {
	t.nfc = nfc
	return t
}

// Tokenize implements api.Tokenizer.
func (t *Tokenizer) Tokenize(text string) []api.Token {
	var tokens []api.Token
	var caser cases.Caser
	if t.lowercase {
		// Casers hold state, so one is created per call.
		caser = cases.Lower(t.language)
	}
	emit := func(start, end int) {
		value := text[start:end]
		if t.nfc {
			value = norm.NFC.String(value)
		}
		if t.lowercase {
			value = caser.String(value)
		}
		tokens = append(tokens, api.Token{Value: value, Start: start, End: end})
	}

	wordStart := -1
	for pos, r := range text {
		switch {
		case isWhitespace(r) || isControl(r):
			if wordStart >= 0 {
				emit(wordStart, pos)
				wordStart = -1
			}
		case isPunctuation(r):
			if wordStart >= 0 {
				emit(wordStart, pos)
				wordStart = -1
			}
			emit(pos, pos+utf8.RuneLen(r))
		default:
			if wordStart < 0 {
				wordStart = pos
			}
		}
	}
	if wordStart >= 0 {
		emit(wordStart, len(text))
	}
	return tokens
}

// Values tokenizes text and returns only the token values.
func (t *Tokenizer) Values(text string) []string {
	return api.Values(t.Tokenize(text))
}

func isWhitespace(r rune) bool {
	if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
		return true
	}
	return unicode.IsSpace(r) || unicode.Is(unicode.Zs, r)
}

func isControl(r rune) bool {
	return unicode.IsControl(r) || r == utf8.RuneError
}

// isPunctuation includes symbols ("$", "+", "€"), which are also split into single-rune tokens.
func isPunctuation(r rune) bool {
	if r == '_' {
		return false
	}
	if (r >= 33 && r <= 47) || (r >= 58 && r <= 64) ||
		(r >= 91 && r <= 96) || (r >= 123 && r <= 126) {
		return true
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// Join rebuilds a single-space separated text from token values, e.g. to display a tokenization.
func Join(tokens []api.Token) string {
	return strings.Join(api.Values(tokens), " ")
}
