// Package api defines the Tokenizer API used to split text into offset-carrying tokens.
// It's kept separate so that the tagging and dataset packages don't depend on any concrete tokenizer.
package api

// Token is a minimal indexed unit of text.
// Start and End are byte offsets (not rune offsets) into the text it was produced from, suitable for
// slicing Go strings directly: text[tok.Start:tok.End].
type Token struct {
	Value string // token value, possibly normalized: it may differ from text[Start:End]
	Start int    // start byte position (inclusive)
	End   int    // end byte position (exclusive)
}

// Shift returns a copy of the token with its offsets moved by offset bytes.
func (t Token) Shift(offset int) Token {
	return Token{Value: t.Value, Start: t.Start + offset, End: t.End + offset}
}

// Tokenizer splits text into ordered tokens, with offsets relative to the given text.
//
// Implementations must be safe for concurrent use.
type Tokenizer interface {
	Tokenize(text string) []Token
}

// TokenizerFunc adapts a function to the Tokenizer interface.
type TokenizerFunc func(text string) []Token

// Tokenize implements Tokenizer.
func (fn TokenizerFunc) Tokenize(text string) []Token {
	return fn(text)
}

// Values returns the values of the tokens.
func Values(tokens []Token) []string {
	values := make([]string, len(tokens))
	for ii, t := range tokens {
		values[ii] = t.Value
	}
	return values
}
