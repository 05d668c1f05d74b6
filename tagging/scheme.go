// Package tagging converts between per-token tag sequences and named slot spans.
//
// A slot covering N contiguous tokens is rendered as N tags according to a Scheme (IO, BIO or BILOU),
// and TagsToSlots recovers the slots from a full tag sequence. Both directions are pure functions and
// safe for concurrent use.
//
// Example:
//
//	tags, err := tagging.PositiveTagging(tagging.BILOU, "city", 3)
//	// tags == []string{"B-city", "I-city", "L-city"}
//	slots, err := tagging.TagsToSlots(tokens, tags, tagging.BILOU)
package tagging

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Scheme is the convention used to encode slot membership and boundaries into tags.
type Scheme int

const (
	// IO tags every slot token with the inside prefix.
	IO Scheme = iota
	// BIO marks the first token of a slot with the beginning prefix.
	BIO
	// BILOU additionally marks the last token of a multi-token slot, and single-token slots with the unit prefix.
	BILOU
)

// Schemes lists all valid schemes.
var Schemes = []Scheme{IO, BIO, BILOU}

var schemeNames = map[Scheme]string{
	IO:    "IO",
	BIO:   "BIO",
	BILOU: "BILOU",
}

// String implements fmt.Stringer.
func (s Scheme) String() string {
	if name, ok := schemeNames[s]; ok {
		return name
	}
	return "Scheme(" + strconv.Itoa(int(s)) + ")"
}

// IsValid returns whether s is one of the defined schemes.
func (s Scheme) IsValid() bool {
	_, ok := schemeNames[s]
	return ok
}

// ParseScheme parses a scheme name, case-insensitively.
func ParseScheme(name string) (Scheme, error) {
	for s, n := range schemeNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidScheme, "unknown scheme name %q", name)
}

// MarshalText implements encoding.TextMarshaler, used by JSON and YAML.
func (s Scheme) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, errors.Wrapf(ErrInvalidScheme, "can't marshal %s", s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, used by JSON and YAML.
func (s *Scheme) UnmarshalText(text []byte) error {
	parsed, err := ParseScheme(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Set implements pflag.Value, so a Scheme can be used directly as a command-line flag.
func (s *Scheme) Set(value string) error {
	return s.UnmarshalText([]byte(value))
}

// Type implements pflag.Value.
func (s *Scheme) Type() string {
	return "scheme"
}

// Encoding returns the rules for the scheme.
// It is the single place where the scheme value is dispatched on.
func (s Scheme) Encoding() (Encoding, error) {
	switch s {
	case IO:
		return ioEncoding{}, nil
	case BIO:
		return bioEncoding{}, nil
	case BILOU:
		return bilouEncoding{}, nil
	default:
		return nil, errors.Wrapf(ErrInvalidScheme, "scheme %s", s)
	}
}
