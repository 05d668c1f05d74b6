package tagging

import (
	"github.com/gomlx/go-slotfill/tokenizers/api"
	"github.com/pkg/errors"
)

// Range is a half-open [Start, End) offset range in the original text.
type Range struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Slot is a named span of the original text, recovered from a tag sequence.
type Slot struct {
	Range    Range  `json:"range" yaml:"range"`
	SlotName string `json:"slot_name" yaml:"slot_name"`
}

// Value returns the text covered by the slot, given the text the tokens were produced from.
func (s Slot) Value(text string) string {
	return text[s.Range.Start:s.Range.End]
}

// TagsToSlots recovers the slots encoded by tags, aligned 1:1 with tokens, under the given scheme.
//
// Slots are returned in text order. Each slot goes from the start of the token that opens it to the end
// of the token that closes it, and takes its name from the closing tag.
func TagsToSlots(tokens []api.Token, tags []string, scheme Scheme) ([]Slot, error) {
	enc, err := scheme.Encoding()
	if err != nil {
		return nil, err
	}
	if len(tags) != len(tokens) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d tags for %d tokens", len(tags), len(tokens))
	}
	return scanSlots(enc, tokens, tags)
}

// scanSlots walks tags strictly left to right: boundary detection at i looks at i-1 and i+1.
func scanSlots(enc Encoding, tokens []api.Token, tags []string) ([]Slot, error) {
	var slots []Slot
	currentStart := 0
	for i, tag := range tags {
		if enc.IsSlotStart(tags, i) {
			currentStart = i
		}
		if !enc.IsSlotEnd(tags, i) {
			continue
		}
		name, err := SlotName(tag)
		if err != nil {
			return nil, errors.WithMessagef(err, "position %d", i)
		}
		slots = append(slots, Slot{
			Range:    Range{Start: tokens[currentStart].Start, End: tokens[i].End},
			SlotName: name,
		})
		// Ranges stay disjoint even if the next slot is never explicitly opened.
		currentStart = i + 1
	}
	return slots, nil
}
