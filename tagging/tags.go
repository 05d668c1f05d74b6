package tagging

import (
	"strings"

	"github.com/pkg/errors"
)

// Tag markers. A non-outside tag is a prefix followed by the slot name, e.g. "B-city".
const (
	Outside         = "O"
	BeginningPrefix = "B-"
	InsidePrefix    = "I-"
	LastPrefix      = "L-"
	UnitPrefix      = "U-"

	// Separator between the prefix letter and the slot name.
	Separator = "-"
)

var knownPrefixes = []string{BeginningPrefix, InsidePrefix, LastPrefix, UnitPrefix}

// ParseTag splits a non-outside tag into its prefix (including the separator) and the slot name.
//
// The split happens at the first separator, so slot names may themselves contain "-".
// It returns ErrMalformedTag for the outside marker, for tags without a separator, with an unknown
// prefix or with an empty slot name.
func ParseTag(tag string) (prefix, slotName string, err error) {
	if tag == Outside {
		return "", "", errors.Wrapf(ErrMalformedTag, "outside tag %q has no slot name", tag)
	}
	idx := strings.Index(tag, Separator)
	if idx < 0 {
		return "", "", errors.Wrapf(ErrMalformedTag, "tag %q has no %q separator", tag, Separator)
	}
	prefix, slotName = tag[:idx+len(Separator)], tag[idx+len(Separator):]
	known := false
	for _, p := range knownPrefixes {
		if prefix == p {
			known = true
			break
		}
	}
	if !known {
		return "", "", errors.Wrapf(ErrMalformedTag, "tag %q has unknown prefix %q", tag, prefix)
	}
	if slotName == "" {
		return "", "", errors.Wrapf(ErrMalformedTag, "tag %q has an empty slot name", tag)
	}
	return prefix, slotName, nil
}

// SlotName returns the slot name carried by a non-outside tag.
func SlotName(tag string) (string, error) {
	_, name, err := ParseTag(tag)
	return name, err
}

// PositiveTagging returns the slotSize tags encoding one contiguous slot named slotName.
func PositiveTagging(scheme Scheme, slotName string, slotSize int) ([]string, error) {
	enc, err := scheme.Encoding()
	if err != nil {
		return nil, err
	}
	if slotSize < 1 {
		return nil, errors.Wrapf(ErrInvalidSlotSize, "slot %q of size %d", slotName, slotSize)
	}
	return enc.PositiveTags(slotName, slotSize), nil
}

// NegativeTagging returns size outside markers. Negative sizes yield an empty sequence.
func NegativeTagging(size int) []string {
	if size < 0 {
		size = 0
	}
	tags := make([]string, size)
	for i := range tags {
		tags[i] = Outside
	}
	return tags
}

// SchemePrefix returns the prefix the token at position index receives, given indexes, the sorted
// positions of all tokens of the same slot.
//
// For contiguous ascending indexes, concatenating SchemePrefix(idx, indexes, scheme)+name over
// indexes reproduces PositiveTagging(scheme, name, len(indexes)).
func SchemePrefix(index int, indexes []int, scheme Scheme) (string, error) {
	enc, err := scheme.Encoding()
	if err != nil {
		return "", err
	}
	if len(indexes) == 0 {
		return "", errors.Wrapf(ErrInvalidSlotSize, "no token indexes given for position %d", index)
	}
	return enc.PrefixAt(index, indexes), nil
}
