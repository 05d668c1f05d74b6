package tagging

import "github.com/pkg/errors"

// Sentinel errors returned (wrapped) by this package. Use errors.Is to match them.
var (
	// ErrInvalidScheme is returned when a Scheme value is not one of IO, BIO or BILOU.
	ErrInvalidScheme = errors.New("invalid tagging scheme")

	// ErrLengthMismatch is returned when tags and tokens are not aligned 1:1.
	ErrLengthMismatch = errors.New("tags and tokens length mismatch")

	// ErrMalformedTag is returned when a non-outside tag can't be split into prefix and slot name.
	ErrMalformedTag = errors.New("malformed tag")

	// ErrInvalidSlotSize is returned when a slot is asked to span less than one token.
	ErrInvalidSlotSize = errors.New("invalid slot size")
)
