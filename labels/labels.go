// Package labels maps tags to the dense integer ids a sequence-labeling model works with, and back.
//
// The outside tag "O" is always id 0, so zero-initialized (padded) positions decode to "O".
// Remaining ids follow the sorted slot names, and within each slot the scheme's prefixes in B, I, L, U order.
package labels

import (
	"sort"

	"github.com/gomlx/go-slotfill/tagging"
	"github.com/gomlx/gomlx/pkg/core/tensors"
	"github.com/pkg/errors"
)

// ErrUnknownTag is returned when a tag or id is not part of the Set.
var ErrUnknownTag = errors.New("unknown tag")

// OutsideID is the id of the outside tag.
const OutsideID = 0

// Set is an immutable tag vocabulary for one scheme and set of slot names. It is safe for concurrent use.
type Set struct {
	scheme  tagging.Scheme
	tags    []string
	tagToID map[string]int
}

// schemePrefixes lists the prefixes each scheme can produce, in id order.
func schemePrefixes(scheme tagging.Scheme) ([]string, error) {
	enc, err := scheme.Encoding()
	if err != nil {
		return nil, err
	}
	// Slots of size 1 and 3 exercise every prefix of every scheme.
	seen := make(map[string]bool)
	for _, size := range []int{1, 3} {
		for ii := range size {
			indexes := []int{0, 1, 2}[:size]
			seen[enc.PrefixAt(ii, indexes)] = true
		}
	}
	var prefixes []string
	for _, p := range []string{tagging.BeginningPrefix, tagging.InsidePrefix, tagging.LastPrefix, tagging.UnitPrefix} {
		if seen[p] {
			prefixes = append(prefixes, p)
		}
	}
	return prefixes, nil
}

// New creates the tag vocabulary for scheme and the given slot names. Duplicated names are ignored.
func New(scheme tagging.Scheme, slotNames []string) (*Set, error) {
	prefixes, err := schemePrefixes(scheme)
	if err != nil {
		return nil, err
	}
	names := append([]string{}, slotNames...)
	sort.Strings(names)

	s := &Set{
		scheme:  scheme,
		tags:    []string{tagging.Outside},
		tagToID: map[string]int{tagging.Outside: OutsideID},
	}
	for ii, name := range names {
		if ii > 0 && names[ii-1] == name {
			continue
		}
		if name == "" {
			return nil, errors.Wrapf(tagging.ErrMalformedTag, "empty slot name")
		}
		for _, p := range prefixes {
			tag := p + name
			s.tagToID[tag] = len(s.tags)
			s.tags = append(s.tags, tag)
		}
	}
	return s, nil
}

// Scheme returns the scheme of the vocabulary.
func (s *Set) Scheme() tagging.Scheme { return s.scheme }

// Len returns the number of distinct tags, including the outside tag.
func (s *Set) Len() int { return len(s.tags) }

// Tags returns all tags, indexed by id.
func (s *Set) Tags() []string { return append([]string{}, s.tags...) }

// ID returns the id of tag.
func (s *Set) ID(tag string) (int, error) {
	id, ok := s.tagToID[tag]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownTag, "tag %q not in %s vocabulary of %d tags", tag, s.scheme, len(s.tags))
	}
	return id, nil
}

// Tag returns the tag with the given id.
func (s *Set) Tag(id int) (string, error) {
	if id < 0 || id >= len(s.tags) {
		return "", errors.Wrapf(ErrUnknownTag, "id %d out of range [0, %d)", id, len(s.tags))
	}
	return s.tags[id], nil
}

// Encode converts tags to ids.
func (s *Set) Encode(tags []string) ([]int, error) {
	ids := make([]int, len(tags))
	for ii, tag := range tags {
		id, err := s.ID(tag)
		if err != nil {
			return nil, errors.WithMessagef(err, "position %d", ii)
		}
		ids[ii] = id
	}
	return ids, nil
}

// Decode converts ids to tags.
func (s *Set) Decode(ids []int) ([]string, error) {
	tags := make([]string, len(ids))
	for ii, id := range ids {
		tag, err := s.Tag(id)
		if err != nil {
			return nil, errors.WithMessagef(err, "position %d", ii)
		}
		tags[ii] = tag
	}
	return tags, nil
}

// EncodeBatch converts a batch of tag sequences into a padded int32 tensor of ids shaped [batchSize, maxLen],
// and an int32 mask tensor of the same shape with 1 for real positions and 0 for padding.
//
// If maxLen <= 0 the longest sequence length is used. Longer sequences are truncated to maxLen.
func (s *Set) EncodeBatch(batch [][]string, maxLen int) (ids, mask *tensors.Tensor, err error) {
	if maxLen <= 0 {
		for _, tags := range batch {
			maxLen = max(maxLen, len(tags))
		}
	}
	if len(batch) == 0 || maxLen == 0 {
		return nil, nil, errors.Errorf("can't encode an empty batch (%d sequences, max length %d)", len(batch), maxLen)
	}
	flatIDs := make([]int32, len(batch)*maxLen)
	flatMask := make([]int32, len(batch)*maxLen)
	for row, tags := range batch {
		if len(tags) > maxLen {
			tags = tags[:maxLen]
		}
		for col, tag := range tags {
			id, err := s.ID(tag)
			if err != nil {
				return nil, nil, errors.WithMessagef(err, "sequence %d position %d", row, col)
			}
			flatIDs[row*maxLen+col] = int32(id)
			flatMask[row*maxLen+col] = 1
		}
	}
	ids = tensors.FromFlatDataAndDimensions(flatIDs, len(batch), maxLen)
	mask = tensors.FromFlatDataAndDimensions(flatMask, len(batch), maxLen)
	return ids, mask, nil
}

// DecodeRow converts predicted ids back to tags, keeping only the first length positions.
// It's the inverse of one row of EncodeBatch, and its output can be given to tagging.TagsToSlots.
func (s *Set) DecodeRow(ids []int32, length int) ([]string, error) {
	if length > len(ids) {
		return nil, errors.Wrapf(tagging.ErrLengthMismatch, "length %d larger than the %d ids", length, len(ids))
	}
	intIDs := make([]int, length)
	for ii := range intIDs {
		intIDs[ii] = int(ids[ii])
	}
	return s.Decode(intIDs)
}
