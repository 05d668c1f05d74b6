package tagging

import "strings"

// Encoding holds the rules of one Scheme: how a slot is rendered as tags, and how tag adjacency
// marks slot boundaries. Get one with Scheme.Encoding.
type Encoding interface {
	// IsSlotStart reports whether position i of tags opens a slot.
	IsSlotStart(tags []string, i int) bool

	// IsSlotEnd reports whether position i of tags closes a slot.
	IsSlotEnd(tags []string, i int) bool

	// PositiveTags returns the size (>= 1) tags for one contiguous slot.
	PositiveTags(slotName string, size int) []string

	// PrefixAt returns the prefix for the token at index, given the sorted (non-empty) indexes of its slot.
	PrefixAt(index int, indexes []int) string
}

// Compile time assert that all schemes implement Encoding.
var (
	_ Encoding = ioEncoding{}
	_ Encoding = bioEncoding{}
	_ Encoding = bilouEncoding{}
)

func isOutside(tag string) bool { return tag == Outside }

func isLast(tags []string, i int) bool { return i+1 == len(tags) }

// ioEncoding: only inside and outside markers, so adjacent slots can't be told apart.
type ioEncoding struct{}

func (ioEncoding) IsSlotStart(tags []string, i int) bool {
	if isOutside(tags[i]) {
		return false
	}
	return i == 0 || isOutside(tags[i-1])
}

func (ioEncoding) IsSlotEnd(tags []string, i int) bool {
	if isOutside(tags[i]) {
		return false
	}
	return isLast(tags, i) || isOutside(tags[i+1])
}

func (ioEncoding) PositiveTags(slotName string, size int) []string {
	tags := make([]string, size)
	for i := range tags {
		tags[i] = InsidePrefix + slotName
	}
	return tags
}

func (ioEncoding) PrefixAt(int, []int) string {
	return InsidePrefix
}

// bioEncoding: a beginning tag always opens a new slot, even right after another slot.
type bioEncoding struct{}

func (bioEncoding) IsSlotStart(tags []string, i int) bool {
	if isOutside(tags[i]) {
		return false
	}
	return i == 0 || strings.HasPrefix(tags[i], BeginningPrefix) || isOutside(tags[i-1])
}

func (bioEncoding) IsSlotEnd(tags []string, i int) bool {
	if isOutside(tags[i]) {
		return false
	}
	return isLast(tags, i) || !strings.HasPrefix(tags[i+1], InsidePrefix)
}

func (bioEncoding) PositiveTags(slotName string, size int) []string {
	tags := make([]string, size)
	tags[0] = BeginningPrefix + slotName
	for i := 1; i < size; i++ {
		tags[i] = InsidePrefix + slotName
	}
	return tags
}

func (bioEncoding) PrefixAt(index int, indexes []int) string {
	if index == indexes[0] {
		return BeginningPrefix
	}
	return InsidePrefix
}

type bilouEncoding struct{}

func (bilouEncoding) IsSlotStart(tags []string, i int) bool {
	if isOutside(tags[i]) {
		return false
	}
	if i == 0 {
		return true
	}
	tag, prev := tags[i], tags[i-1]
	return strings.HasPrefix(tag, BeginningPrefix) || strings.HasPrefix(tag, UnitPrefix) ||
		strings.HasPrefix(prev, UnitPrefix) || strings.HasPrefix(prev, LastPrefix) ||
		isOutside(prev)
}

func (bilouEncoding) IsSlotEnd(tags []string, i int) bool {
	if isOutside(tags[i]) {
		return false
	}
	if isLast(tags, i) {
		return true
	}
	tag, next := tags[i], tags[i+1]
	return isOutside(next) ||
		strings.HasPrefix(tag, LastPrefix) || strings.HasPrefix(tag, UnitPrefix) ||
		strings.HasPrefix(next, BeginningPrefix) || strings.HasPrefix(next, UnitPrefix)
}

func (bilouEncoding) PositiveTags(slotName string, size int) []string {
	if size == 1 {
		return []string{UnitPrefix + slotName}
	}
	tags := make([]string, size)
	tags[0] = BeginningPrefix + slotName
	for i := 1; i < size-1; i++ {
		tags[i] = InsidePrefix + slotName
	}
	tags[size-1] = LastPrefix + slotName
	return tags
}

func (bilouEncoding) PrefixAt(index int, indexes []int) string {
	switch {
	case len(indexes) == 1:
		return UnitPrefix
	case index == indexes[0]:
		return BeginningPrefix
	case index == indexes[len(indexes)-1]:
		return LastPrefix
	default:
		return InsidePrefix
	}
}
