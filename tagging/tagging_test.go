package tagging

import (
	"fmt"
	"testing"

	"github.com/gomlx/go-slotfill/tokenizers/api"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTokens creates n single-character tokens separated by one space: "a b c ...".
func makeTokens(n int) []api.Token {
	tokens := make([]api.Token, n)
	for i := range tokens {
		tokens[i] = api.Token{Value: string(rune('a' + i)), Start: 2 * i, End: 2*i + 1}
	}
	return tokens
}

func TestPositiveTagging(t *testing.T) {
	testCases := []struct {
		scheme Scheme
		size   int
		want   []string
	}{
		{IO, 1, []string{"I-x"}},
		{IO, 3, []string{"I-x", "I-x", "I-x"}},
		{BIO, 1, []string{"B-x"}},
		{BIO, 3, []string{"B-x", "I-x", "I-x"}},
		{BILOU, 1, []string{"U-x"}},
		{BILOU, 2, []string{"B-x", "L-x"}},
		{BILOU, 4, []string{"B-x", "I-x", "I-x", "L-x"}},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s/%d", tc.scheme, tc.size), func(t *testing.T) {
			tags, err := PositiveTagging(tc.scheme, "x", tc.size)
			require.NoError(t, err)
			assert.Equal(t, tc.want, tags)
		})
	}
}

func TestPositiveTaggingErrors(t *testing.T) {
	_, err := PositiveTagging(Scheme(7), "x", 2)
	assert.True(t, errors.Is(err, ErrInvalidScheme), "got %v", err)

	_, err = PositiveTagging(BIO, "x", 0)
	assert.True(t, errors.Is(err, ErrInvalidSlotSize), "got %v", err)
}

func TestNegativeTagging(t *testing.T) {
	assert.Equal(t, []string{"O", "O", "O"}, NegativeTagging(3))
	assert.Empty(t, NegativeTagging(0))
	assert.Empty(t, NegativeTagging(-1))
}

func TestRoundTripSingleSlot(t *testing.T) {
	for _, scheme := range Schemes {
		for n := 1; n <= 5; n++ {
			t.Run(fmt.Sprintf("%s/%d", scheme, n), func(t *testing.T) {
				tags, err := PositiveTagging(scheme, "X", n)
				require.NoError(t, err)
				require.Len(t, tags, n)

				tokens := makeTokens(n)
				slots, err := TagsToSlots(tokens, tags, scheme)
				require.NoError(t, err)
				require.Len(t, slots, 1)
				assert.Equal(t, Slot{Range: Range{Start: tokens[0].Start, End: tokens[n-1].End}, SlotName: "X"}, slots[0])
			})
		}
	}
}

func TestAllOutside(t *testing.T) {
	for _, scheme := range Schemes {
		slots, err := TagsToSlots(makeTokens(4), NegativeTagging(4), scheme)
		require.NoError(t, err)
		assert.Empty(t, slots, "scheme %s", scheme)
	}
	slots, err := TagsToSlots(nil, nil, BIO)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestSchemePrefixAgreesWithPositiveTagging(t *testing.T) {
	for _, scheme := range Schemes {
		for n := 1; n <= 5; n++ {
			for _, first := range []int{0, 3} {
				indexes := make([]int, n)
				for i := range indexes {
					indexes[i] = first + i
				}
				var got []string
				for _, idx := range indexes {
					prefix, err := SchemePrefix(idx, indexes, scheme)
					require.NoError(t, err)
					got = append(got, prefix+"X")
				}
				want, err := PositiveTagging(scheme, "X", n)
				require.NoError(t, err)
				assert.Equal(t, want, got, "scheme=%s n=%d first=%d", scheme, n, first)
			}
		}
	}
}

func TestSchemePrefixErrors(t *testing.T) {
	_, err := SchemePrefix(0, []int{0}, Scheme(-1))
	assert.True(t, errors.Is(err, ErrInvalidScheme), "got %v", err)

	_, err = SchemePrefix(0, nil, BIO)
	assert.True(t, errors.Is(err, ErrInvalidSlotSize), "got %v", err)
}

func TestTagsToSlotsBIO(t *testing.T) {
	tokens := []api.Token{
		{Value: "book", Start: 0, End: 4},
		{Value: "a", Start: 5, End: 6},
		{Value: "flight", Start: 7, End: 13},
	}
	slots, err := TagsToSlots(tokens, []string{"O", "O", "B-service"}, BIO)
	require.NoError(t, err)
	assert.Equal(t, []Slot{{Range: Range{Start: 7, End: 13}, SlotName: "service"}}, slots)
	assert.Equal(t, "flight", slots[0].Value("book a flight"))
}

func TestTagsToSlotsBILOUMultiToken(t *testing.T) {
	tokens := makeTokens(4)
	slots, err := TagsToSlots(tokens, []string{"O", "B-loc", "I-loc", "L-loc"}, BILOU)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, Slot{Range: Range{Start: tokens[1].Start, End: tokens[3].End}, SlotName: "loc"}, slots[0])
}

func TestTagsToSlotsBILOUUnit(t *testing.T) {
	tags, err := PositiveTagging(BILOU, "X", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"U-X"}, tags)

	tokens := []api.Token{{Value: "paris", Start: 3, End: 8}}
	slots, err := TagsToSlots(tokens, tags, BILOU)
	require.NoError(t, err)
	assert.Equal(t, []Slot{{Range: Range{Start: 3, End: 8}, SlotName: "X"}}, slots)
}

// Back-to-back slots without an outside separator between them.
func TestTagsToSlotsAdjacent(t *testing.T) {
	tokens := makeTokens(6)
	span := func(first, last int, name string) Slot {
		return Slot{Range: Range{Start: tokens[first].Start, End: tokens[last].End}, SlotName: name}
	}
	testCases := []struct {
		name   string
		scheme Scheme
		tags   []string
		want   []Slot
	}{
		{"BIO two singles", BIO, []string{"B-a", "B-b", "O", "O", "O", "O"},
			[]Slot{span(0, 0, "a"), span(1, 1, "b")}},
		{"BIO multi then multi", BIO, []string{"B-a", "I-a", "B-b", "I-b", "I-b", "O"},
			[]Slot{span(0, 1, "a"), span(2, 4, "b")}},
		{"BIO same name", BIO, []string{"O", "B-a", "I-a", "B-a", "O", "B-a"},
			[]Slot{span(1, 2, "a"), span(3, 3, "a"), span(5, 5, "a")}},
		{"BILOU unit then multi", BILOU, []string{"U-a", "B-b", "L-b", "U-c", "B-d", "L-d"},
			[]Slot{span(0, 0, "a"), span(1, 2, "b"), span(3, 3, "c"), span(4, 5, "d")}},
		{"BILOU multi then unit", BILOU, []string{"B-a", "I-a", "L-a", "U-b", "O", "U-c"},
			[]Slot{span(0, 2, "a"), span(3, 3, "b"), span(5, 5, "c")}},
		{"IO separated", IO, []string{"I-a", "I-a", "O", "I-b", "O", "I-c"},
			[]Slot{span(0, 1, "a"), span(3, 3, "b"), span(5, 5, "c")}},
		{"IO slot at both ends", IO, []string{"I-a", "O", "O", "O", "I-b", "I-b"},
			[]Slot{span(0, 0, "a"), span(4, 5, "b")}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			slots, err := TagsToSlots(tokens, tc.tags, tc.scheme)
			require.NoError(t, err)
			assert.Equal(t, tc.want, slots)
		})
	}
}

// Slots built chunk by chunk with PositiveTagging are recovered back, for every scheme.
func TestTagsToSlotsConcatenatedSlots(t *testing.T) {
	sizes := []int{1, 3, 2, 1}
	names := []string{"a", "b", "c", "d"}
	for _, scheme := range []Scheme{BIO, BILOU} {
		var tags []string
		for i, size := range sizes {
			part, err := PositiveTagging(scheme, names[i], size)
			require.NoError(t, err)
			tags = append(tags, part...)
		}
		tokens := makeTokens(len(tags))
		slots, err := TagsToSlots(tokens, tags, scheme)
		require.NoError(t, err)
		require.Len(t, slots, len(sizes), "scheme %s", scheme)
		first := 0
		for i, slot := range slots {
			last := first + sizes[i] - 1
			assert.Equal(t, names[i], slot.SlotName)
			assert.Equal(t, Range{Start: tokens[first].Start, End: tokens[last].End}, slot.Range)
			first = last + 1
		}
	}
}

func TestTagsToSlotsErrors(t *testing.T) {
	_, err := TagsToSlots(makeTokens(2), []string{"O"}, BIO)
	assert.True(t, errors.Is(err, ErrLengthMismatch), "got %v", err)

	_, err = TagsToSlots(makeTokens(1), []string{"O"}, Scheme(3))
	assert.True(t, errors.Is(err, ErrInvalidScheme), "got %v", err)

	_, err = TagsToSlots(makeTokens(2), []string{"O", "X"}, IO)
	assert.True(t, errors.Is(err, ErrMalformedTag), "got %v", err)
}

func TestTagsToSlotsMalformedStaysDisjoint(t *testing.T) {
	tokens := makeTokens(2)
	slots, err := TagsToSlots(tokens, []string{"B-a", "L-b"}, BIO)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.LessOrEqual(t, slots[0].Range.End, slots[1].Range.Start)
}

func TestParseTag(t *testing.T) {
	prefix, name, err := ParseTag("B-city")
	require.NoError(t, err)
	assert.Equal(t, BeginningPrefix, prefix)
	assert.Equal(t, "city", name)

	prefix, name, err = ParseTag("L-date-time")
	require.NoError(t, err)
	assert.Equal(t, LastPrefix, prefix)
	assert.Equal(t, "date-time", name)

	for _, bad := range []string{"O", "", "X", "B", "B-", "Q-city", "BB-city"} {
		_, _, err := ParseTag(bad)
		assert.True(t, errors.Is(err, ErrMalformedTag), "tag %q: got %v", bad, err)
	}
}

func TestParseScheme(t *testing.T) {
	for _, s := range Schemes {
		parsed, err := ParseScheme(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	parsed, err := ParseScheme(" bilou ")
	require.NoError(t, err)
	assert.Equal(t, BILOU, parsed)

	_, err = ParseScheme("BILOES")
	assert.True(t, errors.Is(err, ErrInvalidScheme))

	var s Scheme
	require.NoError(t, s.UnmarshalText([]byte("bio")))
	assert.Equal(t, BIO, s)
	assert.Equal(t, "Scheme(9)", Scheme(9).String())
	_, err = Scheme(9).MarshalText()
	assert.Error(t, err)
}
