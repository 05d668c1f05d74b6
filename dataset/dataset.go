// Package dataset turns manually annotated utterances into aligned (tokens, tags) training samples.
//
// An utterance is an ordered list of chunks: plain text, or text labeled with a slot name. Each chunk is
// tokenized on its own, and its tokens get outside tags, or the tags of one slot:
//
//	tok := words.New()
//	sample, err := dataset.UtteranceToSample(tok, []dataset.Chunk{
//		{Text: "book a "},
//		{Text: "flight", SlotName: "service"},
//	}, tagging.BIO)
//	// sample.Tags == []string{"O", "O", "B-service"}
package dataset

import (
	"sort"
	"strings"
)

// Chunk is a contiguous, possibly slot-labeled, piece of an annotated utterance.
// An empty SlotName means the chunk is not part of any slot.
type Chunk struct {
	Text     string `json:"text" yaml:"text"`
	SlotName string `json:"slot_name,omitempty" yaml:"slot_name,omitempty"`
	Entity   string `json:"entity,omitempty" yaml:"entity,omitempty"`
}

// IsSlot returns whether the chunk is labeled with a slot.
func (c Chunk) IsSlot() bool {
	return c.SlotName != ""
}

// Utterance is one annotated example: its chunks concatenate, in order, to the full text.
type Utterance struct {
	Data []Chunk `json:"data" yaml:"data"`
}

// Text returns the full utterance text.
func (u Utterance) Text() string {
	var sb strings.Builder
	for _, chunk := range u.Data {
		sb.WriteString(chunk.Text)
	}
	return sb.String()
}

// Intent holds the annotated utterances of one intent.
type Intent struct {
	Utterances []Utterance `json:"utterances" yaml:"utterances"`
}

// Dataset is a collection of annotated utterances grouped by intent.
// Fields of the file format not listed here (e.g. entities) are ignored.
type Dataset struct {
	Language string            `json:"language,omitempty" yaml:"language,omitempty"`
	Intents  map[string]Intent `json:"intents" yaml:"intents"`
}

// IntentNames returns the intent names in sorted order.
func (ds *Dataset) IntentNames() []string {
	names := make([]string, 0, len(ds.Intents))
	for name := range ds.Intents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SlotNames returns all slot names used in the dataset, sorted.
func (ds *Dataset) SlotNames() []string {
	set := make(map[string]struct{})
	for _, intent := range ds.Intents {
		for _, utterance := range intent.Utterances {
			for _, chunk := range utterance.Data {
				if chunk.IsSlot() {
					set[chunk.SlotName] = struct{}{}
				}
			}
		}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NumUtterances returns the total number of utterances across intents.
func (ds *Dataset) NumUtterances() int {
	n := 0
	for _, intent := range ds.Intents {
		n += len(intent.Utterances)
	}
	return n
}
