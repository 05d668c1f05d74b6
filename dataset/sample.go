package dataset

import (
	"runtime"

	"github.com/gomlx/go-slotfill/tagging"
	"github.com/gomlx/go-slotfill/tokenizers/api"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// Sample is a training example: tokens with offsets into the full utterance text, and their tags.
// len(Tokens) == len(Tags) always holds.
type Sample struct {
	Tokens []api.Token
	Tags   []string
}

// Slots recovers the slots from the sample's own tags.
func (s Sample) Slots(scheme tagging.Scheme) ([]tagging.Slot, error) {
	return tagging.TagsToSlots(s.Tokens, s.Tags, scheme)
}

// UtteranceToSample tokenizes each chunk on its own and tags its tokens under scheme.
//
// Token offsets are shifted so they point into the concatenation of all chunk texts. The running offset
// advances by the full chunk text length, so whitespace outside tokens is accounted for.
// A labeled chunk without any token contributes nothing.
func UtteranceToSample(tokenizer api.Tokenizer, chunks []Chunk, scheme tagging.Scheme) (Sample, error) {
	if _, err := scheme.Encoding(); err != nil {
		return Sample{}, err
	}
	var sample Sample
	offset := 0
	for ii, chunk := range chunks {
		chunkTokens := tokenizer.Tokenize(chunk.Text)
		for _, t := range chunkTokens {
			sample.Tokens = append(sample.Tokens, t.Shift(offset))
		}
		offset += len(chunk.Text)

		if !chunk.IsSlot() {
			sample.Tags = append(sample.Tags, tagging.NegativeTagging(len(chunkTokens))...)
			continue
		}
		if len(chunkTokens) == 0 {
			klog.V(1).Infof("chunk #%d %q of slot %q has no tokens, skipping it", ii, chunk.Text, chunk.SlotName)
			continue
		}
		tags, err := tagging.PositiveTagging(scheme, chunk.SlotName, len(chunkTokens))
		if err != nil {
			return Sample{}, errors.WithMessagef(err, "chunk #%d", ii)
		}
		sample.Tags = append(sample.Tags, tags...)
	}
	return sample, nil
}

// Example is a built sample along with where it came from.
type Example struct {
	Intent string
	Text   string
	Sample
}

// Builder builds samples for whole datasets. Create it with NewBuilder.
type Builder struct {
	tokenizer   api.Tokenizer
	scheme      tagging.Scheme
	parallelism int
}

// NewBuilder returns a Builder using the given tokenizer, the BIO scheme and one worker per CPU.
func NewBuilder(tokenizer api.Tokenizer) *Builder {
	return &Builder{
		tokenizer:   tokenizer,
		scheme:      tagging.BIO,
		parallelism: runtime.NumCPU(),
	}
}

// WithScheme sets the tagging scheme.
func (b *Builder) WithScheme(scheme tagging.Scheme) *Builder {
	b.scheme = scheme
	return b
}

// WithParallelism sets the maximum number of utterances built concurrently. Values <= 0 mean one per CPU.
func (b *Builder) WithParallelism(n int) *Builder {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	b.parallelism = n
	return b
}

// Scheme returns the configured tagging scheme.
func (b *Builder) Scheme() tagging.Scheme {
	return b.scheme
}

// Build builds the sample for one utterance.
func (b *Builder) Build(utterance Utterance) (Sample, error) {
	return UtteranceToSample(b.tokenizer, utterance.Data, b.scheme)
}

// BuildAll builds the samples of all utterances of ds.
// Examples are ordered by intent name, then by utterance order within the intent.
func (b *Builder) BuildAll(ds *Dataset) ([]Example, error) {
	if _, err := b.scheme.Encoding(); err != nil {
		return nil, err
	}
	type job struct {
		intent    string
		index     int
		utterance Utterance
	}
	var jobs []job
	for _, name := range ds.IntentNames() {
		for ii, utterance := range ds.Intents[name].Utterances {
			jobs = append(jobs, job{intent: name, index: ii, utterance: utterance})
		}
	}

	examples := make([]Example, len(jobs))
	eg := &errgroup.Group{}
	eg.SetLimit(b.parallelism)
	for ii := range jobs {
		eg.Go(func() error {
			j := jobs[ii]
			sample, err := b.Build(j.utterance)
			if err != nil {
				return errors.WithMessagef(err, "intent %q utterance #%d", j.intent, j.index)
			}
			examples[ii] = Example{Intent: j.intent, Text: j.utterance.Text(), Sample: sample}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	klog.V(1).Infof("built %d samples from %d intents with scheme %s", len(examples), len(ds.Intents), b.scheme)
	return examples, nil
}
