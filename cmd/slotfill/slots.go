package main

import (
	"encoding/json"
	"strings"

	"github.com/gomlx/go-slotfill/tagging"
	"github.com/gomlx/go-slotfill/tokenizers/api"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var slotsTags string

var slotsCmd = &cobra.Command{
	Use:   "slots <text>",
	Short: "Extract the slots encoded by a tag sequence",
	Long: `Tokenize the text, align it with the space separated --tags, and print the extracted slots as JSON.

Example:

	slotfill slots --scheme=BIO --tags="O O B-service" "book a flight"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tok, err := newTokenizer()
		if err != nil {
			return err
		}
		slots, err := extractSlots(tok, args[0], strings.Fields(slotsTags), flagScheme)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(slots)
	},
}

// slotWithValue is a slot along with the text it covers.
type slotWithValue struct {
	tagging.Slot
	Value string `json:"value"`
}

func extractSlots(tok api.Tokenizer, text string, tags []string, scheme tagging.Scheme) ([]slotWithValue, error) {
	tokens := tok.Tokenize(text)
	slots, err := tagging.TagsToSlots(tokens, tags, scheme)
	if err != nil {
		return nil, errors.WithMessagef(err, "tokens %q", api.Values(tokens))
	}
	result := make([]slotWithValue, len(slots))
	for ii, slot := range slots {
		result[ii] = slotWithValue{Slot: slot, Value: slot.Value(text)}
	}
	return result, nil
}

func init() {
	slotsCmd.Flags().StringVar(&slotsTags, "tags", "", "Space separated tags, one per token")
	rootCmd.AddCommand(slotsCmd)
}
