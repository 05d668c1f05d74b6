// slotfill builds slot-filling training samples from annotated datasets, and extracts slots from tag sequences.
package main

import (
	goflag "flag"
	"os"

	"github.com/gomlx/go-slotfill/tagging"
	"github.com/gomlx/go-slotfill/tokenizers/api"
	"github.com/gomlx/go-slotfill/tokenizers/sentencepiece"
	"github.com/gomlx/go-slotfill/tokenizers/words"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

var rootCmd = &cobra.Command{
	Use:   "slotfill",
	Short: "Convert between per-token tags and slot spans",
	Long: `slotfill turns annotated utterances into aligned (tokens, tags) training samples under the
IO, BIO or BILOU tagging schemes, and recovers slot spans from tag sequences.`,
	SilenceUsage: true,
}

// Flags shared by all commands.
var (
	flagScheme        = tagging.BIO
	flagTokenizer     string
	flagSentencePiece string
	flagLowercase     bool
)

func init() {
	klogFlags := goflag.NewFlagSet("klog", goflag.ExitOnError)
	klog.InitFlags(klogFlags)
	rootCmd.PersistentFlags().AddGoFlagSet(klogFlags)

	rootCmd.PersistentFlags().Var(&flagScheme, "scheme", "Tagging scheme: IO, BIO or BILOU")
	rootCmd.PersistentFlags().StringVar(&flagTokenizer, "tokenizer", "words", "Tokenizer: \"words\" or \"sentencepiece\"")
	rootCmd.PersistentFlags().StringVar(&flagSentencePiece, "sp_model", "", "Path to the SentencePiece model, for --tokenizer=sentencepiece")
	rootCmd.PersistentFlags().BoolVar(&flagLowercase, "lowercase", false, "Lowercase token values (words tokenizer only)")
}

// newTokenizer creates the tokenizer selected by the flags.
func newTokenizer() (api.Tokenizer, error) {
	switch flagTokenizer {
	case "words":
		return words.New().WithLowercase(flagLowercase), nil
	case "sentencepiece":
		if flagSentencePiece == "" {
			return nil, errors.New("--sp_model is required for --tokenizer=sentencepiece")
		}
		tok, err := sentencepiece.NewFromPath(flagSentencePiece)
		if err != nil {
			return nil, err
		}
		return tok, nil
	default:
		return nil, errors.Errorf("unknown tokenizer %q", flagTokenizer)
	}
}

func main() {
	defer klog.Flush()
	if err := rootCmd.Execute(); err != nil {
		klog.Errorf("%+v", err)
		klog.Flush()
		os.Exit(1)
	}
}
