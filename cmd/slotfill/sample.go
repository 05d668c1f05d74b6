package main

import (
	"github.com/gomlx/go-slotfill/dataset"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

var (
	sampleOutput      string
	sampleParallelism int
)

var sampleCmd = &cobra.Command{
	Use:   "sample <dataset.json|dataset.yaml>",
	Short: "Build (tokens, tags) training samples from an annotated dataset",
	Long: `Build one training sample per annotated utterance and save them to a Parquet file,
with one row per utterance holding its tokens, token offsets and tags.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if sampleOutput == "" {
			return errors.New("--output is required")
		}
		ds, err := dataset.Load(args[0])
		if err != nil {
			return err
		}
		tok, err := newTokenizer()
		if err != nil {
			return err
		}
		examples, err := dataset.NewBuilder(tok).
			WithScheme(flagScheme).
			WithParallelism(sampleParallelism).
			BuildAll(ds)
		if err != nil {
			return err
		}
		if err := dataset.WriteParquet(sampleOutput, examples); err != nil {
			return err
		}
		klog.Infof("wrote %d %s samples (%d slot names) to %q", len(examples), flagScheme, len(ds.SlotNames()), sampleOutput)
		return nil
	},
}

func init() {
	sampleCmd.Flags().StringVarP(&sampleOutput, "output", "o", "", "Output Parquet file")
	sampleCmd.Flags().IntVar(&sampleParallelism, "parallelism", 0, "Utterances built in parallel (0 = one per CPU)")
	rootCmd.AddCommand(sampleCmd)
}
