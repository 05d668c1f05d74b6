package main

import (
	"fmt"
	"hash/fnv"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gomlx/go-slotfill/dataset"
	"github.com/gomlx/go-slotfill/tagging"
	"github.com/spf13/cobra"
)

var (
	// intentStyle for the intent name header of each example
	intentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160"))

	// dimStyle for outside tokens and metadata
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// boxStyle for each rendered example
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	// slotColors are cycled through by slot name
	slotColors = []lipgloss.Color{"42", "81", "220", "170", "208", "39"}
)

var previewLimit int

var previewCmd = &cobra.Command{
	Use:   "preview <dataset.json|dataset.yaml>",
	Short: "Show how annotated utterances are tokenized and tagged",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := dataset.Load(args[0])
		if err != nil {
			return err
		}
		tok, err := newTokenizer()
		if err != nil {
			return err
		}
		examples, err := dataset.NewBuilder(tok).WithScheme(flagScheme).BuildAll(ds)
		if err != nil {
			return err
		}
		if previewLimit > 0 && len(examples) > previewLimit {
			examples = examples[:previewLimit]
		}
		for _, e := range examples {
			if err := renderExample(cmd.OutOrStdout(), e, flagScheme); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().IntVarP(&previewLimit, "limit", "n", 10, "Maximum number of utterances shown (0 = all)")
	rootCmd.AddCommand(previewCmd)
}

func slotStyle(slotName string) lipgloss.Style {
	h := fnv.New32a()
	_, _ = h.Write([]byte(slotName))
	return lipgloss.NewStyle().Foreground(slotColors[int(h.Sum32()%uint32(len(slotColors)))])
}

// renderExample writes one example: its tokens aligned over their tags, and the slots they encode.
func renderExample(w io.Writer, e dataset.Example, scheme tagging.Scheme) error {
	tokenCells := make([]string, len(e.Tokens))
	tagCells := make([]string, len(e.Tokens))
	for ii, token := range e.Tokens {
		tag := e.Tags[ii]
		style := dimStyle
		if name, err := tagging.SlotName(tag); err == nil {
			style = slotStyle(name)
		}
		width := max(lipgloss.Width(token.Value), lipgloss.Width(tag))
		cell := lipgloss.NewStyle().Width(width)
		tokenCells[ii] = cell.Render(style.Render(token.Value))
		tagCells[ii] = cell.Render(style.Render(tag))
	}
	rows := lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(tokenCells, " "),
		strings.Join(tagCells, " "),
	)

	slots, err := e.Slots(scheme)
	if err != nil {
		return err
	}
	var slotLines []string
	for _, slot := range slots {
		slotLines = append(slotLines, fmt.Sprintf("%s %s %s",
			slotStyle(slot.SlotName).Render(slot.SlotName),
			dimStyle.Render(fmt.Sprintf("[%d:%d]", slot.Range.Start, slot.Range.End)),
			slot.Value(e.Text)))
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		intentStyle.Render(e.Intent)+" "+dimStyle.Render(e.Text),
		rows,
	)
	if len(slotLines) > 0 {
		content = lipgloss.JoinVertical(lipgloss.Left, content, strings.Join(slotLines, "\n"))
	}
	_, err = fmt.Fprintln(w, boxStyle.Render(content))
	return err
}
