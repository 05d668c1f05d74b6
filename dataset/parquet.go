package dataset

import (
	"github.com/gomlx/go-slotfill/tagging"
	"github.com/gomlx/go-slotfill/tokenizers/api"
	"github.com/parquet-go/parquet-go"
	"github.com/pkg/errors"
)

// Row is the Parquet representation of an Example: token values, offsets and tags as parallel lists.
type Row struct {
	Intent string   `parquet:"intent"`
	Text   string   `parquet:"text"`
	Tokens []string `parquet:"tokens,list"`
	Starts []int64  `parquet:"starts,list"`
	Ends   []int64  `parquet:"ends,list"`
	Tags   []string `parquet:"tags,list"`
}

// ToRow converts the example to its Parquet row.
func (e Example) ToRow() Row {
	row := Row{
		Intent: e.Intent,
		Text:   e.Text,
		Tokens: make([]string, len(e.Tokens)),
		Starts: make([]int64, len(e.Tokens)),
		Ends:   make([]int64, len(e.Tokens)),
		Tags:   append([]string{}, e.Tags...),
	}
	for ii, t := range e.Tokens {
		row.Tokens[ii] = t.Value
		row.Starts[ii] = int64(t.Start)
		row.Ends[ii] = int64(t.End)
	}
	return row
}

// ToExample converts a Parquet row back to an Example, checking that its lists are aligned.
func (r Row) ToExample() (Example, error) {
	n := len(r.Tokens)
	if len(r.Starts) != n || len(r.Ends) != n || len(r.Tags) != n {
		return Example{}, errors.Wrapf(tagging.ErrLengthMismatch,
			"row of intent %q has %d tokens, %d starts, %d ends and %d tags",
			r.Intent, n, len(r.Starts), len(r.Ends), len(r.Tags))
	}
	e := Example{Intent: r.Intent, Text: r.Text}
	e.Tokens = make([]api.Token, n)
	for ii := range r.Tokens {
		e.Tokens[ii] = api.Token{Value: r.Tokens[ii], Start: int(r.Starts[ii]), End: int(r.Ends[ii])}
	}
	e.Tags = append([]string{}, r.Tags...)
	return e, nil
}

// WriteParquet writes the examples to a Parquet file, one row per example.
func WriteParquet(filePath string, examples []Example) error {
	rows := make([]Row, len(examples))
	for ii, e := range examples {
		rows[ii] = e.ToRow()
	}
	if err := parquet.WriteFile(filePath, rows); err != nil {
		return errors.Wrapf(err, "failed to write %d samples to %q", len(rows), filePath)
	}
	return nil
}

// ReadParquet reads examples written by WriteParquet.
func ReadParquet(filePath string) ([]Example, error) {
	rows, err := parquet.ReadFile[Row](filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read samples from %q", filePath)
	}
	examples := make([]Example, len(rows))
	for ii, row := range rows {
		examples[ii], err = row.ToExample()
		if err != nil {
			return nil, errors.WithMessagef(err, "%q row #%d", filePath, ii)
		}
	}
	return examples, nil
}
