package dataset

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Load reads a dataset file. Files ending in ".yaml" or ".yml" are parsed as YAML, anything else as JSON.
func Load(filePath string) (*Dataset, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open dataset file %q", filePath)
	}
	defer func() { _ = f.Close() }()

	var ds *Dataset
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		ds, err = ReadYAML(f)
	default:
		ds, err = ReadJSON(f)
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "dataset file %q", filePath)
	}
	return ds, nil
}

// ReadJSON parses a JSON dataset.
func ReadJSON(r io.Reader) (*Dataset, error) {
	var ds Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, errors.Wrap(err, "failed to parse JSON dataset")
	}
	if err := ds.validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// ReadYAML parses a YAML dataset.
func ReadYAML(r io.Reader) (*Dataset, error) {
	var ds Dataset
	if err := yaml.NewDecoder(r).Decode(&ds); err != nil {
		return nil, errors.Wrap(err, "failed to parse YAML dataset")
	}
	if err := ds.validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

func (ds *Dataset) validate() error {
	if ds.Intents == nil {
		return errors.New("dataset has no \"intents\"")
	}
	for name, intent := range ds.Intents {
		for ii, utterance := range intent.Utterances {
			if len(utterance.Data) == 0 {
				return errors.Errorf("intent %q utterance #%d has no data", name, ii)
			}
		}
	}
	return nil
}
