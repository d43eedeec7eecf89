package wire

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	mahjong "mahjong-go"
)

// BatchEntry is one named hand in a batch file.
type BatchEntry struct {
	Name    string `yaml:"name"`
	Request `yaml:",inline"`
}

type batchFile struct {
	Hands []BatchEntry `yaml:"hands"`
}

// LoadBatch reads a YAML batch file.
func LoadBatch(path string) ([]BatchEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	return ParseBatch(data)
}

// ParseBatch decodes a YAML document with a top-level "hands" list. Entries
// without a name are numbered from 1.
func ParseBatch(data []byte) ([]BatchEntry, error) {
	var f batchFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, mahjong.ErrInvalidRequest.Wrap(fmt.Errorf("parse batch: %w", err))
	}
	for i := range f.Hands {
		if f.Hands[i].Name == "" {
			f.Hands[i].Name = fmt.Sprintf("hand %d", i+1)
		}
	}
	return f.Hands, nil
}
