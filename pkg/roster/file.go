package roster

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/SojoC/nexo-ppeam/pkg/core/model"
)

// FileProvider reads the roster from a YAML file containing a list of
// loosely keyed records
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider backed by the given YAML file
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// ListPeople loads, normalizes and returns the roster in file order
func (p *FileProvider) ListPeople(ctx context.Context) ([]model.Person, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var raw []map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse roster file: %w", err)
	}

	records := make([]RawRecord, len(raw))
	for i, entry := range raw {
		record := make(RawRecord, len(entry))
		for key, value := range entry {
			if value == nil {
				continue
			}
			record[key] = fmt.Sprint(value)
		}
		records[i] = record
	}

	return Normalize(records), nil
}
