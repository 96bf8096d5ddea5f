package sheetsclient

import (
	"context"
	"fmt"

	"github.com/SojoC/nexo-ppeam/pkg/core/model"
	"github.com/SojoC/nexo-ppeam/pkg/roster"
)

// RosterReader exposes a spreadsheet tab as a roster provider. The first row
// is treated as a header; column names go through the same alias chain as
// every other roster source, so "Nombre", "name" and "First name" headers all
// resolve.
type RosterReader struct {
	client        *Client
	spreadsheetID string
	tab           string
}

// NewRosterReader creates a roster provider backed by the given tab
func NewRosterReader(client *Client, spreadsheetID, tab string) *RosterReader {
	return &RosterReader{client: client, spreadsheetID: spreadsheetID, tab: tab}
}

// ListPeople retrieves and normalizes people from the configured tab
func (r *RosterReader) ListPeople(ctx context.Context) ([]model.Person, error) {
	values, err := r.client.GetValues(r.spreadsheetID, r.tab)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster data: %w", err)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("roster sheet is empty")
	}

	header := make([]string, len(values[0]))
	for i, cell := range values[0] {
		if s, ok := cell.(string); ok {
			header[i] = s
		}
	}

	records := make([]roster.RawRecord, 0, len(values)-1)
	for _, row := range values[1:] {
		record := make(roster.RawRecord, len(header))
		for i, key := range header {
			if key == "" || i >= len(row) {
				continue
			}
			if s, ok := row[i].(string); ok {
				record[key] = s
			} else {
				record[key] = fmt.Sprint(row[i])
			}
		}
		records = append(records, record)
	}

	return roster.Normalize(records), nil
}
