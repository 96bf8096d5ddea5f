package scheduler

import (
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// ISODateFormat is the key format for per-date overrides
const ISODateFormat = "2006-01-02"

// DayOverride is caller-supplied customization for a single date. All fields
// are optional; empty TimeLabels means the canonical defaults stay in effect.
type DayOverride struct {
	PlaceName   string   `yaml:"placeName,omitempty"`
	ContactName string   `yaml:"contactName,omitempty"`
	Note        string   `yaml:"note,omitempty"`
	LocationID  string   `yaml:"locationID,omitempty"`
	TimeLabels  []string `yaml:"timeLabels,omitempty"`
}

// OverrideStore holds per-date overrides keyed by ISO date. It lives only in
// memory for the life of a session; overrides are never persisted back.
type OverrideStore struct {
	entries map[string]*DayOverride
}

// NewOverrideStore creates an empty override store
func NewOverrideStore() *OverrideStore {
	return &OverrideStore{entries: make(map[string]*DayOverride)}
}

// Get returns a copy of the override for the given date, if one exists
func (s *OverrideStore) Get(date time.Time) (DayOverride, bool) {
	o, ok := s.entries[date.Format(ISODateFormat)]
	if !ok {
		return DayOverride{}, false
	}
	return *o, true
}

// Edit returns the override for the given date, creating an empty one on
// first interaction
func (s *OverrideStore) Edit(date time.Time) *DayOverride {
	key := date.Format(ISODateFormat)
	if o, ok := s.entries[key]; ok {
		return o
	}
	o := &DayOverride{}
	s.entries[key] = o
	return o
}

// Set replaces the override for the given date
func (s *OverrideStore) Set(date time.Time, o DayOverride) {
	s.entries[date.Format(ISODateFormat)] = &o
}

// Delete removes the override for the given date
func (s *OverrideStore) Delete(date time.Time) {
	delete(s.entries, date.Format(ISODateFormat))
}

// Dates returns the ISO dates with overrides, sorted ascending
func (s *OverrideStore) Dates() []string {
	dates := make([]string, 0, len(s.entries))
	for key := range s.entries {
		dates = append(dates, key)
	}
	sort.Strings(dates)
	return dates
}

// LoadOverrides reads an override store from a YAML file mapping ISO dates to
// day overrides
func LoadOverrides(path string) (*OverrideStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides file: %w", err)
	}

	var raw map[string]DayOverride
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse overrides file: %w", err)
	}

	store := NewOverrideStore()
	for key, o := range raw {
		date, err := time.Parse(ISODateFormat, key)
		if err != nil {
			return nil, fmt.Errorf("invalid override date %q: %w", key, err)
		}
		store.Set(date, o)
	}

	return store, nil
}
