package scheduler

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverrideStore_EditCreatesLazily(t *testing.T) {
	store := NewOverrideStore()
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	_, ok := store.Get(date)
	require.False(t, ok)

	o := store.Edit(date)
	o.Note = "cambio de horario"

	got, ok := store.Get(date)
	require.True(t, ok)
	assert.Equal(t, "cambio de horario", got.Note)

	// Editing again returns the same entry
	assert.Equal(t, "cambio de horario", store.Edit(date).Note)
}

func TestOverrideStore_SetGetDelete(t *testing.T) {
	store := NewOverrideStore()
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	store.Set(date, DayOverride{PlaceName: "Plaza"})

	got, ok := store.Get(date)
	require.True(t, ok)
	assert.Equal(t, "Plaza", got.PlaceName)

	store.Delete(date)
	_, ok = store.Get(date)
	assert.False(t, ok)
}

func TestOverrideStore_DatesSorted(t *testing.T) {
	store := NewOverrideStore()
	store.Set(time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC), DayOverride{})
	store.Set(time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), DayOverride{})
	store.Set(time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), DayOverride{})

	assert.Equal(t, []string{"2026-02-28", "2026-03-02", "2026-03-12"}, store.Dates())
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	content := `
2026-01-05:
  placeName: Plaza Central
  timeLabels: ["07:00", "08:00"]
2026-01-07:
  note: sin reunión
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	store, err := LoadOverrides(path)
	require.NoError(t, err)

	o, ok := store.Get(time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "Plaza Central", o.PlaceName)
	assert.Equal(t, []string{"07:00", "08:00"}, o.TimeLabels)

	o, ok = store.Get(time.Date(2026, time.January, 7, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "sin reunión", o.Note)
}

func TestLoadOverrides_InvalidDateKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overrides.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not-a-date:\n  note: x\n"), 0644))

	_, err := LoadOverrides(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid override date")
}
