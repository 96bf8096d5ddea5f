package roster

import (
	"strings"
	"unicode/utf8"

	"github.com/SojoC/nexo-ppeam/pkg/core/model"
)

// RawRecord is one loosely shaped roster entry as delivered by an upstream
// source. Keys vary per source (English and Spanish headers, accents, mixed
// case); values are always rendered as strings by the providers.
type RawRecord map[string]string

// Alias chains for each canonical field, in fallback order. The upstream
// contact directory uses Spanish field names; ad hoc sources tend to use
// English ones.
var (
	idAliases           = []string{"id", "id_externo", "unique_id"}
	nameAliases         = []string{"name", "nombre", "display_name", "full_name"}
	firstAliases        = []string{"first", "first_name", "firstname"}
	lastAliases         = []string{"last", "last_name", "lastname", "surname"}
	phoneAliases        = []string{"phone", "telefono", "telephone"}
	congregationAliases = []string{"congregation", "congregacion"}
)

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
)

// NormalizeKey canonicalizes a raw field key: trimmed, lowercased, accents
// stripped, spaces collapsed to underscores
func NormalizeKey(key string) string {
	key = strings.TrimSpace(strings.ToLower(key))
	key = accentReplacer.Replace(key)
	return strings.ReplaceAll(key, " ", "_")
}

type resolved struct {
	id           string
	name         string
	first        string
	last         string
	phone        string
	congregation string
}

// Normalize resolves loosely shaped records into canonical Person values,
// preserving input order. An explicit name field wins; otherwise the name is
// assembled from first/last with uniqueness-based disambiguation across the
// whole roster; a record with neither falls back to its identifier.
func Normalize(records []RawRecord) []model.Person {
	entries := make([]resolved, len(records))
	for i, record := range records {
		entries[i] = resolve(record)
	}

	assignDisplayNames(entries)

	people := make([]model.Person, len(entries))
	for i, e := range entries {
		people[i] = model.Person{
			ID:           e.id,
			Name:         e.name,
			Phone:        e.phone,
			Congregation: e.congregation,
		}
	}
	return people
}

func resolve(record RawRecord) resolved {
	normalized := make(map[string]string, len(record))
	for key, value := range record {
		normalized[NormalizeKey(key)] = strings.TrimSpace(value)
	}

	lookup := func(aliases []string) string {
		for _, alias := range aliases {
			if v := normalized[alias]; v != "" {
				return v
			}
		}
		return ""
	}

	return resolved{
		id:           lookup(idAliases),
		name:         lookup(nameAliases),
		first:        lookup(firstAliases),
		last:         lookup(lastAliases),
		phone:        lookup(phoneAliases),
		congregation: lookup(congregationAliases),
	}
}

// assignDisplayNames fills the name of every entry that lacks an explicit one.
// For first/last entries the shortest unambiguous form is used:
//   - first name alone if unique across the roster
//   - "First L." if that is unique
//   - full "First Last" otherwise
func assignDisplayNames(entries []resolved) {
	firstNameCounts := make(map[string]int)
	initialCounts := make(map[string]int)

	for _, e := range entries {
		if e.name != "" || e.first == "" {
			continue
		}
		firstNameCounts[e.first]++
		if e.last != "" {
			initialCounts[initialKey(e.first, e.last)]++
		}
	}

	for i := range entries {
		e := &entries[i]
		if e.name != "" {
			continue
		}
		if e.first == "" {
			e.name = e.id
			continue
		}

		if firstNameCounts[e.first] == 1 {
			e.name = e.first
			continue
		}

		if e.last != "" {
			key := initialKey(e.first, e.last)
			if initialCounts[key] == 1 {
				e.name = key
				continue
			}
			e.name = e.first + " " + e.last
			continue
		}

		e.name = e.first
	}
}

func initialKey(first, last string) string {
	// First rune, not first byte; surnames here often start with Ñ or an
	// accented letter
	r, _ := utf8.DecodeRuneInString(last)
	return first + " " + string(r) + "."
}
