package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "telefono", NormalizeKey("Teléfono"))
	assert.Equal(t, "congregacion", NormalizeKey(" Congregación "))
	assert.Equal(t, "first_name", NormalizeKey("First Name"))
	assert.Equal(t, "id_externo", NormalizeKey("ID Externo"))
}

func TestNormalize_SpanishDirectoryFields(t *testing.T) {
	people := Normalize([]RawRecord{
		{"Nombre": "Ana Rodríguez", "Teléfono": "0412-5550101", "Congregación": "Sur", "ID": "c1"},
	})

	require.Len(t, people, 1)
	assert.Equal(t, "c1", people[0].ID)
	assert.Equal(t, "Ana Rodríguez", people[0].Name)
	assert.Equal(t, "0412-5550101", people[0].Phone)
	assert.Equal(t, "Sur", people[0].Congregation)
}

func TestNormalize_ExplicitNameWinsOverFirstLast(t *testing.T) {
	people := Normalize([]RawRecord{
		{"name": "El Hermano Díaz", "first": "Pedro", "last": "Díaz"},
	})

	require.Len(t, people, 1)
	assert.Equal(t, "El Hermano Díaz", people[0].Name)
}

func TestNormalize_DisplayNameDisambiguation(t *testing.T) {
	people := Normalize([]RawRecord{
		{"first": "John", "last": "Smith"},
		{"first": "John", "last": "Baker"},
		{"first": "Mary", "last": "Jones"},
	})

	require.Len(t, people, 3)
	assert.Equal(t, "John S.", people[0].Name)
	assert.Equal(t, "John B.", people[1].Name)
	// Unique first name stays short
	assert.Equal(t, "Mary", people[2].Name)
}

func TestNormalize_MultibyteSurnameInitial(t *testing.T) {
	people := Normalize([]RawRecord{
		{"first": "José", "last": "Ñuñez"},
		{"first": "José", "last": "Blanco"},
		{"first": "Ana", "last": "Álvarez"},
		{"first": "Ana", "last": "Mora"},
	})

	require.Len(t, people, 4)
	assert.Equal(t, "José Ñ.", people[0].Name)
	assert.Equal(t, "José B.", people[1].Name)
	assert.Equal(t, "Ana Á.", people[2].Name)
	assert.Equal(t, "Ana M.", people[3].Name)
}

func TestNormalize_FullNameWhenInitialCollides(t *testing.T) {
	people := Normalize([]RawRecord{
		{"first": "John", "last": "Smith"},
		{"first": "John", "last": "Sanders"},
	})

	require.Len(t, people, 2)
	assert.Equal(t, "John Smith", people[0].Name)
	assert.Equal(t, "John Sanders", people[1].Name)
}

func TestNormalize_IDFallbackWhenNameless(t *testing.T) {
	people := Normalize([]RawRecord{
		{"id_externo": "x42", "telefono": "0414"},
	})

	require.Len(t, people, 1)
	assert.Equal(t, "x42", people[0].ID)
	assert.Equal(t, "x42", people[0].Name)
}

func TestNormalize_PreservesInputOrder(t *testing.T) {
	people := Normalize([]RawRecord{
		{"nombre": "Carlos"},
		{"nombre": "Beatriz"},
		{"nombre": "Andrés"},
	})

	require.Len(t, people, 3)
	assert.Equal(t, "Carlos", people[0].Name)
	assert.Equal(t, "Beatriz", people[1].Name)
	assert.Equal(t, "Andrés", people[2].Name)
}
