package postgres

import (
	"context"
	"fmt"

	"github.com/SojoC/nexo-ppeam/pkg/core/model"
)

// Contact is one row of the contact directory. Field names follow the
// upstream congregation directory schema.
type Contact struct {
	ID           string
	Nombre       string
	Telefono     string
	Congregacion string
	Circuito     string
	Privilegio   string
}

// ListPeople returns the contact directory as a canonical roster, ordered by
// name then id so roster order is stable across fetches
func (db *DB) ListPeople(ctx context.Context) ([]model.Person, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, nombre, COALESCE(telefono, ''), COALESCE(congregacion, '')
		FROM contacts
		ORDER BY nombre, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	var people []model.Person
	for rows.Next() {
		var p model.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.Phone, &p.Congregation); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		people = append(people, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contacts: %w", err)
	}

	return people, nil
}

// InsertContact inserts a new contact record
func (db *DB) InsertContact(ctx context.Context, contact *Contact) error {
	_, err := db.pool.Exec(ctx, `
		INSERT INTO contacts (id, nombre, telefono, congregacion, circuito, privilegio)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, contact.ID, contact.Nombre, contact.Telefono, contact.Congregacion, contact.Circuito, contact.Privilegio)
	if err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}
	return nil
}
