// Package roster defines the roster-provider boundary: every source of
// participants (file, database, spreadsheet) is normalized here into the
// canonical Person shape before it reaches the scheduler.
package roster

import (
	"context"

	"go.uber.org/zap"

	"github.com/SojoC/nexo-ppeam/pkg/core/model"
)

// Provider returns an ordered list of people eligible for assignment
type Provider interface {
	ListPeople(ctx context.Context) ([]model.Person, error)
}

// failOpenProvider wraps a provider so that fetch failures yield an empty
// roster instead of an error. Every slot then renders empty rather than the
// schedule build failing.
type failOpenProvider struct {
	inner  Provider
	logger *zap.Logger
}

// FailOpen wraps the given provider with the fail-open roster policy
func FailOpen(p Provider, logger *zap.Logger) Provider {
	return &failOpenProvider{inner: p, logger: logger}
}

func (f *failOpenProvider) ListPeople(ctx context.Context) ([]model.Person, error) {
	people, err := f.inner.ListPeople(ctx)
	if err != nil {
		f.logger.Warn("Roster fetch failed, continuing with empty roster", zap.Error(err))
		return []model.Person{}, nil
	}
	return people, nil
}
