package testutil

import (
	"context"

	"github.com/stagebill/stagebill/internal/domain/play"
	ierr "github.com/stagebill/stagebill/internal/errors"
)

// InMemoryPlayStore implements play.Repository
type InMemoryPlayStore struct {
	*InMemoryStore[*play.Play]
}

// NewInMemoryPlayStore creates a new in-memory play catalog
func NewInMemoryPlayStore() *InMemoryPlayStore {
	return &InMemoryPlayStore{
		InMemoryStore: NewInMemoryStore[*play.Play](),
	}
}

// Add seeds the catalog with a play.
func (s *InMemoryPlayStore) Add(ctx context.Context, p *play.Play) error {
	if p == nil {
		return ierr.NewError("play cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, p.ID, p)
}

func (s *InMemoryPlayStore) Get(ctx context.Context, id string) (*play.Play, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewErrorf("%s: unknown play id", id).
			WithHintf("Play %s is not in the catalog", id).
			WithReportableDetails(map[string]any{
				"play_id": id,
			}).
			Mark(ierr.ErrPlayNotFound)
	}
	return p, nil
}

func (s *InMemoryPlayStore) List(ctx context.Context) ([]*play.Play, error) {
	return s.InMemoryStore.List(ctx, func(i, j *play.Play) bool {
		return i.ID < j.ID
	})
}
