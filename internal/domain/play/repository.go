package play

import (
	"context"
)

// Repository defines the interface for catalog lookups. Implementations
// are read-only for the duration of a statement computation.
type Repository interface {
	Get(ctx context.Context, id string) (*Play, error)
	List(ctx context.Context) ([]*Play, error)
}
