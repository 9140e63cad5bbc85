package play

import (
	"github.com/stagebill/stagebill/internal/types"
)

// Play is immutable reference data resolved from the catalog by id.
// It is never mutated during a statement computation.
type Play struct {
	ID    string      `json:"id" yaml:"id"`
	Name  string      `json:"name" yaml:"name"`
	Genre types.Genre `json:"genre" yaml:"genre"`
}

func (p *Play) Validate() error {
	return p.Genre.Validate()
}
