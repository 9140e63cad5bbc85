package types

import (
	ierr "github.com/stagebill/stagebill/internal/errors"
)

// Genre is the category of a play. It selects the pricing and
// volume-credit rules applied to a performance of that play.
type Genre string

const (
	GenreTragedy Genre = "tragedy"
	GenreComedy  Genre = "comedy"
)

func (g Genre) String() string {
	return string(g)
}

// Validate checks that the genre is one of the registered values.
func (g Genre) Validate() error {
	switch g {
	case GenreTragedy, GenreComedy:
		return nil
	default:
		return ierr.NewErrorf("unknown genre: %s", g).
			WithHintf("Genre %s is not supported", g).
			WithReportableDetails(map[string]any{
				"genre": string(g),
			}).
			Mark(ierr.ErrUnknownGenre)
	}
}
