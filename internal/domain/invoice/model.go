package invoice

import (
	ierr "github.com/stagebill/stagebill/internal/errors"
)

// Performance is one raw line item of an invoice.
type Performance struct {
	PlayID   string `json:"play_id"`
	Audience int    `json:"audience"`
}

// Invoice is the root input of a statement computation. The caller owns
// it; statement building only reads it.
type Invoice struct {
	Customer     string        `json:"customer"`
	Performances []Performance `json:"performances"`
}

func (p *Performance) Validate() error {
	if p.PlayID == "" {
		return ierr.NewError("play id is required").
			WithHint("Each performance must reference a play").
			Mark(ierr.ErrValidation)
	}
	if p.Audience < 0 {
		return ierr.NewErrorf("invalid audience %d for play %s", p.Audience, p.PlayID).
			WithHint("Audience cannot be negative").
			WithReportableDetails(map[string]any{
				"play_id":  p.PlayID,
				"audience": p.Audience,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (i *Invoice) Validate() error {
	if i.Customer == "" {
		return ierr.NewError("customer is required").
			WithHint("Invoice customer cannot be empty").
			Mark(ierr.ErrValidation)
	}
	for idx := range i.Performances {
		if err := i.Performances[idx].Validate(); err != nil {
			return err
		}
	}
	return nil
}
