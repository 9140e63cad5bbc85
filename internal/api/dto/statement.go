package dto

import (
	"github.com/samber/lo"

	"github.com/stagebill/stagebill/internal/domain/invoice"
	"github.com/stagebill/stagebill/internal/domain/statement"
	"github.com/stagebill/stagebill/internal/types"
	"github.com/stagebill/stagebill/internal/validator"
)

type CreateStatementRequest struct {
	Customer     string                `json:"customer" validate:"required"`
	Format       types.StatementFormat `json:"format"`
	Performances []PerformanceRequest  `json:"performances" validate:"required,min=1,dive"`
}

type PerformanceRequest struct {
	PlayID   string `json:"play_id" validate:"required"`
	Audience int    `json:"audience" validate:"gte=0"`
}

func (r *CreateStatementRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.Format.Validate()
}

// GetFormat returns the requested format, defaulting to plain text.
func (r *CreateStatementRequest) GetFormat() types.StatementFormat {
	if r.Format == "" {
		return types.StatementFormatText
	}
	return r.Format
}

// ToInvoice converts the request into the domain invoice.
func (r *CreateStatementRequest) ToInvoice() *invoice.Invoice {
	return &invoice.Invoice{
		Customer: r.Customer,
		Performances: lo.Map(r.Performances, func(p PerformanceRequest, _ int) invoice.Performance {
			return invoice.Performance{
				PlayID:   p.PlayID,
				Audience: p.Audience,
			}
		}),
	}
}

type StatementResponse struct {
	Customer           string                  `json:"customer"`
	Format             types.StatementFormat   `json:"format"`
	Statement          string                  `json:"statement,omitempty"`
	TotalAmount        int64                   `json:"total_amount"`
	TotalVolumeCredits int                     `json:"total_volume_credits"`
	Performances       []StatementLineResponse `json:"performances"`
}

type StatementLineResponse struct {
	PlayID        string `json:"play_id"`
	PlayName      string `json:"play_name"`
	Audience      int    `json:"audience"`
	Amount        int64  `json:"amount"`
	VolumeCredits int    `json:"volume_credits"`
}

// NewStatementResponse builds the API response from the computed
// snapshot and its rendered form.
func NewStatementResponse(data *statement.StatementData, format types.StatementFormat, rendered string) *StatementResponse {
	return &StatementResponse{
		Customer:           data.Customer,
		Format:             format,
		Statement:          rendered,
		TotalAmount:        data.TotalAmount,
		TotalVolumeCredits: data.TotalVolumeCredits,
		Performances: lo.Map(data.Performances, func(p statement.EnrichedPerformance, _ int) StatementLineResponse {
			return StatementLineResponse{
				PlayID:        p.Performance.PlayID,
				PlayName:      p.Play.Name,
				Audience:      p.Performance.Audience,
				Amount:        p.Amount,
				VolumeCredits: p.VolumeCredits,
			}
		}),
	}
}
