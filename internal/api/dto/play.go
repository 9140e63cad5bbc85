package dto

import (
	"github.com/stagebill/stagebill/internal/domain/play"
	"github.com/stagebill/stagebill/internal/types"
)

type PlayResponse struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Genre types.Genre `json:"genre"`
}

type ListPlaysResponse struct {
	Items []*PlayResponse `json:"items"`
	Total int             `json:"total"`
}

func PlayFromDomain(p *play.Play) *PlayResponse {
	if p == nil {
		return nil
	}
	return &PlayResponse{
		ID:    p.ID,
		Name:  p.Name,
		Genre: p.Genre,
	}
}
