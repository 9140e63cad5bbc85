package service

import (
	"context"

	"github.com/samber/lo"

	"github.com/stagebill/stagebill/internal/api/dto"
	"github.com/stagebill/stagebill/internal/domain/play"
	ierr "github.com/stagebill/stagebill/internal/errors"
	"github.com/stagebill/stagebill/internal/logger"
)

// PlayService exposes read access to the play catalog.
type PlayService interface {
	GetPlay(ctx context.Context, id string) (*dto.PlayResponse, error)
	ListPlays(ctx context.Context) (*dto.ListPlaysResponse, error)
}

type playService struct {
	playRepo play.Repository
	logger   *logger.Logger
}

func NewPlayService(playRepo play.Repository, logger *logger.Logger) PlayService {
	return &playService{
		playRepo: playRepo,
		logger:   logger,
	}
}

func (s *playService) GetPlay(ctx context.Context, id string) (*dto.PlayResponse, error) {
	if id == "" {
		return nil, ierr.NewError("play id is required").
			WithHint("Play ID is required").
			Mark(ierr.ErrValidation)
	}

	p, err := s.playRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.PlayFromDomain(p), nil
}

func (s *playService) ListPlays(ctx context.Context) (*dto.ListPlaysResponse, error) {
	plays, err := s.playRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(plays, func(p *play.Play, _ int) *dto.PlayResponse {
		return dto.PlayFromDomain(p)
	})
	return &dto.ListPlaysResponse{
		Items: items,
		Total: len(items),
	}, nil
}
