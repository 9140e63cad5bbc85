package service

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/stagebill/stagebill/internal/api/dto"
	"github.com/stagebill/stagebill/internal/domain/invoice"
	"github.com/stagebill/stagebill/internal/domain/play"
	"github.com/stagebill/stagebill/internal/domain/pricing"
	"github.com/stagebill/stagebill/internal/domain/statement"
	ierr "github.com/stagebill/stagebill/internal/errors"
	"github.com/stagebill/stagebill/internal/logger"
	"github.com/stagebill/stagebill/internal/metrics"
	"github.com/stagebill/stagebill/internal/render"
	"github.com/stagebill/stagebill/internal/types"
)

// StatementService computes and renders customer statements. Building
// the snapshot is the single authoritative calculation phase; the
// renderers only format already-computed fields.
type StatementService interface {
	BuildStatementData(ctx context.Context, inv *invoice.Invoice) (*statement.StatementData, error)
	RenderText(ctx context.Context, inv *invoice.Invoice) (string, error)
	RenderHTML(ctx context.Context, inv *invoice.Invoice) (string, error)
	RenderPDF(ctx context.Context, inv *invoice.Invoice) ([]byte, error)
	CreateStatement(ctx context.Context, req dto.CreateStatementRequest) (*dto.StatementResponse, error)
}

type statementService struct {
	playRepo play.Repository
	text     *render.TextRenderer
	html     *render.HTMLRenderer
	pdf      *render.PDFRenderer
	logger   *logger.Logger
}

func NewStatementService(
	playRepo play.Repository,
	text *render.TextRenderer,
	html *render.HTMLRenderer,
	pdf *render.PDFRenderer,
	logger *logger.Logger,
) StatementService {
	return &statementService{
		playRepo: playRepo,
		text:     text,
		html:     html,
		pdf:      pdf,
		logger:   logger,
	}
}

// BuildStatementData enriches every performance in input order and
// aggregates the totals. It aborts on the first unknown play id or
// unknown genre; no partial snapshot is ever returned.
func (s *statementService) BuildStatementData(ctx context.Context, inv *invoice.Invoice) (*statement.StatementData, error) {
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	enriched, err := s.enrich(ctx, inv)
	if err != nil {
		return nil, err
	}

	totalAmount, totalVolumeCredits := statement.Aggregate(enriched)

	return &statement.StatementData{
		Customer:           inv.Customer,
		Performances:       enriched,
		TotalAmount:        totalAmount,
		TotalVolumeCredits: totalVolumeCredits,
	}, nil
}

// enrich joins each raw performance with its play and the computed
// amount and volume credits. Order-preserving and total: one output per
// input performance.
func (s *statementService) enrich(ctx context.Context, inv *invoice.Invoice) ([]statement.EnrichedPerformance, error) {
	enriched := make([]statement.EnrichedPerformance, 0, len(inv.Performances))
	for i := range inv.Performances {
		perf := &inv.Performances[i]

		p, err := s.playRepo.Get(ctx, perf.PlayID)
		if err != nil {
			return nil, err
		}

		calc, err := pricing.CalculatorFor(p.Genre)
		if err != nil {
			return nil, err
		}

		enriched = append(enriched, statement.EnrichedPerformance{
			Performance:   perf,
			Play:          p,
			Amount:        calc.AmountFor(perf),
			VolumeCredits: calc.VolumeCreditsFor(perf),
		})
	}
	return enriched, nil
}

func (s *statementService) RenderText(ctx context.Context, inv *invoice.Invoice) (string, error) {
	data, err := s.BuildStatementData(ctx, inv)
	if err != nil {
		return "", err
	}
	return s.text.Render(data), nil
}

func (s *statementService) RenderHTML(ctx context.Context, inv *invoice.Invoice) (string, error) {
	data, err := s.BuildStatementData(ctx, inv)
	if err != nil {
		return "", err
	}
	return s.html.Render(data)
}

func (s *statementService) RenderPDF(ctx context.Context, inv *invoice.Invoice) ([]byte, error) {
	data, err := s.BuildStatementData(ctx, inv)
	if err != nil {
		return nil, err
	}
	return s.pdf.Render(data)
}

// CreateStatement is the API-facing entry point: validates the request,
// computes the snapshot once and renders it in the requested format.
func (s *statementService) CreateStatement(ctx context.Context, req dto.CreateStatementRequest) (*dto.StatementResponse, error) {
	start := time.Now()
	format := req.GetFormat()

	resp, err := s.createStatement(ctx, req, format)
	if err != nil {
		metrics.ObserveStatement(format.String(), metrics.ResultError, time.Since(start))
		return nil, err
	}

	metrics.ObserveStatement(format.String(), metrics.ResultSuccess, time.Since(start))
	s.logger.Debugw("statement rendered",
		"customer", req.Customer,
		"format", format,
		"performances", len(req.Performances),
	)
	return resp, nil
}

func (s *statementService) createStatement(ctx context.Context, req dto.CreateStatementRequest, format types.StatementFormat) (*dto.StatementResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid statement request").
			Mark(ierr.ErrValidation)
	}

	data, err := s.BuildStatementData(ctx, req.ToInvoice())
	if err != nil {
		return nil, err
	}

	var rendered string
	switch format {
	case types.StatementFormatText:
		rendered = s.text.Render(data)
	case types.StatementFormatHTML:
		rendered, err = s.html.Render(data)
		if err != nil {
			return nil, err
		}
	case types.StatementFormatPDF:
		raw, err := s.pdf.Render(data)
		if err != nil {
			return nil, err
		}
		rendered = base64.StdEncoding.EncodeToString(raw)
	case types.StatementFormatJSON:
		// the response body already carries the statement data
	}

	return dto.NewStatementResponse(data, format, rendered), nil
}
