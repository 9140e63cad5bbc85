package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/stagebill/stagebill/internal/api/dto"
	"github.com/stagebill/stagebill/internal/currency"
	"github.com/stagebill/stagebill/internal/domain/invoice"
	"github.com/stagebill/stagebill/internal/domain/play"
	ierr "github.com/stagebill/stagebill/internal/errors"
	"github.com/stagebill/stagebill/internal/logger"
	"github.com/stagebill/stagebill/internal/render"
	"github.com/stagebill/stagebill/internal/testutil"
	"github.com/stagebill/stagebill/internal/types"
	"github.com/stagebill/stagebill/internal/validator"
)

type StatementServiceSuite struct {
	suite.Suite
	ctx      context.Context
	playRepo *testutil.InMemoryPlayStore
	service  StatementService
}

func TestStatementService(t *testing.T) {
	suite.Run(t, new(StatementServiceSuite))
}

func (s *StatementServiceSuite) SetupTest() {
	validator.NewValidator()

	s.ctx = context.Background()
	s.playRepo = testutil.NewInMemoryPlayStore()

	for _, p := range []*play.Play{
		{ID: "hamlet", Name: "Hamlet", Genre: types.GenreTragedy},
		{ID: "as-like", Name: "As You Like It", Genre: types.GenreComedy},
		{ID: "othello", Name: "Othello", Genre: types.GenreTragedy},
		{ID: "xyz", Name: "XYZ", Genre: types.Genre("opera")},
	} {
		s.Require().NoError(s.playRepo.Add(s.ctx, p))
	}

	formatter, err := currency.NewFormatter("usd", "en-US")
	s.Require().NoError(err)

	s.service = NewStatementService(
		s.playRepo,
		render.NewTextRenderer(formatter),
		render.NewHTMLRenderer(formatter),
		render.NewPDFRenderer(formatter),
		logger.L,
	)
}

func (s *StatementServiceSuite) bigCoInvoice() *invoice.Invoice {
	return &invoice.Invoice{
		Customer: "BigCo",
		Performances: []invoice.Performance{
			{PlayID: "hamlet", Audience: 55},
			{PlayID: "as-like", Audience: 35},
			{PlayID: "othello", Audience: 40},
		},
	}
}

func (s *StatementServiceSuite) TestBuildStatementData() {
	inv := s.bigCoInvoice()
	data, err := s.service.BuildStatementData(s.ctx, inv)
	s.Require().NoError(err)

	s.Equal("BigCo", data.Customer)
	s.Require().Len(data.Performances, len(inv.Performances))

	// order preserved, one output per input
	s.Equal("hamlet", data.Performances[0].Performance.PlayID)
	s.Equal("as-like", data.Performances[1].Performance.PlayID)
	s.Equal("othello", data.Performances[2].Performance.PlayID)

	s.Equal(int64(65000), data.Performances[0].Amount)
	s.Equal(int64(58000), data.Performances[1].Amount)
	s.Equal(int64(50000), data.Performances[2].Amount)

	s.Equal(25, data.Performances[0].VolumeCredits)
	s.Equal(12, data.Performances[1].VolumeCredits)
	s.Equal(10, data.Performances[2].VolumeCredits)

	s.Equal(int64(173000), data.TotalAmount)
	s.Equal(47, data.TotalVolumeCredits)
}

func (s *StatementServiceSuite) TestTotalsMatchLineItems() {
	data, err := s.service.BuildStatementData(s.ctx, s.bigCoInvoice())
	s.Require().NoError(err)

	var amount int64
	var credits int
	for _, perf := range data.Performances {
		amount += perf.Amount
		credits += perf.VolumeCredits
	}
	s.Equal(amount, data.TotalAmount)
	s.Equal(credits, data.TotalVolumeCredits)
}

func (s *StatementServiceSuite) TestRenderText() {
	expected := "Statement for BigCo\n" +
		"  Hamlet: $650.00 (55 seats)\n" +
		"  As You Like It: $580.00 (35 seats)\n" +
		"  Othello: $500.00 (40 seats)\n" +
		"Amount owed is $1,730.00\n" +
		"You earned 47 credits\n"

	got, err := s.service.RenderText(s.ctx, s.bigCoInvoice())
	s.Require().NoError(err)
	s.Equal(expected, got)
}

func (s *StatementServiceSuite) TestRenderTextIsIdempotent() {
	inv := s.bigCoInvoice()
	first, err := s.service.RenderText(s.ctx, inv)
	s.Require().NoError(err)
	second, err := s.service.RenderText(s.ctx, inv)
	s.Require().NoError(err)
	s.Equal(first, second)
}

func (s *StatementServiceSuite) TestRenderHTML() {
	got, err := s.service.RenderHTML(s.ctx, s.bigCoInvoice())
	s.Require().NoError(err)

	s.Contains(got, "<h1>Statement for BigCo</h1>")
	s.Contains(got, "<tr><td>Hamlet</td><td>55</td><td>$650.00</td></tr>")
	s.Contains(got, "<tr><td>As You Like It</td><td>35</td><td>$580.00</td></tr>")
	s.Contains(got, "<tr><td>Othello</td><td>40</td><td>$500.00</td></tr>")
	s.Contains(got, "<p>Amount owed is <em>$1,730.00</em></p>")
	s.Contains(got, "<p>You earned <em>47</em> credits</p>")
}

func (s *StatementServiceSuite) TestUnknownPlayAbortsStatement() {
	inv := &invoice.Invoice{
		Customer: "BigCo",
		Performances: []invoice.Performance{
			{PlayID: "hamlet", Audience: 55},
			{PlayID: "missing", Audience: 10},
			{PlayID: "othello", Audience: 40},
		},
	}

	data, err := s.service.BuildStatementData(s.ctx, inv)
	s.Nil(data)
	s.Require().Error(err)
	s.True(ierr.IsPlayNotFound(err))
	s.Contains(err.Error(), "missing")

	out, err := s.service.RenderText(s.ctx, inv)
	s.Empty(out)
	s.Error(err)
}

func (s *StatementServiceSuite) TestUnknownGenreAbortsStatement() {
	inv := &invoice.Invoice{
		Customer: "UT KK",
		Performances: []invoice.Performance{
			{PlayID: "xyz", Audience: 10},
		},
	}

	data, err := s.service.BuildStatementData(s.ctx, inv)
	s.Nil(data)
	s.Require().Error(err)
	s.True(ierr.IsUnknownGenre(err))
	s.Contains(err.Error(), "opera")
}

func (s *StatementServiceSuite) TestNegativeAudienceRejected() {
	inv := &invoice.Invoice{
		Customer: "BigCo",
		Performances: []invoice.Performance{
			{PlayID: "hamlet", Audience: -1},
		},
	}

	data, err := s.service.BuildStatementData(s.ctx, inv)
	s.Nil(data)
	s.Require().Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *StatementServiceSuite) TestEmptyInvoice() {
	inv := &invoice.Invoice{Customer: "BigCo"}
	data, err := s.service.BuildStatementData(s.ctx, inv)
	s.Require().NoError(err)
	s.Empty(data.Performances)
	s.Equal(int64(0), data.TotalAmount)
	s.Equal(0, data.TotalVolumeCredits)
}

func (s *StatementServiceSuite) TestCreateStatementText() {
	req := dto.CreateStatementRequest{
		Customer: "BigCo",
		Performances: []dto.PerformanceRequest{
			{PlayID: "hamlet", Audience: 55},
			{PlayID: "as-like", Audience: 35},
			{PlayID: "othello", Audience: 40},
		},
	}

	resp, err := s.service.CreateStatement(s.ctx, req)
	s.Require().NoError(err)

	s.Equal(types.StatementFormatText, resp.Format)
	s.Equal(int64(173000), resp.TotalAmount)
	s.Equal(47, resp.TotalVolumeCredits)
	s.Require().Len(resp.Performances, 3)
	s.Equal("Hamlet", resp.Performances[0].PlayName)
	s.Contains(resp.Statement, "Amount owed is $1,730.00")
}

func (s *StatementServiceSuite) TestCreateStatementJSONSkipsRendering() {
	req := dto.CreateStatementRequest{
		Customer: "BigCo",
		Format:   types.StatementFormatJSON,
		Performances: []dto.PerformanceRequest{
			{PlayID: "hamlet", Audience: 55},
		},
	}

	resp, err := s.service.CreateStatement(s.ctx, req)
	s.Require().NoError(err)
	s.Empty(resp.Statement)
	s.Equal(int64(65000), resp.TotalAmount)
}

func (s *StatementServiceSuite) TestCreateStatementRejectsBadFormat() {
	req := dto.CreateStatementRequest{
		Customer: "BigCo",
		Format:   types.StatementFormat("xml"),
		Performances: []dto.PerformanceRequest{
			{PlayID: "hamlet", Audience: 55},
		},
	}

	resp, err := s.service.CreateStatement(s.ctx, req)
	s.Nil(resp)
	s.Require().Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *StatementServiceSuite) TestCreateStatementRejectsEmptyPerformances() {
	req := dto.CreateStatementRequest{Customer: "BigCo"}

	resp, err := s.service.CreateStatement(s.ctx, req)
	s.Nil(resp)
	s.Require().Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *StatementServiceSuite) TestRenderPDF() {
	raw, err := s.service.RenderPDF(s.ctx, s.bigCoInvoice())
	s.Require().NoError(err)
	s.NotEmpty(raw)
	s.Equal("%PDF", string(raw[:4]))
}
