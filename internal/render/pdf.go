package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/stagebill/stagebill/internal/currency"
	"github.com/stagebill/stagebill/internal/domain/statement"
	ierr "github.com/stagebill/stagebill/internal/errors"
)

// PDFRenderer renders a statement as a minimal single-page PDF.
type PDFRenderer struct {
	currency *currency.Formatter
}

func NewPDFRenderer(currency *currency.Formatter) *PDFRenderer {
	return &PDFRenderer{currency: currency}
}

func (r *PDFRenderer) Render(data *statement.StatementData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, fmt.Sprintf("Statement for %s", data.Customer))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(80, 6, "Play", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, "Seats", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Cost", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, perf := range data.Performances {
		pdf.CellFormat(80, 6, perf.Play.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", perf.Performance.Audience), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, r.currency.Format(perf.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.Cell(0, 6, fmt.Sprintf("Amount owed is %s", r.currency.Format(data.TotalAmount)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("You earned %d credits", data.TotalVolumeCredits))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to render PDF statement").
			Mark(ierr.ErrSystem)
	}
	return buf.Bytes(), nil
}
