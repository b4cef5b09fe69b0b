package infra

// pdf.go renders the A4 stock report with go-pdf/fpdf:
//   - title and generation timestamp
//   - one row per drug: code, name, unit, total on hand
//   - indented rows for each lot: expiry, amount, unit price, lot value
//   - grand total of stock value

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"pharmastock/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const reportFontFamily = "report"

// ReportFont is a UTF-8 TrueType family for report text (Sarabun or another
// Thai-capable face). Without one the report uses core Helvetica, which only
// draws Latin text.
type ReportFont struct {
	Regular []byte
	Bold    []byte
}

// LoadReportFont reads the regular and bold TTF files. An empty regular path
// returns nil; an empty bold path reuses the regular face.
func LoadReportFont(regularPath, boldPath string) (*ReportFont, error) {
	if regularPath == "" {
		return nil, nil
	}
	regular, err := os.ReadFile(regularPath)
	if err != nil {
		return nil, fmt.Errorf("pdf: read report font: %w", err)
	}
	bold := regular
	if boldPath != "" {
		if bold, err = os.ReadFile(boldPath); err != nil {
			return nil, fmt.Errorf("pdf: read bold report font: %w", err)
		}
	}
	return &ReportFont{Regular: regular, Bold: bold}, nil
}

// RenderStockReport returns the PDF bytes for the given drugs (lots preloaded).
func RenderStockReport(title string, drugs []model.Drug, generatedAt time.Time, font *ReportFont) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(true, 12)

	family, tr := "Helvetica", pdf.UnicodeTranslatorFromDescriptor("")
	if font != nil {
		pdf.AddUTF8FontFromBytes(reportFontFamily, "", font.Regular)
		pdf.AddUTF8FontFromBytes(reportFontFamily, "B", font.Bold)
		family, tr = reportFontFamily, func(s string) string { return s }
	}
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("pdf: load report font: %w", err)
	}
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 24

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont(family, "B", 15)
	pdf.CellFormat(contentW, 8, tr(title), "", 1, "C", false, 0, "")
	pdf.SetFont(family, "", 9)
	pdf.CellFormat(contentW, 5, "Generated "+generatedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	col := []float64{contentW * 0.16, contentW * 0.40, contentW * 0.14, contentW * 0.14, contentW * 0.16}

	pdf.SetFont(family, "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range []string{"Code", "Name / Expiry", "Unit", "Amount", "Value"} {
		align := "L"
		if i >= 3 {
			align = "R"
		}
		pdf.CellFormat(col[i], 6, h, "B", 0, align, true, 0, "")
	}
	pdf.Ln(-1)

	grand := decimal.Zero
	for _, d := range drugs {
		// ── Drug row ─────────────────────────────────────────────────────────
		pdf.SetFont(family, "B", 9)
		pdf.CellFormat(col[0], 6, tr(d.Code), "", 0, "L", false, 0, "")
		pdf.CellFormat(col[1], 6, tr(truncate(d.Name, 40)), "", 0, "L", false, 0, "")
		pdf.CellFormat(col[2], 6, tr(d.UnitType), "", 0, "L", false, 0, "")
		pdf.CellFormat(col[3], 6, fmt.Sprintf("%d", d.TotalAmount()), "", 0, "R", false, 0, "")

		drugValue := decimal.Zero
		for _, s := range d.Stocks {
			drugValue = drugValue.Add(s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Amount))))
		}
		pdf.CellFormat(col[4], 6, drugValue.StringFixed(2), "", 1, "R", false, 0, "")
		grand = grand.Add(drugValue)

		// ── Lot rows ─────────────────────────────────────────────────────────
		pdf.SetFont(family, "", 8)
		for _, s := range d.Stocks {
			lotValue := s.UnitPrice.Mul(decimal.NewFromInt(int64(s.Amount)))
			pdf.CellFormat(col[0], 5, "", "", 0, "L", false, 0, "")
			pdf.CellFormat(col[1], 5, "  exp. "+s.ExpiryDate().Format("2006-01-02"), "", 0, "L", false, 0, "")
			pdf.CellFormat(col[2], 5, "@ "+s.UnitPrice.StringFixed(2), "", 0, "L", false, 0, "")
			pdf.CellFormat(col[3], 5, fmt.Sprintf("%d", s.Amount), "", 0, "R", false, 0, "")
			pdf.CellFormat(col[4], 5, lotValue.StringFixed(2), "", 1, "R", false, 0, "")
		}
	}

	// ── Totals ────────────────────────────────────────────────────────────────
	pdf.Ln(2)
	pdf.Line(12, pdf.GetY(), pageW-12, pdf.GetY())
	pdf.Ln(2)
	pdf.SetFont(family, "B", 10)
	pdf.CellFormat(col[0]+col[1]+col[2]+col[3], 7, fmt.Sprintf("TOTAL (%d drugs)", len(drugs)), "", 0, "L", false, 0, "")
	pdf.CellFormat(col[4], 7, grand.StringFixed(2), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render stock report: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
