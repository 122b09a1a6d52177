package infra

// pdf.go renders the monthly income report with go-pdf/fpdf: a title block,
// the per-day table, the optional per-store table and the summary lines.

import (
	"fmt"
	"io"
	"time"

	"groceryhub/internal/dto"
	"groceryhub/internal/model"

	"github.com/go-pdf/fpdf"
)

// WriteMonthlyReportPDF writes an A4 report for r to w. scope names whose
// income the report covers ("All stores", a store name, ...).
func WriteMonthlyReportPDF(w io.Writer, r dto.MonthlyReportResponse, scope string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	period := time.Date(r.Year, time.Month(r.Month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Monthly Income Report", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("%s  |  %s", period, scope), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// ── Daily breakdown ──────────────────────────────────────────────────────
	colDate := contentW * 0.40
	colCount := contentW * 0.25
	colAmount := contentW * 0.35

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(colDate, 7, "Date", "B", 0, "L", false, 0, "")
	pdf.CellFormat(colCount, 7, "Records", "B", 0, "C", false, 0, "")
	pdf.CellFormat(colAmount, 7, "Amount", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	if len(r.DailyBreakdown) == 0 {
		pdf.CellFormat(contentW, 6, "No income recorded for this period.", "", 1, "L", false, 0, "")
	}
	for _, d := range r.DailyBreakdown {
		pdf.CellFormat(colDate, 6, d.Date, "", 0, "L", false, 0, "")
		pdf.CellFormat(colCount, 6, fmt.Sprintf("%d", d.RecordsCount), "", 0, "C", false, 0, "")
		pdf.CellFormat(colAmount, 6, model.FormatMoney(d.Amount), "", 1, "R", false, 0, "")
	}

	// ── Store breakdown (admins only) ────────────────────────────────────────
	if len(r.StoreBreakdown) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(colDate, 7, "Store", "B", 0, "L", false, 0, "")
		pdf.CellFormat(colCount, 7, "Records", "B", 0, "C", false, 0, "")
		pdf.CellFormat(colAmount, 7, "Total", "B", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		for _, s := range r.StoreBreakdown {
			name := s.StoreName
			if len(name) > 40 {
				name = name[:39] + "..."
			}
			pdf.CellFormat(colDate, 6, name, "", 0, "L", false, 0, "")
			pdf.CellFormat(colCount, 6, fmt.Sprintf("%d", s.RecordsCount), "", 0, "C", false, 0, "")
			pdf.CellFormat(colAmount, 6, model.FormatMoney(s.Total), "", 1, "R", false, 0, "")
		}
	}

	// ── Summary ──────────────────────────────────────────────────────────────
	pdf.Ln(4)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)
	summaryLine(pdf, contentW, "Total income", model.FormatMoney(r.Summary.TotalIncome), true)
	summaryLine(pdf, contentW, "Days recorded", fmt.Sprintf("%d", r.Summary.TotalDaysRecorded), false)
	summaryLine(pdf, contentW, "Average per day", model.FormatMoney(r.Summary.AverageDaily.Round(2)), false)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: render monthly report: %w", err)
	}
	return nil
}

func summaryLine(pdf *fpdf.Fpdf, width float64, label, value string, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	pdf.SetFont("Helvetica", style, 10)
	pdf.CellFormat(width*0.65, 6, label+":", "", 0, "L", false, 0, "")
	pdf.CellFormat(width*0.35, 6, value, "", 1, "R", false, 0, "")
}

