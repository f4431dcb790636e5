package services

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"qsplan-backend/internal/metrics"
	"qsplan-backend/internal/models"
	"qsplan-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// ExportService renders a project's checklist as a landscape PDF: fixed
// header with project metadata, the table with data columns only, and a
// signature block. Interactive affordances have no counterpart here, so the
// export carries exactly the data cells.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

var filenameSanitizer = regexp.MustCompile(`[^a-z0-9-]+`)

// Filename derives the download name, falling back to the project id when
// the name sanitizes away completely.
func (s *ExportService) Filename(project *models.Project) string {
	name := strings.ToLower(strings.TrimSpace(project.Name))
	name = strings.ReplaceAll(name, " ", "-")
	name = filenameSanitizer.ReplaceAllString(name, "")
	name = strings.Trim(name, "-")
	if name == "" {
		name = fmt.Sprintf("%d", project.ID)
	}
	return fmt.Sprintf("qs-plan-%s.pdf", name)
}

func statusLabel(status models.ItemStatus) string {
	switch status {
	case models.StatusApproved:
		return "Approved"
	case models.StatusPending:
		return "Pending"
	case models.StatusRejected:
		return "Rejected"
	default:
		return string(status)
	}
}

// GenerateChecklistPDF renders the checklist for one project.
func (s *ExportService) GenerateChecklistPDF(project *models.Project, items []*models.InspectionItem) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "") // Landscape for the full column set
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header with logo block
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(237, 12, "QS-Plan - Inspection Checklist", "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(40, 12, "[ QS ]", "1", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(277, 6, fmt.Sprintf("Generated: %s", time.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	// Project metadata box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(277, 8, "Project", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(138, 7, fmt.Sprintf("Name: %s", project.Name), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(139, 7, fmt.Sprintf("Customer: %s", project.Customer), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(138, 7, fmt.Sprintf("Manager: %s", project.Manager), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(139, 7, fmt.Sprintf("Status: %s", project.Status), "RB", 1, "L", false, 0, "")
	pdf.Ln(4)

	s.writeTableHeader(pdf)

	pdf.SetFont("Arial", "", 9)
	for i, item := range items {
		if pdf.GetY() > 180 {
			pdf.AddPage()
			s.writeTableHeader(pdf)
			pdf.SetFont("Arial", "", 9)
		}

		if i%2 == 0 {
			pdf.SetFillColor(255, 255, 255)
		} else {
			pdf.SetFillColor(245, 245, 245)
		}

		pdf.CellFormat(10, 6, fmt.Sprintf("%d", i+1), "1", 0, "C", true, 0, "")
		pdf.CellFormat(60, 6, truncate(item.Item, 42), "1", 0, "L", true, 0, "")
		pdf.CellFormat(50, 6, truncate(item.Action, 35), "1", 0, "L", true, 0, "")
		pdf.CellFormat(25, 6, truncate(item.Author, 16), "1", 0, "L", true, 0, "")
		pdf.CellFormat(25, 6, truncate(item.Reviewer, 16), "1", 0, "L", true, 0, "")
		pdf.CellFormat(22, 6, timeutil.DisplayDate(item.PlannedDate), "1", 0, "C", true, 0, "")
		pdf.CellFormat(22, 6, timeutil.DisplayDate(item.ClosedDate), "1", 0, "C", true, 0, "")
		pdf.CellFormat(20, 6, statusLabel(item.Status), "1", 0, "C", true, 0, "")
		pdf.CellFormat(43, 6, truncate(item.Comment, 30), "1", 1, "L", true, 0, "")
	}
	pdf.Ln(10)

	// Signature block
	if pdf.GetY() > 170 {
		pdf.AddPage()
	}
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(100, 6, "_________________________", "", 0, "L", false, 0, "")
	pdf.CellFormat(38, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(100, 6, "_________________________", "", 1, "L", false, 0, "")
	pdf.CellFormat(100, 6, "Auditor, Date", "", 0, "L", false, 0, "")
	pdf.CellFormat(38, 6, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(100, 6, "Project Manager, Date", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf generation failed: %w", err)
	}

	metrics.PDFExportsTotal.Inc()
	return buf.Bytes(), nil
}

func (s *ExportService) writeTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(10, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(60, 7, "Inspection Item", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 7, "Measure", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Author", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Reviewer", "1", 0, "C", true, 0, "")
	pdf.CellFormat(22, 7, "Planned", "1", 0, "C", true, 0, "")
	pdf.CellFormat(22, 7, "Closed", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Status", "1", 0, "C", true, 0, "")
	pdf.CellFormat(43, 7, "Remarks", "1", 1, "C", true, 0, "")
}

// truncate shortens s to max runes. Counting runes keeps multibyte text
// intact instead of cutting through a UTF-8 sequence.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
