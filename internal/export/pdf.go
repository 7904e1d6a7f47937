package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/outreach/internal/domain"
	"github.com/alexanderramin/outreach/internal/textstyle"
	"github.com/go-pdf/fpdf"
)

const (
	pdfMarginMM   = 20.0
	pdfFontSize   = 12.0
	pdfLineHeight = 6.0
)

// WritePDF lays doc out on A4 pages with a fixed 20 mm margin. Bold
// alphanumerics are folded back to ASCII since the core fonts cannot
// draw them.
func WritePDF(w io.Writer, doc domain.GeneratedDocument) error {
	pdf := buildPDF(doc)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func buildPDF(doc domain.GeneratedDocument) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginMM, pdfMarginMM, pdfMarginMM)
	pdf.SetAutoPageBreak(true, pdfMarginMM)
	pdf.SetTitle(doc.Title(), true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if doc.Subject != "" {
		pdf.SetFont("Helvetica", "B", pdfFontSize)
		pdf.MultiCell(0, pdfLineHeight, tr("Subject: "+textstyle.Plain(doc.Subject)), "", "L", false)
		pdf.Ln(pdfLineHeight)
	}

	pdf.SetFont("Helvetica", "", pdfFontSize)
	body := strings.ReplaceAll(textstyle.Plain(doc.Body), "\r\n", "\n")
	pdf.MultiCell(0, pdfLineHeight, tr(body), "", "L", false)
	return pdf
}
