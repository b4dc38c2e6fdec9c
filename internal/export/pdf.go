package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// WritePDF gera A4 paisagem com cabeçalho, tabela e rodapé "Página N/total".
// O cabeçalho da tabela é repetido em cada página.
func WritePDF(w io.Writer, t Table) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AliasNbPages("")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 15)

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 8, tr(t.Title), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 5, tr("Gerado em "+t.GeneratedAt.Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
		pdf.Ln(3)
		writeHeaderRow(pdf, t, tr)
	})

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 8, tr(fmt.Sprintf("Página %d/{nb}", pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 9)

	if len(t.Rows) == 0 {
		pdf.CellFormat(0, 8, tr("Nenhum registro no período."), "", 1, "L", false, 0, "")
	}

	for i, row := range t.Rows {
		fill := i%2 == 1
		pdf.SetFillColor(242, 242, 242)
		for c, cell := range row {
			pdf.CellFormat(columnWidth(t, c), 7, tr(cell), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("build pdf: %w", err)
	}
	return pdf.Output(w)
}

func writeHeaderRow(pdf *fpdf.Fpdf, t Table, tr func(string) string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(31, 78, 121)
	pdf.SetTextColor(255, 255, 255)
	for c, col := range t.Columns {
		pdf.CellFormat(columnWidth(t, c), 8, tr(col), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 9)
}

func columnWidth(t Table, i int) float64 {
	if i < len(t.Widths) {
		return t.Widths[i]
	}
	return 30
}
