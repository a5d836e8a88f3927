package infra

// pdf.go — printable arqueo comprobante using go-pdf/fpdf.
// A7-size receipt-style layout: business header, record info, the four money
// inputs, and the two derived totals in bold.

import (
	"bytes"
	"fmt"

	"github.com/LenerGonzalez/Posys-sub003/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerarComprobantePDF renders a single arqueo as a receipt-style PDF and
// returns the document bytes.
func GenerarComprobantePDF(a *dto.ArqueoResponse, nombreNegocio string) (*bytes.Buffer, error) {
	// A7 ≈ 74mm × 105mm — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, nombreNegocio, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Comprobante de Arqueo", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Record info ──────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, fmt.Sprintf("Periodo: %s a %s", a.RangoDesde, a.RangoHasta), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 4, "Contador: "+a.ContadorName, "", 1, "L", false, 0, "")
	if a.EntregadoPor != "" {
		pdf.CellFormat(contentW, 4, "Entregado por: "+a.EntregadoPor, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 4, "Recibido por: "+a.RecibidoPor, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// ── Separator ────────────────────────────────────────────────────────────
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Amounts ──────────────────────────────────────────────────────────────
	col1 := contentW * 0.6
	col2 := contentW * 0.4

	linea := func(etiqueta, valor string) {
		pdf.CellFormat(col1, 5, etiqueta, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, valor, "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "", 7)
	linea("Ventas cash", a.VentasCash.StringFixed(2))
	linea("Abonos", a.Abonos.StringFixed(2))
	linea("Ingresos extra", a.IngresosExtra.StringFixed(2))

	pdf.SetFont("Helvetica", "B", 7)
	linea("Subtotal", a.SubTotal.StringFixed(2))

	pdf.SetFont("Helvetica", "", 7)
	linea("Débitos", "-"+a.Debitos.StringFixed(2))

	pdf.Ln(1)
	pdf.SetFont("Helvetica", "B", 9)
	linea("TOTAL ENTREGADO", a.TotalEntregado.StringFixed(2))

	if a.Comentario != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.MultiCell(contentW, 3, a.Comentario, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render comprobante: %w", err)
	}
	return &buf, nil
}
