package infra

// excel.go — xlsx rendering of the arqueo list using excelize.
// Purely a formatting step over already-loaded rows; no fetching here.

import (
	"bytes"
	"fmt"

	"github.com/LenerGonzalez/Posys-sub003/internal/dto"

	"github.com/xuri/excelize/v2"
)

const hojaArqueos = "Arqueos"

var encabezadosArqueo = []interface{}{
	"Fecha", "Contador", "Entregado por", "Recibido por",
	"Rango desde", "Rango hasta",
	"Ventas cash", "Abonos", "Ingresos extra", "Débitos",
	"Subtotal", "Total entregado", "Comentario",
}

// GenerarXLSX renders one row per arqueo with fixed column headers and
// returns the finished workbook as a buffer ready to stream.
func GenerarXLSX(arqueos []dto.ArqueoResponse) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", hojaArqueos); err != nil {
		return nil, fmt.Errorf("excel: rename sheet: %w", err)
	}
	if err := f.SetSheetRow(hojaArqueos, "A1", &encabezadosArqueo); err != nil {
		return nil, fmt.Errorf("excel: headers: %w", err)
	}

	for i, a := range arqueos {
		row := []interface{}{
			a.CreatedAt,
			a.ContadorName,
			a.EntregadoPor,
			a.RecibidoPor,
			a.RangoDesde,
			a.RangoHasta,
			a.VentasCash.InexactFloat64(),
			a.Abonos.InexactFloat64(),
			a.IngresosExtra.InexactFloat64(),
			a.Debitos.InexactFloat64(),
			a.SubTotal.InexactFloat64(),
			a.TotalEntregado.InexactFloat64(),
			a.Comentario,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(hojaArqueos, cell, &row); err != nil {
			return nil, fmt.Errorf("excel: row %d: %w", i+2, err)
		}
	}

	return f.WriteToBuffer()
}
