package dto

import "github.com/shopspring/decimal"

// KPIResponse carries the read-only figures for a date range. Monetary
// outputs are rounded to 2 decimals, quantities to 3.
type KPIResponse struct {
	RangoDesde string `json:"rango_desde"`
	RangoHasta string `json:"rango_hasta"`

	VentasCash decimal.Decimal `json:"ventas_cash"`
	Abonos     decimal.Decimal `json:"abonos"`
	// Recaudado = ventas_cash + abonos
	Recaudado decimal.Decimal `json:"recaudado"`

	LbsCash         decimal.Decimal `json:"lbs_cash"`
	UnidadesCash    decimal.Decimal `json:"unidades_cash"`
	LbsCredito      decimal.Decimal `json:"lbs_credito"`
	UnidadesCredito decimal.Decimal `json:"unidades_credito"`
}
