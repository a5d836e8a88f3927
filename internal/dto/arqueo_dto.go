package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ArqueoRequest is the payload for both create and edit-save. Edits are a
// full-record overwrite — there is no partial patching.
// Money fields travel as strings so the parser can accept a comma decimal
// separator; anything unparseable coerces to 0.
type ArqueoRequest struct {
	ContadorUID  string `json:"contador_uid"    validate:"required"`
	ContadorName string `json:"contador_nombre" validate:"required"`
	// EntregadoPor is optional per the current business rule; only the
	// receiver is mandatory. Flagged for review with the business.
	EntregadoPor string `json:"entregado_por"`
	RecibidoPor  string `json:"recibido_por"    validate:"required"`

	RangoDesde string `json:"rango_desde" validate:"required,datetime=2006-01-02"`
	RangoHasta string `json:"rango_hasta" validate:"required,datetime=2006-01-02"`

	VentasCash    string `json:"ventas_cash"`
	Abonos        string `json:"abonos"`
	IngresosExtra string `json:"ingresos_extra"`
	Debitos       string `json:"debitos"`

	Comentario string `json:"comentario"`
}

// ArqueoFilter narrows the list to records created within [Desde, Hasta]
// (start of day through end of day). Both nil means no filter.
type ArqueoFilter struct {
	Desde *time.Time
	Hasta *time.Time
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ArqueoResponse struct {
	ID            string `json:"id"`
	CreatedAt     string `json:"created_at"`
	CreatedByUID  string `json:"created_by_uid"`
	CreatedByName string `json:"created_by_nombre"`

	ContadorUID  string `json:"contador_uid"`
	ContadorName string `json:"contador_nombre"`
	EntregadoPor string `json:"entregado_por"`
	RecibidoPor  string `json:"recibido_por"`

	RangoDesde string `json:"rango_desde"`
	RangoHasta string `json:"rango_hasta"`

	VentasCash    decimal.Decimal `json:"ventas_cash"`
	Abonos        decimal.Decimal `json:"abonos"`
	IngresosExtra decimal.Decimal `json:"ingresos_extra"`
	Debitos       decimal.Decimal `json:"debitos"`

	SubTotal       decimal.Decimal `json:"sub_total"`
	TotalEntregado decimal.Decimal `json:"total_entregado"`

	Comentario string `json:"comentario"`
}
