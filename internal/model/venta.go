package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TipoPago values for a Venta. CONTADO is the default when the source
// document carries none.
const (
	TipoPagoContado = "CONTADO"
	TipoPagoCredito = "CREDITO"
)

// Venta is a document in the external sales collection. This system only
// reads it for KPI aggregation, never writes. Older documents are flattened
// single sales (the top-level Producto/Cantidad/... fields); newer ones carry
// an Items list instead, each line inheriting the parent Fecha and TipoPago.
type Venta struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Fecha    string    `gorm:"type:varchar(10);not null;index"`
	TipoPago string    `gorm:"type:varchar(20);not null;default:'CONTADO'"`

	// Flattened single-sale fields (legacy shape)
	Producto       string          `gorm:"not null;default:''"`
	Cantidad       decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
	Unidad         string          `gorm:"type:varchar(30);not null;default:''"`
	PrecioUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Descuento      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	// Total, when non-nil, is the explicit final line amount and wins over
	// precio_unitario * cantidad - descuento.
	Total *decimal.Decimal `gorm:"type:decimal(12,2)"`

	Items []VentaItem `gorm:"foreignKey:VentaID"`

	CreatedAt time.Time
}

// VentaItem is one line of a multi-line Venta.
type VentaItem struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID uuid.UUID `gorm:"type:uuid;index;not null"`

	Producto       string           `gorm:"not null;default:''"`
	Cantidad       decimal.Decimal  `gorm:"type:decimal(12,3);not null;default:0"`
	Unidad         string           `gorm:"type:varchar(30);not null;default:''"`
	PrecioUnitario decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	Descuento      decimal.Decimal  `gorm:"type:decimal(12,2);not null;default:0"`
	Total          *decimal.Decimal `gorm:"type:decimal(12,2)"`
}
