package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Arqueo is a cash-drawer reconciliation record for a sales period.
// SubTotal and TotalEntregado are always recomputed from the four money
// inputs before persistence — they are never accepted from the client as-is.
type Arqueo struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CreatedAt time.Time `gorm:"index"`

	CreatedByUID  string `gorm:"type:varchar(64);not null;default:''"`
	CreatedByName string `gorm:"not null;default:''"`

	// ContadorUID/ContadorName identify the reconciling clerk, chosen from
	// the contador-role user list.
	ContadorUID  string `gorm:"type:varchar(64);not null;default:''"`
	ContadorName string `gorm:"not null;default:''"`

	EntregadoPor string `gorm:"not null;default:''"`
	RecibidoPor  string `gorm:"not null;default:''"`

	// RangoDesde/RangoHasta delimit the sales period being reconciled,
	// ISO calendar dates without time. Invariant: RangoDesde <= RangoHasta.
	RangoDesde string `gorm:"type:varchar(10);not null"`
	RangoHasta string `gorm:"type:varchar(10);not null"`

	VentasCash    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Abonos        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	IngresosExtra decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Debitos       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	// SubTotal = ventas_cash + abonos + ingresos_extra
	SubTotal decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	// TotalEntregado = sub_total - debitos
	TotalEntregado decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	Comentario string `gorm:"not null;default:''"`
}

// TableName keeps the historical collection name used by the back office.
func (Arqueo) TableName() string { return "pollo_cash_audits" }
