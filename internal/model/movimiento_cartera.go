package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TipoAbono is the only movement type that counts towards the recaudado KPI.
const TipoAbono = "ABONO"

// MovimientoCartera is a document in the external accounts-receivable
// collection. Read-only for this system.
type MovimientoCartera struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Tipo string    `gorm:"type:varchar(20);not null;index"`
	// Monto may be stored with either sign; aggregation takes the absolute value.
	Monto decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	// Fecha is the business date when present; otherwise CreatedAt decides.
	Fecha     *string `gorm:"type:varchar(10)"`
	CreatedAt time.Time
}

// FechaResuelta returns the explicit business date, falling back to the
// creation timestamp's calendar date.
func (m MovimientoCartera) FechaResuelta() string {
	if m.Fecha != nil && *m.Fecha != "" {
		return *m.Fecha
	}
	return m.CreatedAt.Format("2006-01-02")
}

func (MovimientoCartera) TableName() string { return "movimientos_cartera" }
