package repository

import (
	"context"

	"github.com/LenerGonzalez/Posys-sub003/internal/model"

	"gorm.io/gorm"
)

// CarteraRepository reads the external accounts-receivable collection.
// Movements are not date-filtered at the store — the effective date of a
// movement can live in either fecha or created_at, so the range filter is
// applied client-side during aggregation.
type CarteraRepository interface {
	ListMovimientos(ctx context.Context) ([]model.MovimientoCartera, error)
}

type carteraRepo struct{ db *gorm.DB }

func NewCarteraRepository(db *gorm.DB) CarteraRepository { return &carteraRepo{db: db} }

func (r *carteraRepo) ListMovimientos(ctx context.Context) ([]model.MovimientoCartera, error) {
	var movs []model.MovimientoCartera
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&movs).Error
	return movs, err
}
