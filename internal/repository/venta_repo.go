package repository

import (
	"context"

	"github.com/LenerGonzalez/Posys-sub003/internal/model"

	"gorm.io/gorm"
)

// VentaRepository reads the external sales collection. This system never
// writes to it.
type VentaRepository interface {
	ListByRango(ctx context.Context, desde, hasta string) ([]model.Venta, error)
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

// ListByRango returns sales whose business date falls in the inclusive
// [desde, hasta] range of ISO calendar dates, with their line items.
func (r *ventaRepo) ListByRango(ctx context.Context, desde, hasta string) ([]model.Venta, error) {
	var ventas []model.Venta
	err := r.db.WithContext(ctx).
		Where("fecha >= ? AND fecha <= ?", desde, hasta).
		Preload("Items").
		Order("fecha ASC").
		Find(&ventas).Error
	return ventas, err
}
