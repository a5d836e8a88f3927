package repository

import (
	"context"
	"time"

	"github.com/LenerGonzalez/Posys-sub003/internal/dto"
	"github.com/LenerGonzalez/Posys-sub003/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArqueoRepository interface {
	Create(ctx context.Context, a *model.Arqueo) error
	List(ctx context.Context, filter dto.ArqueoFilter) ([]model.Arqueo, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Arqueo, error)
	Update(ctx context.Context, a *model.Arqueo) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type arqueoRepo struct{ db *gorm.DB }

func NewArqueoRepository(db *gorm.DB) ArqueoRepository { return &arqueoRepo{db: db} }

// Create defaults CreatedAt to the write time when the caller did not supply
// one. No validation here — that is the service's responsibility.
func (r *arqueoRepo) Create(ctx context.Context, a *model.Arqueo) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(a).Error
}

// List returns arqueos newest first. When both filter bounds are present only
// records with created_at inside the inclusive range are returned.
func (r *arqueoRepo) List(ctx context.Context, filter dto.ArqueoFilter) ([]model.Arqueo, error) {
	q := r.db.WithContext(ctx).Model(&model.Arqueo{})
	if filter.Desde != nil && filter.Hasta != nil {
		q = q.Where("created_at >= ? AND created_at <= ?", *filter.Desde, *filter.Hasta)
	}
	var arqueos []model.Arqueo
	err := q.Order("created_at DESC").Find(&arqueos).Error
	return arqueos, err
}

func (r *arqueoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Arqueo, error) {
	var a model.Arqueo
	err := r.db.WithContext(ctx).First(&a, id).Error
	return &a, err
}

// Update overwrites the full record. Partial patching is intentionally not
// supported.
func (r *arqueoRepo) Update(ctx context.Context, a *model.Arqueo) error {
	return r.db.WithContext(ctx).Save(a).Error
}

// Delete removes by id. Deleting a nonexistent id is not an error — gorm
// reports zero rows affected and we don't check.
func (r *arqueoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Arqueo{}, id).Error
}
