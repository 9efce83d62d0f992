package repository

import (
	"context"

	"github.com/isdev18/vitrine-do-vendedor/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LeadRepository interface {
	Create(ctx context.Context, l *model.Lead) error
	ListByVitrineID(ctx context.Context, vitrineID uuid.UUID) ([]model.Lead, error)
	CountByVitrineID(ctx context.Context, vitrineID uuid.UUID) (int64, error)
	MarkExportado(ctx context.Context, id uuid.UUID) error
}

type leadRepo struct{ db *gorm.DB }

func NewLeadRepository(db *gorm.DB) LeadRepository { return &leadRepo{db: db} }

func (r *leadRepo) Create(ctx context.Context, l *model.Lead) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *leadRepo) ListByVitrineID(ctx context.Context, vitrineID uuid.UUID) ([]model.Lead, error) {
	var leads []model.Lead
	err := r.db.WithContext(ctx).Where("vitrine_id = ?", vitrineID).
		Order("created_at DESC").Find(&leads).Error
	return leads, err
}

func (r *leadRepo) CountByVitrineID(ctx context.Context, vitrineID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Lead{}).Where("vitrine_id = ?", vitrineID).Count(&count).Error
	return count, err
}

func (r *leadRepo) MarkExportado(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Lead{}).Where("id = ?", id).Update("exportado", true).Error
}
