package repository

import (
	"context"

	"github.com/isdev18/vitrine-do-vendedor/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VitrineRepository is the data access contract for storefronts. Counter
// increments are single atomic UPDATEs so concurrent public reads never
// lose a bump.
type VitrineRepository interface {
	Create(ctx context.Context, v *model.Vitrine) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vitrine, error)
	FindByUsuarioID(ctx context.Context, usuarioID uuid.UUID) (*model.Vitrine, error)
	// FindPublicBySlug only matches active storefronts.
	FindPublicBySlug(ctx context.Context, slug string) (*model.Vitrine, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Update(ctx context.Context, v *model.Vitrine) error
	IncrementVisualizacoes(ctx context.Context, id uuid.UUID) error
	IncrementCliquesWhatsapp(ctx context.Context, id uuid.UUID) error
}

type vitrineRepo struct{ db *gorm.DB }

func NewVitrineRepository(db *gorm.DB) VitrineRepository { return &vitrineRepo{db: db} }

func (r *vitrineRepo) Create(ctx context.Context, v *model.Vitrine) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vitrineRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Vitrine, error) {
	var v model.Vitrine
	err := r.db.WithContext(ctx).First(&v, id).Error
	return &v, err
}

func (r *vitrineRepo) FindByUsuarioID(ctx context.Context, usuarioID uuid.UUID) (*model.Vitrine, error) {
	var v model.Vitrine
	err := r.db.WithContext(ctx).Where("usuario_id = ?", usuarioID).First(&v).Error
	return &v, err
}

func (r *vitrineRepo) FindPublicBySlug(ctx context.Context, slug string) (*model.Vitrine, error) {
	var v model.Vitrine
	err := r.db.WithContext(ctx).Where("slug = ? AND ativa = true", slug).First(&v).Error
	return &v, err
}

func (r *vitrineRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Vitrine{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

func (r *vitrineRepo) Update(ctx context.Context, v *model.Vitrine) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *vitrineRepo) IncrementVisualizacoes(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Vitrine{}).Where("id = ?", id).
		Update("visualizacoes", gorm.Expr("visualizacoes + 1")).Error
}

func (r *vitrineRepo) IncrementCliquesWhatsapp(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Vitrine{}).Where("id = ?", id).
		Update("cliques_whatsapp", gorm.Expr("cliques_whatsapp + 1")).Error
}
