package repository

import (
	"context"

	"github.com/isdev18/vitrine-do-vendedor/internal/dto"
	"github.com/isdev18/vitrine-do-vendedor/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProdutoRepository defines data access for products. Every query is scoped
// by vitrine id; ownership resolution happens in the service layer.
type ProdutoRepository interface {
	Create(ctx context.Context, p *model.Produto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error)
	List(ctx context.Context, vitrineID uuid.UUID, filter dto.ProdutoFilter) ([]model.Produto, int64, error)
	// ListPublic returns active products for the public page, featured first.
	ListPublic(ctx context.Context, vitrineID uuid.UUID) ([]model.Produto, error)
	CountByVitrineID(ctx context.Context, vitrineID uuid.UUID) (int64, error)
	CountAtivos(ctx context.Context, vitrineID uuid.UUID) (int64, error)
	CountDestaques(ctx context.Context, vitrineID uuid.UUID) (int64, error)
	Update(ctx context.Context, p *model.Produto) error
	Delete(ctx context.Context, id uuid.UUID) error
	IncrementVisualizacoes(ctx context.Context, id uuid.UUID) error
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *produtoRepo) List(ctx context.Context, vitrineID uuid.UUID, filter dto.ProdutoFilter) ([]model.Produto, int64, error) {
	var produtos []model.Produto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Produto{}).Where("vitrine_id = ?", vitrineID)

	// Ativo filter: "false" = inativos, "all" = todos, anything else = ativos (default)
	switch filter.Ativo {
	case "false":
		q = q.Where("ativo = false")
	case "all":
		// no filter
	default:
		q = q.Where("ativo = true")
	}

	if filter.Destaque == "true" {
		q = q.Where("destaque = true")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("destaque DESC, created_at DESC").Limit(filter.Limit).Offset(offset).Find(&produtos).Error
	return produtos, total, err
}

func (r *produtoRepo) ListPublic(ctx context.Context, vitrineID uuid.UUID) ([]model.Produto, error) {
	var produtos []model.Produto
	err := r.db.WithContext(ctx).
		Where("vitrine_id = ? AND ativo = true", vitrineID).
		Order("destaque DESC, created_at DESC").
		Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) CountByVitrineID(ctx context.Context, vitrineID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Produto{}).Where("vitrine_id = ?", vitrineID).Count(&count).Error
	return count, err
}

func (r *produtoRepo) CountAtivos(ctx context.Context, vitrineID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Produto{}).
		Where("vitrine_id = ? AND ativo = true", vitrineID).Count(&count).Error
	return count, err
}

func (r *produtoRepo) CountDestaques(ctx context.Context, vitrineID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Produto{}).
		Where("vitrine_id = ? AND destaque = true", vitrineID).Count(&count).Error
	return count, err
}

func (r *produtoRepo) Update(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *produtoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Produto{}, id).Error
}

func (r *produtoRepo) IncrementVisualizacoes(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Produto{}).Where("id = ?", id).
		Update("visualizacoes", gorm.Expr("visualizacoes + 1")).Error
}
