package service

import (
	"context"
	"fmt"

	"github.com/isdev18/vitrine-do-vendedor/internal/dto"
	"github.com/isdev18/vitrine-do-vendedor/internal/model"
	"github.com/isdev18/vitrine-do-vendedor/internal/plano"
	"github.com/isdev18/vitrine-do-vendedor/internal/repository"

	"github.com/google/uuid"
)

// ProdutoService owns listing CRUD. All operations resolve the caller's
// storefront first; products in other storefronts behave as not found.
type ProdutoService interface {
	Criar(ctx context.Context, usuarioID uuid.UUID, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context, usuarioID uuid.UUID, filter dto.ProdutoFilter) (*dto.ProdutoListResponse, error)
	Obter(ctx context.Context, usuarioID, produtoID uuid.UUID) (*dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, usuarioID, produtoID uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error)
	Excluir(ctx context.Context, usuarioID, produtoID uuid.UUID) error
	ToggleDestaque(ctx context.Context, usuarioID, produtoID uuid.UUID) (*dto.ProdutoResponse, error)
	ToggleAtivo(ctx context.Context, usuarioID, produtoID uuid.UUID) (*dto.ProdutoResponse, error)
	// RegistrarVisualizacao counts an anonymous view on the public page.
	RegistrarVisualizacao(ctx context.Context, produtoID uuid.UUID) error
}

type produtoService struct {
	repo        repository.ProdutoRepository
	vitrineRepo repository.VitrineRepository
	usuarioRepo repository.UsuarioRepository
}

func NewProdutoService(repo repository.ProdutoRepository, vitrineRepo repository.VitrineRepository, usuarioRepo repository.UsuarioRepository) ProdutoService {
	return &produtoService{repo: repo, vitrineRepo: vitrineRepo, usuarioRepo: usuarioRepo}
}

func (s *produtoService) Criar(ctx context.Context, usuarioID uuid.UUID, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	v, err := s.vitrineRepo.FindByUsuarioID(ctx, usuarioID)
	if err != nil {
		return nil, ErrVitrineNaoEncontrada
	}

	if err := s.checkPlanoCeiling(ctx, usuarioID, v.ID); err != nil {
		return nil, err
	}

	p := &model.Produto{
		VitrineID: v.ID,
		Nome:      req.Nome,
		Descricao: req.Descricao,
		Preco:     req.Preco,
		Ano:       req.Ano,
		Km:        req.Km,
		Cor:       req.Cor,
		ImagemURL: req.ImagemURL,
		Destaque:  req.Destaque,
		Ativo:     true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return &dto.ProdutoResponse{
		Success: true,
		Message: "Produto cadastrado com sucesso",
		Produto: produtoToData(p),
	}, nil
}

func (s *produtoService) Listar(ctx context.Context, usuarioID uuid.UUID, filter dto.ProdutoFilter) (*dto.ProdutoListResponse, error) {
	v, err := s.vitrineRepo.FindByUsuarioID(ctx, usuarioID)
	if err != nil {
		return nil, ErrVitrineNaoEncontrada
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	produtos, total, err := s.repo.List(ctx, v.ID, filter)
	if err != nil {
		return nil, err
	}

	data := make([]dto.ProdutoData, len(produtos))
	for i, p := range produtos {
		data[i] = produtoToData(&p)
	}
	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &dto.ProdutoListResponse{
		Success:    true,
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func (s *produtoService) Obter(ctx context.Context, usuarioID, produtoID uuid.UUID) (*dto.ProdutoResponse, error) {
	p, err := s.findOwned(ctx, usuarioID, produtoID)
	if err != nil {
		return nil, err
	}
	return &dto.ProdutoResponse{Success: true, Produto: produtoToData(p)}, nil
}

func (s *produtoService) Atualizar(ctx context.Context, usuarioID, produtoID uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	p, err := s.findOwned(ctx, usuarioID, produtoID)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		p.Nome = *req.Nome
	}
	if req.Descricao != nil {
		p.Descricao = req.Descricao
	}
	if req.Preco != nil {
		p.Preco = req.Preco
	}
	if req.Ano != nil {
		p.Ano = req.Ano
	}
	if req.Km != nil {
		p.Km = req.Km
	}
	if req.Cor != nil {
		p.Cor = req.Cor
	}
	if req.ImagemURL != nil {
		p.ImagemURL = req.ImagemURL
	}
	if req.Destaque != nil {
		p.Destaque = *req.Destaque
	}
	if req.Ativo != nil {
		p.Ativo = *req.Ativo
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return &dto.ProdutoResponse{
		Success: true,
		Message: "Produto atualizado com sucesso",
		Produto: produtoToData(p),
	}, nil
}

func (s *produtoService) Excluir(ctx context.Context, usuarioID, produtoID uuid.UUID) error {
	p, err := s.findOwned(ctx, usuarioID, produtoID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, p.ID)
}

func (s *produtoService) ToggleDestaque(ctx context.Context, usuarioID, produtoID uuid.UUID) (*dto.ProdutoResponse, error) {
	p, err := s.findOwned(ctx, usuarioID, produtoID)
	if err != nil {
		return nil, err
	}
	p.Destaque = !p.Destaque
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return &dto.ProdutoResponse{Success: true, Produto: produtoToData(p)}, nil
}

func (s *produtoService) ToggleAtivo(ctx context.Context, usuarioID, produtoID uuid.UUID) (*dto.ProdutoResponse, error) {
	p, err := s.findOwned(ctx, usuarioID, produtoID)
	if err != nil {
		return nil, err
	}
	p.Ativo = !p.Ativo
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return &dto.ProdutoResponse{Success: true, Produto: produtoToData(p)}, nil
}

func (s *produtoService) RegistrarVisualizacao(ctx context.Context, produtoID uuid.UUID) error {
	return s.repo.IncrementVisualizacoes(ctx, produtoID)
}

// checkPlanoCeiling rejects creation once the tier's product count is hit.
// The count includes inactive products; deactivating a listing does not free
// a slot.
func (s *produtoService) checkPlanoCeiling(ctx context.Context, usuarioID, vitrineID uuid.UUID) error {
	user, err := s.usuarioRepo.FindByID(ctx, usuarioID)
	if err != nil {
		return ErrUsuarioNaoEncontrado
	}
	tier, ok := plano.PorID(user.Plano)
	if !ok {
		tier, _ = plano.PorID(plano.Base)
	}
	if tier.LimiteProdutos == plano.Ilimitado {
		return nil
	}
	count, err := s.repo.CountByVitrineID(ctx, vitrineID)
	if err != nil {
		return err
	}
	if count >= int64(tier.LimiteProdutos) {
		return fmt.Errorf("limite de %d produtos do plano %s atingido: %w", tier.LimiteProdutos, tier.Nome, ErrLimitePlano)
	}
	return nil
}

// findOwned resolves a product by id and checks it belongs to the caller's
// storefront. Foreign products come back as not found, never as forbidden.
func (s *produtoService) findOwned(ctx context.Context, usuarioID, produtoID uuid.UUID) (*model.Produto, error) {
	v, err := s.vitrineRepo.FindByUsuarioID(ctx, usuarioID)
	if err != nil {
		return nil, ErrVitrineNaoEncontrada
	}
	p, err := s.repo.FindByID(ctx, produtoID)
	if err != nil {
		return nil, ErrProdutoNaoEncontrado
	}
	if p.VitrineID != v.ID {
		return nil, ErrProdutoNaoEncontrado
	}
	return p, nil
}

func produtoToData(p *model.Produto) dto.ProdutoData {
	return dto.ProdutoData{
		ID:            p.ID.String(),
		VitrineID:     p.VitrineID.String(),
		Nome:          p.Nome,
		Descricao:     p.Descricao,
		Preco:         p.Preco,
		Ano:           p.Ano,
		Km:            p.Km,
		Cor:           p.Cor,
		ImagemURL:     p.ImagemURL,
		Destaque:      p.Destaque,
		Ativo:         p.Ativo,
		Visualizacoes: p.Visualizacoes,
		CreatedAt:     p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
