package service

import (
	"context"
	"errors"

	"github.com/isdev18/vitrine-do-vendedor/internal/dto"
	"github.com/isdev18/vitrine-do-vendedor/internal/plano"
	"github.com/isdev18/vitrine-do-vendedor/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssinaturaService exposes the plan catalog and the user's current tier.
// There is no payment processing; selecting a plan just records the tier id.
type AssinaturaService interface {
	Planos(ctx context.Context) *dto.PlanoListResponse
	Status(ctx context.Context, usuarioID uuid.UUID) (*dto.AssinaturaStatusResponse, error)
	SelecionarPlano(ctx context.Context, usuarioID uuid.UUID, planoID string) (*dto.AssinaturaStatusResponse, error)
}

type assinaturaService struct {
	usuarioRepo repository.UsuarioRepository
	vitrineRepo repository.VitrineRepository
	produtoRepo repository.ProdutoRepository
}

func NewAssinaturaService(usuarioRepo repository.UsuarioRepository, vitrineRepo repository.VitrineRepository, produtoRepo repository.ProdutoRepository) AssinaturaService {
	return &assinaturaService{usuarioRepo: usuarioRepo, vitrineRepo: vitrineRepo, produtoRepo: produtoRepo}
}

func (s *assinaturaService) Planos(_ context.Context) *dto.PlanoListResponse {
	return &dto.PlanoListResponse{Success: true, Data: plano.Catalogo()}
}

func (s *assinaturaService) Status(ctx context.Context, usuarioID uuid.UUID) (*dto.AssinaturaStatusResponse, error) {
	user, err := s.usuarioRepo.FindByID(ctx, usuarioID)
	if err != nil {
		return nil, ErrUsuarioNaoEncontrado
	}
	tier, ok := plano.PorID(user.Plano)
	if !ok {
		tier, _ = plano.PorID(plano.Base)
	}

	var totalProdutos int64
	v, err := s.vitrineRepo.FindByUsuarioID(ctx, usuarioID)
	switch {
	case err == nil:
		totalProdutos, err = s.produtoRepo.CountByVitrineID(ctx, v.ID)
		if err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no storefront yet — zero products
	default:
		return nil, err
	}

	return &dto.AssinaturaStatusResponse{
		Success:        true,
		PlanoID:        tier.ID,
		PlanoNome:      tier.Nome,
		LimiteProdutos: tier.LimiteProdutos,
		TotalProdutos:  totalProdutos,
	}, nil
}

func (s *assinaturaService) SelecionarPlano(ctx context.Context, usuarioID uuid.UUID, planoID string) (*dto.AssinaturaStatusResponse, error) {
	if _, ok := plano.PorID(planoID); !ok {
		return nil, ErrPlanoInvalido
	}
	if _, err := s.usuarioRepo.FindByID(ctx, usuarioID); err != nil {
		return nil, ErrUsuarioNaoEncontrado
	}
	if err := s.usuarioRepo.SetPlano(ctx, usuarioID, planoID); err != nil {
		return nil, err
	}
	return s.Status(ctx, usuarioID)
}
