package service

import (
	"context"
	"errors"

	"github.com/isdev18/vitrine-do-vendedor/internal/dto"
	"github.com/isdev18/vitrine-do-vendedor/internal/model"
	"github.com/isdev18/vitrine-do-vendedor/internal/repository"
	"github.com/isdev18/vitrine-do-vendedor/internal/slug"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type VitrineService interface {
	Criar(ctx context.Context, usuarioID uuid.UUID, req dto.CriarVitrineRequest) (*dto.VitrineResponse, error)
	Obter(ctx context.Context, usuarioID uuid.UUID) (*dto.VitrineResponse, error)
	Atualizar(ctx context.Context, usuarioID uuid.UUID, req dto.AtualizarVitrineRequest) (*dto.VitrineResponse, error)
	// Publica resolves an active storefront by slug for the anonymous page and
	// bumps the view counter.
	Publica(ctx context.Context, slugStr string) (*dto.PublicVitrineResponse, error)
	CheckSlug(ctx context.Context, slugStr string) (*dto.CheckSlugResponse, error)
	// SomarVisualizacao bumps the view counter without loading the page
	// payload, for cache-served public hits.
	SomarVisualizacao(ctx context.Context, vitrineID uuid.UUID) error
	CliqueWhatsapp(ctx context.Context, vitrineID uuid.UUID) error
	Stats(ctx context.Context, usuarioID uuid.UUID) (*dto.VitrineStatsResponse, error)
}

type vitrineService struct {
	repo        repository.VitrineRepository
	produtoRepo repository.ProdutoRepository
	leadRepo    repository.LeadRepository
}

func NewVitrineService(repo repository.VitrineRepository, produtoRepo repository.ProdutoRepository, leadRepo repository.LeadRepository) VitrineService {
	return &vitrineService{repo: repo, produtoRepo: produtoRepo, leadRepo: leadRepo}
}

func (s *vitrineService) Criar(ctx context.Context, usuarioID uuid.UUID, req dto.CriarVitrineRequest) (*dto.VitrineResponse, error) {
	if _, err := s.repo.FindByUsuarioID(ctx, usuarioID); err == nil {
		return nil, ErrVitrineJaExiste
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	allocated, err := s.allocateSlug(ctx, slug.Slugify(req.Nome))
	if err != nil {
		return nil, err
	}

	v := &model.Vitrine{
		UsuarioID:   usuarioID,
		Nome:        req.Nome,
		Slug:        allocated,
		Descricao:   req.Descricao,
		LogoURL:     req.LogoURL,
		BannerURL:   req.BannerURL,
		CorPrimaria: req.CorPrimaria,
		Whatsapp:    req.Whatsapp,
		Instagram:   req.Instagram,
		Endereco:    req.Endereco,
		Cidade:      req.Cidade,
		Estado:      req.Estado,
		Ativa:       true,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}

	log.Info().Str("vitrine_id", v.ID.String()).Str("slug", v.Slug).Msg("vitrine criada")
	return &dto.VitrineResponse{
		Success: true,
		Message: "Vitrine criada com sucesso",
		Vitrine: vitrineToData(v),
	}, nil
}

func (s *vitrineService) Obter(ctx context.Context, usuarioID uuid.UUID) (*dto.VitrineResponse, error) {
	v, err := s.repo.FindByUsuarioID(ctx, usuarioID)
	if err != nil {
		return nil, ErrVitrineNaoEncontrada
	}
	return &dto.VitrineResponse{Success: true, Vitrine: vitrineToData(v)}, nil
}

func (s *vitrineService) Atualizar(ctx context.Context, usuarioID uuid.UUID, req dto.AtualizarVitrineRequest) (*dto.VitrineResponse, error) {
	v, err := s.repo.FindByUsuarioID(ctx, usuarioID)
	if err != nil {
		return nil, ErrVitrineNaoEncontrada
	}

	if req.Slug != nil && *req.Slug != v.Slug {
		normalized := slug.Slugify(*req.Slug)
		if normalized == "" {
			return nil, ErrSlugInvalido
		}
		taken, err := s.repo.SlugExists(ctx, normalized)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugEmUso
		}
		v.Slug = normalized
	}

	if req.Nome != nil {
		v.Nome = *req.Nome
	}
	if req.Descricao != nil {
		v.Descricao = req.Descricao
	}
	if req.LogoURL != nil {
		v.LogoURL = req.LogoURL
	}
	if req.BannerURL != nil {
		v.BannerURL = req.BannerURL
	}
	if req.CorPrimaria != nil {
		v.CorPrimaria = req.CorPrimaria
	}
	if req.Whatsapp != nil {
		v.Whatsapp = req.Whatsapp
	}
	if req.Instagram != nil {
		v.Instagram = req.Instagram
	}
	if req.Endereco != nil {
		v.Endereco = req.Endereco
	}
	if req.Cidade != nil {
		v.Cidade = req.Cidade
	}
	if req.Estado != nil {
		v.Estado = req.Estado
	}
	if req.Ativa != nil {
		v.Ativa = *req.Ativa
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return &dto.VitrineResponse{
		Success: true,
		Message: "Vitrine atualizada com sucesso",
		Vitrine: vitrineToData(v),
	}, nil
}

func (s *vitrineService) Publica(ctx context.Context, slugStr string) (*dto.PublicVitrineResponse, error) {
	v, err := s.repo.FindPublicBySlug(ctx, slugStr)
	if err != nil {
		return nil, ErrVitrineNaoEncontrada
	}

	// Counter bump is atomic in the DB; a failure here never hides the page.
	if err := s.repo.IncrementVisualizacoes(ctx, v.ID); err != nil {
		log.Warn().Err(err).Str("vitrine_id", v.ID.String()).Msg("vitrine: failed to bump view counter")
	} else {
		v.Visualizacoes++
	}

	produtos, err := s.produtoRepo.ListPublic(ctx, v.ID)
	if err != nil {
		return nil, err
	}

	data := make([]dto.ProdutoData, len(produtos))
	for i, p := range produtos {
		data[i] = produtoToData(&p)
	}
	return &dto.PublicVitrineResponse{
		Success:  true,
		Vitrine:  vitrineToData(v),
		Produtos: data,
	}, nil
}

func (s *vitrineService) CheckSlug(ctx context.Context, slugStr string) (*dto.CheckSlugResponse, error) {
	normalized := slug.Slugify(slugStr)
	if normalized == "" {
		return nil, ErrSlugInvalido
	}
	taken, err := s.repo.SlugExists(ctx, normalized)
	if err != nil {
		return nil, err
	}
	return &dto.CheckSlugResponse{Success: true, Slug: normalized, Available: !taken}, nil
}

func (s *vitrineService) SomarVisualizacao(ctx context.Context, vitrineID uuid.UUID) error {
	return s.repo.IncrementVisualizacoes(ctx, vitrineID)
}

func (s *vitrineService) CliqueWhatsapp(ctx context.Context, vitrineID uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, vitrineID); err != nil {
		return ErrVitrineNaoEncontrada
	}
	return s.repo.IncrementCliquesWhatsapp(ctx, vitrineID)
}

func (s *vitrineService) Stats(ctx context.Context, usuarioID uuid.UUID) (*dto.VitrineStatsResponse, error) {
	v, err := s.repo.FindByUsuarioID(ctx, usuarioID)
	if err != nil {
		return nil, ErrVitrineNaoEncontrada
	}
	totalProdutos, err := s.produtoRepo.CountByVitrineID(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	totalLeads, err := s.leadRepo.CountByVitrineID(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	return &dto.VitrineStatsResponse{
		Success:         true,
		Visualizacoes:   v.Visualizacoes,
		CliquesWhatsapp: v.CliquesWhatsapp,
		TotalProdutos:   int(totalProdutos),
		TotalLeads:      int(totalLeads),
	}, nil
}

// allocateSlug probes base, base-1, base-2, … against the slugs already in
// use. The probe is not transactional with the insert; the unique index on
// slug is the final arbiter under concurrent creates.
func (s *vitrineService) allocateSlug(ctx context.Context, base string) (string, error) {
	var probeErr error
	allocated := slug.Allocate(base, func(candidate string) bool {
		if probeErr != nil {
			return false
		}
		taken, err := s.repo.SlugExists(ctx, candidate)
		if err != nil {
			probeErr = err
			return false
		}
		return taken
	})
	if probeErr != nil {
		return "", probeErr
	}
	return allocated, nil
}

func vitrineToData(v *model.Vitrine) dto.VitrineData {
	return dto.VitrineData{
		ID:              v.ID.String(),
		Nome:            v.Nome,
		Slug:            v.Slug,
		Descricao:       v.Descricao,
		LogoURL:         v.LogoURL,
		BannerURL:       v.BannerURL,
		CorPrimaria:     v.CorPrimaria,
		Whatsapp:        v.Whatsapp,
		Instagram:       v.Instagram,
		Endereco:        v.Endereco,
		Cidade:          v.Cidade,
		Estado:          v.Estado,
		Ativa:           v.Ativa,
		Visualizacoes:   v.Visualizacoes,
		CliquesWhatsapp: v.CliquesWhatsapp,
		CreatedAt:       v.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
