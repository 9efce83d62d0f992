package service

import (
	"context"

	"github.com/isdev18/vitrine-do-vendedor/internal/config"
	"github.com/isdev18/vitrine-do-vendedor/internal/dto"
	"github.com/isdev18/vitrine-do-vendedor/internal/infra"
	"github.com/isdev18/vitrine-do-vendedor/internal/repository"

	"github.com/google/uuid"
)

// maxLeadsNoRelatorio bounds the "recent leads" table in the PDF.
const maxLeadsNoRelatorio = 15

type DashboardService interface {
	Resumo(ctx context.Context, usuarioID uuid.UUID) (*dto.DashboardResponse, error)
	// Relatorio renders the metrics PDF and returns the file path.
	Relatorio(ctx context.Context, usuarioID uuid.UUID) (string, error)
}

type dashboardService struct {
	vitrineRepo repository.VitrineRepository
	produtoRepo repository.ProdutoRepository
	leadRepo    repository.LeadRepository
	cfg         *config.Config
}

func NewDashboardService(vitrineRepo repository.VitrineRepository, produtoRepo repository.ProdutoRepository, leadRepo repository.LeadRepository, cfg *config.Config) DashboardService {
	return &dashboardService{vitrineRepo: vitrineRepo, produtoRepo: produtoRepo, leadRepo: leadRepo, cfg: cfg}
}

func (s *dashboardService) Resumo(ctx context.Context, usuarioID uuid.UUID) (*dto.DashboardResponse, error) {
	v, err := s.vitrineRepo.FindByUsuarioID(ctx, usuarioID)
	if err != nil {
		return nil, ErrVitrineNaoEncontrada
	}

	total, err := s.produtoRepo.CountByVitrineID(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	ativos, err := s.produtoRepo.CountAtivos(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	destaques, err := s.produtoRepo.CountDestaques(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	leads, err := s.leadRepo.CountByVitrineID(ctx, v.ID)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		Success:          true,
		VitrineNome:      v.Nome,
		VitrineSlug:      v.Slug,
		Visualizacoes:    v.Visualizacoes,
		CliquesWhatsapp:  v.CliquesWhatsapp,
		TotalProdutos:    total,
		ProdutosAtivos:   ativos,
		ProdutosDestaque: destaques,
		TotalLeads:       int(leads),
	}, nil
}

func (s *dashboardService) Relatorio(ctx context.Context, usuarioID uuid.UUID) (string, error) {
	v, err := s.vitrineRepo.FindByUsuarioID(ctx, usuarioID)
	if err != nil {
		return "", ErrVitrineNaoEncontrada
	}

	total, err := s.produtoRepo.CountByVitrineID(ctx, v.ID)
	if err != nil {
		return "", err
	}
	ativos, err := s.produtoRepo.CountAtivos(ctx, v.ID)
	if err != nil {
		return "", err
	}
	leads, err := s.leadRepo.ListByVitrineID(ctx, v.ID)
	if err != nil {
		return "", err
	}

	recentes := leads
	if len(recentes) > maxLeadsNoRelatorio {
		recentes = recentes[:maxLeadsNoRelatorio]
	}

	return infra.GerarRelatorioPDF(infra.RelatorioData{
		Vitrine:        v,
		Dominio:        s.cfg.Domain,
		TotalProdutos:  total,
		ProdutosAtivos: ativos,
		TotalLeads:     len(leads),
		LeadsRecentes:  recentes,
	}, s.cfg.PDFStoragePath)
}
