package service

import (
	"context"
	"fmt"
	"time"

	"github.com/isdev18/vitrine-do-vendedor/internal/dto"
	"github.com/isdev18/vitrine-do-vendedor/internal/model"
	"github.com/isdev18/vitrine-do-vendedor/internal/repository"
	"github.com/isdev18/vitrine-do-vendedor/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type LeadService interface {
	// Capturar stores a contact posted on a public storefront page and
	// dispatches the owner notification and the spreadsheet export.
	Capturar(ctx context.Context, slugStr string, req dto.CriarLeadRequest) (*dto.LeadResponse, error)
	Listar(ctx context.Context, usuarioID uuid.UUID) (*dto.LeadListResponse, error)
}

type leadService struct {
	repo        repository.LeadRepository
	vitrineRepo repository.VitrineRepository
	usuarioRepo repository.UsuarioRepository
	dispatcher  Dispatcher
}

func NewLeadService(repo repository.LeadRepository, vitrineRepo repository.VitrineRepository, usuarioRepo repository.UsuarioRepository, dispatcher Dispatcher) LeadService {
	return &leadService{repo: repo, vitrineRepo: vitrineRepo, usuarioRepo: usuarioRepo, dispatcher: dispatcher}
}

func (s *leadService) Capturar(ctx context.Context, slugStr string, req dto.CriarLeadRequest) (*dto.LeadResponse, error) {
	v, err := s.vitrineRepo.FindPublicBySlug(ctx, slugStr)
	if err != nil {
		return nil, ErrVitrineNaoEncontrada
	}

	lead := &model.Lead{
		VitrineID: v.ID,
		Nome:      req.Nome,
		Telefone:  req.Telefone,
		Email:     req.Email,
		Mensagem:  req.Mensagem,
	}
	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	// Both jobs are fire & forget; the visitor already got their confirmation.
	if s.dispatcher != nil {
		s.notifyOwner(ctx, v, lead)

		exportErr := s.dispatcher.EnqueuePlanilha(ctx, worker.PlanilhaJobPayload{
			LeadID:    lead.ID.String(),
			VitrineID: v.ID.String(),
			Slug:      v.Slug,
			Nome:      lead.Nome,
			Telefone:  deref(lead.Telefone),
			Email:     deref(lead.Email),
			Mensagem:  deref(lead.Mensagem),
			CriadoEm:  lead.CreatedAt.UTC().Format(time.RFC3339),
		})
		if exportErr != nil {
			log.Warn().Err(exportErr).Str("lead_id", lead.ID.String()).Msg("lead: failed to enqueue spreadsheet export")
		}
	}

	return &dto.LeadResponse{Success: true, Message: "Contato enviado com sucesso"}, nil
}

func (s *leadService) Listar(ctx context.Context, usuarioID uuid.UUID) (*dto.LeadListResponse, error) {
	v, err := s.vitrineRepo.FindByUsuarioID(ctx, usuarioID)
	if err != nil {
		return nil, ErrVitrineNaoEncontrada
	}
	leads, err := s.repo.ListByVitrineID(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	data := make([]dto.LeadData, len(leads))
	for i, l := range leads {
		data[i] = dto.LeadData{
			ID:        l.ID.String(),
			Nome:      l.Nome,
			Telefone:  l.Telefone,
			Email:     l.Email,
			Mensagem:  l.Mensagem,
			Exportado: l.Exportado,
			CreatedAt: l.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}
	return &dto.LeadListResponse{Success: true, Data: data, Total: len(data)}, nil
}

func (s *leadService) notifyOwner(ctx context.Context, v *model.Vitrine, lead *model.Lead) {
	owner, err := s.usuarioRepo.FindByID(ctx, v.UsuarioID)
	if err != nil {
		log.Warn().Err(err).Str("vitrine_id", v.ID.String()).Msg("lead: owner lookup failed, skipping notification")
		return
	}

	body := fmt.Sprintf("Ola %s,\n\nVoce recebeu um novo contato na sua vitrine %s:\n\nNome: %s", owner.Nome, v.Nome, lead.Nome)
	if lead.Telefone != nil {
		body += "\nTelefone: " + *lead.Telefone
	}
	if lead.Email != nil {
		body += "\nEmail: " + *lead.Email
	}
	if lead.Mensagem != nil {
		body += "\nMensagem: " + *lead.Mensagem
	}
	body += "\n\nEquipe Vitrine do Vendedor"

	if err := s.dispatcher.EnqueueEmail(ctx, worker.EmailJobPayload{
		ToEmail: owner.Email,
		Subject: "Novo contato na sua vitrine!",
		Body:    body,
	}); err != nil {
		log.Warn().Err(err).Str("lead_id", lead.ID.String()).Msg("lead: failed to enqueue owner notification")
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
