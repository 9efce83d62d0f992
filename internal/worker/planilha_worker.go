package worker

// planilha_worker.go
// Processes spreadsheet export jobs from QueuePlanilha.
// Posts the lead row to the Google Apps Script webhook through the circuit
// breaker, with exponential backoff (max 3 attempts). Jobs that exhaust
// their retries go to the DLQ; the lead row keeps exportado=false so the
// gap is visible in the panel.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/isdev18/vitrine-do-vendedor/internal/infra"
	"github.com/isdev18/vitrine-do-vendedor/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const maxExportAttempts = 3

// PlanilhaJobPayload is the job envelope sent to QueuePlanilha.
type PlanilhaJobPayload struct {
	LeadID    string `json:"lead_id"`
	VitrineID string `json:"vitrine_id"`
	Slug      string `json:"slug"`
	Nome      string `json:"nome"`
	Telefone  string `json:"telefone,omitempty"`
	Email     string `json:"email,omitempty"`
	Mensagem  string `json:"mensagem,omitempty"`
	CriadoEm  string `json:"criado_em"`
}

// PlanilhaWorker exports captured leads to the configured spreadsheet webhook.
type PlanilhaWorker struct {
	client   *infra.PlanilhaClient
	cb       *infra.CircuitBreaker
	leadRepo repository.LeadRepository
	rdb      *redis.Client
}

func NewPlanilhaWorker(client *infra.PlanilhaClient, cb *infra.CircuitBreaker, leadRepo repository.LeadRepository, rdb *redis.Client) *PlanilhaWorker {
	return &PlanilhaWorker{client: client, cb: cb, leadRepo: leadRepo, rdb: rdb}
}

// Process exports one lead row.
func (w *PlanilhaWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload PlanilhaJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("planilha_worker: invalid payload")
		return
	}
	if !w.client.Enabled() {
		log.Debug().Msg("planilha_worker: no webhook configured — skipping export")
		return
	}

	exportErr := withRetry(ctx, maxExportAttempts, func(attempt int) error {
		return w.cb.Execute(func() error {
			_, err := w.client.SalvarLead(ctx, infra.PlanilhaLeadPayload{
				VitrineID: payload.VitrineID,
				Slug:      payload.Slug,
				Nome:      payload.Nome,
				Telefone:  payload.Telefone,
				Email:     payload.Email,
				Mensagem:  payload.Mensagem,
				CriadoEm:  payload.CriadoEm,
			})
			if err != nil {
				log.Warn().
					Err(err).
					Int("attempt", attempt+1).
					Str("lead_id", payload.LeadID).
					Msg("planilha_worker: export attempt failed")
			}
			return err
		})
	})

	if exportErr != nil {
		log.Error().Err(exportErr).Str("lead_id", payload.LeadID).
			Msg("planilha_worker: export failed after all retries, moving to DLQ")
		SendToDLQ(ctx, w.rdb, QueuePlanilha, "planilha", raw, exportErr.Error(), maxExportAttempts)
		return
	}

	leadID, err := uuid.Parse(payload.LeadID)
	if err == nil {
		if err := w.leadRepo.MarkExportado(ctx, leadID); err != nil {
			log.Warn().Err(err).Str("lead_id", payload.LeadID).Msg("planilha_worker: failed to mark lead as exported")
		}
	}
	log.Info().Str("lead_id", payload.LeadID).Msg("planilha_worker: lead exported")
}

// withRetry calls fn up to maxAttempts times with exponential backoff.
// Backoff schedule: attempt 1 = immediate, 2 = 1s, 3 = 2s.
// Returns nil if any attempt succeeds; last error otherwise.
func withRetry(ctx context.Context, maxAttempts int, fn func(attempt int) error) error {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			wait := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		if err := fn(i); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
