package dto

import "github.com/isdev18/vitrine-do-vendedor/internal/plano"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SelecionarPlanoRequest struct {
	PlanoID string `json:"plano_id" validate:"required,oneof=basico profissional premium"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PlanoListResponse struct {
	Success bool          `json:"success"`
	Data    []plano.Plano `json:"data"`
}

type AssinaturaStatusResponse struct {
	Success        bool   `json:"success"`
	PlanoID        string `json:"plano_id"`
	PlanoNome      string `json:"plano_nome"`
	LimiteProdutos int    `json:"limite_produtos"`
	TotalProdutos  int64  `json:"total_produtos"`
}
