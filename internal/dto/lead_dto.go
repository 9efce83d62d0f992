package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CriarLeadRequest is posted anonymously from the public storefront page.
type CriarLeadRequest struct {
	Nome     string  `json:"nome"     validate:"required,min=2,max=120"`
	Telefone *string `json:"telefone" validate:"omitempty,max=30"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Mensagem *string `json:"mensagem" validate:"omitempty,max=2000"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LeadData struct {
	ID        string  `json:"id"`
	Nome      string  `json:"nome"`
	Telefone  *string `json:"telefone"`
	Email     *string `json:"email"`
	Mensagem  *string `json:"mensagem"`
	Exportado bool    `json:"exportado"`
	CreatedAt string  `json:"created_at"`
}

type LeadResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type LeadListResponse struct {
	Success bool       `json:"success"`
	Data    []LeadData `json:"data"`
	Total   int        `json:"total"`
}
