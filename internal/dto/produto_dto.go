package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarProdutoRequest struct {
	Nome      string           `json:"nome"       validate:"required,min=2,max=120"`
	Descricao *string          `json:"descricao"`
	Preco     *decimal.Decimal `json:"preco"      validate:"omitempty,min=0"`
	Ano       *int             `json:"ano"        validate:"omitempty,min=1900,max=2100"`
	Km        *int             `json:"km"         validate:"omitempty,min=0"`
	Cor       *string          `json:"cor"        validate:"omitempty,max=50"`
	ImagemURL *string          `json:"imagem_url" validate:"omitempty,url"`
	Destaque  bool             `json:"destaque"`
}

type AtualizarProdutoRequest struct {
	Nome      *string          `json:"nome"       validate:"omitempty,min=2,max=120"`
	Descricao *string          `json:"descricao"`
	Preco     *decimal.Decimal `json:"preco"      validate:"omitempty,min=0"`
	Ano       *int             `json:"ano"        validate:"omitempty,min=1900,max=2100"`
	Km        *int             `json:"km"         validate:"omitempty,min=0"`
	Cor       *string          `json:"cor"        validate:"omitempty,max=50"`
	ImagemURL *string          `json:"imagem_url" validate:"omitempty,url"`
	Destaque  *bool            `json:"destaque"`
	Ativo     *bool            `json:"ativo"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProdutoFilter struct {
	Ativo    string `form:"ativo"`    // "", "true", "false", "all"
	Destaque string `form:"destaque"` // "", "true"
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProdutoData struct {
	ID            string           `json:"id"`
	VitrineID     string           `json:"vitrine_id"`
	Nome          string           `json:"nome"`
	Descricao     *string          `json:"descricao"`
	Preco         *decimal.Decimal `json:"preco"`
	Ano           *int             `json:"ano"`
	Km            *int             `json:"km"`
	Cor           *string          `json:"cor"`
	ImagemURL     *string          `json:"imagem_url"`
	Destaque      bool             `json:"destaque"`
	Ativo         bool             `json:"ativo"`
	Visualizacoes int              `json:"visualizacoes"`
	CreatedAt     string           `json:"created_at"`
}

type ProdutoResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Produto ProdutoData `json:"produto"`
}

type ProdutoListResponse struct {
	Success    bool          `json:"success"`
	Data       []ProdutoData `json:"data"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"total_pages"`
}
