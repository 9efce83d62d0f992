package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarVitrineRequest struct {
	Nome        string  `json:"nome"         validate:"required,min=2,max=120"`
	Descricao   *string `json:"descricao"`
	LogoURL     *string `json:"logo_url"     validate:"omitempty,url"`
	BannerURL   *string `json:"banner_url"   validate:"omitempty,url"`
	CorPrimaria *string `json:"cor_primaria" validate:"omitempty,max=20"`
	Whatsapp    *string `json:"whatsapp"     validate:"omitempty,max=30"`
	Instagram   *string `json:"instagram"    validate:"omitempty,max=120"`
	Endereco    *string `json:"endereco"     validate:"omitempty,max=255"`
	Cidade      *string `json:"cidade"       validate:"omitempty,max=120"`
	Estado      *string `json:"estado"       validate:"omitempty,len=2"`
}

type AtualizarVitrineRequest struct {
	Nome        *string `json:"nome"         validate:"omitempty,min=2,max=120"`
	Slug        *string `json:"slug"         validate:"omitempty,min=1,max=120"`
	Descricao   *string `json:"descricao"`
	LogoURL     *string `json:"logo_url"     validate:"omitempty,url"`
	BannerURL   *string `json:"banner_url"   validate:"omitempty,url"`
	CorPrimaria *string `json:"cor_primaria" validate:"omitempty,max=20"`
	Whatsapp    *string `json:"whatsapp"     validate:"omitempty,max=30"`
	Instagram   *string `json:"instagram"    validate:"omitempty,max=120"`
	Endereco    *string `json:"endereco"     validate:"omitempty,max=255"`
	Cidade      *string `json:"cidade"       validate:"omitempty,max=120"`
	Estado      *string `json:"estado"       validate:"omitempty,len=2"`
	Ativa       *bool   `json:"ativa"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VitrineData struct {
	ID              string  `json:"id"`
	Nome            string  `json:"nome"`
	Slug            string  `json:"slug"`
	Descricao       *string `json:"descricao"`
	LogoURL         *string `json:"logo_url"`
	BannerURL       *string `json:"banner_url"`
	CorPrimaria     *string `json:"cor_primaria"`
	Whatsapp        *string `json:"whatsapp"`
	Instagram       *string `json:"instagram"`
	Endereco        *string `json:"endereco"`
	Cidade          *string `json:"cidade"`
	Estado          *string `json:"estado"`
	Ativa           bool    `json:"ativa"`
	Visualizacoes   int     `json:"visualizacoes"`
	CliquesWhatsapp int     `json:"cliques_whatsapp"`
	CreatedAt       string  `json:"created_at"`
}

type VitrineResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Vitrine VitrineData `json:"vitrine"`
}

// PublicVitrineResponse is the anonymous storefront page payload: the
// storefront plus its active products, featured first.
type PublicVitrineResponse struct {
	Success  bool          `json:"success"`
	Vitrine  VitrineData   `json:"vitrine"`
	Produtos []ProdutoData `json:"produtos"`
}

type CheckSlugResponse struct {
	Success   bool   `json:"success"`
	Slug      string `json:"slug"`
	Available bool   `json:"available"`
}

type VitrineStatsResponse struct {
	Success         bool `json:"success"`
	Visualizacoes   int  `json:"visualizacoes"`
	CliquesWhatsapp int  `json:"cliques_whatsapp"`
	TotalProdutos   int  `json:"total_produtos"`
	TotalLeads      int  `json:"total_leads"`
}
