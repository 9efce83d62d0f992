package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegisterRequest struct {
	Nome     string  `json:"nome"     validate:"required,min=2,max=120"`
	Email    string  `json:"email"    validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Telefone *string `json:"telefone" validate:"omitempty,max=30"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AtualizarPerfilRequest struct {
	Nome     *string `json:"nome"     validate:"omitempty,min=2,max=120"`
	Telefone *string `json:"telefone" validate:"omitempty,max=30"`
}

type AlterarSenhaRequest struct {
	SenhaAtual string `json:"senha_atual" validate:"required"`
	NovaSenha  string `json:"nova_senha"  validate:"required,min=6"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID       string  `json:"id"`
	Nome     string  `json:"nome"`
	Email    string  `json:"email"`
	Telefone *string `json:"telefone"`
	Role     string  `json:"role"`
	Status   string  `json:"status"`
	Plano    string  `json:"plano"`
}

type RegisterResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	User    UsuarioResponse `json:"user"`
}

type LoginResponse struct {
	Success      bool            `json:"success"`
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
	TokenType    string          `json:"token_type"`
	ExpiresIn    int             `json:"expires_in"` // seconds
	User         UsuarioResponse `json:"user"`
}

type MeResponse struct {
	Success bool            `json:"success"`
	User    UsuarioResponse `json:"user"`
}

type UsuarioListResponse struct {
	Success bool              `json:"success"`
	Data    []UsuarioResponse `json:"data"`
	Total   int               `json:"total"`
}
