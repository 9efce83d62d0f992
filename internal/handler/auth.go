package handler

import (
	"net/http"

	"github.com/isdev18/vitrine-do-vendedor/internal/apierror"
	"github.com/isdev18/vitrine-do-vendedor/internal/dto"
	"github.com/isdev18/vitrine-do-vendedor/internal/middleware"
	"github.com/isdev18/vitrine-do-vendedor/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Register godoc
// @Summary Criar conta de vendedor
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Dados de cadastro"
// @Success 201 {object} dto.RegisterResponse
// @Failure 409 {object} apierror.APIError
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Login de vendedor
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciais"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Me(c *gin.Context) {
	resp, err := h.svc.Me(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) AtualizarPerfil(c *gin.Context) {
	var req dto.AtualizarPerfilRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarPerfil(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) AlterarSenha(c *gin.Context) {
	var req dto.AlterarSenhaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.AlterarSenha(c.Request.Context(), currentUserID(c), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Senha alterada com sucesso"})
}

// currentUserID extracts the authenticated user id from the JWT claims.
// Routes behind JWTAuth always carry valid claims.
func currentUserID(c *gin.Context) uuid.UUID {
	claims := middleware.GetClaims(c)
	id, _ := uuid.Parse(claims.UserID)
	return id
}

// ── Admin handler ────────────────────────────────────────────────────────────

type AdminHandler struct{ svc service.AuthService }

func NewAdminHandler(svc service.AuthService) *AdminHandler { return &AdminHandler{svc: svc} }

func (h *AdminHandler) ListarUsuarios(c *gin.Context) {
	resp, err := h.svc.ListarUsuarios(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar usuarios"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) Bloquear(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.BloquearUsuario(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Usuario bloqueado"})
}

func (h *AdminHandler) Desbloquear(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	if err := h.svc.DesbloquearUsuario(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Usuario desbloqueado"})
}
