package handler

import (
	"net/http"

	"github.com/isdev18/vitrine-do-vendedor/internal/dto"
	"github.com/isdev18/vitrine-do-vendedor/internal/service"

	"github.com/gin-gonic/gin"
)

type AssinaturaHandler struct{ svc service.AssinaturaService }

func NewAssinaturaHandler(svc service.AssinaturaService) *AssinaturaHandler {
	return &AssinaturaHandler{svc: svc}
}

// Planos godoc
// @Summary Catálogo de planos
// @Tags assinatura
// @Produce json
// @Success 200 {object} dto.PlanoListResponse
// @Router /subscription/plans [get]
func (h *AssinaturaHandler) Planos(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Planos(c.Request.Context()))
}

func (h *AssinaturaHandler) Status(c *gin.Context) {
	resp, err := h.svc.Status(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AssinaturaHandler) SelecionarPlano(c *gin.Context) {
	var req dto.SelecionarPlanoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.SelecionarPlano(c.Request.Context(), currentUserID(c), req.PlanoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
