package handler

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/isdev18/vitrine-do-vendedor/internal/apierror"
	"github.com/isdev18/vitrine-do-vendedor/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Resumo godoc
// @Summary Métricas do painel
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardResponse
// @Failure 404 {object} apierror.APIError
// @Router /dashboard [get]
func (h *DashboardHandler) Resumo(c *gin.Context) {
	resp, err := h.svc.Resumo(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Relatorio streams the metrics report as a PDF download.
func (h *DashboardHandler) Relatorio(c *gin.Context) {
	path, err := h.svc.Relatorio(c.Request.Context(), currentUserID(c))
	if err != nil {
		if errors.Is(err, service.ErrVitrineNaoEncontrada) {
			respondError(c, err)
			return
		}
		log.Error().Err(err).Msg("dashboard: report generation failed")
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao gerar relatorio"))
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}
