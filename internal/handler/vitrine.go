package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/isdev18/vitrine-do-vendedor/internal/dto"
	"github.com/isdev18/vitrine-do-vendedor/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// publicCacheTTL bounds staleness of the anonymous storefront page. View
// counters are bumped on every hit regardless of cache state.
const publicCacheTTL = 60 * time.Second

type VitrineHandler struct {
	svc service.VitrineService
	rdb *redis.Client
}

func NewVitrineHandler(svc service.VitrineService, rdb *redis.Client) *VitrineHandler {
	return &VitrineHandler{svc: svc, rdb: rdb}
}

// Criar godoc
// @Summary Criar vitrine
// @Description Cria a vitrine do vendedor autenticado. O slug é derivado do nome; colisões recebem sufixo numérico.
// @Tags vitrine
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CriarVitrineRequest true "Dados da vitrine"
// @Success 201 {object} dto.VitrineResponse
// @Failure 409 {object} apierror.APIError
// @Router /vitrine [post]
func (h *VitrineHandler) Criar(c *gin.Context) {
	var req dto.CriarVitrineRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *VitrineHandler) Obter(c *gin.Context) {
	resp, err := h.svc.Obter(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VitrineHandler) Atualizar(c *gin.Context) {
	var req dto.AtualizarVitrineRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.invalidatePublicCache(c, resp.Vitrine.Slug)
	c.JSON(http.StatusOK, resp)
}

func (h *VitrineHandler) Stats(c *gin.Context) {
	resp, err := h.svc.Stats(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Publica godoc
// @Summary Página pública da vitrine
// @Description Retorna a vitrine ativa e seus produtos ativos, destaques primeiro. Cada acesso conta uma visualização.
// @Tags vitrine
// @Produce json
// @Param slug path string true "Slug da vitrine"
// @Success 200 {object} dto.PublicVitrineResponse
// @Failure 404 {object} apierror.APIError
// @Router /vitrine/public/{slug} [get]
func (h *VitrineHandler) Publica(c *gin.Context) {
	ctx := c.Request.Context()
	slug := c.Param("slug")
	cacheKey := publicCacheKey(slug)

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp dto.PublicVitrineResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				// Still a real visit — bump the counter behind the cache.
				if id, err := uuid.Parse(resp.Vitrine.ID); err == nil {
					if err := h.svc.SomarVisualizacao(ctx, id); err == nil {
						resp.Vitrine.Visualizacoes++
					}
				}
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	resp, err := h.svc.Publica(ctx, slug)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := h.rdb.Set(ctx, cacheKey, data, publicCacheTTL).Err(); err != nil {
				log.Debug().Err(err).Str("slug", slug).Msg("vitrine: public cache write failed")
			}
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VitrineHandler) CheckSlug(c *gin.Context) {
	resp, err := h.svc.CheckSlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CliqueWhatsapp registers a WhatsApp button click. Always answers 200 so a
// stale front end pointing at a removed storefront does not surface errors
// to visitors.
func (h *VitrineHandler) CliqueWhatsapp(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}
	if err := h.svc.CliqueWhatsapp(c.Request.Context(), id); err != nil {
		log.Debug().Err(err).Str("vitrine_id", id.String()).Msg("vitrine: whatsapp click not counted")
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *VitrineHandler) invalidatePublicCache(c *gin.Context, slug string) {
	if h.rdb == nil || slug == "" {
		return
	}
	if err := h.rdb.Del(c.Request.Context(), publicCacheKey(slug)).Err(); err != nil {
		log.Debug().Err(err).Str("slug", slug).Msg("vitrine: public cache invalidation failed")
	}
}

func publicCacheKey(slug string) string { return "cache:vitrine:public:" + slug }

// ── Leads handler ────────────────────────────────────────────────────────────

type LeadHandler struct{ svc service.LeadService }

func NewLeadHandler(svc service.LeadService) *LeadHandler { return &LeadHandler{svc: svc} }

// Contato godoc
// @Summary Enviar contato para o vendedor
// @Description Captura um lead na página pública e dispara notificação por email e exportação para planilha.
// @Tags leads
// @Accept json
// @Produce json
// @Param slug path string true "Slug da vitrine"
// @Param body body dto.CriarLeadRequest true "Dados de contato"
// @Success 201 {object} dto.LeadResponse
// @Failure 404 {object} apierror.APIError
// @Router /vitrine/public/{slug}/contato [post]
func (h *LeadHandler) Contato(c *gin.Context) {
	var req dto.CriarLeadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Capturar(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *LeadHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
