package router

import (
	"time"

	"github.com/isdev18/vitrine-do-vendedor/internal/config"
	"github.com/isdev18/vitrine-do-vendedor/internal/handler"
	"github.com/isdev18/vitrine-do-vendedor/internal/middleware"
	"github.com/isdev18/vitrine-do-vendedor/internal/model"
	"github.com/isdev18/vitrine-do-vendedor/internal/repository"
	"github.com/isdev18/vitrine-do-vendedor/internal/service"
	"github.com/isdev18/vitrine-do-vendedor/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	vitrineRepo := repository.NewVitrineRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	leadRepo := repository.NewLeadRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg, dispatcher)
	vitrineSvc := service.NewVitrineService(vitrineRepo, produtoRepo, leadRepo)
	produtoSvc := service.NewProdutoService(produtoRepo, vitrineRepo, usuarioRepo)
	leadSvc := service.NewLeadService(leadRepo, vitrineRepo, usuarioRepo, dispatcher)
	dashboardSvc := service.NewDashboardService(vitrineRepo, produtoRepo, leadRepo, cfg)
	assinaturaSvc := service.NewAssinaturaService(usuarioRepo, vitrineRepo, produtoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	adminH := handler.NewAdminHandler(authSvc)
	vitrineH := handler.NewVitrineHandler(vitrineSvc, rdb)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	leadsH := handler.NewLeadHandler(leadSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	assinaturaH := handler.NewAssinaturaHandler(assinaturaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")

	// Auth (public)
	auth := api.Group("/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Public storefront — no auth, wider rate window for anonymous traffic
	pub := api.Group("/vitrine")
	{
		pub.GET("/public/:slug", vitrineH.Publica)
		pub.POST("/public/:slug/contato", leadsH.Contato)
		pub.GET("/check-slug/:slug", vitrineH.CheckSlug)
		pub.POST("/:id/whatsapp-click", vitrineH.CliqueWhatsapp)
	}

	// Product view counter is public, same contract as whatsapp-click
	api.POST("/products/:id/view", produtosH.RegistrarVisualizacao)

	// Plan catalog is public — the pricing page renders before signup
	api.GET("/subscription/plans", assinaturaH.Planos)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	authed := api.Group("", jwtMW)
	{
		authed.GET("/auth/me", authH.Me)
		authed.PUT("/user/profile", authH.AtualizarPerfil)
		authed.PUT("/user/password", authH.AlterarSenha)

		vitrine := authed.Group("/vitrine")
		{
			vitrine.POST("", vitrineH.Criar)
			vitrine.GET("", vitrineH.Obter)
			vitrine.PUT("", vitrineH.Atualizar)
			vitrine.GET("/stats", vitrineH.Stats)
		}

		products := authed.Group("/products")
		{
			products.POST("", produtosH.Criar)
			products.GET("", produtosH.Listar)
			products.GET("/:id", produtosH.Obter)
			products.PUT("/:id", produtosH.Atualizar)
			products.DELETE("/:id", produtosH.Excluir)
			products.PATCH("/:id/destaque", produtosH.ToggleDestaque)
			products.PATCH("/:id/ativo", produtosH.ToggleAtivo)
		}

		authed.GET("/leads", leadsH.Listar)

		authed.GET("/dashboard", dashboardH.Resumo)
		authed.GET("/dashboard/relatorio", dashboardH.Relatorio)

		authed.GET("/subscription/status", assinaturaH.Status)
		authed.POST("/subscription/select-plan", assinaturaH.SelecionarPlano)

		admin := authed.Group("/admin", middleware.RequireRole(model.RoleAdmin))
		{
			admin.GET("/users", adminH.ListarUsuarios)
			admin.PATCH("/users/:id/block", adminH.Bloquear)
			admin.PATCH("/users/:id/unblock", adminH.Desbloquear)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
