package router

import (
	"time"

	"github.com/LenerGonzalez/Posys-sub003/internal/config"
	"github.com/LenerGonzalez/Posys-sub003/internal/handler"
	"github.com/LenerGonzalez/Posys-sub003/internal/middleware"
	"github.com/LenerGonzalez/Posys-sub003/internal/model"
	"github.com/LenerGonzalez/Posys-sub003/internal/repository"
	"github.com/LenerGonzalez/Posys-sub003/internal/service"

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
	arqueoRepo := repository.NewArqueoRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	carteraRepo := repository.NewCarteraRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	arqueoSvc := service.NewArqueoService(arqueoRepo)
	kpiSvc := service.NewKPIService(ventaRepo, carteraRepo, rdb,
		time.Duration(cfg.KPICacheTTL)*time.Second)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	arqueosH := handler.NewArqueosHandler(arqueoSvc, cfg.NombreNegocio)
	kpiH := handler.NewKPIHandler(kpiSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioRepo)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		lectura := middleware.RequireRole(model.RolContador, model.RolAdministrador, model.RolCajero)
		escritura := middleware.RequireRole(model.RolContador, model.RolAdministrador)

		arqueos := v1.Group("/arqueos")
		{
			arqueos.GET("", lectura, arqueosH.Listar)
			arqueos.GET("/export", lectura, arqueosH.Exportar)
			arqueos.GET("/:id", lectura, arqueosH.Obtener)
			arqueos.GET("/:id/comprobante", lectura, arqueosH.Comprobante)
			arqueos.POST("", escritura, arqueosH.Crear)
			arqueos.PUT("/:id", escritura, arqueosH.Actualizar)
			arqueos.DELETE("/:id", escritura, arqueosH.Eliminar)
		}

		v1.GET("/kpi", lectura, kpiH.PorRango)
		v1.GET("/usuarios/contadores", lectura, usuariosH.Contadores)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
