package router

import (
	"time"

	"github.com/21edclique/preciosMayorista/internal/config"
	"github.com/21edclique/preciosMayorista/internal/handler"
	"github.com/21edclique/preciosMayorista/internal/infra"
	"github.com/21edclique/preciosMayorista/internal/middleware"
	"github.com/21edclique/preciosMayorista/internal/repository"
	"github.com/21edclique/preciosMayorista/internal/service"
	"github.com/21edclique/preciosMayorista/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, smtpCB *infra.CircuitBreaker, dispatcher *worker.Dispatcher) *gin.Engine {
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
	rolRepo := repository.NewRolRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	presentacionRepo := repository.NewPresentacionRepository(db)
	precioRepo := repository.NewPrecioRepository(db)
	bitacoraRepo := repository.NewBitacoraRepository(db)
	catalogoRepo := repository.NewCatalogoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, rolRepo, cfg)
	productoSvc := service.NewProductoService(productoRepo)
	presentacionSvc := service.NewPresentacionService(presentacionRepo)
	precioSvc := service.NewPrecioService(precioRepo, productoRepo, presentacionRepo)
	bitacoraSvc := service.NewBitacoraService(bitacoraRepo)
	reporteSvc := service.NewReporteService(precioRepo, productoRepo, presentacionRepo, rdb)
	exporteSvc := service.NewExporteService(rdb, dispatcher, time.Duration(cfg.ExportTTLHours)*time.Hour)
	catalogoSvc := service.NewCatalogoService(catalogoRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	rolesH := handler.NewRolesHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	presentacionesH := handler.NewPresentacionesHandler(presentacionSvc)
	preciosH := handler.NewPreciosHandler(precioSvc, reporteSvc)
	bitacorasH := handler.NewBitacorasHandler(bitacoraSvc, cfg.ExportStoragePath)
	reportesH := handler.NewReportesHandler(reporteSvc)
	exportesH := handler.NewExportesHandler(exporteSvc)
	catalogoH := handler.NewCatalogoHandler(catalogoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, smtpCB))

	// Market board — no auth required, Redis cached
	r.GET("/v1/pizarra", reportesH.Pizarra)

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	adminMW := middleware.RequireAdmin()
	v1 := r.Group("/v1", jwtMW)
	{
		v1.POST("/auth/logout", authH.Logout)

		// Precios — any authenticated user records, only admins correct or remove
		v1.GET("/precios", preciosH.Listar)
		v1.POST("/precios", preciosH.Crear)
		v1.PUT("/precios/:id", adminMW, preciosH.Actualizar)
		v1.DELETE("/precios/:id", adminMW, preciosH.Eliminar)

		// Productos — reads for everyone, writes for admins
		v1.GET("/productos", productosH.Listar)
		prods := v1.Group("/productos", adminMW)
		{
			prods.POST("", productosH.Crear)
			prods.PUT("/:id", productosH.Actualizar)
			prods.PATCH("/:id/estado", productosH.CambiarEstado)
			prods.DELETE("/:id", productosH.Eliminar)
		}

		// Presentaciones — same policy as productos
		v1.GET("/presentaciones", presentacionesH.Listar)
		pres := v1.Group("/presentaciones", adminMW)
		{
			pres.POST("", presentacionesH.Crear)
			pres.PUT("/:id", presentacionesH.Actualizar)
			pres.PATCH("/:id/estado", presentacionesH.CambiarEstado)
			pres.DELETE("/:id", presentacionesH.Eliminar)
		}

		// Bitácora — edit window enforced in the service, delete is admin-only
		v1.GET("/bitacoras", bitacorasH.Listar)
		v1.GET("/bitacoras/informe", bitacorasH.Informe)
		v1.GET("/bitacoras/:id", bitacorasH.Obtener)
		v1.POST("/bitacoras", bitacorasH.Crear)
		v1.PUT("/bitacoras/:id", bitacorasH.Actualizar)
		v1.PATCH("/bitacoras/:id/resolver", bitacorasH.Resolver)
		v1.DELETE("/bitacoras/:id", adminMW, bitacorasH.Eliminar)

		// Reportes
		v1.GET("/reportes/resumen", reportesH.Resumen)
		v1.GET("/reportes/top-variaciones", reportesH.TopVariaciones)
		v1.GET("/reportes/dashboard", reportesH.Dashboard)

		// Exportes — async report generation
		v1.POST("/exportes", exportesH.Crear)
		v1.GET("/exportes/:id", exportesH.Obtener)
		v1.GET("/exportes/:id/descargar", exportesH.Descargar)

		// Market layout lookups for the bitácora form
		v1.GET("/naves", catalogoH.ListarNaves)
		v1.GET("/camaras", catalogoH.ListarCamaras)

		// Usuarios y roles — administración
		usuarios := v1.Group("/usuarios", adminMW)
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Eliminar)
		}
		v1.GET("/roles", rolesH.Listar)
		v1.POST("/roles", adminMW, rolesH.Crear)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
