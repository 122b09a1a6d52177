package router

import (
	"context"
	"time"

	_ "groceryhub/docs"
	"groceryhub/internal/config"
	"groceryhub/internal/handler"
	"groceryhub/internal/infra"
	"groceryhub/internal/middleware"
	"groceryhub/internal/model"
	"groceryhub/internal/repository"
	"groceryhub/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// External carries the collaborators that live outside the request path.
// Nil fields fall back to no-ops; a nil Graph disables store analytics.
type External struct {
	Mirror service.GraphMirror
	Alerts service.StockNotifier
	Graph  *infra.GraphClient
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, ext External) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.AllowedOrigins()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	// ── External collaborators ───────────────────────────────────────────────
	mirror, alerts := ext.Mirror, ext.Alerts
	if mirror == nil {
		mirror = service.NopMirror()
	}
	if alerts == nil {
		alerts = service.NopNotifier()
	}
	var (
		graphReader service.GraphReader
		graphPinger handler.Pinger
	)
	if ext.Graph != nil {
		graphReader = ext.Graph
		graphPinger = ext.Graph
	}

	// ── Repositories ─────────────────────────────────────────────────────────
	repos := repository.NewRepositories(db)
	uow := repository.NewUnitOfWork(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(repos, uow, cfg)
	userSvc := service.NewUserService(repos, uow)
	storeSvc := service.NewStoreService(repos, uow, mirror, graphReader, time.Now)
	itemTypeSvc := service.NewItemTypeService(repos, uow, mirror)
	itemSvc := service.NewItemService(repos, uow, mirror, alerts, time.Now)
	incomeSvc := service.NewIncomeService(repos, uow, time.Now)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, userSvc, cfg.AllowPublicRegistration)
	usersH := handler.NewUsersHandler(userSvc, storeSvc)
	storesH := handler.NewStoresHandler(storeSvc)
	itemTypesH := handler.NewItemTypesHandler(itemTypeSvc)
	itemsH := handler.NewItemsHandler(itemSvc)
	incomeH := handler.NewIncomeHandler(incomeSvc, time.Now)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	dbPinger := handler.PingFunc(func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	})
	redisPinger := handler.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	r.GET("/health", handler.Health(dbPinger, redisPinger, graphPinger))
	r.GET("/metrics", middleware.MetricsHandler())

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/register", middleware.LoginRateLimiter(), authH.Register)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes; the resolved actor is re-read from storage on every request
	v1 := r.Group("/v1", middleware.JWTAuth(cfg.JWTSecret), middleware.ResolveActor(authSvc))
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	{
		v1.GET("/auth/me", authH.Me)

		users := v1.Group("/users")
		{
			users.POST("", adminOnly, usersH.Create)
			users.GET("", adminOnly, usersH.List)
			users.POST("/suppliers", adminOnly, usersH.CreateSupplier)
			// Users may read and edit themselves; the service checks the rest.
			users.GET("/:id", usersH.Get)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", adminOnly, usersH.Deactivate)
			users.PATCH("/:id/reactivate", adminOnly, usersH.Reactivate)
			users.POST("/:id/assign-store", adminOnly, usersH.AssignStore)
		}

		stores := v1.Group("/stores")
		{
			stores.GET("", storesH.List)
			stores.POST("", adminOnly, storesH.Create)
			stores.GET("/mine", storesH.Mine)
			stores.GET("/:id", storesH.Get)
			stores.PUT("/:id", adminOnly, storesH.Update)
			stores.DELETE("/:id", adminOnly, storesH.Delete)
			stores.POST("/:id/restore", adminOnly, storesH.Restore)
			stores.GET("/:id/suppliers", storesH.Suppliers)
			stores.GET("/:id/items", storesH.Items)
			stores.GET("/:id/analytics", storesH.Analytics)
		}

		types := v1.Group("/item-types")
		{
			types.GET("", itemTypesH.List)
			types.POST("", adminOnly, itemTypesH.Create)
			types.GET("/:id", itemTypesH.Get)
			types.PUT("/:id", adminOnly, itemTypesH.Update)
			types.DELETE("/:id", adminOnly, itemTypesH.Delete)
			types.GET("/:id/items", itemTypesH.Items)
		}

		items := v1.Group("/items")
		{
			items.GET("", itemsH.List)
			items.POST("", itemsH.Create)
			items.GET("/mine", itemsH.Mine)
			items.GET("/low-stock", itemsH.LowStock)
			items.GET("/summary", itemsH.Summary)
			items.GET("/:id", itemsH.Get)
			items.PUT("/:id", itemsH.Update)
			items.DELETE("/:id", itemsH.Delete)
			items.POST("/:id/restore", itemsH.Restore)
			items.PATCH("/:id/stock", itemsH.SetStock)
		}

		income := v1.Group("/income")
		{
			income.GET("", incomeH.List)
			income.POST("", incomeH.Record)
			income.GET("/analytics", incomeH.Analytics)
			income.GET("/monthly-report", incomeH.MonthlyReport)
			income.GET("/monthly-report/pdf", incomeH.MonthlyReportPDF)
			income.GET("/weekly-trends", incomeH.WeeklyTrends)
			income.GET("/my-summary", incomeH.MySummary)
			income.GET("/:id", incomeH.Get)
			income.PUT("/:id", adminOnly, incomeH.Update)
			income.DELETE("/:id", adminOnly, incomeH.Delete)
		}
	}

	// Swagger UI — only enabled outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
