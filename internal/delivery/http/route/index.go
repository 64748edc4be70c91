package route

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"moteka/internal/config"
	httpHandler "moteka/internal/delivery/http/handler"
	"moteka/internal/delivery/http/middleware"
	entity "moteka/internal/domain"
	"moteka/internal/notifier"
	repo "moteka/internal/repository/postgresql"
	"moteka/internal/service"
)

// SetupRoute wires repositories, services and handlers onto the engine.
func SetupRoute(app *gin.Engine, db *sql.DB, cfg *config.Config, logger *zap.Logger) {
	// repositories
	userRepo := repo.NewUserRepository(db)
	clientRepo := repo.NewClientRepository(db)
	catalogRepo := repo.NewCatalogRepository(db)
	motoRepo := repo.NewMotorcycleRepository(db)
	orderRepo := repo.NewOrderRepository(db)
	toolRepo := repo.NewToolRepository(db)
	workReportRepo := repo.NewWorkReportRepository(db)
	dashRepo := repo.NewDashboardRepository(db)

	// services
	mailer := notifier.New(notifier.NewSMTPSender(cfg.SMTP), logger)
	authService := service.NewAuthService(userRepo, catalogRepo)
	clientService := service.NewClientService(clientRepo)
	catalogService := service.NewCatalogService(catalogRepo)
	motoService := service.NewMotorcycleService(motoRepo, clientRepo, catalogRepo)
	orderService := service.NewOrderService(orderRepo, clientRepo, motoRepo, userRepo, mailer)
	toolService := service.NewToolService(toolRepo)
	userService := service.NewUserService(userRepo, catalogRepo)
	workReportService := service.NewWorkReportService(workReportRepo, orderRepo, userRepo)
	dashService := service.NewDashboardService(dashRepo)
	reportService := service.NewReportService(orderRepo, workReportRepo)

	// handlers
	authHandler := httpHandler.NewAuthHandler(authService)
	clientHandler := httpHandler.NewClientHandler(clientService)
	catalogHandler := httpHandler.NewCatalogHandler(catalogService)
	motoHandler := httpHandler.NewMotorcycleHandler(motoService)
	orderHandler := httpHandler.NewOrderHandler(orderService)
	toolHandler := httpHandler.NewToolHandler(toolService)
	userHandler := httpHandler.NewUserHandler(userService)
	workReportHandler := httpHandler.NewWorkReportHandler(workReportService)
	dashHandler := httpHandler.NewDashboardHandler(dashService)
	reportHandler := httpHandler.NewReportHandler(reportService)

	api := app.Group("/api")

	// authentication and profile
	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", middleware.AuthOptional(), authHandler.Register)
	auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
	auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)

	staff := middleware.RoleAllowed(entity.RoleManager, entity.RoleSupervisor)
	managerOnly := middleware.RoleAllowed(entity.RoleManager)

	// clients
	clients := api.Group("/clients", middleware.AuthRequired())
	clients.GET("", clientHandler.List)
	clients.POST("", staff, clientHandler.Create)
	clients.PUT("/:id", staff, clientHandler.Update)
	clients.DELETE("/:id", managerOnly, clientHandler.Delete)

	// motorcycles
	motos := api.Group("/motorcycles", middleware.AuthRequired())
	motos.GET("", motoHandler.List)
	motos.GET("/:id", motoHandler.Get)
	motos.POST("", staff, motoHandler.Create)
	motos.PUT("/:id", staff, motoHandler.Update)
	motos.DELETE("/:id", managerOnly, motoHandler.Delete)

	// brand and model catalogs
	brands := api.Group("/brands", middleware.AuthRequired())
	brands.GET("", catalogHandler.ListBrands)
	brands.POST("", staff, catalogHandler.CreateBrand)
	brands.PUT("/:id", staff, catalogHandler.UpdateBrand)
	brands.DELETE("/:id", managerOnly, catalogHandler.DeleteBrand)

	models := api.Group("/models", middleware.AuthRequired())
	models.GET("", catalogHandler.ListModels)
	models.POST("", staff, catalogHandler.CreateModel)
	models.PUT("/:id", staff, catalogHandler.UpdateModel)
	models.DELETE("/:id", managerOnly, catalogHandler.DeleteModel)

	roles := api.Group("/roles", middleware.AuthRequired())
	roles.GET("", catalogHandler.ListRoles)
	roles.POST("", managerOnly, catalogHandler.CreateRole)
	roles.DELETE("/:id", managerOnly, catalogHandler.DeleteRole)

	// work orders
	orders := api.Group("/orders", middleware.AuthRequired())
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.POST("", staff, orderHandler.Create)
	orders.PUT("/:id", staff, orderHandler.Update)
	orders.PATCH("/:id/status", orderHandler.ChangeStatus)
	orders.GET("/:id/history", orderHandler.History)
	orders.POST("/:id/payments", staff, orderHandler.AddPayment)
	orders.GET("/:id/payments", orderHandler.Payments)
	orders.GET("/:id/work-reports", workReportHandler.ListByOrder)

	// work reports
	reports := api.Group("/work-reports", middleware.AuthRequired())
	reports.GET("", workReportHandler.List)
	reports.POST("", workReportHandler.Create)

	// tools
	tools := api.Group("/tools", middleware.AuthRequired())
	tools.GET("", toolHandler.List)
	tools.GET("/:id", toolHandler.Get)
	tools.POST("", staff, toolHandler.Create)
	tools.PUT("/:id", staff, toolHandler.Update)
	tools.DELETE("/:id", managerOnly, toolHandler.Delete)

	// users and staff
	users := api.Group("/users", middleware.AuthRequired(), managerOnly)
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	api.GET("/mechanics", middleware.AuthRequired(), userHandler.ListMechanics)

	// dashboard and exports
	api.GET("/dashboard/summary", middleware.AuthRequired(), dashHandler.Summary)
	api.GET("/reports/orders.xlsx", middleware.AuthRequired(), staff, reportHandler.ExportOrders)
}
