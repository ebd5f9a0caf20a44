package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/configs"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/controllers"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/middlewares"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/repository"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/services"
	"github.com/karimovdostonbek1992-commits/KAMRON-city/ws"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	prodRepo := repository.NewProductRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Services
	catalogSvc := services.NewCatalogService(prodRepo)
	roomSvc := services.NewRoomService(roomRepo)
	cartSvc := services.NewCartService(db, cartRepo, prodRepo, roomRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, roomRepo, hub)
	accessSvc := services.NewAccessService(cfg.Codes, cfg.JWTSecret, cfg.JWTTTL)
	gemini := services.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel)
	analyticsSvc := services.NewAnalyticsService(reportRepo, gemini)

	// Controllers
	catalogCtrl := controllers.NewCatalogController(catalogSvc)
	roomCtrl := controllers.NewRoomController(roomSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	panelCtrl := controllers.NewPanelController(accessSvc)
	courierCtrl := controllers.NewCourierController(orderSvc)
	managerCtrl := controllers.NewManagerController(analyticsSvc, orderSvc)

	// Customer (public, keyed by X-Client-ID)
	r.GET("/categories", catalogCtrl.Categories)
	r.GET("/products", catalogCtrl.List)
	r.GET("/rooms", roomCtrl.List)

	cart := r.Group("/cart")
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PATCH("/items/:productId", cartCtrl.UpdateQty)
		cart.DELETE("/items/:productId", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
		cart.PUT("/room", cartCtrl.SelectRoom)
		cart.DELETE("/room", cartCtrl.ClearRoom)
	}

	r.POST("/orders", orderCtrl.Place)
	r.GET("/orders", orderCtrl.List)
	r.GET("/orders/:id", orderCtrl.Detail)

	// Live status tracker
	r.GET("/ws/orders", hub.HandleWebSocket)

	// Panel gate (two stages)
	r.POST("/panel/unlock", panelCtrl.Unlock)
	r.POST("/panel/role", middlewares.AuthMiddleware(cfg.JWTSecret, services.RolePanel), panelCtrl.GrantRole)

	// Admin: catalog and room management
	admin := r.Group("/panel/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.POST("/products", catalogCtrl.Add)
		admin.PATCH("/products/:id/stock", catalogCtrl.ToggleStock)
		admin.PATCH("/products/:id/price", catalogCtrl.UpdatePrice)
		admin.PATCH("/products/:id/image", catalogCtrl.UpdateImage)
		admin.DELETE("/products/:id", catalogCtrl.Delete)

		admin.POST("/rooms", roomCtrl.Add)
		admin.PATCH("/rooms/:id/price", roomCtrl.UpdatePrice)
		admin.PATCH("/rooms/:id/image", roomCtrl.UpdateImage)
		admin.PATCH("/rooms/:id/availability", roomCtrl.ToggleAvailability)
		admin.DELETE("/rooms/:id", roomCtrl.Delete)
	}

	// Courier: delivery queue and forward transitions
	courier := r.Group("/panel/courier", middlewares.AuthMiddleware(cfg.JWTSecret, "courier"))
	{
		courier.GET("/orders", courierCtrl.Queue)
		courier.PATCH("/orders/:id/status", courierCtrl.UpdateStatus)
	}

	// Manager: dashboard, AI report, devices; accepting also allowed
	// for admins.
	manager := r.Group("/panel/manager", middlewares.AuthMiddleware(cfg.JWTSecret, "manager"))
	{
		manager.GET("/sales", managerCtrl.Sales)
		manager.POST("/sales/report", managerCtrl.GenerateReport)
		manager.GET("/devices", managerCtrl.Devices)
		manager.DELETE("/devices/:id", managerCtrl.RemoveDevice)
	}
	r.PATCH("/panel/manager/orders/:id/accept",
		middlewares.AuthMiddleware(cfg.JWTSecret, "manager", "admin"),
		managerCtrl.AcceptOrder)
}
