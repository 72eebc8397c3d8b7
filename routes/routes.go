package routes

import (
	"github.com/GishenCBoraluwa/fisheries-management/configs"
	"github.com/GishenCBoraluwa/fisheries-management/controllers"
	"github.com/GishenCBoraluwa/fisheries-management/middlewares"
	"github.com/GishenCBoraluwa/fisheries-management/repository"
	"github.com/GishenCBoraluwa/fisheries-management/services"
	"github.com/GishenCBoraluwa/fisheries-management/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.TruckHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	fishRepo := repository.NewFishRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	truckRepo := repository.NewTruckRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	weatherRepo := repository.NewWeatherRepository(db)
	predictionRepo := repository.NewPredictionRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	orderService := services.NewOrderService(db, orderRepo, fishRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authService)
	orderCtrl := controllers.NewOrderController(orderService)
	fishCtrl := controllers.NewFishController(fishRepo, predictionRepo)
	weatherCtrl := controllers.NewWeatherController(weatherRepo)
	truckCtrl := controllers.NewTruckController(truckRepo, hub)
	blogCtrl := controllers.NewBlogController(blogRepo)
	settingCtrl := controllers.NewSettingController(settingRepo)
	adminCtrl := controllers.NewAdminController(db)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", auth())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Public reads
	r.GET("/fish-types", fishCtrl.ListTypes)
	r.GET("/fish-prices", fishCtrl.ListPrices)
	r.GET("/predictions/:fishTypeId", fishCtrl.ListPredictions)
	r.GET("/weather", weatherCtrl.Range)
	r.GET("/weather/latest", weatherCtrl.Latest)
	r.GET("/weather/weekly-average", weatherCtrl.WeeklyAverage)
	r.GET("/blogs", blogCtrl.List)
	r.GET("/blogs/:id", blogCtrl.Detail)

	// Live truck positions (dashboards)
	r.GET("/ws/trucks", hub.HandleWebSocket)

	// Orders (customer)
	u := r.Group("/", auth())
	{
		u.POST("/orders", orderCtrl.Create)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.PATCH("/orders/:id/cancel", orderCtrl.Cancel)
	}

	// Profile
	profile := r.Group("/profile", auth())
	{
		profile.GET("/orders", orderCtrl.ListForMe)
	}

	// Settings
	settings := r.Group("/settings", auth())
	{
		settings.GET("", settingCtrl.Get)
		settings.PATCH("", settingCtrl.Update)
	}

	// Driver
	driver := r.Group("/driver", auth("driver", "admin"))
	{
		driver.GET("/trucks", truckCtrl.List)
		driver.PATCH("/trucks/:id/location", truckCtrl.UpdateLocation)
	}

	// Admin
	admin := r.Group("/admin", auth("admin"))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)

		admin.GET("/orders", orderCtrl.AdminList)
		admin.PATCH("/orders/:id/status", orderCtrl.UpdateStatus)

		admin.POST("/fish-types", fishCtrl.CreateType)
		admin.PATCH("/fish-types/:id", fishCtrl.UpdateType)
		admin.PUT("/fish-prices", fishCtrl.UpsertPrice)

		admin.GET("/trucks", truckCtrl.List)
		admin.POST("/trucks", truckCtrl.Create)
		admin.PATCH("/trucks/:id", truckCtrl.Update)
		admin.DELETE("/trucks/:id", truckCtrl.Delete)

		admin.POST("/blogs", blogCtrl.Create)
		admin.PATCH("/blogs/:id", blogCtrl.Update)
		admin.DELETE("/blogs/:id", blogCtrl.Delete)
	}
}
