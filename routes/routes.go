package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Nagesh2809/cafe-management/configs"
	"github.com/Nagesh2809/cafe-management/controllers"
	"github.com/Nagesh2809/cafe-management/entity"
	"github.com/Nagesh2809/cafe-management/middlewares"
	"github.com/Nagesh2809/cafe-management/repository"
	"github.com/Nagesh2809/cafe-management/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, services.DefaultRolePolicy(), cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cfg.VerifyOrderTotals, cfg.StrictOrderStatus)
	reportSvc := services.NewReportService(reportRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	adminCtrl := controllers.NewAdminController(orderSvc, reportSvc)

	// Public
	r.POST("/register", authCtrl.Register)
	r.POST("/token", authCtrl.Login)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/popular", menuCtrl.Popular)

	// Any authenticated user
	user := r.Group("/", middlewares.AuthMiddleware(db, cfg))
	{
		user.GET("/users/me", authCtrl.Me)
		user.POST("/orders", orderCtrl.Create)
		user.GET("/orders/me", orderCtrl.ListForMe)
	}

	// Catalog writes (admin only)
	menuAdmin := r.Group("/menu", middlewares.AuthMiddleware(db, cfg, entity.RoleAdmin))
	{
		menuAdmin.POST("", menuCtrl.Create)
		menuAdmin.PUT("/:id", menuCtrl.Update)
		menuAdmin.DELETE("/:id", menuCtrl.Delete)
	}

	// Admin reporting
	admin := r.Group("/admin", middlewares.AuthMiddleware(db, cfg, entity.RoleAdmin))
	{
		admin.GET("/stats", adminCtrl.Stats)
		admin.GET("/orders", adminCtrl.ListOrders)
		admin.PUT("/orders/:id/status", adminCtrl.UpdateOrderStatus)
	}
}
