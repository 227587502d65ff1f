package routes

import (
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/configs"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/controllers"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/middlewares"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/repository"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/services"
	"github.com/JackSmith111977/Yisu-Hotel-Booking-Platform-PC/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	logRepo := repository.NewAuditLogRepository(db)
	draftRepo := repository.NewDraftRepository(db)

	// 审核事件实时推送
	hub := ws.NewReviewHub()
	go hub.Run()

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	hotelSvc := services.NewHotelService(hotelRepo)
	draftSvc := services.NewDraftService(draftRepo, hotelSvc)
	reviewSvc := services.NewReviewService(hotelRepo, logRepo)
	reviewSvc.Events = hub
	statsSvc := services.NewStatsService(hotelRepo, logRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	hotelCtrl := controllers.NewHotelController(hotelSvc)
	draftCtrl := controllers.NewDraftController(draftSvc)
	adminCtrl := controllers.NewAdminController(reviewSvc, statsSvc, authSvc, hotelRepo, logRepo)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)

	// 商家端
	merchant := r.Group("/merchant", middlewares.AuthMiddleware(cfg.JWTSecret, "merchant", "admin"))
	{
		merchant.GET("/hotels", hotelCtrl.List)
		merchant.POST("/hotels", hotelCtrl.Create)
		merchant.GET("/hotels/:id", hotelCtrl.Detail)
		merchant.PUT("/hotels/:id", hotelCtrl.Update)
		merchant.DELETE("/hotels/:id", hotelCtrl.Delete)
		merchant.PATCH("/hotels/:id/submit", hotelCtrl.Submit)

		// 可恢复的编辑会话
		merchant.GET("/drafts", draftCtrl.List)
		merchant.POST("/drafts", draftCtrl.Begin)
		merchant.PATCH("/drafts/:id", draftCtrl.Update)
		merchant.POST("/drafts/:id/commit", draftCtrl.Commit)
		merchant.DELETE("/drafts/:id", draftCtrl.Discard)
	}

	// 管理端
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/hotels", adminCtrl.ListHotels) // ?status=pending
		admin.PATCH("/hotels/:id/approve", adminCtrl.Approve)
		admin.PATCH("/hotels/:id/reject", adminCtrl.Reject)
		admin.PATCH("/hotels/:id/offline", adminCtrl.Offline)
		admin.PATCH("/hotels/:id/online", adminCtrl.Online)

		admin.GET("/audit-logs", adminCtrl.AuditLogs)
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/dashboard/trend", adminCtrl.Trend)
	}

	// websocket 握手用 query token
	r.GET("/admin/events", middlewares.WSAuthMiddleware(cfg.JWTSecret, "admin"), hub.HandleWebSocket)
}
