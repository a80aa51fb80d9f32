package router

import (
	"time"

	"focal/config"
	"focal/internal/domain"
	"focal/internal/handler"
	"focal/internal/middleware"
	"focal/internal/repository"
	"focal/internal/service"
	"focal/internal/ws"
	"focal/pkg/cloudinary"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, time.Minute)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	photographerRepo := repository.NewPhotographerRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	refundRepo := repository.NewRefundRepository(db)
	earningRepo := repository.NewEarningRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	conversationRepo := repository.NewConversationRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	adminLogRepo := repository.NewAdminLogRepository(db)

	// Hubs
	hub := ws.NewHub()
	chatHub := ws.NewChatHub()

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)
	notifSvc := service.NewNotificationService(notificationRepo, hub)
	bookingSvc := service.NewBookingService(&cfg.Platform, bookingRepo, photographerRepo, paymentRepo, refundRepo, earningRepo, availabilityRepo, notifSvc)
	reviewSvc := service.NewReviewService(reviewRepo, photographerRepo, bookingRepo, notifSvc)
	paymentSvc := service.NewPaymentService(paymentRepo, refundRepo, bookingRepo, notifSvc)
	messageSvc := service.NewMessageService(conversationRepo, notifSvc)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	googleOAuthHandler := handler.NewGoogleOAuthHandler(cfg, authSvc)
	meHandler := handler.NewMeHandler(userRepo)
	photographerHandler := handler.NewPhotographerHandler(photographerRepo, mediaRepo, earningRepo)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityRepo, photographerRepo)
	bookingHandler := handler.NewBookingHandler(bookingSvc, bookingRepo, photographerRepo)
	paymentHandler := handler.NewPaymentHandler(paymentSvc, paymentRepo, refundRepo, bookingRepo, photographerRepo, adminLogRepo)
	reviewHandler := handler.NewReviewHandler(reviewSvc, reviewRepo)
	messageHandler := handler.NewMessageHandler(messageSvc)
	mediaHandler := handler.NewMediaHandler(mediaRepo, photographerRepo, bookingRepo, cloud)
	notificationHandler := handler.NewNotificationHandler(notificationRepo)
	adminHandler := handler.NewAdminHandler(userRepo, bookingRepo, adminLogRepo)

	authMw := middleware.AuthRequired(&cfg.JWT)
	activeMw := middleware.ActiveAccountRequired(userRepo)
	photographerOnly := middleware.RequireRole(domain.RolePhotographer)
	customerOnly := middleware.RequireRole(domain.RoleCustomer)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/logout", authMw, authHandler.Logout)
			authGroup.PATCH("/change-password", authMw, authHandler.ChangePassword)
			authGroup.POST("/forgot-password", authHandler.ForgotPassword)
			authGroup.POST("/reset-password", authHandler.ResetPassword)
			authGroup.GET("/google", googleOAuthHandler.Redirect)
			authGroup.GET("/google/callback", googleOAuthHandler.Callback)
		}

		// Public directory
		api.GET("/photographers", photographerHandler.Search)
		api.GET("/photographers/:id", photographerHandler.Get)
		api.GET("/photographers/:id/portfolio", photographerHandler.Portfolio)
		api.GET("/photographers/:id/reviews", reviewHandler.ListForPhotographer)
		api.GET("/photographers/:id/availability", availabilityHandler.ListForPhotographer)

		// Gateway callbacks (no auth; rate limited globally)
		api.POST("/webhooks/payment-gateway", paymentHandler.GatewayWebhook)

		me := api.Group("/me")
		me.Use(authMw, activeMw)
		{
			me.GET("/profile", meHandler.Get)
			me.PATCH("/profile", meHandler.Update)
			me.GET("/notifications", notificationHandler.List)
			me.PUT("/notifications/:id/read", notificationHandler.MarkRead)
			me.PUT("/notifications/read-all", notificationHandler.MarkAllRead)
			me.GET("/photographer", photographerOnly, photographerHandler.GetMine)
			me.PUT("/photographer", photographerOnly, photographerHandler.UpsertMine)
			me.GET("/earnings", photographerOnly, photographerHandler.Earnings)
			me.POST("/availability", photographerOnly, availabilityHandler.Create)
			me.DELETE("/availability/:id", photographerOnly, availabilityHandler.Delete)
			me.POST("/blocked-dates", photographerOnly, availabilityHandler.BlockDate)
			me.DELETE("/blocked-dates/:id", photographerOnly, availabilityHandler.UnblockDate)
		}

		bookings := api.Group("/bookings")
		bookings.Use(authMw, activeMw)
		{
			bookings.POST("", customerOnly, bookingHandler.Create)
			bookings.GET("", bookingHandler.List)
			bookings.GET("/:id", bookingHandler.Get)
			bookings.PATCH("/:id", customerOnly, bookingHandler.Update)
			bookings.POST("/:id/confirm", photographerOnly, bookingHandler.Confirm)
			bookings.POST("/:id/decline", photographerOnly, bookingHandler.Decline)
			bookings.POST("/:id/start", photographerOnly, bookingHandler.Start)
			bookings.POST("/:id/complete", photographerOnly, bookingHandler.Complete)
			bookings.POST("/:id/deliver", photographerOnly, bookingHandler.Deliver)
			bookings.POST("/:id/cancel", bookingHandler.Cancel)
			bookings.POST("/:id/refund-request", customerOnly, bookingHandler.RequestRefund)
			bookings.GET("/:id/payment", paymentHandler.GetForBooking)
			bookings.GET("/:id/media", mediaHandler.ListForBooking)
		}

		api.POST("/reviews", authMw, activeMw, customerOnly, reviewHandler.Create)
		api.DELETE("/reviews/:id", authMw, activeMw, reviewHandler.Delete)

		api.POST("/media", authMw, activeMw, photographerOnly, mediaHandler.Upload)
		api.DELETE("/media/:id", authMw, activeMw, mediaHandler.Delete)

		conversations := api.Group("/conversations")
		conversations.Use(authMw, activeMw)
		{
			conversations.POST("", messageHandler.Start)
			conversations.GET("", messageHandler.List)
			conversations.GET("/:id/messages", messageHandler.Messages)
			conversations.POST("/:id/messages", messageHandler.Send)
			conversations.POST("/:id/read", messageHandler.MarkRead)
		}

		// WebSocket endpoints authenticate via ?token= since browsers cannot
		// set headers on the upgrade request.
		api.GET("/ws/notifications", ws.UpgradeNotifyWS(&cfg.JWT, hub))
		api.GET("/ws/conversations/:id", ws.UpgradeChatWS(&cfg.JWT, chatHub, messageSvc, messageSvc))

		admin := api.Group("/admin")
		admin.Use(authMw, activeMw, middleware.AdminRequired())
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.POST("/users/:id/suspend", adminHandler.SuspendUser)
			admin.POST("/users/:id/activate", adminHandler.ActivateUser)
			admin.GET("/bookings", adminHandler.ListBookings)
			admin.GET("/refunds", paymentHandler.ListRefunds)
			admin.POST("/refunds/:id/approve", paymentHandler.ApproveRefund)
			admin.POST("/refunds/:id/reject", paymentHandler.RejectRefund)
			admin.POST("/refunds/:id/complete", paymentHandler.CompleteRefund)
			admin.PATCH("/reviews/:id/visibility", reviewHandler.SetVisibility)
			admin.GET("/logs", adminHandler.ListLogs)
		}
	}

	return r
}
