package http

import (
	"github.com/gin-gonic/gin"
	"github.com/movemate/movemate-backend/internal/delivery/http/handler"
	"github.com/movemate/movemate-backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler       *handler.AuthHandler
	onboardingHandler *handler.OnboardingHandler
	dashboardHandler  *handler.DashboardHandler
	coachHandler      *handler.CoachHandler
	communityHandler  *handler.CommunityHandler
	messageHandler    *handler.MessageHandler
	profileHandler    *handler.ProfileHandler
	authMiddleware    *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	onboardingHandler *handler.OnboardingHandler,
	dashboardHandler *handler.DashboardHandler,
	coachHandler *handler.CoachHandler,
	communityHandler *handler.CommunityHandler,
	messageHandler *handler.MessageHandler,
	profileHandler *handler.ProfileHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:       authHandler,
		onboardingHandler: onboardingHandler,
		dashboardHandler:  dashboardHandler,
		coachHandler:      coachHandler,
		communityHandler:  communityHandler,
		messageHandler:    messageHandler,
		profileHandler:    profileHandler,
		authMiddleware:    authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", r.authHandler.SignUp)
			auth.POST("/signin", r.authHandler.SignIn)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Onboarding routes
			onboarding := protected.Group("/onboarding")
			{
				onboarding.POST("", r.onboardingHandler.Submit)
				onboarding.GET("/status", r.onboardingHandler.Status)
			}

			// Dashboard routes
			dashboard := protected.Group("/dashboard")
			{
				dashboard.GET("/stats", r.dashboardHandler.Stats)
				dashboard.GET("/leaderboard", r.dashboardHandler.Leaderboard)
			}

			// Coach routes
			coach := protected.Group("/coach")
			{
				coach.GET("/history", r.coachHandler.History)
				coach.POST("/ask", r.coachHandler.Ask)
			}

			// Community routes
			communities := protected.Group("/communities")
			{
				communities.GET("", r.communityHandler.List)
				communities.POST("", r.communityHandler.Create)
				communities.GET("/:id", r.communityHandler.Detail)
				communities.POST("/:id/join", r.communityHandler.Join)
				communities.POST("/:id/posts", r.communityHandler.CreatePost)
			}

			// Skill exchange routes
			exchanges := protected.Group("/skill-exchanges")
			{
				exchanges.GET("", r.communityHandler.ListSkillExchanges)
				exchanges.POST("", r.communityHandler.CreateSkillExchange)
			}

			// Message routes
			messages := protected.Group("/messages")
			{
				messages.GET("", r.messageHandler.Partners)
				messages.POST("", r.messageHandler.Send)
				messages.GET("/:partner_id", r.messageHandler.Chat)
			}

			// Profile routes
			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetOverview)
				profile.PUT("/me", r.profileHandler.Update)
				profile.PUT("/personal-info", r.profileHandler.UpdatePersonalInfo)
				profile.PUT("/language", r.profileHandler.UpdateLanguage)
			}
		}
	}

	return router
}
