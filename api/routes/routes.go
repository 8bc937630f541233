package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/stakedraw/stakedraw-backend/internal/config"
	"github.com/stakedraw/stakedraw-backend/internal/handlers"
	"github.com/stakedraw/stakedraw-backend/internal/middleware"
)

// HandlerDependencies carries the handlers the router wires up
type HandlerDependencies struct {
	AuthHandler     *handlers.AuthHandler
	LotteryHandler  *handlers.LotteryHandler
	TreasuryHandler *handlers.TreasuryHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	// Add middleware
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/login", deps.AuthHandler.Login)
		}

		// Read-only pool state
		public.GET("/pools", deps.LotteryHandler.ListPools)
		public.GET("/pools/:tier", deps.LotteryHandler.GetPool)
		public.GET("/pools/:tier/participants", deps.LotteryHandler.GetParticipants)
		public.GET("/pools/:tier/stakes/:address", deps.LotteryHandler.GetStake)
		public.GET("/treasury/balance", deps.TreasuryHandler.Balance)
	}

	// Protected routes: every state-changing operation needs an authenticated caller
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		pools := protected.Group("/pools")
		{
			pools.POST("", deps.LotteryHandler.CreatePool)
			pools.PUT("/:tier", deps.LotteryHandler.UpdatePool)
			pools.POST("/:tier/cancel", deps.LotteryHandler.CancelPool)
			pools.POST("/:tier/enter", deps.LotteryHandler.Enter)
			pools.POST("/:tier/close", deps.LotteryHandler.Close)
		}

		treasury := protected.Group("/treasury")
		{
			treasury.POST("/fees", deps.TreasuryHandler.CollectFee)
			treasury.POST("/withdraw", deps.TreasuryHandler.Withdraw)
		}
	}

	return router
}
