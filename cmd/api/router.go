package api

import (
	"net/http"

	authDelivery "chores-backend/internal/auth/delivery"
	authUsecasePkg "chores-backend/internal/auth/usecase"
	choreDelivery "chores-backend/internal/chore/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUsecase authUsecasePkg.AuthUsecase, authHandler *authDelivery.AuthHandler, choreHandler *choreDelivery.ChoreHandler) {
	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Login is the only route that accepts the external identity token
	r.POST("/login", authHandler.Login)

	// Everything else requires a session token
	authed := r.Group("", authDelivery.AuthMiddleware(authUsecase))
	{
		authed.GET("/me", authHandler.Me)

		authed.GET("/upcoming", choreHandler.GetUpcoming)
		authed.POST("/upcoming/:id", choreHandler.CompleteUpcoming)

		authed.GET("/chores", choreHandler.GetChores)
		authed.POST("/chores", choreHandler.CreateChore)
		authed.GET("/chores/:id", choreHandler.GetChoreByID)
		authed.PUT("/chores/:id", choreHandler.UpdateChore)
		authed.DELETE("/chores/:id", choreHandler.DeleteChore)
	}
}
