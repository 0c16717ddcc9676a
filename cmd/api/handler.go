package api

import (
	authDelivery "chores-backend/internal/auth/delivery"
	authUsecasePkg "chores-backend/internal/auth/usecase"
	choreDelivery "chores-backend/internal/chore/delivery"
	choreUsecasePkg "chores-backend/internal/chore/usecase"
	"chores-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase  authUsecasePkg.AuthUsecase
	authHandler  *authDelivery.AuthHandler
	choreHandler *choreDelivery.ChoreHandler
	config       *config.Config
}

func NewHandler(authUc authUsecasePkg.AuthUsecase, choreUc choreUsecasePkg.ChoreUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:  authUc,
		authHandler:  authDelivery.NewAuthHandler(authUc),
		choreHandler: choreDelivery.NewChoreHandler(choreUc),
		config:       cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.authHandler, h.choreHandler)

	return r.Run(addr)
}
