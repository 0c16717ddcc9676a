package main

import (
	"log"

	api "chores-backend/cmd/api"
	authdomain "chores-backend/internal/auth/domain"
	authRepo "chores-backend/internal/auth/repository"
	authUsecase "chores-backend/internal/auth/usecase"
	choredomain "chores-backend/internal/chore/domain"
	choreRepo "chores-backend/internal/chore/repository"
	choreUsecase "chores-backend/internal/chore/usecase"
	"chores-backend/pkg/config"
	"chores-backend/pkg/database"
	"chores-backend/pkg/identity"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.NewConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &choredomain.ChoreDefinition{}, &choredomain.ChoreInstance{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepo := authRepo.NewUserRepository(db)
	definitionRepo := choreRepo.NewGormDefinitionRepository(db)
	instanceRepo := choreRepo.NewGormInstanceRepository(db)

	// External identity provider client
	identityClient := identity.NewClient(cfg.IdentityServer)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, identityClient, cfg)
	choreUsecaseInstance := choreUsecase.NewChoreUsecase(definitionRepo, instanceRepo)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, choreUsecaseInstance, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
