package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"dressly/internal/adapter/api"
	"dressly/internal/adapter/api/handler"
	apimiddleware "dressly/internal/adapter/api/middleware"
	"dressly/internal/adapter/api/router"
	"dressly/internal/adapter/repository"
	"dressly/internal/domain/service"
	"dressly/internal/infrastructure/auth"
	"dressly/internal/usecase"
	"dressly/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from environment variable (production), falling back
	// to a file path for local development. Without either, ADC applies.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		log.Printf("Using service account from file: %s", serviceAccountPath)
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	wishlistRepo := repository.NewFirestoreWishlistRepository(firestoreClient)

	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	styleService := service.NewGeminiStyleService(cfg.GeminiAPIKey, cfg.GeminiModel)
	catalogService := service.NewHMCatalogService(cfg.RapidAPIKey, cfg.RapidAPIHost, cfg.HMCountry, cfg.HMLang)
	categoryResolver := service.NewCategoryResolver()

	authUseCase := usecase.NewAuthUseCase(userRepo, tokenService)
	quizUseCase := usecase.NewQuizUseCase(styleService, catalogService, categoryResolver)
	wishlistUseCase := usecase.NewWishlistUseCase(wishlistRepo)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(tokenService)

	authHandler := handler.NewAuthHandler(authUseCase)
	quizHandler := handler.NewQuizHandler(quizUseCase)
	wishlistHandler := handler.NewWishlistHandler(wishlistUseCase)
	healthHandler := handler.NewHealthHandler()

	router.Setup(e, authHandler, quizHandler, wishlistHandler, healthHandler, authMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
