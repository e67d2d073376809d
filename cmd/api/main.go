package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"replyrush/internal/adapter/api"
	"replyrush/internal/adapter/api/handler"
	apimiddleware "replyrush/internal/adapter/api/middleware"
	"replyrush/internal/adapter/api/router"
	"replyrush/internal/adapter/repository"
	"replyrush/internal/infrastructure/firebase"
	"replyrush/internal/infrastructure/genai"
	"replyrush/internal/infrastructure/notify"
	"replyrush/internal/usecase"
	"replyrush/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from environment variable (production) or file path
	// (local development); application default credentials otherwise.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	chatModel, err := genai.NewChatModel(ctx, cfg)
	if err != nil {
		// The assistant degrades to its fallback reply without a model, so
		// a misconfigured backend must not keep the dashboard down.
		log.Printf("Failed to initialize chat model, assistant will answer with fallback: %v", err)
		chatModel = nil
	}

	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	faqRepo := repository.NewFirestoreFAQRepository(firestoreClient)
	businessRepo := repository.NewFirestoreBusinessRepository(firestoreClient)
	orderRepo := repository.NewFirestoreOrderRepository(firestoreClient)
	conversationRepo := repository.NewFirestoreConversationRepository(firestoreClient)
	userRepo := repository.NewFirestoreUserRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	hub := notify.NewHub()
	hub.Start(ctx)

	catalogUseCase := usecase.NewCatalogUseCase(productRepo, faqRepo)
	businessUseCase := usecase.NewBusinessUseCase(businessRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, businessRepo, hub)
	assistantUseCase := usecase.NewAssistantUseCase(chatModel)
	conversationUseCase := usecase.NewConversationUseCase(
		conversationRepo,
		productRepo,
		faqRepo,
		businessRepo,
		assistantUseCase,
		orderUseCase,
		hub,
	)
	dashboardUseCase := usecase.NewDashboardUseCase(orderRepo, conversationRepo, productRepo)
	userUseCase := usecase.NewUserUseCase(userRepo, firebaseAuthClient)
	seedUseCase := usecase.NewSeedUseCase(businessRepo, productRepo, faqRepo)

	if err := seedUseCase.EnsureDefaults(ctx); err != nil {
		log.Fatalf("Failed to seed default storefront: %v", err)
	}

	handler.Setup(
		catalogUseCase,
		businessUseCase,
		orderUseCase,
		conversationUseCase,
		dashboardUseCase,
		userUseCase,
		cfg.SimulatorWhatsapp,
	)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	streamHandler := handler.NewStreamHandler(hub, authClient)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Setup(e, authMiddleware, streamHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
