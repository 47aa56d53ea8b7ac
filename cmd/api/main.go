package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"wedding-invite/internal/adapter/api"
	"wedding-invite/internal/adapter/api/handler"
	apimiddleware "wedding-invite/internal/adapter/api/middleware"
	"wedding-invite/internal/adapter/api/router"
	"wedding-invite/internal/adapter/repository"
	"wedding-invite/internal/infrastructure/storage"
	"wedding-invite/internal/infrastructure/websocket"
	"wedding-invite/internal/usecase"
	"wedding-invite/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Service account from environment variable (production) or file path
	// (local development).
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

	mediaStorage, err := storage.NewMediaStorageClient(ctx, cfg.StorageBucket, cfg.GalleryPrefix, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer mediaStorage.Close()

	wishRepo := repository.NewFirestoreWishRepository(firestoreClient)
	rsvpRepo := repository.NewFirestoreRsvpRepository(firestoreClient)

	guestbookUseCase := usecase.NewGuestbookUseCase(wishRepo, rsvpRepo)
	hostUseCase := usecase.NewHostUseCase(rsvpRepo)
	invitationUseCase, err := usecase.NewInvitationUseCase(cfg.InvitationPath, mediaStorage)
	if err != nil {
		log.Fatalf("Failed to load invitation content: %v", err)
	}

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	hostMiddleware := apimiddleware.NewHostMiddleware(authClient, cfg.HostUIDs)

	invitationHandler := handler.NewInvitationHandler(invitationUseCase)
	boardHandler := handler.NewBoardHandler(guestbookUseCase)
	hostHandler := handler.NewHostHandler(hostUseCase, invitationUseCase)
	wsHandler := handler.NewWebSocketHandler(wsManager, guestbookUseCase, wishRepo)

	router.Setup(e, invitationHandler, boardHandler)
	router.SetupWebSocketRouter(e, wsHandler)
	router.SetupHostRouter(e, hostHandler, hostMiddleware)

	// Serve the built single-page site
	e.Static("/", "web/dist")

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
