package connection

import (
	"context"
	"fmt"
	"os"

	authctl "taskmanager/controller/auth"
	"taskmanager/controller/page"
	taskctl "taskmanager/controller/task"
	"taskmanager/logger"
	"taskmanager/middleware"
	"taskmanager/services"
	"taskmanager/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const tasksCollection = "tasks"

func StartServer() {
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found or failed to load")
	}

	ctx := context.Background()

	authService, err := buildAuthService(ctx)
	if err != nil {
		logger.Error("Failed to initialize auth backend", err)
		os.Exit(1)
	}

	store, err := buildTaskStore(ctx)
	if err != nil {
		logger.Error("Failed to initialize task store", err)
		os.Exit(1)
	}

	sess := session.Watch(authService)
	defer sess.Close()

	authController := authctl.NewController(authService)
	viewModel := taskctl.New(store, sess)
	defer viewModel.Close()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	page.PageController(router, sess, authController, viewModel)
	authctl.AuthController(router, authController)
	taskctl.TaskController(router, viewModel)

	if err := router.Run(); err != nil {
		logger.Error("Server stopped", err)
		os.Exit(1)
	}
}

// Backends default to the hosted Firebase/Firestore pair; "memory" switches
// to the in-process implementations.
func buildAuthService(ctx context.Context) (services.AuthService, error) {
	switch backend := os.Getenv("AUTH_BACKEND"); backend {
	case "", "firebase":
		return services.NewFirebaseAuth(ctx, os.Getenv("FIREBASE_WEB_API_KEY"), nil)
	case "memory":
		return services.NewLocalAuth(), nil
	default:
		return nil, fmt.Errorf("unknown AUTH_BACKEND %q", backend)
	}
}

func buildTaskStore(ctx context.Context) (services.TaskStore, error) {
	switch backend := os.Getenv("STORE_BACKEND"); backend {
	case "", "firestore":
		client, err := FBConnection(ctx)
		if err != nil {
			return nil, err
		}
		return services.NewFirestoreStore(client, tasksCollection), nil
	case "memory":
		return services.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", backend)
	}
}
