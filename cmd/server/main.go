package main

import (
	"context"
	"log"
	"os"

	"lexiforge-backend/handlers"
	"lexiforge-backend/repository"
	"lexiforge-backend/service"
	"lexiforge-backend/storage"
	"lexiforge-backend/templates"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

func main() {
	// Load .env file from project root (relative to cmd/server/)
	// Try current directory first, then project root
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	// Initialize template registry
	registry, err := templates.NewRegistry()
	if err != nil {
		log.Fatal("Failed to initialize template registry:", err)
	}
	log.Printf("Template registry loaded with %d templates", len(registry.List()))

	// Initialize storage for export artifacts
	fileStorage, err := storage.NewStorageFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	log.Println("Storage initialized")

	// Initialize repositories
	sessionRepo := repository.NewSessionRepository()
	auditRepo := repository.NewAuditRepository()
	versionRepo := repository.NewVersionRepository()
	fileRepo := repository.NewFileRepository()

	// Initialize Gemini client
	geminiClient, err := initGemini()
	if err != nil {
		log.Fatal("Failed to initialize Gemini:", err)
	}

	// Initialize services
	resolver := service.NewResolverService()

	sessionService := service.NewSessionService(
		service.WithSessionRepository(sessionRepo),
		service.WithAuditRepository(auditRepo),
		service.WithVersionRepository(versionRepo),
		service.WithTemplateRegistry(registry),
	)

	exportService := service.NewExportService(
		service.ExportWithFileRepository(fileRepo),
		service.ExportWithStorage(fileStorage),
		service.ExportWithResolver(resolver),
		service.ExportWithTemplateRegistry(registry),
	)

	explainService := service.NewExplainService(
		service.ExplainWithGeminiClient(geminiClient),
	)

	// Initialize handlers
	sessionHandler := handlers.NewSessionHandler(sessionService)
	documentHandler := handlers.NewDocumentHandler(sessionService, exportService, explainService, resolver, registry)
	fileHandler := handlers.NewFileHandler(fileRepo, fileStorage)

	// Setup Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Session endpoints
		api.POST("/sessions", sessionHandler.CreateSession)
		api.GET("/sessions/:id", sessionHandler.GetSession)
		api.PUT("/sessions/:id/fields", sessionHandler.EditField)
		api.PUT("/sessions/:id/doctype", sessionHandler.SwitchDocType)
		api.POST("/sessions/:id/role/toggle", sessionHandler.ToggleRole)
		api.POST("/sessions/:id/final/toggle", sessionHandler.ToggleFinal)

		// Version endpoints
		api.POST("/sessions/:id/versions", sessionHandler.SaveVersion)
		api.GET("/sessions/:id/versions", sessionHandler.ListVersions)
		api.POST("/sessions/:id/versions/:versionId/restore", sessionHandler.RestoreVersion)

		// Audit endpoints
		api.GET("/sessions/:id/audit", sessionHandler.ListAuditEntries)

		// Document endpoints
		api.GET("/sessions/:id/preview", documentHandler.Preview)
		api.POST("/sessions/:id/export", documentHandler.Export)
		api.POST("/explain", documentHandler.ExplainClause)

		// Template endpoints
		api.GET("/templates", documentHandler.ListTemplates)
		api.GET("/templates/:id", documentHandler.GetTemplate)

		// File endpoints
		api.GET("/sessions/:id/files", fileHandler.ListSessionFiles)
		api.GET("/files/:id", fileHandler.GetFile)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func initGemini() (*genai.Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	log.Println("Gemini client initialized")
	return client, nil
}
