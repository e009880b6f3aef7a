package server

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/llm"
	"resume-insight/internal/llm/gemini"
	"resume-insight/internal/llm/openai"
	"resume-insight/internal/resumes"
	"resume-insight/internal/shared/config"
	"resume-insight/internal/shared/metrics"
	"resume-insight/internal/shared/server/middleware"
	"resume-insight/internal/shared/server/respond"
	"resume-insight/internal/shared/storage/db"
	localstore "resume-insight/internal/shared/storage/object/local"
	"resume-insight/internal/shared/telemetry"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	store := localstore.New(cfg.LocalStoreDir)

	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			telemetry.Warn("db.fallback_memory", map[string]any{"reason": "connect", "error": err.Error()})
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				telemetry.Warn("db.fallback_memory", map[string]any{"reason": "migrate", "error": err.Error()})
				dbConn.Close()
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var repo resumes.Repo
	if sqlDB != nil {
		repo = &resumes.PGRepo{DB: sqlDB}
	} else {
		repo = resumes.NewMemoryRepo()
	}

	svc := &resumes.Service{
		Repo:  repo,
		LLM:   buildLLMClient(cfg),
		Store: store,
	}
	handler := resumes.NewHandler(svc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	handler.RegisterRoutes(api)
	r.GET("/metrics", metrics.Handler())

	return r
}

func buildLLMClient(cfg config.Config) llm.Client {
	switch cfg.LLMProvider {
	case "openai":
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
		if err != nil {
			telemetry.Warn("llm.unavailable", map[string]any{"provider": "openai", "error": err.Error()})
			return llm.PlaceholderClient{}
		}
		return client
	default:
		client, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.LLMModel)
		if err != nil {
			telemetry.Warn("llm.unavailable", map[string]any{"provider": "gemini", "error": err.Error()})
			return llm.PlaceholderClient{}
		}
		return client
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
