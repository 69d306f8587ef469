package server

import (
	"log/slog"
	"os"
	"time"

	"kmis/app/api"
	"kmis/app/middleware"
	"kmis/store"
	"kmis/store/seed"
	"kmis/types"

	"github.com/gofiber/fiber/v2"
)

var config = fiber.Config{
	ErrorHandler: api.ErrorHandler,
}

// offlineAnswerDelay simulates analysis time on the canned path so the
// chat surface feels the same with and without a configured gateway.
const offlineAnswerDelay = 800 * time.Millisecond

type Server struct {
	listenAddr string
	logger     *slog.Logger
	app        *fiber.App
}

func NewServer(addr string) *Server {
	return &Server{
		listenAddr: addr,
		logger:     slog.Default(),
	}
}

func (s *Server) Stop() {
	if s.app != nil {
		if err := s.app.Shutdown(); err != nil {
			s.logger.Error("error shutting down server", "error", err.Error())
		}
	}
	s.logger.Info("server stopped")
}

func (s *Server) Run() {
	statePath := getEnv("STATE_FILE", "kmis_state.json")
	portalStore := store.NewFileStore(statePath, seed.DefaultState(aiSettingsFromEnv()))
	s.logger.Info("state loaded", "path", statePath, "documents", len(portalStore.Documents()))

	var (
		app             = fiber.New(config)
		checkHandler    = api.NewCheckHandler()
		chatHandler     = api.NewChatHandler(portalStore, seed.Answers())
		documentHandler = api.NewDocumentHandler(portalStore)
		taxonomyHandler = api.NewTaxonomyHandler(portalStore)
		evidenceHandler = api.NewEvidenceHandler(portalStore)
		eventHandler    = api.NewEventHandler(portalStore)
		userHandler     = api.NewUserHandler(portalStore)
		settingsHandler = api.NewSettingsHandler(portalStore)
		check           = app.Group("/check")
		apiv1           = app.Group("/api/v1")
	)
	chatHandler.OfflineDelay = offlineAnswerDelay

	app.Use(middleware.RequestID())

	check.Get("/healthy", checkHandler.HandleHealthy)

	apiv1.Post("/ask", chatHandler.HandleAsk)
	apiv1.Get("/sessions", chatHandler.HandleListSessions)
	apiv1.Get("/sessions/:id", chatHandler.HandleGetSession)
	apiv1.Delete("/sessions/:id", chatHandler.HandleDeleteSession)

	apiv1.Get("/documents", documentHandler.HandleList)
	apiv1.Get("/documents/:id", documentHandler.HandleGet)
	apiv1.Post("/documents", documentHandler.HandleCreate)
	apiv1.Patch("/documents/:id", documentHandler.HandleUpdate)
	apiv1.Post("/documents/:id/status", documentHandler.HandleSetStatus)

	apiv1.Get("/taxonomy", taxonomyHandler.HandleGet)
	apiv1.Post("/taxonomy", taxonomyHandler.HandleAddValue)
	apiv1.Delete("/taxonomy", taxonomyHandler.HandleRemoveValue)
	apiv1.Patch("/taxonomy", taxonomyHandler.HandleRename)

	apiv1.Get("/evidence", evidenceHandler.HandleList)
	apiv1.Post("/evidence", evidenceHandler.HandleCreate)
	apiv1.Delete("/evidence/:id", evidenceHandler.HandleDelete)

	apiv1.Get("/events", eventHandler.HandleList)

	apiv1.Get("/users", userHandler.HandleList)
	apiv1.Get("/users/current", userHandler.HandleCurrent)
	apiv1.Post("/auth/login", userHandler.HandleLogin)
	apiv1.Post("/auth/logout", userHandler.HandleLogout)

	apiv1.Get("/settings/ai", settingsHandler.HandleGet)
	apiv1.Patch("/settings/ai", settingsHandler.HandleUpdate)

	s.app = app
	if err := app.Listen(s.listenAddr); err != nil {
		s.logger.Error("error to start server", "error", err.Error())
	}
}

// aiSettingsFromEnv seeds the gateway settings for state blobs that
// predate them. A blob that already carries aiSettings wins.
func aiSettingsFromEnv() types.AISettings {
	return types.AISettings{
		Endpoint: getEnv("AI_ENDPOINT", "https://api.openai.com/v1/chat/completions"),
		APIKey:   os.Getenv("AI_API_KEY"),
		Model:    getEnv("AI_MODEL", "gpt-4o-mini"),
		SystemPrompt: getEnv("AI_SYSTEM_PROMPT",
			"You are an evidence assistant for a forest programme knowledge portal. "+
				"Answer only from the provided context documents and cite every claim."),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
