package system

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ishalabs/isha-backend/pkg/utils"
)

// Handler serves the liveness, readiness, and configuration-status probes.
// None of these touch the turn pipeline.
type Handler struct {
	version         string
	modelName       string
	modelConfigured bool
}

// New creates the system handler. modelConfigured reflects whether the
// completion client was actually constructed, not just whether credentials
// were present.
func New(version, modelName string, modelConfigured bool) *Handler {
	return &Handler{
		version:         version,
		modelName:       modelName,
		modelConfigured: modelConfigured,
	}
}

// RegisterRoutes mounts the probe endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleHome)
	r.Get("/health", h.handleHealth)
	r.Get("/config", h.handleConfig)
}

func (h *Handler) handleHome(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"message":          "Isha AI Assistant Backend is running!",
		"status":           "healthy",
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
		"model_configured": h.modelConfigured,
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	modelStatus := "not_configured"
	if h.modelConfigured {
		modelStatus = "configured"
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"services": map[string]string{
			"http":             "running",
			"completion_model": modelStatus,
			"workflow":         "initialized",
		},
		"version": h.version,
	})
}

// handleConfig reports configuration status. Credentials never appear here.
func (h *Handler) handleConfig(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"model_configured": h.modelConfigured,
		"model":            h.modelName,
		"features": map[string]bool{
			"voice_recognition":      true,
			"conversation_history":   true,
			"personalized_responses": true,
		},
	})
}
