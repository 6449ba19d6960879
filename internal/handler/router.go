package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ishalabs/isha-backend/internal/config"
	chatHandler "github.com/ishalabs/isha-backend/internal/handler/chat"
	systemHandler "github.com/ishalabs/isha-backend/internal/handler/system"
	middlewarePkg "github.com/ishalabs/isha-backend/internal/middleware"
	"github.com/ishalabs/isha-backend/internal/workflow"
	"github.com/ishalabs/isha-backend/pkg/utils"
)

// NewRouter wires HTTP routes to the turn pipeline and probe handlers.
func NewRouter(cfg *config.Config, runner *workflow.Runner, modelConfigured bool) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(cfg.Server.AllowedOrigins))

	systemHandler.New(cfg.Server.Version, cfg.AI.Model, modelConfigured).RegisterRoutes(r)
	chatHandler.New(runner).RegisterRoutes(r)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusNotFound, map[string]string{
			"error":   "Endpoint not found",
			"message": "The requested endpoint does not exist.",
		})
	})

	return r
}
