package handlers

import (
	"encoding/json"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"navjot.dev/internal/config"
	"navjot.dev/internal/contact"
	"navjot.dev/internal/middleware"
	"navjot.dev/internal/services"
	"navjot.dev/web"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, store contact.Store, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	// Initialize services
	projectService := services.NewProjectService(cfg.Portfolio.Projects)
	contactService := services.NewContactService(store, logger)

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService)
	pageHandler := NewPageHandler(cfg.Portfolio, contactService, logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/portfolio", pageHandler.GetPortfolio)
		r.Post("/contact", pageHandler.SubmitContactJSON)

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{slug}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Embedded stylesheets and scripts
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServer(http.FS(web.Static()))))

	// Images and the CV live on disk
	public := http.FileServer(http.Dir(cfg.PublicDir))
	r.Handle("/images/*", public)
	if cv := cfg.Portfolio.Profile.CVPath; strings.HasPrefix(cv, "/") && cv != "/" {
		file := filepath.Join(cfg.PublicDir, filepath.FromSlash(path.Clean(cv)))
		r.Get(cv, func(w http.ResponseWriter, r *http.Request) {
			if name := cfg.Portfolio.Profile.CVFileName; name != "" {
				w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
			}
			http.ServeFile(w, r, file)
		})
	}

	// Pages
	r.Get("/", pageHandler.Home)
	r.Post("/contact", pageHandler.SubmitContact)

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Error("Error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
