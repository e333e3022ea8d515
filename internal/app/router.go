package app

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vaultpass/credgen/internal/handler"
	"github.com/vaultpass/credgen/internal/logger"
	"github.com/vaultpass/credgen/internal/middleware"
	"github.com/vaultpass/credgen/internal/service"
)

const requestTimeout = 10 * time.Second

// Deps is everything the HTTP routes need.
type Deps struct {
	Logger          logger.Logger
	Verifier        middleware.Verifier
	DefaultIdentity string
	Limiter         *middleware.RateLimiter

	Generator   *service.GeneratorService
	History     *service.HistoryService
	Preferences *service.PreferencesService

	Store       handler.Pinger
	StoreDriver string
}

// NewRouter builds the chi router serving the HTTP API.
func NewRouter(d Deps) http.Handler {
	genHandler := handler.NewGeneratorHandler(d.Generator)
	historyHandler := handler.NewHistoryHandler(d.History)
	prefsHandler := handler.NewPreferencesHandler(d.Preferences)
	healthHandler := handler.NewHealthHandler(d.Store, d.StoreDriver)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Log(d.Logger))

	r.Get("/health", healthHandler.HandleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chimw.Timeout(requestTimeout))
		r.Use(middleware.Identity(d.Verifier, d.DefaultIdentity))

		r.Group(func(r chi.Router) {
			if d.Limiter != nil {
				r.Use(d.Limiter.Middleware)
			}
			r.Post("/generate/username", genHandler.HandleUsername)
			r.Post("/generate/password", genHandler.HandlePassword)
			r.Post("/generate/batch", genHandler.HandleBatch)
			r.Post("/generate/pair", genHandler.HandlePair)
		})

		r.Post("/availability", genHandler.HandleAvailability)

		r.Get("/history", historyHandler.HandleList)
		r.Get("/history/{id}", historyHandler.HandleGet)
		r.Get("/history/{id}/qr", historyHandler.HandleQR)
		r.Post("/history/{id}/favorite", historyHandler.HandleToggleFavorite)
		r.Put("/history/{id}/favorite", historyHandler.HandleSetFavorite)
		r.Delete("/history/{id}", historyHandler.HandleDelete)

		r.Get("/preferences", prefsHandler.HandleGet)
		r.Put("/preferences", prefsHandler.HandlePut)
		r.Post("/preferences/autosave", prefsHandler.HandleAutosave)
		r.Put("/preferences/dark-mode", prefsHandler.HandleDarkMode)
	})

	return r
}
