package handler

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 2 * time.Second

// Pinger is implemented by stores that hold a network connection.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness and, when it has one, store reachability.
type HealthHandler struct {
	store  Pinger
	driver string
}

// NewHealthHandler creates a HealthHandler. store may be nil.
func NewHealthHandler(store Pinger, driver string) *HealthHandler {
	return &HealthHandler{store: store, driver: driver}
}

// HandleHealth handles GET /health requests.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if h.store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()
		if err := h.store.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
				"store":  h.driver,
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "store": h.driver})
}
