package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/vaultpass/credgen/internal/model"
	"github.com/vaultpass/credgen/internal/service"
)

const (
	defaultQRSize = 256
	minQRSize     = 64
	maxQRSize     = 1024
)

// HistoryHandler handles HTTP requests for generated-credential history.
type HistoryHandler struct {
	service *service.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(svc *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: svc}
}

// HandleList handles GET /api/v1/history?type=&limit=&favorites= requests.
func (h *HistoryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	owner, ok := identity(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	limit := 0
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("limit must be an integer"))
			return
		}
		limit = n
	}
	favorites := false
	if v := q.Get("favorites"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse("favorites must be a boolean"))
			return
		}
		favorites = b
	}

	resp, err := h.service.List(r.Context(), owner, model.Kind(q.Get("type")), limit, favorites)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /api/v1/history/{id} requests.
func (h *HistoryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	owner, ok := identity(w, r)
	if !ok {
		return
	}

	c, err := h.service.Get(r.Context(), owner, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, c.Response())
}

// HandleQR handles GET /api/v1/history/{id}/qr requests, rendering the stored
// value as a PNG QR code. The optional size query sets the edge in pixels.
func (h *HistoryHandler) HandleQR(w http.ResponseWriter, r *http.Request) {
	owner, ok := identity(w, r)
	if !ok {
		return
	}

	size := defaultQRSize
	if v := r.URL.Query().Get("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < minQRSize || n > maxQRSize {
			writeJSON(w, http.StatusBadRequest, errorResponse("size must be an integer between 64 and 1024"))
			return
		}
		size = n
	}

	c, err := h.service.Get(r.Context(), owner, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	png, err := qrcode.Encode(c.Value, qrcode.Medium, size)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// HandleToggleFavorite handles POST /api/v1/history/{id}/favorite requests.
func (h *HistoryHandler) HandleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	owner, ok := identity(w, r)
	if !ok {
		return
	}

	resp, err := h.service.ToggleFavorite(r.Context(), owner, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleSetFavorite handles PUT /api/v1/history/{id}/favorite requests.
func (h *HistoryHandler) HandleSetFavorite(w http.ResponseWriter, r *http.Request) {
	owner, ok := identity(w, r)
	if !ok {
		return
	}

	var req model.FavoriteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}
	if req.Favorite == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("favorite is required"))
		return
	}

	resp, err := h.service.SetFavorite(r.Context(), owner, chi.URLParam(r, "id"), *req.Favorite)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /api/v1/history/{id} requests.
func (h *HistoryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	owner, ok := identity(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), owner, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
