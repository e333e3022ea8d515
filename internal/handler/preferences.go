package handler

import (
	"net/http"

	"github.com/vaultpass/credgen/internal/model"
	"github.com/vaultpass/credgen/internal/service"
)

// PreferencesHandler handles HTTP requests for per-identity defaults.
type PreferencesHandler struct {
	service *service.PreferencesService
}

// NewPreferencesHandler creates a new PreferencesHandler.
func NewPreferencesHandler(svc *service.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{service: svc}
}

// HandleGet handles GET /api/v1/preferences requests.
func (h *PreferencesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	owner, ok := identity(w, r)
	if !ok {
		return
	}

	prefs, err := h.service.Get(r.Context(), owner)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, prefs)
}

// HandlePut handles PUT /api/v1/preferences requests. Fields missing from the
// body keep their current values.
func (h *PreferencesHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	owner, prefs, ok := h.merge(w, r)
	if !ok {
		return
	}

	if err := h.service.Save(r.Context(), owner, prefs); err != nil {
		writeServiceError(w, err)
		return
	}

	saved, err := h.service.Get(r.Context(), owner)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, saved)
}

// HandleAutosave handles POST /api/v1/preferences/autosave requests. The
// write happens after the autosave delay; failures are not reported.
func (h *PreferencesHandler) HandleAutosave(w http.ResponseWriter, r *http.Request) {
	owner, prefs, ok := h.merge(w, r)
	if !ok {
		return
	}

	if err := h.service.Autosave(owner, prefs); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "scheduled"})
}

// HandleDarkMode handles PUT /api/v1/preferences/dark-mode requests.
func (h *PreferencesHandler) HandleDarkMode(w http.ResponseWriter, r *http.Request) {
	owner, ok := identity(w, r)
	if !ok {
		return
	}

	var req model.DarkModeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	prefs, err := h.service.SetDarkMode(r.Context(), owner, req.DarkMode)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, prefs)
}

// merge decodes the body over the owner's current preferences.
func (h *PreferencesHandler) merge(w http.ResponseWriter, r *http.Request) (string, model.Preferences, bool) {
	owner, ok := identity(w, r)
	if !ok {
		return "", model.Preferences{}, false
	}

	current, err := h.service.Get(r.Context(), owner)
	if err != nil {
		writeServiceError(w, err)
		return "", model.Preferences{}, false
	}
	prefs := current.Clone()
	if err := decodeJSON(w, r, &prefs); err != nil {
		writeDecodeError(w, err)
		return "", model.Preferences{}, false
	}
	prefs.Owner = owner
	return owner, prefs, true
}
