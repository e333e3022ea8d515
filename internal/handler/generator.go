package handler

import (
	"net/http"

	"github.com/vaultpass/credgen/internal/model"
	"github.com/vaultpass/credgen/internal/service"
)

// GeneratorHandler handles HTTP requests for credential generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleUsername handles POST /api/v1/generate/username requests. Fields
// missing from the body keep the built-in defaults.
func (h *GeneratorHandler) HandleUsername(w http.ResponseWriter, r *http.Request) {
	owner, ok := identity(w, r)
	if !ok {
		return
	}

	req := model.GenerateUsernameRequest{UsernameSettings: model.DefaultUsernameSettings()}
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	resp, err := h.service.GenerateUsername(r.Context(), owner, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, generatedStatus(resp.ID), resp)
}

// HandlePassword handles POST /api/v1/generate/password requests.
func (h *GeneratorHandler) HandlePassword(w http.ResponseWriter, r *http.Request) {
	owner, ok := identity(w, r)
	if !ok {
		return
	}

	req := model.GeneratePasswordRequest{PasswordSettings: model.DefaultPasswordSettings()}
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	resp, err := h.service.GeneratePassword(r.Context(), owner, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, generatedStatus(resp.ID), resp)
}

// HandleBatch handles POST /api/v1/generate/batch requests.
func (h *GeneratorHandler) HandleBatch(w http.ResponseWriter, r *http.Request) {
	var req model.BatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	resp, err := h.service.GenerateBatch(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandlePair handles POST /api/v1/generate/pair requests.
func (h *GeneratorHandler) HandlePair(w http.ResponseWriter, r *http.Request) {
	owner, ok := identity(w, r)
	if !ok {
		return
	}

	resp, err := h.service.GeneratePair(r.Context(), owner)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleAvailability handles POST /api/v1/availability requests.
func (h *GeneratorHandler) HandleAvailability(w http.ResponseWriter, r *http.Request) {
	var req model.AvailabilityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	resp, err := h.service.CheckAvailability(req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// generatedStatus is 201 when the value was recorded, 200 otherwise.
func generatedStatus(id string) int {
	if id != "" {
		return http.StatusCreated
	}
	return http.StatusOK
}
