package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"go-travel-identity/internal/middleware"
	"go-travel-identity/internal/model"
	"go-travel-identity/internal/service"
	"go-travel-identity/pkg/apierror"
)

const adminSecretHeader = "X-Admin-Secret"

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.service.Register(r.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, model.NewAuthResponse(result))
}

func (h *AuthHandler) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, err)
		return
	}

	suppliedSecret := strings.TrimSpace(r.Header.Get(adminSecretHeader))
	result, err := h.service.RegisterAdmin(r.Context(), payload.Email, payload.Password, suppliedSecret)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, model.NewAuthResponse(result))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, model.NewAuthResponse(result))
}

// Validate always answers 200 with a boolean; a missing or malformed header
// is simply an invalid token, same as a tampered or expired one.
func (h *AuthHandler) Validate(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerToken(r)
	valid := token != "" && h.service.Validate(token)
	writeSuccess(w, http.StatusOK, model.ValidateResponse{Valid: valid})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerToken(r)
	if token == "" {
		writeError(w, apierror.New("BAD_REQUEST", "bearer token is required", "Authorization", http.StatusBadRequest))
		return
	}

	result, err := h.service.Refresh(r.Context(), token)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, model.NewAuthResponse(result))
}
