package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"go-travel-identity/internal/middleware"
	"go-travel-identity/internal/model"
	"go-travel-identity/internal/service"
	"go-travel-identity/pkg/apierror"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, err)
		return
	}

	role := model.RoleUser
	if payload.Role != "" {
		parsed, err := model.ParseRole(payload.Role)
		if err != nil {
			writeError(w, err)
			return
		}
		role = parsed
	}

	account, err := h.service.CreateUser(r.Context(), payload.Email, payload.Password, role)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, model.NewUserResponse(account))
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDFromPath(w, r)
	if !ok {
		return
	}

	account, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, model.NewUserResponse(account))
}

func (h *UserHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	id, ok := userIDFromPath(w, r)
	if !ok {
		return
	}
	if !allowSelfOrAdmin(w, r, id) {
		return
	}

	var payload model.PreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, err)
		return
	}

	prefs, err := h.service.UpdatePreferences(r.Context(), id, model.PreferenceUpdate{
		TravelStyle:      payload.TravelStyle,
		ExplorationStyle: payload.ExplorationStyle,
		FoodPreference:   payload.FoodPreference,
		TravelScope:      payload.TravelScope,
		Budget:           payload.Budget,
		Activities:       payload.PreferredActivities,
		Destinations:     payload.PreferredDestinations,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, model.NewPreferenceResponse(prefs))
}

func (h *UserHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDFromPath(w, r)
	if !ok {
		return
	}
	if !allowSelfOrAdmin(w, r, id) {
		return
	}

	prefs, err := h.service.GetPreferences(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, model.NewPreferenceResponse(prefs))
}

func userIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid user id", chi.URLParam(r, "id"), http.StatusBadRequest))
		return uuid.Nil, false
	}
	return id, true
}

// allowSelfOrAdmin gates preference access to the owning user or an admin.
func allowSelfOrAdmin(w http.ResponseWriter, r *http.Request, userID uuid.UUID) bool {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return false
	}

	if claims.UserID != userID && claims.Role != model.RoleAdmin {
		writeError(w, apierror.New("FORBIDDEN", "access denied", "", http.StatusForbidden))
		return false
	}
	return true
}
