package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"qsplan-backend/internal/cache"
	"qsplan-backend/internal/middleware"
	"qsplan-backend/internal/models"
	"qsplan-backend/internal/services"
	"qsplan-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	Service *services.UserService
}

func NewUserHandler(s *services.UserService) *UserHandler {
	return &UserHandler{Service: s}
}

// List handles GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.ListUsers(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to retrieve users")
		return
	}
	if users == nil {
		users = []*models.User{}
	}
	utils.JSON(w, http.StatusOK, users)
}

// Update handles PUT /api/users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Service.UpdateUser(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, user)
}

// PasswordResets handles GET /api/users/password-resets
func (h *UserHandler) PasswordResets(w http.ResponseWriter, r *http.Request) {
	resets, err := h.Service.OpenPasswordResets(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to retrieve reset requests")
		return
	}
	if resets == nil {
		resets = []*models.PasswordResetRequest{}
	}
	utils.JSON(w, http.StatusOK, resets)
}

// Profile handles GET /api/profile
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"user":        user,
		"permissions": models.PermissionsFor(user.Role),
	})
}

// UpdateProfile handles PUT /api/profile
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.Service.UpdateProfile(r.Context(), user, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, updated)
}

// Notifications handles GET /api/notifications. The client polls this for
// badge counts, so responses are cached briefly per role.
func (h *UserHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	if data, hit := cache.GetCachedCounts(r.Context(), user.Role); hit {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	counts, err := h.Service.NotificationCounts(r.Context(), user.Role)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "failed to compute notification counts")
		return
	}

	if data, err := json.Marshal(counts); err == nil {
		cache.CacheCounts(r.Context(), user.Role, data)
	}
	utils.JSON(w, http.StatusOK, counts)
}
