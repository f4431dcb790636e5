package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"qsplan-backend/internal/models"
	"qsplan-backend/internal/services"
	"qsplan-backend/pkg/utils"
)

type AuthHandler struct {
	Service *services.UserService
}

func NewAuthHandler(s *services.UserService) *AuthHandler {
	return &AuthHandler{Service: s}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	authResp, err := h.Service.Register(r.Context(), &req)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusCreated, authResp)
}

// Login handles POST /api/auth/login. The login form posts urlencoded
// credentials; JSON bodies are accepted too.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username, password, ok := credentials(r)
	if !ok {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	authResp, err := h.Service.Login(r.Context(), username, password)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, authResp)
}

func credentials(r *http.Request) (username, password string, ok bool) {
	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return "", "", false
		}
		return body.Username, body.Password, true
	}

	if err := r.ParseForm(); err != nil {
		return "", "", false
	}
	return r.PostFormValue("username"), r.PostFormValue("password"), true
}

// ForgotPassword handles POST /api/auth/forgot-password. Responds identically
// for known and unknown usernames.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.ForgotPassword(r.Context(), req.Username); err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]string{"message": "an administrator has been notified"})
}
