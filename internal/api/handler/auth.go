package handler

import (
	"net/http"

	"github.com/famousguessr/famousguessr-go/internal/api/middleware"
	"github.com/famousguessr/famousguessr-go/internal/api/request"
	"github.com/famousguessr/famousguessr-go/internal/api/response"
	"github.com/famousguessr/famousguessr-go/internal/services/auth"
)

// AuthHandler handles registration, login and profile endpoints
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		if req.Username == "" || req.Email == "" || req.Password == "" {
			WriteError(w, NewInvalidRequestError("Please provide username, email, and password"))
			return
		}
		WriteError(w, err)
		return
	}

	user, token, err := h.authService.Register(r.Context(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.RegisterData{
		ID:       string(user.ID),
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
		Token:    token,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		if req.Email == "" || req.Password == "" {
			WriteError(w, NewInvalidRequestError("Please provide email and password"))
			return
		}
		WriteError(w, err)
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LoginData{
		ID:       string(user.ID),
		Username: user.Username,
		Email:    user.Email,
		Role:     string(user.Role),
		Stats:    response.StatsFromModel(user.Stats),
		Token:    token,
	})
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	response.JSON(w, http.StatusOK, response.UserFromModel(user))
}

// UpdateProfile handles PUT /api/auth/profile
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	var req request.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	updated, err := h.authService.UpdateProfile(r.Context(), user.ID, req.Username, req.Email)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserFromModel(updated))
}
