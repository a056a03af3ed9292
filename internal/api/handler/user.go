package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/famousguessr/famousguessr-go/internal/api/request"
	"github.com/famousguessr/famousguessr-go/internal/api/response"
	"github.com/famousguessr/famousguessr-go/internal/model"
	"github.com/famousguessr/famousguessr-go/internal/services/user"
)

// UserHandler handles admin user management endpoints
type UserHandler struct {
	userService *user.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles GET /api/users (admin)
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	result := make([]response.User, len(users))
	for i, u := range users {
		result[i] = response.UserFromModel(u)
	}

	response.JSONWithCount(w, http.StatusOK, result, len(result))
}

// Get handles GET /api/users/{id} (admin)
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.UserID(mux.Vars(r)["id"])

	u, err := h.userService.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserFromModel(u))
}

// UpdateRole handles PUT /api/users/{id}/role (admin)
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id := model.UserID(mux.Vars(r)["id"])

	var req request.UpdateRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	role, err := model.ParseRole(req.Role)
	if err != nil {
		WriteError(w, err)
		return
	}

	u, err := h.userService.UpdateRole(r.Context(), id, role)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserFromModel(u))
}
