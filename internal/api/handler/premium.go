package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/famousguessr/famousguessr-go/internal/api/middleware"
	"github.com/famousguessr/famousguessr-go/internal/api/request"
	"github.com/famousguessr/famousguessr-go/internal/api/response"
	"github.com/famousguessr/famousguessr-go/internal/model"
	"github.com/famousguessr/famousguessr-go/internal/services/premium"
)

// PremiumHandler handles the premium-membership request workflow
type PremiumHandler struct {
	premiumService *premium.Service
}

// NewPremiumHandler creates a new premium handler
func NewPremiumHandler(premiumService *premium.Service) *PremiumHandler {
	return &PremiumHandler{premiumService: premiumService}
}

// Request handles POST /api/premium/request
func (h *PremiumHandler) Request(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	var req request.PremiumRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	created, err := h.premiumService.Request(r.Context(), user.ID, req.Message)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PremiumRequestFromModel(created))
}

// MyRequests handles GET /api/premium/my-requests
func (h *PremiumHandler) MyRequests(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	requests, err := h.premiumService.MyRequests(r.Context(), user.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSONWithCount(w, http.StatusOK, response.PremiumRequestsFromModel(requests), len(requests))
}

// List handles GET /api/premium/requests (admin)
func (h *PremiumHandler) List(w http.ResponseWriter, r *http.Request) {
	var status model.RequestStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s, err := model.ParseRequestStatus(raw)
		if err != nil {
			WriteError(w, err)
			return
		}
		status = s
	}

	requests, err := h.premiumService.List(r.Context(), status)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSONWithCount(w, http.StatusOK, response.PremiumRequestsFromModel(requests), len(requests))
}

// Process handles PUT /api/premium/requests/{id} (admin)
func (h *PremiumHandler) Process(w http.ResponseWriter, r *http.Request) {
	admin := middleware.MustGetUser(r.Context())
	id := model.RequestID(mux.Vars(r)["id"])

	var req request.ProcessRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	status, err := model.ParseRequestStatus(req.Status)
	if err != nil {
		WriteError(w, err)
		return
	}

	processed, err := h.premiumService.Process(r.Context(), id, admin.ID, status, req.AdminResponse)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PremiumRequestFromModel(processed))
}

// Delete handles DELETE /api/premium/requests/{id} (admin)
func (h *PremiumHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.RequestID(mux.Vars(r)["id"])

	if err := h.premiumService.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.JSONWithMessage(w, http.StatusOK, struct{}{}, "Premium request deleted")
}
