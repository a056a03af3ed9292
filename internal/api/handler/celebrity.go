package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/famousguessr/famousguessr-go/internal/api/middleware"
	"github.com/famousguessr/famousguessr-go/internal/api/request"
	"github.com/famousguessr/famousguessr-go/internal/api/response"
	"github.com/famousguessr/famousguessr-go/internal/model"
	"github.com/famousguessr/famousguessr-go/internal/services/celebrity"
)

// CelebrityHandler handles celebrity catalog endpoints
type CelebrityHandler struct {
	celebrityService *celebrity.Service
}

// NewCelebrityHandler creates a new celebrity handler
func NewCelebrityHandler(celebrityService *celebrity.Service) *CelebrityHandler {
	return &CelebrityHandler{celebrityService: celebrityService}
}

// List handles GET /api/celebrities
func (h *CelebrityHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			WriteError(w, NewInvalidRequestError("limit must be a positive integer"))
			return
		}
		limit = n
	}

	celebrities, err := h.celebrityService.List(r.Context(), q.Get("category"), q.Get("search"), limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSONWithCount(w, http.StatusOK, response.CelebritiesFromModel(celebrities), len(celebrities))
}

// Get handles GET /api/celebrities/{id}
func (h *CelebrityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.CelebrityID(mux.Vars(r)["id"])

	c, err := h.celebrityService.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CelebrityFromModel(c))
}

// ByProvince handles GET /api/celebrities/province/{province}
func (h *CelebrityHandler) ByProvince(w http.ResponseWriter, r *http.Request) {
	province := mux.Vars(r)["province"]

	celebrities, err := h.celebrityService.ByProvince(r.Context(), province)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSONWithCount(w, http.StatusOK, response.CelebritiesFromModel(celebrities), len(celebrities))
}

// Nearby handles GET /api/celebrities/nearby?lng=&lat=&distance=
func (h *CelebrityHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lngRaw, latRaw := q.Get("lng"), q.Get("lat")
	if lngRaw == "" || latRaw == "" {
		WriteError(w, NewInvalidRequestError("Please provide longitude (lng) and latitude (lat)"))
		return
	}

	lng, err := strconv.ParseFloat(lngRaw, 64)
	if err != nil {
		WriteError(w, NewInvalidRequestError("lng must be a number"))
		return
	}
	lat, err := strconv.ParseFloat(latRaw, 64)
	if err != nil {
		WriteError(w, NewInvalidRequestError("lat must be a number"))
		return
	}

	radius := 0.0
	if raw := q.Get("distance"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || radius <= 0 {
			WriteError(w, NewInvalidRequestError("distance must be a positive number"))
			return
		}
	}

	celebrities, err := h.celebrityService.Nearby(r.Context(), model.Point{Longitude: lng, Latitude: lat}, radius)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSONWithCount(w, http.StatusOK, response.CelebritiesFromModel(celebrities), len(celebrities))
}

// Create handles POST /api/celebrities (admin)
func (h *CelebrityHandler) Create(w http.ResponseWriter, r *http.Request) {
	admin := middleware.MustGetUser(r.Context())

	var req request.CreateCelebrityRequest
	if err := decodeJSON(r, &req); err != nil {
		if req.Name == "" || req.BirthProvince == "" || req.Category == "" || len(req.Coordinates) != 2 {
			WriteError(w, NewInvalidRequestError("Please provide name, birthProvince, category, and coordinates"))
			return
		}
		WriteError(w, err)
		return
	}

	c, err := h.celebrityService.Create(r.Context(), admin.ID, celebrity.CreateInput{
		Name:          req.Name,
		BirthProvince: req.BirthProvince,
		Category:      req.Category,
		Photo:         req.Photo,
		Location:      model.Point{Longitude: req.Coordinates[0], Latitude: req.Coordinates[1]},
		Bio:           req.Bio,
		BirthYear:     req.BirthYear,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CelebrityFromModel(c))
}

// Update handles PUT /api/celebrities/{id} (admin)
func (h *CelebrityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.CelebrityID(mux.Vars(r)["id"])

	var req request.UpdateCelebrityRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	input := celebrity.UpdateInput{
		Name:          req.Name,
		BirthProvince: req.BirthProvince,
		Category:      req.Category,
		Photo:         req.Photo,
		Bio:           req.Bio,
		BirthYear:     req.BirthYear,
		Active:        req.IsActive,
	}
	if len(req.Coordinates) == 2 {
		input.Location = &model.Point{Longitude: req.Coordinates[0], Latitude: req.Coordinates[1]}
	}

	c, err := h.celebrityService.Update(r.Context(), id, input)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CelebrityFromModel(c))
}

// Delete handles DELETE /api/celebrities/{id} (admin). The entry is
// deactivated, not removed.
func (h *CelebrityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.CelebrityID(mux.Vars(r)["id"])

	if err := h.celebrityService.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.JSONWithMessage(w, http.StatusOK, struct{}{}, "Celebrity deleted successfully")
}
