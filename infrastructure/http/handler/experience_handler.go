package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kineticdrop/portfolio-api/application/port/inbound"
	"github.com/kineticdrop/portfolio-api/infrastructure/http/middleware"
	"github.com/kineticdrop/portfolio-api/infrastructure/http/response"
)

type ExperienceHandler struct {
	experienceUseCase inbound.ExperienceUseCase
}

func NewExperienceHandler(experienceUseCase inbound.ExperienceUseCase) *ExperienceHandler {
	return &ExperienceHandler{experienceUseCase: experienceUseCase}
}

func (h *ExperienceHandler) RegisterRoutes(r *mux.Router, auth *middleware.AuthMiddleware) {
	r.HandleFunc("/experience", h.List).Methods(http.MethodGet)
	r.HandleFunc("/experience", auth.RequireAdmin(h.Create)).Methods(http.MethodPost)
	r.HandleFunc("/experience/{id}", auth.RequireAdmin(h.Update)).Methods(http.MethodPut, http.MethodPatch)
	r.HandleFunc("/experience/{id}", auth.RequireAdmin(h.Delete)).Methods(http.MethodDelete)
}

func (h *ExperienceHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.experienceUseCase.List(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "success", entries)
}

func (h *ExperienceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req inbound.UpsertExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	exp, err := h.experienceUseCase.Create(r.Context(), req)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, http.StatusCreated, "Experience created", exp)
}

func (h *ExperienceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req inbound.UpsertExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	exp, err := h.experienceUseCase.Update(r.Context(), id, req)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "Experience updated", exp)
}

func (h *ExperienceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.experienceUseCase.Delete(r.Context(), id); err != nil {
		response.AppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
