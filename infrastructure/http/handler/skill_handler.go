package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kineticdrop/portfolio-api/application/port/inbound"
	"github.com/kineticdrop/portfolio-api/infrastructure/http/middleware"
	"github.com/kineticdrop/portfolio-api/infrastructure/http/response"
)

type SkillHandler struct {
	skillUseCase inbound.SkillUseCase
}

func NewSkillHandler(skillUseCase inbound.SkillUseCase) *SkillHandler {
	return &SkillHandler{skillUseCase: skillUseCase}
}

// Reads are public, mutations are admin-only.
func (h *SkillHandler) RegisterRoutes(r *mux.Router, auth *middleware.AuthMiddleware) {
	r.HandleFunc("/skills", h.List).Methods(http.MethodGet)
	r.HandleFunc("/skills", auth.RequireAdmin(h.Create)).Methods(http.MethodPost)
	r.HandleFunc("/skills/{id}", auth.RequireAdmin(h.Update)).Methods(http.MethodPut, http.MethodPatch)
	r.HandleFunc("/skills/{id}", auth.RequireAdmin(h.Delete)).Methods(http.MethodDelete)
}

func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	skills, err := h.skillUseCase.List(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "success", skills)
}

func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req inbound.UpsertSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	skill, err := h.skillUseCase.Create(r.Context(), req)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, http.StatusCreated, "Skill created", skill)
}

func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req inbound.UpsertSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	skill, err := h.skillUseCase.Update(r.Context(), id, req)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "Skill updated", skill)
}

func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.skillUseCase.Delete(r.Context(), id); err != nil {
		response.AppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
