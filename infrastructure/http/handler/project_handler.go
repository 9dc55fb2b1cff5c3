package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kineticdrop/portfolio-api/application/port/inbound"
	"github.com/kineticdrop/portfolio-api/infrastructure/http/middleware"
	"github.com/kineticdrop/portfolio-api/infrastructure/http/response"
)

type ProjectHandler struct {
	projectUseCase inbound.ProjectUseCase
}

func NewProjectHandler(projectUseCase inbound.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{projectUseCase: projectUseCase}
}

func (h *ProjectHandler) RegisterRoutes(r *mux.Router, auth *middleware.AuthMiddleware) {
	r.HandleFunc("/projects", h.List).Methods(http.MethodGet)
	r.HandleFunc("/projects", auth.RequireAdmin(h.Create)).Methods(http.MethodPost)
	r.HandleFunc("/projects/{id}", auth.RequireAdmin(h.Update)).Methods(http.MethodPut, http.MethodPatch)
	r.HandleFunc("/projects/{id}", auth.RequireAdmin(h.Delete)).Methods(http.MethodDelete)
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectUseCase.List(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "success", projects)
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req inbound.UpsertProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	project, err := h.projectUseCase.Create(r.Context(), req)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, http.StatusCreated, "Project created", project)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req inbound.UpsertProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	project, err := h.projectUseCase.Update(r.Context(), id, req)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "Project updated", project)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.projectUseCase.Delete(r.Context(), id); err != nil {
		response.AppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
