package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kineticdrop/portfolio-api/application/port/inbound"
	"github.com/kineticdrop/portfolio-api/infrastructure/http/middleware"
	"github.com/kineticdrop/portfolio-api/infrastructure/http/response"
)

type CertificateHandler struct {
	certificateUseCase inbound.CertificateUseCase
}

func NewCertificateHandler(certificateUseCase inbound.CertificateUseCase) *CertificateHandler {
	return &CertificateHandler{certificateUseCase: certificateUseCase}
}

func (h *CertificateHandler) RegisterRoutes(r *mux.Router, auth *middleware.AuthMiddleware) {
	r.HandleFunc("/certificates", h.List).Methods(http.MethodGet)
	r.HandleFunc("/certificates", auth.RequireAdmin(h.Create)).Methods(http.MethodPost)
	r.HandleFunc("/certificates/{id}", auth.RequireAdmin(h.Update)).Methods(http.MethodPut, http.MethodPatch)
	r.HandleFunc("/certificates/{id}", auth.RequireAdmin(h.Delete)).Methods(http.MethodDelete)
}

func (h *CertificateHandler) List(w http.ResponseWriter, r *http.Request) {
	certificates, err := h.certificateUseCase.List(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "success", certificates)
}

func (h *CertificateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req inbound.UpsertCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	cert, err := h.certificateUseCase.Create(r.Context(), req)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, http.StatusCreated, "Certificate created", cert)
}

func (h *CertificateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req inbound.UpsertCertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	cert, err := h.certificateUseCase.Update(r.Context(), id, req)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "Certificate updated", cert)
}

func (h *CertificateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.certificateUseCase.Delete(r.Context(), id); err != nil {
		response.AppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
