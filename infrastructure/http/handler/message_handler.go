package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kineticdrop/portfolio-api/application/port/inbound"
	"github.com/kineticdrop/portfolio-api/infrastructure/http/middleware"
	"github.com/kineticdrop/portfolio-api/infrastructure/http/response"
)

type MessageHandler struct {
	messageUseCase inbound.MessageUseCase
}

func NewMessageHandler(messageUseCase inbound.MessageUseCase) *MessageHandler {
	return &MessageHandler{messageUseCase: messageUseCase}
}

// Submission is the one public write in the API, so it carries its own
// rate limit. Reading and deleting messages is admin-only.
func (h *MessageHandler) RegisterRoutes(r *mux.Router, auth *middleware.AuthMiddleware, limiter *middleware.RateLimitMiddleware) {
	r.HandleFunc("/messages", limiter.Limit(middleware.MessageRule, h.Create)).Methods(http.MethodPost)
	r.HandleFunc("/messages", auth.RequireAdmin(h.List)).Methods(http.MethodGet)
	r.HandleFunc("/messages/{id}", auth.RequireAdmin(h.Delete)).Methods(http.MethodDelete)
}

func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req inbound.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	msg, err := h.messageUseCase.Create(r.Context(), req)
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, http.StatusCreated, "Message sent", msg)
}

func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageUseCase.List(r.Context())
	if err != nil {
		response.AppError(w, err)
		return
	}
	response.Success(w, http.StatusOK, "success", messages)
}

func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.messageUseCase.Delete(r.Context(), id); err != nil {
		response.AppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
