package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kineticdrop/portfolio-api/application/port/inbound"
	"github.com/kineticdrop/portfolio-api/infrastructure/http/middleware"
	"github.com/kineticdrop/portfolio-api/infrastructure/http/response"
	"github.com/kineticdrop/portfolio-api/infrastructure/http/validator"
)

type AuthHandler struct {
	authUseCase inbound.AuthUseCase
	cookies     CookiePolicy
}

func NewAuthHandler(authUseCase inbound.AuthUseCase, cookies CookiePolicy) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cookies:     cookies,
	}
}

func (h *AuthHandler) RegisterRoutes(r *mux.Router, auth *middleware.AuthMiddleware, limiter *middleware.RateLimitMiddleware) {
	r.HandleFunc("/auth/login", limiter.Limit(middleware.LoginRule, h.Login)).Methods(http.MethodPost)
	r.HandleFunc("/auth/refresh", h.Refresh).Methods(http.MethodPost)
	r.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)
	r.HandleFunc("/auth/me", auth.RequireAuth(h.Me)).Methods(http.MethodGet)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req inbound.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if !validator.ValidateEmail(req.Email) {
		response.BadRequest(w, "Invalid email format")
		return
	}
	if !validator.ValidateRequired(req.Password) {
		response.BadRequest(w, "Password is required")
		return
	}

	session, err := h.authUseCase.Login(r.Context(), req)
	if err != nil {
		response.AppError(w, err)
		return
	}

	h.cookies.setSessionCookies(w, session.AccessToken, session.RefreshToken)
	response.Success(w, http.StatusOK, "Login successful", session.Identity)
}

// Refresh rotates the session from the refresh cookie. A missing or
// invalid cookie is a 401 and no cookies are written, so a failed
// rotation never disturbs whatever the browser already holds.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(RefreshTokenCookie)
	if err != nil || cookie.Value == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	session, err := h.authUseCase.Refresh(r.Context(), cookie.Value)
	if err != nil {
		response.AppError(w, err)
		return
	}

	h.cookies.setSessionCookies(w, session.AccessToken, session.RefreshToken)
	response.Success(w, http.StatusOK, "Session refreshed", session.Identity)
}

// Logout clears both cookies unconditionally. It requires no
// authentication and succeeds even for a client with no session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.clearSessionCookies(w)
	response.Success(w, http.StatusOK, "Logged out", nil)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetUserClaims(r.Context())
	if claims == nil {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	identity, err := h.authUseCase.Me(r.Context(), claims.UserID)
	if err != nil {
		response.AppError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Authenticated", identity)
}
