package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/kineticdrop/portfolio-api/application/port/outbound"
	"github.com/kineticdrop/portfolio-api/domain/entity"
	"github.com/kineticdrop/portfolio-api/infrastructure/http/response"
)

// AccessTokenCookie is the cookie the browser sends the short-lived
// access token in. The Authorization header is accepted as a fallback
// for non-browser clients.
const AccessTokenCookie = "accessToken"

type authUserKey struct{}

type AuthMiddleware struct {
	tokenService outbound.TokenService
}

func NewAuthMiddleware(tokenService outbound.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := extractAccessToken(r)
		if token == "" {
			response.Unauthorized(w, "Unauthorized")
			return
		}

		claims, err := m.tokenService.VerifyAccessToken(token)
		if err != nil {
			response.Unauthorized(w, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), authUserKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// RequireAdmin layers the role check on top of RequireAuth. A valid
// token with the wrong role is a 403, not a 401.
func (m *AuthMiddleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		claims := GetUserClaims(r.Context())
		if claims == nil {
			response.Unauthorized(w, "Unauthorized")
			return
		}

		if claims.Role != entity.RoleAdmin {
			response.Forbidden(w, "Forbidden")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// extractAccessToken prefers the cookie and falls back to a Bearer
// Authorization header.
func extractAccessToken(r *http.Request) string {
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

// GetUserClaims retrieves the authenticated user's claims from context.
func GetUserClaims(ctx context.Context) *outbound.TokenClaims {
	if claims, ok := ctx.Value(authUserKey{}).(*outbound.TokenClaims); ok {
		return claims
	}
	return nil
}
