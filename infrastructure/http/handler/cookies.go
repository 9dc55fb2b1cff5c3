package handler

import (
	"net/http"
	"time"

	"github.com/kineticdrop/portfolio-api/infrastructure/config"
	"github.com/kineticdrop/portfolio-api/infrastructure/http/middleware"
)

// RefreshTokenCookie carries the long-lived refresh token. The access
// cookie name is owned by the auth middleware, which reads it.
const RefreshTokenCookie = "refreshToken"

// CookiePolicy fixes the attributes both session cookies are written
// with. Production fronts the API from a different origin than the
// frontend, so cookies need SameSite=None and Secure; development runs
// over plain HTTP where Secure cookies would be dropped.
type CookiePolicy struct {
	secure        bool
	sameSite      http.SameSite
	accessMaxAge  int
	refreshMaxAge int
}

func NewCookiePolicy(cfg *config.Config) CookiePolicy {
	policy := CookiePolicy{
		secure:        false,
		sameSite:      http.SameSiteLaxMode,
		accessMaxAge:  int(cfg.AccessTokenTTL / time.Second),
		refreshMaxAge: int(cfg.RefreshTokenTTL / time.Second),
	}
	if cfg.IsProduction() {
		policy.secure = true
		policy.sameSite = http.SameSiteNoneMode
	}
	return policy
}

// setSessionCookies writes the access/refresh pair. The two cookies are
// always set together so the browser never holds a half-session.
func (p CookiePolicy) setSessionCookies(w http.ResponseWriter, accessToken, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    accessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   p.secure,
		SameSite: p.sameSite,
		MaxAge:   p.accessMaxAge,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenCookie,
		Value:    refreshToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   p.secure,
		SameSite: p.sameSite,
		MaxAge:   p.refreshMaxAge,
	})
}

// clearSessionCookies expires both cookies regardless of whether they
// were present on the request.
func (p CookiePolicy) clearSessionCookies(w http.ResponseWriter) {
	for _, name := range []string{middleware.AccessTokenCookie, RefreshTokenCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Secure:   p.secure,
			SameSite: p.sameSite,
			MaxAge:   -1,
		})
	}
}
