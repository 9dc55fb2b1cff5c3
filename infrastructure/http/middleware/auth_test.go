package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kineticdrop/portfolio-api/application/port/outbound"
)

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) SignAccessToken(claims outbound.TokenClaims) (string, error) {
	args := m.Called(claims)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) SignRefreshToken(claims outbound.TokenClaims) (string, error) {
	args := m.Called(claims)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) VerifyAccessToken(token string) (*outbound.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*outbound.TokenClaims), args.Error(1)
}

func (m *MockTokenService) VerifyRefreshToken(token string) (*outbound.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*outbound.TokenClaims), args.Error(1)
}

func adminClaims() *outbound.TokenClaims {
	return &outbound.TokenClaims{UserID: "user-1", Email: "admin@example.com", Role: "admin"}
}

func TestRequireAuth(t *testing.T) {
	t.Run("no credentials is 401", func(t *testing.T) {
		m := NewAuthMiddleware(new(MockTokenService))

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		rec := httptest.NewRecorder()

		m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		})(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid cookie passes claims to the handler", func(t *testing.T) {
		tokenService := new(MockTokenService)
		tokenService.On("VerifyAccessToken", "good-token").Return(adminClaims(), nil)
		m := NewAuthMiddleware(tokenService)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "good-token"})
		rec := httptest.NewRecorder()

		var seen *outbound.TokenClaims
		m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
			seen = GetUserClaims(r.Context())
		})(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		if assert.NotNil(t, seen) {
			assert.Equal(t, "user-1", seen.UserID)
		}
	})

	t.Run("bearer header works without cookie", func(t *testing.T) {
		tokenService := new(MockTokenService)
		tokenService.On("VerifyAccessToken", "header-token").Return(adminClaims(), nil)
		m := NewAuthMiddleware(tokenService)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.Header.Set("Authorization", "Bearer header-token")
		rec := httptest.NewRecorder()

		called := false
		m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})(rec, req)

		assert.True(t, called)
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		tokenService := new(MockTokenService)
		tokenService.On("VerifyAccessToken", "cookie-token").Return(adminClaims(), nil)
		m := NewAuthMiddleware(tokenService)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})
		req.Header.Set("Authorization", "Bearer header-token")
		rec := httptest.NewRecorder()

		m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {})(rec, req)

		tokenService.AssertCalled(t, "VerifyAccessToken", "cookie-token")
		tokenService.AssertNotCalled(t, "VerifyAccessToken", "header-token")
	})

	t.Run("invalid token is 401", func(t *testing.T) {
		tokenService := new(MockTokenService)
		tokenService.On("VerifyAccessToken", "bad-token").Return(nil, errors.New("invalid token"))
		m := NewAuthMiddleware(tokenService)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "bad-token"})
		rec := httptest.NewRecorder()

		m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		})(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Run("admin role passes", func(t *testing.T) {
		tokenService := new(MockTokenService)
		tokenService.On("VerifyAccessToken", "admin-token").Return(adminClaims(), nil)
		m := NewAuthMiddleware(tokenService)

		req := httptest.NewRequest(http.MethodPost, "/api/skills", nil)
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "admin-token"})
		rec := httptest.NewRecorder()

		called := false
		m.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})(rec, req)

		assert.True(t, called)
	})

	t.Run("authenticated non-admin is 403 not 401", func(t *testing.T) {
		tokenService := new(MockTokenService)
		tokenService.On("VerifyAccessToken", "viewer-token").Return(&outbound.TokenClaims{
			UserID: "user-2", Email: "viewer@example.com", Role: "viewer",
		}, nil)
		m := NewAuthMiddleware(tokenService)

		req := httptest.NewRequest(http.MethodPost, "/api/skills", nil)
		req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "viewer-token"})
		rec := httptest.NewRecorder()

		m.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		})(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unauthenticated is 401", func(t *testing.T) {
		m := NewAuthMiddleware(new(MockTokenService))

		req := httptest.NewRequest(http.MethodPost, "/api/skills", nil)
		rec := httptest.NewRecorder()

		m.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not run")
		})(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
