package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kineticdrop/portfolio-api/application/port/inbound"
	"github.com/kineticdrop/portfolio-api/application/port/outbound"
	"github.com/kineticdrop/portfolio-api/domain/apperror"
	"github.com/kineticdrop/portfolio-api/infrastructure/config"
	"github.com/kineticdrop/portfolio-api/infrastructure/http/middleware"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Login(ctx context.Context, req inbound.LoginRequest) (*inbound.Session, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.Session), args.Error(1)
}

func (m *MockAuthUseCase) Refresh(ctx context.Context, refreshToken string) (*inbound.Session, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.Session), args.Error(1)
}

func (m *MockAuthUseCase) Me(ctx context.Context, userID string) (*inbound.Identity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.Identity), args.Error(1)
}

// tokenServiceStub satisfies outbound.TokenService for middleware tests
// where only VerifyAccessToken matters.
type tokenServiceStub struct {
	claims *outbound.TokenClaims
	err    error
}

func (s *tokenServiceStub) SignAccessToken(outbound.TokenClaims) (string, error)  { return "", nil }
func (s *tokenServiceStub) SignRefreshToken(outbound.TokenClaims) (string, error) { return "", nil }
func (s *tokenServiceStub) VerifyAccessToken(string) (*outbound.TokenClaims, error) {
	return s.claims, s.err
}
func (s *tokenServiceStub) VerifyRefreshToken(string) (*outbound.TokenClaims, error) {
	return s.claims, s.err
}

func devCookiePolicy() CookiePolicy {
	return NewCookiePolicy(&config.Config{
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
		Environment:     "development",
	})
}

func testSession() *inbound.Session {
	return &inbound.Session{
		AccessToken:  "signed-access",
		RefreshToken: "signed-refresh",
		Identity: inbound.Identity{
			ID:    "user-1",
			Email: "admin@example.com",
			Role:  "admin",
		},
	}
}

func cookieByName(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLoginHandler(t *testing.T) {
	t.Run("successful login sets both cookies and returns identity only", func(t *testing.T) {
		useCase := new(MockAuthUseCase)
		useCase.On("Login", mock.Anything, inbound.LoginRequest{
			Email:    "admin@example.com",
			Password: "hunter22",
		}).Return(testSession(), nil)

		h := NewAuthHandler(useCase, devCookiePolicy())

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"email":"admin@example.com","password":"hunter22"}`))
		rec := httptest.NewRecorder()

		h.Login(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		access := cookieByName(t, rec, middleware.AccessTokenCookie)
		require.NotNil(t, access)
		assert.Equal(t, "signed-access", access.Value)
		assert.True(t, access.HttpOnly)

		refresh := cookieByName(t, rec, RefreshTokenCookie)
		require.NotNil(t, refresh)
		assert.Equal(t, "signed-refresh", refresh.Value)
		assert.True(t, refresh.HttpOnly)

		body := rec.Body.String()
		assert.Contains(t, body, "admin@example.com")
		assert.NotContains(t, body, "signed-access")
		assert.NotContains(t, body, "signed-refresh")
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		h := NewAuthHandler(new(MockAuthUseCase), devCookiePolicy())

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{not json`))
		rec := httptest.NewRecorder()

		h.Login(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid email format is 400 before the use case runs", func(t *testing.T) {
		useCase := new(MockAuthUseCase)
		h := NewAuthHandler(useCase, devCookiePolicy())

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"email":"not-an-email","password":"x"}`))
		rec := httptest.NewRecorder()

		h.Login(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		useCase.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})

	t.Run("rejected credentials are 401 with no cookies", func(t *testing.T) {
		useCase := new(MockAuthUseCase)
		useCase.On("Login", mock.Anything, mock.Anything).Return(nil, apperror.InvalidCredentials())

		h := NewAuthHandler(useCase, devCookiePolicy())

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"email":"admin@example.com","password":"wrong"}`))
		rec := httptest.NewRecorder()

		h.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
	})
}

func TestRefreshHandler(t *testing.T) {
	t.Run("missing cookie is 401 and writes no cookies", func(t *testing.T) {
		useCase := new(MockAuthUseCase)
		h := NewAuthHandler(useCase, devCookiePolicy())

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		rec := httptest.NewRecorder()

		h.Refresh(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
		useCase.AssertNotCalled(t, "Refresh", mock.Anything, mock.Anything)
	})

	t.Run("valid cookie rotates the pair", func(t *testing.T) {
		useCase := new(MockAuthUseCase)
		useCase.On("Refresh", mock.Anything, "old-refresh").Return(testSession(), nil)

		h := NewAuthHandler(useCase, devCookiePolicy())

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		req.AddCookie(&http.Cookie{Name: RefreshTokenCookie, Value: "old-refresh"})
		rec := httptest.NewRecorder()

		h.Refresh(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		access := cookieByName(t, rec, middleware.AccessTokenCookie)
		refresh := cookieByName(t, rec, RefreshTokenCookie)
		require.NotNil(t, access)
		require.NotNil(t, refresh)
		assert.Equal(t, "signed-access", access.Value)
		assert.Equal(t, "signed-refresh", refresh.Value)
	})

	t.Run("invalid token is 401 and leaves cookies alone", func(t *testing.T) {
		useCase := new(MockAuthUseCase)
		useCase.On("Refresh", mock.Anything, "stale").Return(nil, apperror.Unauthorized(nil))

		h := NewAuthHandler(useCase, devCookiePolicy())

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		req.AddCookie(&http.Cookie{Name: RefreshTokenCookie, Value: "stale"})
		rec := httptest.NewRecorder()

		h.Refresh(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestLogoutHandler(t *testing.T) {
	t.Run("clears both cookies", func(t *testing.T) {
		h := NewAuthHandler(new(MockAuthUseCase), devCookiePolicy())

		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: "some-access"})
		req.AddCookie(&http.Cookie{Name: RefreshTokenCookie, Value: "some-refresh"})
		rec := httptest.NewRecorder()

		h.Logout(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		for _, name := range []string{middleware.AccessTokenCookie, RefreshTokenCookie} {
			c := cookieByName(t, rec, name)
			require.NotNil(t, c, name)
			assert.Empty(t, c.Value)
			assert.Negative(t, c.MaxAge)
		}
	})

	t.Run("idempotent without a session", func(t *testing.T) {
		h := NewAuthHandler(new(MockAuthUseCase), devCookiePolicy())

		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		rec := httptest.NewRecorder()

		h.Logout(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, rec.Result().Cookies(), 2)
	})
}

func TestMeHandler(t *testing.T) {
	t.Run("returns the identity for a valid session", func(t *testing.T) {
		useCase := new(MockAuthUseCase)
		useCase.On("Me", mock.Anything, "user-1").Return(&inbound.Identity{
			ID:    "user-1",
			Email: "admin@example.com",
			Role:  "admin",
		}, nil)

		h := NewAuthHandler(useCase, devCookiePolicy())
		auth := middleware.NewAuthMiddleware(&tokenServiceStub{
			claims: &outbound.TokenClaims{UserID: "user-1", Email: "admin@example.com", Role: "admin"},
		})

		router := mux.NewRouter()
		router.HandleFunc("/api/auth/me", auth.RequireAuth(h.Me)).Methods(http.MethodGet)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: "valid"})
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var envelope struct {
			Status bool `json:"status"`
			Data   struct {
				ID    string `json:"id"`
				Email string `json:"email"`
				Role  string `json:"role"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.True(t, envelope.Status)
		assert.Equal(t, "user-1", envelope.Data.ID)
		assert.Equal(t, "admin", envelope.Data.Role)
	})

	t.Run("account gone is 401", func(t *testing.T) {
		useCase := new(MockAuthUseCase)
		useCase.On("Me", mock.Anything, "user-1").Return(nil, apperror.Unauthorized(nil))

		h := NewAuthHandler(useCase, devCookiePolicy())
		auth := middleware.NewAuthMiddleware(&tokenServiceStub{
			claims: &outbound.TokenClaims{UserID: "user-1"},
		})

		router := mux.NewRouter()
		router.HandleFunc("/api/auth/me", auth.RequireAuth(h.Me)).Methods(http.MethodGet)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req.AddCookie(&http.Cookie{Name: middleware.AccessTokenCookie, Value: "valid"})
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestProductionCookieAttributes(t *testing.T) {
	policy := NewCookiePolicy(&config.Config{
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
		Environment:     "production",
	})

	rec := httptest.NewRecorder()
	policy.setSessionCookies(rec, "a", "r")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, c := range cookies {
		assert.True(t, c.Secure, c.Name)
		assert.True(t, c.HttpOnly, c.Name)
		assert.Equal(t, http.SameSiteNoneMode, c.SameSite, c.Name)
	}
}
