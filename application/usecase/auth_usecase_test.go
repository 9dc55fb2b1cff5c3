package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kineticdrop/portfolio-api/application/port/inbound"
	"github.com/kineticdrop/portfolio-api/application/port/outbound"
	"github.com/kineticdrop/portfolio-api/domain/apperror"
	"github.com/kineticdrop/portfolio-api/domain/entity"
	"github.com/kineticdrop/portfolio-api/infrastructure/service/logger"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

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

type MockPasswordService struct {
	mock.Mock
}

func (m *MockPasswordService) HashPassword(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordService) VerifyPassword(password, hash string) (bool, error) {
	args := m.Called(password, hash)
	return args.Bool(0), args.Error(1)
}

type noopLogger struct{}

func (noopLogger) Info(ctx context.Context, message string, fields map[string]interface{}) {}
func (noopLogger) Error(ctx context.Context, message string, err error, fields map[string]interface{}) {
}
func (noopLogger) Warn(ctx context.Context, message string, fields map[string]interface{})  {}
func (noopLogger) Debug(ctx context.Context, message string, fields map[string]interface{}) {}
func (l noopLogger) WithFields(fields map[string]interface{}) logger.Logger                 { return l }

func adminUser() *entity.User {
	return &entity.User{
		ID:       "user-1",
		Email:    "admin@example.com",
		Password: "$2a$10$hashed",
		Role:     entity.RoleAdmin,
	}
}

func newTestAuthUseCase(userRepo *MockUserRepository, tokenService *MockTokenService, passwordService *MockPasswordService) inbound.AuthUseCase {
	return NewAuthUseCase(userRepo, tokenService, passwordService, noopLogger{})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("successful login mints both tokens", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenService := new(MockTokenService)
		passwordService := new(MockPasswordService)

		userRepo.On("FindByEmail", ctx, "admin@example.com").Return(adminUser(), nil)
		passwordService.On("VerifyPassword", "hunter22", "$2a$10$hashed").Return(true, nil)
		tokenService.On("SignAccessToken", mock.Anything).Return("access-token", nil)
		tokenService.On("SignRefreshToken", mock.Anything).Return("refresh-token", nil)

		uc := newTestAuthUseCase(userRepo, tokenService, passwordService)
		session, err := uc.Login(ctx, inbound.LoginRequest{Email: "admin@example.com", Password: "hunter22"})

		require.NoError(t, err)
		assert.Equal(t, "access-token", session.AccessToken)
		assert.Equal(t, "refresh-token", session.RefreshToken)
		assert.Equal(t, "user-1", session.Identity.ID)
		assert.Equal(t, entity.RoleAdmin, session.Identity.Role)
	})

	t.Run("email is normalized before lookup", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenService := new(MockTokenService)
		passwordService := new(MockPasswordService)

		userRepo.On("FindByEmail", ctx, "admin@example.com").Return(adminUser(), nil)
		passwordService.On("VerifyPassword", "hunter22", "$2a$10$hashed").Return(true, nil)
		tokenService.On("SignAccessToken", mock.Anything).Return("a", nil)
		tokenService.On("SignRefreshToken", mock.Anything).Return("r", nil)

		uc := newTestAuthUseCase(userRepo, tokenService, passwordService)
		_, err := uc.Login(ctx, inbound.LoginRequest{Email: "  Admin@Example.COM ", Password: "hunter22"})

		require.NoError(t, err)
		userRepo.AssertCalled(t, "FindByEmail", ctx, "admin@example.com")
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		uc1Repo := new(MockUserRepository)
		uc1Repo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, outbound.ErrUserNotFound)
		uc1 := newTestAuthUseCase(uc1Repo, new(MockTokenService), new(MockPasswordService))

		_, errUnknown := uc1.Login(ctx, inbound.LoginRequest{Email: "ghost@example.com", Password: "whatever"})

		uc2Repo := new(MockUserRepository)
		uc2Password := new(MockPasswordService)
		uc2Repo.On("FindByEmail", ctx, "admin@example.com").Return(adminUser(), nil)
		uc2Password.On("VerifyPassword", "wrong", "$2a$10$hashed").Return(false, nil)
		uc2 := newTestAuthUseCase(uc2Repo, new(MockTokenService), uc2Password)

		_, errWrong := uc2.Login(ctx, inbound.LoginRequest{Email: "admin@example.com", Password: "wrong"})

		require.Error(t, errUnknown)
		require.Error(t, errWrong)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
		assert.Equal(t, apperror.HTTPStatus(errUnknown), apperror.HTTPStatus(errWrong))
	})

	t.Run("repository failure is an internal error, not invalid credentials", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByEmail", ctx, "admin@example.com").Return(nil, errors.New("connection refused"))

		uc := newTestAuthUseCase(userRepo, new(MockTokenService), new(MockPasswordService))
		_, err := uc.Login(ctx, inbound.LoginRequest{Email: "admin@example.com", Password: "hunter22"})

		require.Error(t, err)
		assert.Equal(t, apperror.CodeInternal, apperror.CodeOf(err))
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("valid token rotates the session", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenService := new(MockTokenService)

		tokenService.On("VerifyRefreshToken", "old-refresh").Return(&outbound.TokenClaims{UserID: "user-1"}, nil)
		userRepo.On("FindByID", ctx, "user-1").Return(adminUser(), nil)
		tokenService.On("SignAccessToken", mock.Anything).Return("new-access", nil)
		tokenService.On("SignRefreshToken", mock.Anything).Return("new-refresh", nil)

		uc := newTestAuthUseCase(userRepo, tokenService, new(MockPasswordService))
		session, err := uc.Refresh(ctx, "old-refresh")

		require.NoError(t, err)
		assert.Equal(t, "new-access", session.AccessToken)
		assert.Equal(t, "new-refresh", session.RefreshToken)
	})

	t.Run("empty token is unauthorized", func(t *testing.T) {
		uc := newTestAuthUseCase(new(MockUserRepository), new(MockTokenService), new(MockPasswordService))
		_, err := uc.Refresh(ctx, "")

		require.Error(t, err)
		assert.Equal(t, apperror.CodeUnauthorized, apperror.CodeOf(err))
	})

	t.Run("invalid token is unauthorized", func(t *testing.T) {
		tokenService := new(MockTokenService)
		tokenService.On("VerifyRefreshToken", "garbage").Return(nil, errors.New("invalid token"))

		uc := newTestAuthUseCase(new(MockUserRepository), tokenService, new(MockPasswordService))
		_, err := uc.Refresh(ctx, "garbage")

		require.Error(t, err)
		assert.Equal(t, apperror.CodeUnauthorized, apperror.CodeOf(err))
	})

	t.Run("deleted account invalidates an outstanding token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		tokenService := new(MockTokenService)

		tokenService.On("VerifyRefreshToken", "orphaned").Return(&outbound.TokenClaims{UserID: "gone"}, nil)
		userRepo.On("FindByID", ctx, "gone").Return(nil, outbound.ErrUserNotFound)

		uc := newTestAuthUseCase(userRepo, tokenService, new(MockPasswordService))
		_, err := uc.Refresh(ctx, "orphaned")

		require.Error(t, err)
		assert.Equal(t, apperror.CodeUnauthorized, apperror.CodeOf(err))
	})
}

func TestMe(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves identity by id", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", ctx, "user-1").Return(adminUser(), nil)

		uc := newTestAuthUseCase(userRepo, new(MockTokenService), new(MockPasswordService))
		identity, err := uc.Me(ctx, "user-1")

		require.NoError(t, err)
		assert.Equal(t, "user-1", identity.ID)
		assert.Equal(t, "admin@example.com", identity.Email)
	})

	t.Run("missing account is unauthorized", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", ctx, "gone").Return(nil, outbound.ErrUserNotFound)

		uc := newTestAuthUseCase(userRepo, new(MockTokenService), new(MockPasswordService))
		_, err := uc.Me(ctx, "gone")

		require.Error(t, err)
		assert.Equal(t, apperror.CodeUnauthorized, apperror.CodeOf(err))
	})
}
