package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kineticdrop/portfolio-api/application/port/inbound"
	"github.com/kineticdrop/portfolio-api/application/port/outbound"
	"github.com/kineticdrop/portfolio-api/domain/apperror"
	"github.com/kineticdrop/portfolio-api/infrastructure/service/logger"
)

type AuthUseCase struct {
	userRepository  outbound.UserRepository
	tokenService    outbound.TokenService
	passwordService inbound.PasswordService
	logger          logger.Logger
}

func NewAuthUseCase(
	userRepo outbound.UserRepository,
	tokenService outbound.TokenService,
	passwordService inbound.PasswordService,
	logger logger.Logger,
) inbound.AuthUseCase {
	return &AuthUseCase{
		userRepository:  userRepo,
		tokenService:    tokenService,
		passwordService: passwordService,
		logger:          logger,
	}
}

func (uc *AuthUseCase) Login(ctx context.Context, req inbound.LoginRequest) (*inbound.Session, error) {
	email := NormalizeEmail(req.Email)

	user, err := uc.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, outbound.ErrUserNotFound) {
			// Same error as a wrong password: the caller must not be
			// able to tell whether the account exists.
			logger.LogAuthEvent(ctx, uc.logger, "login_failed_user_not_found", "", "", false, map[string]interface{}{
				"email": email,
			})
			return nil, apperror.InvalidCredentials()
		}
		uc.logger.Error(ctx, "Failed to find user", err, map[string]interface{}{
			"email": email,
		})
		return nil, apperror.Internal(err)
	}

	isValid, err := uc.passwordService.VerifyPassword(req.Password, user.Password)
	if err != nil {
		uc.logger.Error(ctx, "Password verification error", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, apperror.Internal(err)
	}
	if !isValid {
		logger.LogAuthEvent(ctx, uc.logger, "login_failed_invalid_password", user.ID, "", false, map[string]interface{}{
			"email": email,
		})
		return nil, apperror.InvalidCredentials()
	}

	session, err := uc.mintSession(ctx, user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	logger.LogAuthEvent(ctx, uc.logger, "login_successful", user.ID, "", true, map[string]interface{}{
		"email": email,
	})

	return session, nil
}

func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*inbound.Session, error) {
	if refreshToken == "" {
		return nil, apperror.Unauthorized(nil)
	}

	claims, err := uc.tokenService.VerifyRefreshToken(refreshToken)
	if err != nil {
		logger.LogAuthEvent(ctx, uc.logger, "refresh_failed_invalid_token", "", "", false, nil)
		return nil, apperror.Unauthorized(err)
	}

	// Re-fetch the account: deleting it is the only way to revoke an
	// outstanding refresh token, since no denylist is kept.
	user, err := uc.userRepository.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, outbound.ErrUserNotFound) {
			logger.LogAuthEvent(ctx, uc.logger, "refresh_failed_account_gone", claims.UserID, "", false, nil)
			return nil, apperror.Unauthorized(err)
		}
		uc.logger.Error(ctx, "Failed to find user", err, map[string]interface{}{
			"user_id": claims.UserID,
		})
		return nil, apperror.Internal(err)
	}

	// Rotation: both tokens are re-issued with fresh expiry windows.
	session, err := uc.mintSession(ctx, user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	logger.LogAuthEvent(ctx, uc.logger, "token_refresh_successful", user.ID, "", true, nil)

	return session, nil
}

func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*inbound.Identity, error) {
	if userID == "" {
		return nil, apperror.Unauthorized(nil)
	}

	user, err := uc.userRepository.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, outbound.ErrUserNotFound) {
			return nil, apperror.Unauthorized(err)
		}
		uc.logger.Error(ctx, "Failed to find user", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, apperror.Internal(err)
	}

	return &inbound.Identity{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (uc *AuthUseCase) mintSession(ctx context.Context, userID, email, role string) (*inbound.Session, error) {
	claims := outbound.TokenClaims{UserID: userID, Email: email, Role: role}

	accessToken, err := uc.tokenService.SignAccessToken(claims)
	if err != nil {
		uc.logger.Error(ctx, "Failed to sign access token", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, apperror.Internal(fmt.Errorf("sign access token: %w", err))
	}

	refreshToken, err := uc.tokenService.SignRefreshToken(claims)
	if err != nil {
		uc.logger.Error(ctx, "Failed to sign refresh token", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, apperror.Internal(fmt.Errorf("sign refresh token: %w", err))
	}

	return &inbound.Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Identity: inbound.Identity{
			ID:    userID,
			Email: email,
			Role:  role,
		},
	}, nil
}

// NormalizeEmail lowercases and trims an email the same way the
// bootstrap seeder stores it, so lookups always match.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
