package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kineticdrop/portfolio-api/application/port/outbound"
	"github.com/kineticdrop/portfolio-api/infrastructure/config"
)

// ErrInvalidToken is the single failure mode of verification. Bad
// signature, malformed token and expired token all collapse into it so
// callers cannot tell which check failed.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the signed payload. Subject carries the account ID.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// JWTService issues and verifies HS256 token pairs. Access and refresh
// tokens use distinct secrets and TTLs. The clock is injectable so
// expiry boundaries are testable with fixed times.
type JWTService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewJWTService(cfg *config.Config) (*JWTService, error) {
	if cfg.JWTAccessSecret == "" || cfg.JWTRefreshSecret == "" {
		return nil, fmt.Errorf("token secrets must not be empty")
	}
	if cfg.JWTAccessSecret == cfg.JWTRefreshSecret {
		return nil, fmt.Errorf("access and refresh secrets must differ")
	}

	return &JWTService{
		accessSecret:  []byte(cfg.JWTAccessSecret),
		refreshSecret: []byte(cfg.JWTRefreshSecret),
		accessTTL:     cfg.AccessTokenTTL,
		refreshTTL:    cfg.RefreshTokenTTL,
		now:           time.Now,
	}, nil
}

func (s *JWTService) SignAccessToken(claims outbound.TokenClaims) (string, error) {
	return s.sign(claims, s.accessSecret, s.accessTTL)
}

func (s *JWTService) SignRefreshToken(claims outbound.TokenClaims) (string, error) {
	return s.sign(claims, s.refreshSecret, s.refreshTTL)
}

func (s *JWTService) VerifyAccessToken(token string) (*outbound.TokenClaims, error) {
	return s.verify(token, s.accessSecret)
}

func (s *JWTService) VerifyRefreshToken(token string) (*outbound.TokenClaims, error) {
	return s.verify(token, s.refreshSecret)
}

func (s *JWTService) sign(claims outbound.TokenClaims, secret []byte, ttl time.Duration) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: claims.Email,
		Role:  claims.Role,
	})

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (s *JWTService) verify(tokenString string, secret []byte) (*outbound.TokenClaims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &outbound.TokenClaims{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
