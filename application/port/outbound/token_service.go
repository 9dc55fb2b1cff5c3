package outbound

// TokenClaims is the identity payload embedded in a signed token.
type TokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// TokenService signs and verifies the two token classes. Access and
// refresh tokens are signed with distinct secrets: a token of one class
// never verifies against the other class's secret.
type TokenService interface {
	SignAccessToken(claims TokenClaims) (string, error)
	SignRefreshToken(claims TokenClaims) (string, error)
	VerifyAccessToken(token string) (*TokenClaims, error)
	VerifyRefreshToken(token string) (*TokenClaims, error)
}
