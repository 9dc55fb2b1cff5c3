package inbound

import (
	"context"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Identity is the client-visible view of the authenticated account.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is a freshly minted token pair plus the identity it belongs
// to. The HTTP layer transports the tokens as cookies; the tokens are
// never echoed in the response body.
type Session struct {
	AccessToken  string
	RefreshToken string
	Identity     Identity
}

type AuthUseCase interface {
	// Login verifies credentials and mints a session. Unknown email and
	// wrong password fail identically.
	Login(ctx context.Context, req LoginRequest) (*Session, error)

	// Refresh rotates a valid refresh token into a fresh session. The
	// account is re-fetched; a deleted account invalidates the token.
	Refresh(ctx context.Context, refreshToken string) (*Session, error)

	// Me resolves the current identity from a verified access claim.
	Me(ctx context.Context, userID string) (*Identity, error)
}
