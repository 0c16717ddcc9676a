package usecase

import (
	"context"

	authdomain "chores-backend/internal/auth/domain"
	"chores-backend/pkg/identity"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Login exchanges an externally issued identity token for a signed
	// session token, creating the user record on first sight
	Login(ctx context.Context, externalToken string) (string, error)

	// IssueToken signs a time-limited session token for a known user
	IssueToken(user *authdomain.User) (string, error)

	// ValidateToken verifies a session token and loads the user it was
	// issued to. Bad signatures, malformed claims, expired tokens and
	// unknown users all fail with ErrInvalidToken.
	ValidateToken(tokenString string) (*authdomain.User, error)
}

// IdentityProvider is the external identity service the login flow
// exchanges tokens with
type IdentityProvider interface {
	GetUser(ctx context.Context, token string) (*identity.Identity, error)
}
