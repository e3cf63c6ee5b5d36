package ports

import (
	"context"

	"github.com/workforcehq/employee-records/internal/core/domain"
)

// TokenClaims is the decoded identity carried by a verified bearer token.
type TokenClaims struct {
	AdminID string
	Name    string
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.Admin, error)
	// Login returns a signed bearer token on success. Unknown email and wrong
	// password produce the identical error so callers cannot tell them apart.
	Login(ctx context.Context, email, password string) (string, error)
	VerifyToken(token string) (*TokenClaims, error)
	GetProfile(ctx context.Context, adminID string) (*domain.Admin, error)
}
