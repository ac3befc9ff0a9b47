// AngelaMos | 2026
// identity.go

package identity

import (
	"context"
	"fmt"

	"github.com/velocitycrm/backend/internal/config"
)

// Claims is the verified identity of a caller. Subject is the opaque user id
// issued by the external identity provider; it is never generated or
// format-validated locally. Email, Name and Role are optional claims the
// provider may include.
type Claims struct {
	Subject string
	Email   string
	Name    string
	Role    string
}

// Verifier resolves a bearer token to a caller identity. A failed
// verification means "unauthenticated", not an internal error: callers
// translate any returned error into a 401.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

// NewVerifier builds the Verifier selected by configuration.
func NewVerifier(
	ctx context.Context,
	cfg config.AuthConfig,
) (Verifier, error) {
	switch cfg.Provider {
	case "jwks":
		return NewJWKSVerifier(ctx, cfg)
	case "static":
		return NewStaticVerifier(cfg.StaticTokens), nil
	case "deny":
		return DenyAll{}, nil
	default:
		return nil, fmt.Errorf("unknown auth provider %q", cfg.Provider)
	}
}
