// AngelaMos | 2026
// jwks.go

package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/lestrrat-go/httprc/v3"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/velocitycrm/backend/internal/config"
	"github.com/velocitycrm/backend/internal/core"
)

// JWKSVerifier validates session tokens signed by the external identity
// provider against its published JWKS. The key set is cached and refreshed
// in the background per the endpoint's cache headers.
type JWKSVerifier struct {
	keySet jwk.Set
	config config.AuthConfig
}

func NewJWKSVerifier(
	ctx context.Context,
	cfg config.AuthConfig,
) (*JWKSVerifier, error) {
	cache, err := jwk.NewCache(ctx, httprc.NewClient())
	if err != nil {
		return nil, fmt.Errorf("create jwks cache: %w", err)
	}

	if err := cache.Register(ctx, cfg.JWKSURL); err != nil {
		return nil, fmt.Errorf("register jwks url: %w", err)
	}

	// Prime the cache so a dead JWKS endpoint fails startup, not the first
	// request.
	if _, err := cache.Lookup(ctx, cfg.JWKSURL); err != nil {
		return nil, fmt.Errorf("fetch jwks: %w", err)
	}

	keySet, err := cache.CachedSet(cfg.JWKSURL)
	if err != nil {
		return nil, fmt.Errorf("create cached key set: %w", err)
	}

	return &JWKSVerifier{
		keySet: keySet,
		config: cfg,
	}, nil
}

func (v *JWKSVerifier) Verify(
	ctx context.Context,
	tokenString string,
) (*Claims, error) {
	parseOpts := []jwt.ParseOption{
		jwt.WithKeySet(v.keySet),
		jwt.WithValidate(true),
		jwt.WithIssuer(v.config.Issuer),
	}
	if v.config.Audience != "" {
		parseOpts = append(parseOpts, jwt.WithAudience(v.config.Audience))
	}

	token, err := jwt.Parse([]byte(tokenString), parseOpts...)
	if err != nil {
		if isTokenExpiredError(err) {
			return nil, fmt.Errorf("verify token: %w", core.ErrTokenExpired)
		}
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	subject, ok := token.Subject()
	if !ok || subject == "" {
		return nil, fmt.Errorf(
			"verify token: missing subject: %w",
			core.ErrTokenInvalid,
		)
	}

	claims := &Claims{Subject: subject}

	// Optional profile claims; absence is fine, only the subject is required.
	var email string
	if err := token.Get("email", &email); err == nil {
		claims.Email = email
	}

	var name string
	if err := token.Get("name", &name); err == nil {
		claims.Name = name
	}

	var role string
	if err := token.Get("role", &role); err == nil {
		claims.Role = role
	}

	return claims, nil
}

func isTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "exp") &&
		strings.Contains(errStr, "not satisfied")
}
