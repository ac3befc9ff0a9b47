// AngelaMos | 2026
// static.go

package identity

import (
	"context"
	"fmt"

	"github.com/velocitycrm/backend/internal/core"
)

// StaticVerifier resolves identities from a fixed token→subject map. It
// exists for development and tests; production configuration refuses it.
type StaticVerifier struct {
	tokens map[string]string
}

func NewStaticVerifier(tokens map[string]string) *StaticVerifier {
	return &StaticVerifier{tokens: tokens}
}

func (v *StaticVerifier) Verify(
	_ context.Context,
	token string,
) (*Claims, error) {
	subject, ok := v.tokens[token]
	if !ok || subject == "" {
		return nil, fmt.Errorf("static verify: %w", core.ErrTokenInvalid)
	}

	return &Claims{Subject: subject}, nil
}

// DenyAll rejects every token. Useful for test environments that must never
// authenticate, selected once at startup instead of branched per request.
type DenyAll struct{}

func (DenyAll) Verify(_ context.Context, _ string) (*Claims, error) {
	return nil, fmt.Errorf("deny-all verify: %w", core.ErrTokenInvalid)
}
