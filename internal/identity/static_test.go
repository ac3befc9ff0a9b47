// AngelaMos | 2026
// static_test.go

package identity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velocitycrm/backend/internal/core"
)

func TestStaticVerifier(t *testing.T) {
	verifier := NewStaticVerifier(map[string]string{
		"token-a": "user_a",
		"token-b": "user_b",
	})

	claims, err := verifier.Verify(context.Background(), "token-a")
	require.NoError(t, err)
	assert.Equal(t, "user_a", claims.Subject)

	_, err = verifier.Verify(context.Background(), "unknown")
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestStaticVerifierEmptySubject(t *testing.T) {
	verifier := NewStaticVerifier(map[string]string{"token": ""})

	_, err := verifier.Verify(context.Background(), "token")
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}

func TestDenyAll(t *testing.T) {
	_, err := DenyAll{}.Verify(context.Background(), "anything")
	assert.ErrorIs(t, err, core.ErrTokenInvalid)
}
