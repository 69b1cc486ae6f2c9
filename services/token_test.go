package services

import (
	"testing"
	"time"

	"hikebook/errors"
	"hikebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")
	user := &models.User{ID: "u1", Name: "Rani", Email: "rani@example.com"}

	t.Run("RoundTrip", func(t *testing.T) {
		token, err := issuer.Generate(user)
		require.NoError(t, err)

		claims, err := issuer.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.ID)
		assert.Equal(t, "rani@example.com", claims.Email)
		assert.Equal(t, "Rani", claims.Name)
		assert.Equal(t, int64(24*60*60), claims.ExpiresAt-claims.IssuedAt)
	})

	t.Run("Expired", func(t *testing.T) {
		old := NewTokenIssuer("test-secret")
		old.now = func() time.Time { return time.Now().Add(-25 * time.Hour) }
		token, err := old.Generate(user)
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		assert.True(t, errors.HasCode(err, errors.ErrCodeExpiredToken))
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token, err := NewTokenIssuer("other").Generate(user)
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidToken))
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := issuer.Parse("abc.def.ghi")
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidToken))

		_, err = issuer.Parse("   ")
		assert.True(t, errors.HasCode(err, errors.ErrCodeMissingToken))
	})
}
