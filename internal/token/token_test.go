package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret")

	t.Run("issue then verify yields the same email", func(t *testing.T) {
		signed, err := m.Issue("alex@example.com")
		require.NoError(t, err)
		require.NotEmpty(t, signed)

		email, err := m.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, "alex@example.com", email)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		signed, err := m.Issue("alex@example.com")
		require.NoError(t, err)

		other := NewManager("another-secret")
		_, err = other.Verify(signed)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := m.Verify("not.a.token")
		assert.ErrorIs(t, err, ErrInvalid)
	})
}

func TestTokenExpiry(t *testing.T) {
	issued := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	m := NewManager("test-secret")
	m.now = func() time.Time { return issued }

	signed, err := m.Issue("alex@example.com")
	require.NoError(t, err)

	t.Run("valid just inside the window", func(t *testing.T) {
		m.now = func() time.Time { return issued.Add(Validity - time.Minute) }
		email, err := m.Verify(signed)
		require.NoError(t, err)
		assert.Equal(t, "alex@example.com", email)
	})

	t.Run("rejected once the window has elapsed", func(t *testing.T) {
		m.now = func() time.Time { return issued.Add(Validity + time.Minute) }
		_, err := m.Verify(signed)
		assert.ErrorIs(t, err, ErrInvalid)
	})
}
