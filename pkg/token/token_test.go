package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueValidateRoundTrip(t *testing.T) {
	m := NewManager("test-secret", 24*time.Hour)

	tok, err := m.Issue(42, "employer", "a@b.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	payload, err := m.Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), payload.UserID)
	assert.Equal(t, "employer", payload.UserType)
	assert.Equal(t, "a@b.com", payload.Email)
}

func TestValidateExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -1*time.Minute)

	tok, err := m.Issue(1, "candidate", "c@d.com")
	require.NoError(t, err)

	_, err = m.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTamperedToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	tok, err := m.Issue(7, "candidate", "x@y.com")
	require.NoError(t, err)

	// Flip one byte in the signature segment
	b := []byte(tok)
	last := len(b) - 1
	if b[last] == 'A' {
		b[last] = 'B'
	} else {
		b[last] = 'A'
	}

	_, err = m.Validate(string(b))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateWrongSecret(t *testing.T) {
	issuer := NewManager("secret-one", time.Hour)
	verifier := NewManager("secret-two", time.Hour)

	tok, err := issuer.Issue(9, "employer", "e@f.com")
	require.NoError(t, err)

	_, err = verifier.Validate(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	_, err := m.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
