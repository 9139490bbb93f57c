package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("maya@example.com", testSecret, time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := ParseToken(token, testSecret)
	assert.NoError(t, err)
	assert.Equal(t, "maya@example.com", subject)
}

func TestExpiredToken(t *testing.T) {
	token, err := GenerateToken("maya@example.com", testSecret, -time.Minute)
	assert.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongSecret(t *testing.T) {
	token, err := GenerateToken("maya@example.com", testSecret, time.Hour)
	assert.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMalformedToken(t *testing.T) {
	_, err := ParseToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken("", testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
