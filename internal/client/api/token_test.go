package api

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{
			name:  "empty token is not expired",
			token: "",
			want:  false,
		},
		{
			name:  "garbage token is not expired",
			token: "not-a-jwt",
			want:  false,
		},
		{
			name:  "future exp",
			token: signedToken(t, jwt.MapClaims{"exp": now.Add(time.Hour).Unix()}),
			want:  false,
		},
		{
			name:  "past exp",
			token: signedToken(t, jwt.MapClaims{"exp": now.Add(-time.Hour).Unix()}),
			want:  true,
		},
		{
			name:  "no exp claim",
			token: signedToken(t, jwt.MapClaims{"sub": "7"}),
			want:  false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tokenExpired(tc.token, now))
		})
	}
}
