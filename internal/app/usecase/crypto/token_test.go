package crypto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/travel-order-service/internal/app/entity"
	usecase "github.com/voyago/travel-order-service/internal/app/usecase/errors"
)

const testSecret = "test-secret"

func TestBuildAndParseToken(t *testing.T) {
	tests := []struct {
		name  string
		actor entity.Actor
	}{
		{
			name: "regular user",
			actor: entity.Actor{
				ID: "3eefa0cf-3de3-4f5d-a3cd-7e24d5ae2dd4",
			},
		},
		{
			name: "admin user",
			actor: entity.Actor{
				ID:      "00308dff-b6b1-4f1b-8515-d09d3db49951",
				IsAdmin: true,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tokenString, err := BuildJWTString(test.actor, testSecret, time.Hour)
			require.NoError(t, err)

			claims, err := ParseToken(tokenString, testSecret)
			require.NoError(t, err)

			assert.Equal(t, test.actor.ID, claims.UserID)
			assert.Equal(t, test.actor.IsAdmin, claims.IsAdmin)
			assert.NotEmpty(t, claims.ID)
		})
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	tokenString, err := BuildJWTString(entity.Actor{ID: "user-id"}, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(tokenString, "another-secret")
	assert.ErrorIs(t, err, usecase.ErrTokenNotValid)
}

func TestParseExpiredToken(t *testing.T) {
	tokenString, err := BuildJWTString(entity.Actor{ID: "user-id"}, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(tokenString, testSecret)
	assert.ErrorIs(t, err, usecase.ErrTokenExpired)
}

func TestParseGarbageToken(t *testing.T) {
	_, err := ParseToken("not-a-token", testSecret)
	assert.ErrorIs(t, err, usecase.ErrTokenNotValid)
}
