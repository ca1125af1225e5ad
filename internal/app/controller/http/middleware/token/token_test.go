package token

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/travel-order-service/internal/app/entity"
	"github.com/voyago/travel-order-service/internal/app/tokenstore"
	usecase "github.com/voyago/travel-order-service/internal/app/usecase/converter"
	"github.com/voyago/travel-order-service/internal/app/usecase/crypto"
)

const testSecret = "test-secret"

func TestTokenParserMiddleware(t *testing.T) {
	actor := entity.Actor{
		ID:      "ac2a4811-4f10-487f-bde3-e39a14af7cd8",
		IsAdmin: true,
	}

	validToken, err := crypto.BuildJWTString(actor, testSecret, time.Hour)
	require.NoError(t, err)

	foreignToken, err := crypto.BuildJWTString(actor, "another-secret", time.Hour)
	require.NoError(t, err)

	expiredToken, err := crypto.BuildJWTString(actor, testSecret, -time.Hour)
	require.NoError(t, err)

	revokedToken, err := crypto.BuildJWTString(actor, testSecret, time.Hour)
	require.NoError(t, err)

	revokedClaims, err := crypto.ParseToken(revokedToken, testSecret)
	require.NoError(t, err)

	store := tokenstore.NewMemoryStore()
	require.NoError(t, store.Revoke(context.Background(), revokedClaims.ID, time.Hour))

	type want struct {
		statusCode int
		userID     entity.UserID
		isAdmin    bool
	}
	tests := []struct {
		name       string
		authHeader string

		want want
	}{
		{
			name:       "valid token",
			authHeader: usecase.SetTokenToAuthHeaderFormat(validToken),

			want: want{
				statusCode: http.StatusOK,
				userID:     actor.ID,
				isAdmin:    true,
			},
		},
		{
			name:       "missing auth header",
			authHeader: "",

			want: want{
				statusCode: http.StatusUnauthorized,
			},
		},
		{
			name:       "malformed auth header",
			authHeader: validToken,

			want: want{
				statusCode: http.StatusUnauthorized,
			},
		},
		{
			name:       "token signed with another secret",
			authHeader: usecase.SetTokenToAuthHeaderFormat(foreignToken),

			want: want{
				statusCode: http.StatusUnauthorized,
			},
		},
		{
			name:       "expired token",
			authHeader: usecase.SetTokenToAuthHeaderFormat(expiredToken),

			want: want{
				statusCode: http.StatusUnauthorized,
			},
		},
		{
			name:       "revoked token",
			authHeader: usecase.SetTokenToAuthHeaderFormat(revokedToken),

			want: want{
				statusCode: http.StatusUnauthorized,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/api/travel-orders", nil)
			if len(test.authHeader) != 0 {
				request.Header.Set(usecase.AuthHeader, test.authHeader)
			}
			writer := httptest.NewRecorder()

			var userCtx entity.UserCtx
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctx, ok := r.Context().Value(entity.UserCtxKey{}).(entity.UserCtx)
				require.True(t, ok)
				userCtx = ctx
			})

			parser := New(testSecret, store)
			parser.Middleware(next).ServeHTTP(writer, request)

			assert.Equal(t, test.want.statusCode, userCtx.StatusCode)
			assert.Equal(t, test.want.userID, userCtx.Actor.ID)
			assert.Equal(t, test.want.isAdmin, userCtx.Actor.IsAdmin)
		})
	}
}
