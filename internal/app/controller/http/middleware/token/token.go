package token

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/voyago/travel-order-service/internal/app/entity"
	"github.com/voyago/travel-order-service/internal/app/tokenstore"
	usecase "github.com/voyago/travel-order-service/internal/app/usecase/converter"
	"github.com/voyago/travel-order-service/internal/app/usecase/crypto"
	usecase_errors "github.com/voyago/travel-order-service/internal/app/usecase/errors"
)

type Parser struct {
	secret string
	tokens tokenstore.TokenStore
}

func New(secret string, tokens tokenstore.TokenStore) Parser {
	return Parser{
		secret: secret,
		tokens: tokens,
	}
}

// Middleware parses the bearer token and puts the resulting actor into the
// request context. Handlers decide from the stored status code whether the
// request is authenticated.
func (p Parser) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header[usecase.AuthHeader]
		userCtx := p.processAuthHeader(r.Context(), authHeader)

		ctx := context.WithValue(r.Context(), entity.UserCtxKey{}, userCtx)
		r = r.WithContext(ctx)

		next.ServeHTTP(w, r)
	})
}

func (p Parser) processAuthHeader(ctx context.Context, authHeader []string) entity.UserCtx {
	if len(authHeader) == 0 {
		return entity.CreateUserCtx(entity.Actor{}, "", time.Time{}, http.StatusUnauthorized)
	}

	tokenString, err := usecase.GetTokenFromAuthHeader(authHeader[0])
	if err != nil {
		zap.L().Info("error while parsing auth header", zap.Error(err))

		return entity.CreateUserCtx(entity.Actor{}, "", time.Time{}, http.StatusUnauthorized)
	}

	claims, err := crypto.ParseToken(tokenString, p.secret)
	if err != nil {
		zap.L().Info("error while parsing bearer token", zap.Error(err))

		return entity.CreateUserCtx(entity.Actor{}, "", time.Time{}, http.StatusUnauthorized)
	}

	revoked, err := p.tokens.IsRevoked(ctx, claims.ID)
	if err != nil {
		zap.L().Error("error while checking revoked token", zap.Error(err))

		return entity.CreateUserCtx(entity.Actor{}, "", time.Time{}, http.StatusInternalServerError)
	}
	if revoked {
		zap.L().Info("rejected bearer token", zap.Error(usecase_errors.ErrTokenRevoked))

		return entity.CreateUserCtx(entity.Actor{}, "", time.Time{}, http.StatusUnauthorized)
	}

	actor := entity.Actor{
		ID:      claims.UserID,
		IsAdmin: claims.IsAdmin,
	}

	return entity.CreateUserCtx(actor, claims.ID, claims.ExpiresAt.Time, http.StatusOK)
}
