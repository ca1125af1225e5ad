package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/voyago/travel-order-service/internal/app/config"
	httputils "github.com/voyago/travel-order-service/internal/app/controller/http/utils"
	"github.com/voyago/travel-order-service/internal/app/converter"
	"github.com/voyago/travel-order-service/internal/app/entity"
	"github.com/voyago/travel-order-service/internal/app/model"
	err_storage "github.com/voyago/travel-order-service/internal/app/storage/api/errors"
	"github.com/voyago/travel-order-service/internal/app/tokenstore"
	"github.com/voyago/travel-order-service/internal/app/usecase/auth"
	usecase "github.com/voyago/travel-order-service/internal/app/usecase/converter"
	"github.com/voyago/travel-order-service/internal/app/usecase/crypto"
	"github.com/voyago/travel-order-service/internal/app/validator"
)

const (
	ErrEmptyUserRequest = "wrong user credentials format: empty login or password"
	ErrInvalidAuth      = "auth credentials are invalid"
	ErrLoginNotExist    = "wrong login or password"

	bearerType = "Bearer"
)

type AuthUser struct {
	storage auth.UserAuthenticator
	tokens  tokenstore.TokenStore
	config  config.Config
}

func New(storage auth.UserAuthenticator, tokens tokenstore.TokenStore, config config.Config) AuthUser {
	return AuthUser{
		storage: storage,
		tokens:  tokens,
		config:  config,
	}
}

func (a *AuthUser) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := a.createUserFromRequestPassHashed(w, r)
		if err != nil {
			zap.L().Error("error while parsing user credentials while creating user", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		err = auth.RegisterUser(ctx, user, a.storage)
		if err != nil {
			if errors.Is(err, err_storage.ErrLoginExists) {
				w.WriteHeader(http.StatusConflict)
				return
			}

			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		a.respondWithToken(entity.Actor{ID: user.ID, IsAdmin: user.IsAdmin}, http.StatusCreated, "user registered successfully", w)
	}
}

func (a *AuthUser) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inputUser, err := a.createUserFromRequest(entity.UserID(""), w, r)
		if err != nil {
			zap.L().Error("error while parsing user credentials while login", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		storageUser, err := auth.AuthenticateUser(ctx, inputUser, a.storage)
		if err != nil {
			if errors.Is(err, err_storage.ErrLoginNotFound) || errors.Is(err, crypto.ErrWrongPassword) {
				http.Error(w, ErrLoginNotExist, http.StatusUnauthorized)
				return
			}

			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		a.respondWithToken(entity.Actor{ID: storageUser.ID, IsAdmin: storageUser.IsAdmin}, http.StatusOK, "", w)
	}
}

// Refresh issues a fresh token and revokes the presented one so it cannot be
// replayed after the exchange.
func (a *AuthUser) Refresh() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userCtx, err := a.parseUserCtx(w, r)
		if err != nil {
			zap.L().Info("error while parsing user context while token refresh", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		a.revokeToken(ctx, userCtx)

		a.respondWithToken(userCtx.Actor, http.StatusOK, "", w)
	}
}

func (a *AuthUser) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userCtx, err := a.parseUserCtx(w, r)
		if err != nil {
			zap.L().Info("error while parsing user context while logout", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		a.revokeToken(ctx, userCtx)

		httputils.WriteJSON(w, http.StatusOK, model.MessageResponse{Message: "user logged out successfully"})
	}
}

func (a *AuthUser) Me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userCtx, err := a.parseUserCtx(w, r)
		if err != nil {
			zap.L().Info("error while parsing user context while getting profile", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		user, err := auth.GetUser(ctx, userCtx.Actor.ID, a.storage)
		if err != nil {
			if errors.Is(err, err_storage.ErrUserNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}

			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		httputils.WriteJSON(w, http.StatusOK, converter.ConvertUserToResponse(user))
	}
}

func (a *AuthUser) createUserFromRequestPassHashed(w http.ResponseWriter, r *http.Request) (entity.User, error) {
	user, err := a.createUserFromRequest(a.createUserID(), w, r)
	if err != nil {
		return user, err
	}

	hashedPassword, err := crypto.HashPassword(user.Password)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return entity.User{}, fmt.Errorf("error while hashing password: %w", err)
	}
	user.Password = hashedPassword

	return user, nil
}

func (a *AuthUser) createUserFromRequest(userID entity.UserID, w http.ResponseWriter, r *http.Request) (entity.User, error) {
	var userCreds model.UserCredentialsRequest
	err := json.NewDecoder(r.Body).Decode(&userCreds)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return entity.User{}, fmt.Errorf("error while decoding user credentials request: %w", err)
	}
	defer r.Body.Close()

	if !validator.ValidateUserCredentialsRequest(userCreds) {
		http.Error(w, ErrEmptyUserRequest, http.StatusBadRequest)
		return entity.User{}, errors.New(ErrEmptyUserRequest)
	}

	return entity.User{
		ID:       userID,
		Login:    userCreds.Login,
		Password: userCreds.Password,
	}, nil
}

func (a *AuthUser) respondWithToken(actor entity.Actor, statusCode int, message string, w http.ResponseWriter) {
	token, err := crypto.BuildJWTString(actor, a.config.JWTSecret, a.config.TokenTTL)
	if err != nil {
		zap.L().Error("error while building bearer token", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add(usecase.AuthHeader, usecase.SetTokenToAuthHeaderFormat(token))

	httputils.WriteJSON(w, statusCode, model.TokenResponse{
		Token:     token,
		Type:      bearerType,
		ExpiresIn: int64(a.config.TokenTTL.Seconds()),
		Message:   message,
	})
}

func (a *AuthUser) revokeToken(ctx context.Context, userCtx entity.UserCtx) {
	err := a.tokens.Revoke(ctx, userCtx.TokenID, time.Until(userCtx.ExpiresAt))
	if err != nil {
		zap.L().Error("error while revoking token", zap.Error(err))
	}
}

func (a *AuthUser) parseUserCtx(w http.ResponseWriter, r *http.Request) (entity.UserCtx, error) {
	userCtx, err := httputils.GetUserCtxFromContext(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return entity.UserCtx{}, err
	}

	if userCtx.StatusCode != http.StatusOK {
		http.Error(w, ErrInvalidAuth, http.StatusUnauthorized)
		return entity.UserCtx{}, errors.New(ErrInvalidAuth)
	}

	return userCtx, nil
}

func (a *AuthUser) createUserID() entity.UserID {
	uuid := uuid.New()
	userID := entity.UserID(uuid.String())

	return userID
}
