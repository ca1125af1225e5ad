package auth

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/voyago/travel-order-service/internal/app/entity"
	err_storage "github.com/voyago/travel-order-service/internal/app/storage/api/errors"
	"github.com/voyago/travel-order-service/internal/app/usecase/crypto"
)

type UserAuthenticator interface {
	CreateUser(ctx context.Context, user entity.User) error
	GetUserByLogin(ctx context.Context, login string) (entity.User, error)
	GetUserByID(ctx context.Context, userID entity.UserID) (entity.User, error)
}

func RegisterUser(ctx context.Context, user entity.User, authenticator UserAuthenticator) error {
	err := authenticator.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, err_storage.ErrLoginExists) {
			zap.L().Info("login already exists while creating user", zap.String("login", user.Login))
			return err
		}

		zap.L().Error("error while creating user", zap.Error(err))
		return fmt.Errorf("error while creating user: %w", err)
	}

	return nil
}

func AuthenticateUser(ctx context.Context, inputUser entity.User, authenticator UserAuthenticator) (entity.User, error) {
	storageUser, err := authenticator.GetUserByLogin(ctx, inputUser.Login)
	if err != nil {
		if errors.Is(err, err_storage.ErrLoginNotFound) {
			zap.L().Info("login not found while authentication request", zap.String("login", inputUser.Login))
			return entity.User{}, err
		}

		zap.L().Error("error while getting user while authentication request", zap.Error(err))
		return entity.User{}, fmt.Errorf("error while getting user: %w", err)
	}

	err = crypto.CheckPasswordHash(inputUser.Password, storageUser.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrWrongPassword) {
			zap.L().Info("wrong password while authentication request", zap.String("login", inputUser.Login))
			return entity.User{}, err
		}

		zap.L().Error("error while checking user password while authentication request", zap.Error(err))
		return entity.User{}, fmt.Errorf("error while checking password: %w", err)
	}

	return storageUser, nil
}

func GetUser(ctx context.Context, userID entity.UserID, authenticator UserAuthenticator) (entity.User, error) {
	user, err := authenticator.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, err_storage.ErrUserNotFound) {
			return entity.User{}, err
		}

		zap.L().Error("error while getting user by id", zap.Error(err))
		return entity.User{}, fmt.Errorf("error while getting user: %w", err)
	}

	return user, nil
}
