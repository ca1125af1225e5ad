package validator

import "github.com/voyago/travel-order-service/internal/app/model"

func ValidateUserCredentialsRequest(creds model.UserCredentialsRequest) bool {
	return len(creds.Login) > 0 && len(creds.Password) > 0
}
