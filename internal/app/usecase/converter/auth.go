package usecase

import (
	"fmt"
	"strings"
)

const (
	bearerHeader = "Bearer"

	AuthHeader = "Authorization"
)

func GetTokenFromAuthHeader(header string) (string, error) {
	headerParts := strings.Split(header, " ")
	if len(headerParts) != 2 {
		return "", fmt.Errorf("auth header doesn't contain two parts")
	}

	if headerParts[0] != bearerHeader {
		return "", fmt.Errorf("first auth header part is invalid")
	}

	return headerParts[1], nil
}

func SetTokenToAuthHeaderFormat(token string) string {
	return fmt.Sprintf("%s %s", bearerHeader, token)
}
