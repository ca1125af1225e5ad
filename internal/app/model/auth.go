package model

type UserCredentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	Type      string `json:"type"`
	ExpiresIn int64  `json:"expires_in"`
	Message   string `json:"message,omitempty"`
}

type UserResponse struct {
	ID      string `json:"id"`
	Login   string `json:"login"`
	IsAdmin bool   `json:"is_admin"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
