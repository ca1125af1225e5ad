package entity

import "time"

type UserID string

func (id UserID) String() string {
	return string(id)
}

func (id UserID) Valid() bool {
	return len(id) > 0
}

type User struct {
	ID       UserID
	Login    string
	Password string
	IsAdmin  bool
}

// Actor is the authenticated identity performing an operation.
type Actor struct {
	ID      UserID
	IsAdmin bool
}

type UserCtxKey struct{}

type UserCtx struct {
	Actor      Actor
	TokenID    string
	ExpiresAt  time.Time
	StatusCode int
}

func CreateUserCtx(actor Actor, tokenID string, expiresAt time.Time, code int) UserCtx {
	return UserCtx{
		Actor:      actor,
		TokenID:    tokenID,
		ExpiresAt:  expiresAt,
		StatusCode: code,
	}
}
