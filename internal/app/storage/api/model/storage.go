package model

import (
	"context"

	"github.com/voyago/travel-order-service/internal/app/entity"
)

type Storage interface {
	Close() error
	Ping(ctx context.Context) error

	CreateUser(ctx context.Context, user entity.User) error
	GetUserByLogin(ctx context.Context, login string) (entity.User, error)
	GetUserByID(ctx context.Context, userID entity.UserID) (entity.User, error)

	CreateOrder(ctx context.Context, order entity.TravelOrder) error
	GetOrder(ctx context.Context, orderID entity.OrderID) (entity.TravelOrder, error)
	ListOrders(ctx context.Context, filter entity.OrderFilter) (entity.TravelOrders, error)
	TransitOrderStatus(ctx context.Context, orderID entity.OrderID, from, to entity.OrderStatus) (entity.TravelOrder, error)
}
