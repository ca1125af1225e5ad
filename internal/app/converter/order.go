package converter

import (
	"github.com/golang-module/carbon/v2"

	"github.com/voyago/travel-order-service/internal/app/entity"
	"github.com/voyago/travel-order-service/internal/app/model"
)

const dateFormat = "Y-m-d"

func ConvertOrderToResponse(order entity.TravelOrder) model.OrderResponse {
	return model.OrderResponse{
		ID:             order.ID.String(),
		RequesterName:  order.RequesterName,
		Status:         string(order.Status),
		Destination:    order.Destination,
		DepartureDate:  carbon.CreateFromStdTime(order.DepartureDate).ToDateString(),
		ReturnDate:     carbon.CreateFromStdTime(order.ReturnDate).ToDateString(),
		UserID:         order.UserID.String(),
		Price:          order.Price,
		Hosting:        order.Hosting,
		Transportation: order.Transportation,
		Description:    order.Description,
		CreatedAt:      carbon.CreateFromStdTime(order.DateCreated).ToRfc3339String(),
	}
}

func ConvertOrderToResponseWithOwner(order entity.TravelOrder, owner entity.User) model.OrderResponse {
	response := ConvertOrderToResponse(order)
	user := ConvertUserToResponse(owner)
	response.User = &user

	return response
}

func ConvertOrdersToResponse(orders entity.TravelOrders) []model.OrderResponse {
	responses := make([]model.OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, ConvertOrderToResponse(order))
	}

	return responses
}

func ConvertUserToResponse(user entity.User) model.UserResponse {
	return model.UserResponse{
		ID:      user.ID.String(),
		Login:   user.Login,
		IsAdmin: user.IsAdmin,
	}
}

// ConvertCreateRequestToOrder maps a validated create request to an order.
// Dates must have passed validation before conversion.
func ConvertCreateRequestToOrder(request model.CreateOrderRequest) entity.TravelOrder {
	order := entity.TravelOrder{
		RequesterName:  request.RequesterName,
		Destination:    request.Destination,
		DepartureDate:  carbon.ParseByFormat(request.DepartureDate, dateFormat).ToStdTime(),
		ReturnDate:     carbon.ParseByFormat(request.ReturnDate, dateFormat).ToStdTime(),
		Hosting:        request.Hosting,
		Transportation: request.Transportation,
		Description:    request.Description,
	}

	if request.Price != nil {
		order.Price = *request.Price
	}

	return order
}
