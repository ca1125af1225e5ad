package validator

import (
	"strings"

	"github.com/golang-module/carbon/v2"

	"github.com/voyago/travel-order-service/internal/app/entity"
	"github.com/voyago/travel-order-service/internal/app/model"
)

const (
	maxTextLength = 255

	dateFormat = "Y-m-d"
)

// ValidateCreateOrderRequest checks the create request field by field and
// returns a map of field name to message. An empty map means the request is valid.
func ValidateCreateOrderRequest(request model.CreateOrderRequest) map[string]string {
	fields := make(map[string]string)

	if len(strings.TrimSpace(request.RequesterName)) == 0 {
		fields["requester_name"] = "requester name is required"
	} else if len(request.RequesterName) > maxTextLength {
		fields["requester_name"] = "requester name must not exceed 255 characters"
	}

	if len(strings.TrimSpace(request.Destination)) == 0 {
		fields["destination"] = "destination is required"
	} else if len(request.Destination) > maxTextLength {
		fields["destination"] = "destination must not exceed 255 characters"
	}

	departure := carbon.ParseByFormat(request.DepartureDate, dateFormat)
	if len(request.DepartureDate) == 0 {
		fields["departure_date"] = "departure date is required"
	} else if departure.Error != nil {
		fields["departure_date"] = "departure date must be a valid date in YYYY-MM-DD format"
	} else if !departure.Gt(carbon.Now().EndOfDay()) {
		fields["departure_date"] = "departure date must be a future date"
	}

	returnDate := carbon.ParseByFormat(request.ReturnDate, dateFormat)
	if len(request.ReturnDate) == 0 {
		fields["return_date"] = "return date is required"
	} else if returnDate.Error != nil {
		fields["return_date"] = "return date must be a valid date in YYYY-MM-DD format"
	} else if departure.Error == nil && len(request.DepartureDate) > 0 && !returnDate.Gt(departure) {
		fields["return_date"] = "return date must be after the departure date"
	}

	if request.Price != nil && *request.Price < 0 {
		fields["price"] = "price must not be negative"
	}

	return fields
}

// ValidateOrder checks the semantic invariants of an order about to be
// persisted. The HTTP layer validates request shape; this guards the entity
// regardless of how it was built.
func ValidateOrder(order entity.TravelOrder) map[string]string {
	fields := make(map[string]string)

	if len(strings.TrimSpace(order.RequesterName)) == 0 {
		fields["requester_name"] = "requester name is required"
	} else if len(order.RequesterName) > maxTextLength {
		fields["requester_name"] = "requester name must not exceed 255 characters"
	}

	if len(strings.TrimSpace(order.Destination)) == 0 {
		fields["destination"] = "destination is required"
	} else if len(order.Destination) > maxTextLength {
		fields["destination"] = "destination must not exceed 255 characters"
	}

	departure := carbon.CreateFromStdTime(order.DepartureDate)
	if order.DepartureDate.IsZero() {
		fields["departure_date"] = "departure date is required"
	} else if !departure.Gt(carbon.Now().EndOfDay()) {
		fields["departure_date"] = "departure date must be a future date"
	}

	if order.ReturnDate.IsZero() {
		fields["return_date"] = "return date is required"
	} else if !order.DepartureDate.IsZero() && !carbon.CreateFromStdTime(order.ReturnDate).Gt(departure) {
		fields["return_date"] = "return date must be after the departure date"
	}

	if order.Price < 0 {
		fields["price"] = "price must not be negative"
	}

	return fields
}

// ValidateListOrdersRequest checks the optional list filters and builds the
// storage filter from them. The owner restriction is applied by the service,
// not here.
func ValidateListOrdersRequest(request model.ListOrdersRequest) (entity.OrderFilter, map[string]string) {
	fields := make(map[string]string)
	filter := entity.OrderFilter{}

	if len(request.Status) > 0 {
		status, ok := entity.ParseOrderStatus(request.Status)
		if !ok {
			fields["status"] = "status must be one of: pending, approved, cancelled"
		} else {
			filter.Status = status
		}
	}

	filter.Destination = strings.TrimSpace(request.Destination)

	startDate := carbon.ParseByFormat(request.StartDate, dateFormat)
	if len(request.StartDate) > 0 {
		if startDate.Error != nil {
			fields["start_date"] = "start date must be a valid date in YYYY-MM-DD format"
		} else {
			filter.StartDate = startDate.ToStdTime()
		}
	}

	endDate := carbon.ParseByFormat(request.EndDate, dateFormat)
	if len(request.EndDate) > 0 {
		if endDate.Error != nil {
			fields["end_date"] = "end date must be a valid date in YYYY-MM-DD format"
		} else if len(request.StartDate) > 0 && startDate.Error == nil && endDate.Lt(startDate) {
			fields["end_date"] = "end date must not be before the start date"
		} else {
			filter.EndDate = endDate.ToStdTime()
		}
	}

	return filter, fields
}
