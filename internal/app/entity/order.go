package entity

import "time"

type OrderStatus string

const (
	StatusPendingOrder   OrderStatus = `pending`
	StatusApprovedOrder  OrderStatus = `approved`
	StatusCancelledOrder OrderStatus = `cancelled`
)

func ParseOrderStatus(raw string) (OrderStatus, bool) {
	status := OrderStatus(raw)
	switch status {
	case StatusPendingOrder, StatusApprovedOrder, StatusCancelledOrder:
		return status, true
	}

	return "", false
}

type OrderAction string

const (
	ActionApproveOrder OrderAction = `approve`
	ActionCancelOrder  OrderAction = `cancel`
)

// transitions is the closed transition table of the order lifecycle.
// Approved and cancelled are terminal: they have no outgoing entries.
var transitions = map[OrderStatus]map[OrderAction]OrderStatus{
	StatusPendingOrder: {
		ActionApproveOrder: StatusApprovedOrder,
		ActionCancelOrder:  StatusCancelledOrder,
	},
}

// Transition returns the status the order moves to when action is applied,
// or false when the current status does not permit the action.
func (s OrderStatus) Transition(action OrderAction) (OrderStatus, bool) {
	next, ok := transitions[s][action]

	return next, ok
}

type OrderID string

func (id OrderID) String() string {
	return string(id)
}

func (id OrderID) Valid() bool {
	return len(id) > 0
}

type TravelOrders []TravelOrder

type TravelOrder struct {
	ID             OrderID
	UserID         UserID
	RequesterName  string
	Destination    string
	DepartureDate  time.Time
	ReturnDate     time.Time
	Price          float64
	Hosting        string
	Transportation string
	Description    string
	Status         OrderStatus
	DateCreated    time.Time
}

// OrderFilter holds the optional list filters. Zero values mean "not set";
// set filters compose conjunctively.
type OrderFilter struct {
	OwnerID     UserID
	Status      OrderStatus
	Destination string
	StartDate   time.Time
	EndDate     time.Time
}
