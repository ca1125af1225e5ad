package entity

// OrderEvent is emitted to the notification sink after a status transition
// has been committed. Status is set for cancellations only.
type OrderEvent struct {
	OrderID OrderID
	OwnerID UserID
	Amount  float64
	Status  OrderStatus
}
