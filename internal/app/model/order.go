package model

type CreateOrderRequest struct {
	RequesterName  string   `json:"requester_name"`
	Destination    string   `json:"destination"`
	DepartureDate  string   `json:"departure_date"`
	ReturnDate     string   `json:"return_date"`
	Price          *float64 `json:"price,omitempty"`
	Hosting        string   `json:"hosting,omitempty"`
	Transportation string   `json:"transportation,omitempty"`
	Description    string   `json:"description,omitempty"`
}

type ListOrdersRequest struct {
	Status      string
	Destination string
	StartDate   string
	EndDate     string
}

type OrderResponse struct {
	ID             string        `json:"id"`
	RequesterName  string        `json:"requester_name"`
	Status         string        `json:"status"`
	Destination    string        `json:"destination"`
	DepartureDate  string        `json:"departure_date"`
	ReturnDate     string        `json:"return_date"`
	UserID         string        `json:"user_id"`
	Price          float64       `json:"price"`
	Hosting        string        `json:"hosting,omitempty"`
	Transportation string        `json:"transportation,omitempty"`
	Description    string        `json:"description,omitempty"`
	CreatedAt      string        `json:"created_at"`
	User           *UserResponse `json:"user,omitempty"`
}

type CreateOrderResponse struct {
	Data    OrderResponse `json:"data"`
	Message string        `json:"message"`
}

type OrderDataResponse struct {
	Data OrderResponse `json:"data"`
}

type OrdersResponse struct {
	Data []OrderResponse `json:"data"`
}

type FieldErrorsResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}
