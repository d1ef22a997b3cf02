package domain

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Cancellable reports whether the storefront may request cancellation. The
// order service enforces the same rule and its rejection message wins when
// the local view is stale.
func (s OrderStatus) Cancellable() bool {
	return s == StatusPending || s == StatusConfirmed
}

type OrderItem struct {
	ID                 int64   `json:"id"`
	ProductID          int64   `json:"product_id"`
	Quantity           int     `json:"quantity"`
	UnitPrice          float64 `json:"unit_price"`
	TotalPrice         float64 `json:"total_price"`
	ProductName        string  `json:"product_name"`
	ProductDescription string  `json:"product_description,omitempty"`
}

// OrderSummary is the listing row returned by the paginated orders endpoint.
type OrderSummary struct {
	ID                int64       `json:"id"`
	UserID            int64       `json:"user_id"`
	TotalAmount       float64     `json:"total_amount"`
	Status            OrderStatus `json:"status"`
	CreatedAt         time.Time   `json:"created_at"`
	ItemsCount        int         `json:"items_count"`
	EstimatedDelivery *time.Time  `json:"estimated_delivery,omitempty"`
}

// Order is the full record returned by the detail and cancel endpoints.
type Order struct {
	ID                int64       `json:"id"`
	UserID            int64       `json:"user_id"`
	TotalAmount       float64     `json:"total_amount"`
	Status            OrderStatus `json:"status"`
	ShippingAddress   string      `json:"shipping_address"`
	BillingAddress    string      `json:"billing_address,omitempty"`
	Phone             string      `json:"phone"`
	Email             string      `json:"email"`
	Notes             string      `json:"notes,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
	EstimatedDelivery *time.Time  `json:"estimated_delivery,omitempty"`
	DeliveredAt       *time.Time  `json:"delivered_at,omitempty"`
	Items             []OrderItem `json:"items"`
}

// OrderPage is the envelope of the paginated listing.
type OrderPage struct {
	Orders      []OrderSummary `json:"orders"`
	TotalOrders int            `json:"total_orders"`
	Page        int            `json:"page"`
	PerPage     int            `json:"per_page"`
	TotalPages  int            `json:"total_pages"`
}
