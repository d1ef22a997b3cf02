package domain

// CartItem is one line of the user's cart as the cart service returns it.
// total_price is computed server-side; it is never recalculated locally.
type CartItem struct {
	ID         int64   `json:"id"`
	ProductID  int64   `json:"product_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	UserID     int64   `json:"user_id"`
	TotalPrice float64 `json:"total_price"`
}

// CartSummary is the server-computed aggregate over the cart. TotalItems is
// the summed quantity, ItemsCount the number of distinct lines. Pricing and
// tax rules live on the server, so the client treats this as read-only and
// never derives it from the line items.
type CartSummary struct {
	UserID      int64   `json:"user_id"`
	TotalItems  int     `json:"total_items"`
	TotalAmount float64 `json:"total_amount"`
	ItemsCount  int     `json:"items_count"`
}

// CartSnapshot pairs the line items with their summary, fetched together.
type CartSnapshot struct {
	Items   []CartItem
	Summary CartSummary
}

func (s CartSnapshot) Empty() bool {
	return len(s.Items) == 0
}
