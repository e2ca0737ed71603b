package models

// CartItem is one line in a cart. Product fields are snapshotted at add time
// so the line keeps its price and name even if the catalog entry changes.
// ProductID is a weak reference; it is not validated against the catalog.
type CartItem struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Size        string  `json:"size"`
	Color       string  `json:"color"`
	Notes       string  `json:"notes"`
	Image       string  `json:"image"`
	Quantity    int     `json:"quantity"`
}

// CartTotals sums quantity and price over a line sequence. Totals are always
// recomputed from the lines, never cached.
func CartTotals(items []CartItem) (totalItems int, totalPrice float64) {
	for _, it := range items {
		totalItems += it.Quantity
		totalPrice += it.Price * float64(it.Quantity)
	}
	return totalItems, totalPrice
}
