package services

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidQuantity   = errors.New("quantity must be a positive integer")
)

// OrderReceipt is what a successful place-order call hands back to the caller.
type OrderReceipt struct {
	ID             string `json:"id"`
	ProductName    string `json:"productName"`
	Quantity       int    `json:"quantity"`
	TotalPrice     int64  `json:"totalPrice"`
	RemainingStock int    `json:"remainingStock"`
}

// OrderPlacer is the shared contract of both order-placement disciplines.
type OrderPlacer interface {
	Place(productID int64, quantity int) (OrderReceipt, error)
}
