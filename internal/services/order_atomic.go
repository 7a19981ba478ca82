package services

import (
	"database/sql"
	"errors"
	"fmt"

	"shopbench/internal/domain"
	"shopbench/internal/repos"

	"github.com/google/uuid"
)

// AtomicOrderService places orders in two store round trips: one snapshot
// lookup, then a guarded decrement and order insert committed as a single
// transaction. Concurrent callers serialize on the conditional update, so the
// product cannot be oversold.
type AtomicOrderService struct {
	Products *repos.ProductRepo
	Orders   *repos.OrderRepo
}

func NewAtomicOrderService(products *repos.ProductRepo, orders *repos.OrderRepo) *AtomicOrderService {
	return &AtomicOrderService{Products: products, Orders: orders}
}

func (s *AtomicOrderService) Place(productID int64, quantity int) (OrderReceipt, error) {
	if quantity <= 0 {
		return OrderReceipt{}, ErrInvalidQuantity
	}

	snap, err := s.Products.ForOrder(productID)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderReceipt{}, ErrProductNotFound
	}
	if err != nil {
		return OrderReceipt{}, fmt.Errorf("load product: %w", err)
	}
	if snap.Stock < quantity {
		return OrderReceipt{}, ErrInsufficientStock
	}

	order := domain.Order{
		ID:         uuid.NewString(),
		ProductID:  productID,
		Quantity:   quantity,
		TotalPrice: snap.Price * int64(quantity),
	}
	// The guarded update inside re-checks stock at apply time; losing a race
	// after the snapshot above surfaces as ErrInsufficientStock here.
	if err := s.Orders.CreateWithStockDecrement(order); err != nil {
		if errors.Is(err, repos.ErrInsufficientStock) {
			return OrderReceipt{}, ErrInsufficientStock
		}
		return OrderReceipt{}, fmt.Errorf("create order: %w", err)
	}

	return OrderReceipt{
		ID:             order.ID,
		ProductName:    snap.Name,
		Quantity:       quantity,
		TotalPrice:     order.TotalPrice,
		RemainingStock: snap.Stock - quantity,
	}, nil
}
