package services

import (
	"database/sql"
	"errors"
	"fmt"

	"shopbench/internal/domain"
	"shopbench/internal/repos"

	"github.com/google/uuid"
)

// NaiveOrderService places orders the slow way: every step is its own store
// round trip with no surrounding transaction. The gap between the stock check
// and the decrement is deliberate; two concurrent calls can interleave there
// and oversell the product. Do not "fix" this path.
type NaiveOrderService struct {
	Products *repos.ProductRepo
	Orders   *repos.OrderRepo
	Load     LoadProfile

	// BeforeDecrement, when set, runs between the stock check and the
	// decrement. Tests use it to hold callers inside the race window.
	BeforeDecrement func()
}

func NewNaiveOrderService(products *repos.ProductRepo, orders *repos.OrderRepo, load LoadProfile) *NaiveOrderService {
	return &NaiveOrderService{Products: products, Orders: orders, Load: load}
}

func (s *NaiveOrderService) Place(productID int64, quantity int) (OrderReceipt, error) {
	if quantity <= 0 {
		return OrderReceipt{}, ErrInvalidQuantity
	}

	s.Load.Apply()

	p, err := s.Products.Get(productID)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderReceipt{}, ErrProductNotFound
	}
	if err != nil {
		return OrderReceipt{}, fmt.Errorf("load product: %w", err)
	}

	// Redundant second stock check, separate round trip.
	stock, err := s.Products.Stock(productID)
	if err != nil {
		return OrderReceipt{}, fmt.Errorf("check stock: %w", err)
	}
	if stock < quantity {
		return OrderReceipt{}, ErrInsufficientStock
	}

	// Informational order count; the result is discarded.
	if _, err := s.Orders.CountByProduct(productID); err != nil {
		return OrderReceipt{}, fmt.Errorf("count orders: %w", err)
	}

	if s.BeforeDecrement != nil {
		s.BeforeDecrement()
	}

	// Unguarded decrement: the check above and this update are not atomic.
	if err := s.Products.DecrementStock(productID, quantity); err != nil {
		return OrderReceipt{}, fmt.Errorf("decrement stock: %w", err)
	}

	order := domain.Order{
		ID:         uuid.NewString(),
		ProductID:  productID,
		Quantity:   quantity,
		TotalPrice: p.Price * int64(quantity), // price frozen at lookup time
	}
	if err := s.Orders.Create(order); err != nil {
		return OrderReceipt{}, fmt.Errorf("create order: %w", err)
	}

	// Re-read the order we just wrote, then the product, for the response.
	saved, err := s.Orders.Get(order.ID)
	if err != nil {
		return OrderReceipt{}, fmt.Errorf("reload order: %w", err)
	}
	snap, err := s.Products.ForOrder(productID)
	if err != nil {
		return OrderReceipt{}, fmt.Errorf("reload product: %w", err)
	}

	return OrderReceipt{
		ID:             saved.ID,
		ProductName:    snap.Name,
		Quantity:       saved.Quantity,
		TotalPrice:     saved.TotalPrice,
		RemainingStock: snap.Stock,
	}, nil
}
