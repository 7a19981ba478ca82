package repos

import (
	"shopbench/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// Create inserts a new order row. Orders are immutable once written.
func (r *OrderRepo) Create(o domain.Order) error {
	_, err := r.db.Exec(`
	  INSERT INTO orders(id, product_id, quantity, total_price, created_at)
	  VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, o.ID, o.ProductID, o.Quantity, o.TotalPrice)
	return err
}

func (r *OrderRepo) Get(orderID string) (domain.Order, error) {
	var o domain.Order
	err := r.db.Get(&o, `
	  SELECT id, product_id, quantity, total_price, created_at
	  FROM orders
	  WHERE id = ?
	`, orderID)
	return o, err
}

// CountByProduct returns how many orders reference a product.
func (r *OrderRepo) CountByProduct(productID int64) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM orders WHERE product_id = ?`, productID)
	return n, err
}

// CreateWithStockDecrement applies the guarded stock decrement and the order
// insert as one transaction: either both commit or neither does, so a failed
// insert cannot leave stock decremented.
func (r *OrderRepo) CreateWithStockDecrement(o domain.Order) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
		UPDATE products
		SET stock = stock - ?
		WHERE id = ? AND stock >= ?
	`, o.Quantity, o.ProductID, o.Quantity)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrInsufficientStock
	}

	if _, err := tx.Exec(`
	  INSERT INTO orders(id, product_id, quantity, total_price, created_at)
	  VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, o.ID, o.ProductID, o.Quantity, o.TotalPrice); err != nil {
		return err
	}

	return tx.Commit()
}
