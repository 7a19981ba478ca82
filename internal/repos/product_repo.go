package repos

import (
	"errors"

	"shopbench/internal/domain"

	"github.com/jmoiron/sqlx"
)

// ErrInsufficientStock is returned by guarded decrements when the conditional
// update matched no row (stock below the requested quantity).
var ErrInsufficientStock = errors.New("insufficient stock")

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// Detail returns the product plus order_count / total_sold aggregates computed
// from current order rows. Returns sql.ErrNoRows when the product is missing.
func (r *ProductRepo) Detail(id int64) (domain.ProductDetail, error) {
	var d domain.ProductDetail
	err := r.db.Get(&d, `
  SELECT
    p.id, p.name, p.price, p.stock, COALESCE(p.description,'') AS description,
    COALESCE(order_stats.order_count, 0) AS order_count,
    COALESCE(order_stats.total_quantity, 0) AS total_sold
  FROM products p
  LEFT JOIN (
    SELECT product_id, COUNT(*) AS order_count, SUM(quantity) AS total_quantity
    FROM orders
    WHERE product_id = ?
    GROUP BY product_id
  ) order_stats ON p.id = order_stats.product_id
  WHERE p.id = ?
`, id, id)
	return d, err
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
  SELECT id, name, price, stock, COALESCE(description,'') AS description
  FROM products
  WHERE id = ?
`, id)
	return p, err
}

// ForOrder returns the minimal fields needed to validate and price an order.
func (r *ProductRepo) ForOrder(id int64) (domain.ProductSnapshot, error) {
	var s domain.ProductSnapshot
	err := r.db.Get(&s, `SELECT id, name, price, stock FROM products WHERE id = ?`, id)
	return s, err
}

func (r *ProductRepo) Stock(id int64) (int, error) {
	var stock int
	err := r.db.Get(&stock, `SELECT stock FROM products WHERE id = ?`, id)
	return stock, err
}

// DecrementStock subtracts "by" units with no stock guard. A racing caller that
// passed its own stock check can drive stock negative; the v1 order path keeps
// this behavior on purpose.
func (r *ProductRepo) DecrementStock(id int64, by int) error {
	_, err := r.db.Exec(`UPDATE products SET stock = stock - ? WHERE id = ?`, by, id)
	return err
}

// DecrementStockGuarded subtracts "by" units only if enough stock exists at
// apply time. The check and the decrement are one conditional update, so
// concurrent callers serialize on the row and cannot both drain it.
func (r *ProductRepo) DecrementStockGuarded(id int64, by int) error {
	res, err := r.db.Exec(`
		UPDATE products
		SET stock = stock - ?
		WHERE id = ? AND stock >= ?
	`, by, id, by)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrInsufficientStock
	}
	return nil
}
