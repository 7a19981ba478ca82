package repos

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string, seedCount int) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed synthetic products if the DB is empty (idempotent; safe on every start)
	if err := seedIfEmpty(db, seedCount); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  price INTEGER NOT NULL CHECK (price >= 0),
  stock INTEGER NOT NULL,
  description TEXT
);

CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  product_id INTEGER REFERENCES products(id),
  quantity INTEGER NOT NULL,
  total_price INTEGER NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_product ON orders(product_id);
`
	_, err := db.Exec(schema)
	return err
}

var (
	seedCategories = []string{"Electronics", "Apparel", "Books", "Appliances", "Sports", "Beauty", "Grocery", "Toys", "Household", "Automotive"}
	seedBrands     = []string{"Apple", "Samsung", "LG", "Nike", "Adidas", "Uniqlo", "Zara", "Sony", "Microsoft", "Google"}
	seedAdjectives = []string{"Premium", "Bestseller", "New", "Popular", "Limited", "Budget", "Deluxe", "Practical", "Smart", "Handy"}
)

// seedIfEmpty populates products with count synthetic items on first startup.
// Existing data is left untouched.
func seedIfEmpty(db *sqlx.DB, count int) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		log.Printf("[seed] found %d existing products", n)
		return nil
	}
	if count <= 0 {
		return nil
	}

	log.Printf("[seed] inserting %d demo products", count)

	tx, err := db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Preparex(`INSERT INTO products(name, price, stock, description) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i := 1; i <= count; i++ {
		category := seedCategories[rand.Intn(len(seedCategories))]
		brand := seedBrands[rand.Intn(len(seedBrands))]
		adjective := seedAdjectives[rand.Intn(len(seedAdjectives))]

		name := fmt.Sprintf("%s %s %s %d", brand, adjective, category, i)
		price := int64(rand.Intn(2_000_000) + 10_000)
		stock := rand.Intn(100) + 10
		description := fmt.Sprintf("%s %s - a quality product from %s.", adjective, category, brand)

		if _, err := stmt.Exec(name, price, stock, description); err != nil {
			return err
		}
	}

	return tx.Commit()
}
