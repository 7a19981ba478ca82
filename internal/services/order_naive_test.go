package services_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"shopbench/internal/repos"
	"shopbench/internal/services"
)

func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	// one connection so every query sees the same in-memory database
	db.SetMaxOpenConns(1)
	schema := `
	CREATE TABLE products(
	  id INTEGER PRIMARY KEY AUTOINCREMENT,
	  name TEXT NOT NULL,
	  price INTEGER NOT NULL,
	  stock INTEGER NOT NULL,
	  description TEXT
	);
	CREATE TABLE orders(
	  id TEXT PRIMARY KEY,
	  product_id INTEGER,
	  quantity INTEGER NOT NULL,
	  total_price INTEGER NOT NULL,
	  created_at TEXT DEFAULT CURRENT_TIMESTAMP
	);
	INSERT INTO products(id, name, price, stock, description)
	  VALUES (1, 'LG Deluxe Appliances 1', 1000, 10, 'demo item');
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func naiveSvc(db *sqlx.DB) *services.NaiveOrderService {
	return services.NewNaiveOrderService(
		repos.NewProductRepo(db), repos.NewOrderRepo(db), services.LoadProfile{})
}

func TestNaiveOrder_Place(t *testing.T) {
	db := memdb(t)
	svc := naiveSvc(db)

	r, err := svc.Place(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if r.ID == "" {
		t.Fatal("no order id")
	}
	if r.ProductName != "LG Deluxe Appliances 1" {
		t.Fatalf("bad product name: %q", r.ProductName)
	}
	if r.TotalPrice != 3000 {
		t.Fatalf("want totalPrice=3000, got %d", r.TotalPrice)
	}
	if r.RemainingStock != 7 {
		t.Fatalf("want remainingStock=7, got %d", r.RemainingStock)
	}

	d, err := repos.NewProductRepo(db).Detail(1)
	if err != nil {
		t.Fatal(err)
	}
	if d.OrderCount != 1 || d.TotalSold != 3 || d.Stock != 7 {
		t.Fatalf("want order_count=1 total_sold=3 stock=7, got %+v", d)
	}
}

func TestNaiveOrder_AggregatesAcrossOrders(t *testing.T) {
	db := memdb(t)
	svc := naiveSvc(db)

	if _, err := svc.Place(1, 2); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Place(1, 5); err != nil {
		t.Fatal(err)
	}

	d, err := repos.NewProductRepo(db).Detail(1)
	if err != nil {
		t.Fatal(err)
	}
	if d.OrderCount != 2 || d.TotalSold != 7 {
		t.Fatalf("want order_count=2 total_sold=7, got %+v", d)
	}
}

func TestNaiveOrder_ProductNotFound(t *testing.T) {
	db := memdb(t)
	svc := naiveSvc(db)

	_, err := svc.Place(999, 1)
	if !errors.Is(err, services.ErrProductNotFound) {
		t.Fatalf("want ErrProductNotFound, got %v", err)
	}
	// no partial state
	n, _ := repos.NewOrderRepo(db).CountByProduct(999)
	if n != 0 {
		t.Fatalf("no orders may exist for a missing product, got %d", n)
	}
}

func TestNaiveOrder_InsufficientStock(t *testing.T) {
	db := memdb(t)
	svc := naiveSvc(db)

	_, err := svc.Place(1, 11)
	if !errors.Is(err, services.ErrInsufficientStock) {
		t.Fatalf("want ErrInsufficientStock, got %v", err)
	}
	stock, _ := repos.NewProductRepo(db).Stock(1)
	if stock != 10 {
		t.Fatalf("failed call must leave stock unchanged, got %d", stock)
	}
}

func TestNaiveOrder_InvalidQuantity(t *testing.T) {
	db := memdb(t)
	svc := naiveSvc(db)

	for _, qty := range []int{0, -3} {
		if _, err := svc.Place(1, qty); !errors.Is(err, services.ErrInvalidQuantity) {
			t.Fatalf("qty=%d: want ErrInvalidQuantity, got %v", qty, err)
		}
	}
}

func TestNaiveOrder_TotalPriceFrozenAtAcceptance(t *testing.T) {
	db := memdb(t)
	svc := naiveSvc(db)

	r, err := svc.Place(1, 3)
	if err != nil {
		t.Fatal(err)
	}

	// a later price change must not rewrite the recorded total
	db.MustExec(`UPDATE products SET price = 9999 WHERE id = 1`)

	o, err := repos.NewOrderRepo(db).Get(r.ID)
	if err != nil {
		t.Fatal(err)
	}
	if o.TotalPrice != 3000 {
		t.Fatalf("recorded total must stay 3000, got %d", o.TotalPrice)
	}
}

// Two callers parked at the check-then-act gap both pass the stock check and
// both decrement: the naive path oversells. This is the demonstrated failure
// mode of the v1 API, not a bug in the test.
func TestNaiveOrder_OversellUnderConcurrency(t *testing.T) {
	db := memdb(t)
	db.MustExec(`UPDATE products SET stock = 1 WHERE id = 1`)

	svc := naiveSvc(db)
	var barrier sync.WaitGroup
	barrier.Add(2)
	svc.BeforeDecrement = func() {
		// hold each caller until both have passed the stock check
		barrier.Done()
		barrier.Wait()
	}

	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := svc.Place(1, 1)
			errs <- err
		}()
	}
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			t.Fatalf("both naive orders should report success, got %v", err)
		}
	}

	stock, _ := repos.NewProductRepo(db).Stock(1)
	if stock != -1 {
		t.Fatalf("want oversold stock=-1, got %d", stock)
	}
	n, _ := repos.NewOrderRepo(db).CountByProduct(1)
	if n != 2 {
		t.Fatalf("want 2 accepted orders, got %d", n)
	}
}
