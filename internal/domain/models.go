package domain

type Product struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Price       int64  `db:"price" json:"price"`
	Stock       int    `db:"stock" json:"stock"`
	Description string `db:"description" json:"description"`
}

// ProductDetail is a Product plus aggregates derived live from the orders table.
type ProductDetail struct {
	Product
	OrderCount int `db:"order_count" json:"order_count"`
	TotalSold  int `db:"total_sold" json:"total_sold"`
}

// ProductSnapshot carries the minimal fields needed to validate and price an order.
type ProductSnapshot struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Price int64  `db:"price"`
	Stock int    `db:"stock"`
}

type Order struct {
	ID         string `db:"id"`
	ProductID  int64  `db:"product_id"`
	Quantity   int    `db:"quantity"`
	TotalPrice int64  `db:"total_price"`
	CreatedAt  string `db:"created_at"`
}
