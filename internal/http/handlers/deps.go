package handlers

import (
	"shopbench/internal/config"
	"shopbench/internal/repos"
	"shopbench/internal/services"

	"github.com/jmoiron/sqlx"
)

// Deps wires one handler set per API version over a shared store. v1 and v2
// differ only in which order discipline they run and how they dress responses.
type Deps struct {
	V1Product *ProductHandler
	V1Order   *OrderHandler
	V2Product *ProductHandler
	V2Order   *OrderHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	prodRepo := repos.NewProductRepo(db)
	orderRepo := repos.NewOrderRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	naiveSvc := services.NewNaiveOrderService(prodRepo, orderRepo, services.LoadProfile{
		Delay:          cfg.V1Delay,
		HashRounds:     cfg.V1HashRounds,
		ScratchObjects: cfg.V1ScratchObjects,
	})
	atomicSvc := services.NewAtomicOrderService(prodRepo, orderRepo)

	return &Deps{
		V1Product: &ProductHandler{Catalog: catalogSvc},
		V1Order:   &OrderHandler{Orders: naiveSvc, Message: "order placed"},
		V2Product: &ProductHandler{Catalog: catalogSvc, Version: "v2"},
		V2Order:   &OrderHandler{Orders: atomicSvc, Version: "v2"},
	}
}
