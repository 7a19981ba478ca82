package handlers

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	applog "shopbench/internal/log"
	"shopbench/internal/services"
	"shopbench/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
	// Version tags error payloads ("v2" on the tuned API, empty on v1).
	Version string
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	start := time.Now()

	id, ok := validate.ProductID(c.Params("id"))
	if !ok {
		return errorJSON(c, fiber.StatusNotFound, "product not found", h.Version)
	}

	d, err := h.Catalog.GetProductDetail(id)
	if errors.Is(err, sql.ErrNoRows) {
		return errorJSON(c, fiber.StatusNotFound, "product not found", h.Version)
	}
	if err != nil {
		applog.Error(c, "product.detail", err, map[string]any{"product_id": id})
		return errorJSON(c, fiber.StatusInternalServerError, err.Error(), h.Version)
	}

	applog.Info(c, "product.detail", map[string]any{
		"product_id": id,
		"elapsed":    time.Since(start).String(),
	})
	return c.JSON(fiber.Map{
		"product":      d,
		"responseTime": responseTime(start),
	})
}
