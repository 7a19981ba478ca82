package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	applog "shopbench/internal/log"
	"shopbench/internal/services"
)

type OrderHandler struct {
	Orders services.OrderPlacer
	// Message is included in success payloads when set (the v1 API does this).
	Message string
	// Version tags error payloads ("v2" on the tuned API, empty on v1).
	Version string
}

type placeOrderRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

func (h *OrderHandler) Place(c *fiber.Ctx) error {
	start := time.Now()

	var req placeOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, "invalid request body", h.Version)
	}

	receipt, err := h.Orders.Place(req.ProductID, req.Quantity)
	if err != nil {
		return h.fail(c, req, err)
	}

	applog.Audit(c, "order.place", map[string]any{
		"order_id":    receipt.ID,
		"product_id":  req.ProductID,
		"quantity":    req.Quantity,
		"total_price": receipt.TotalPrice,
		"elapsed":     time.Since(start).String(),
	})

	body := fiber.Map{
		"order":        receipt,
		"responseTime": responseTime(start),
	}
	if h.Message != "" {
		body["message"] = h.Message
	}
	return c.JSON(body)
}

func (h *OrderHandler) fail(c *fiber.Ctx, req placeOrderRequest, err error) error {
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		return errorJSON(c, fiber.StatusNotFound, "product not found", h.Version)
	case errors.Is(err, services.ErrInvalidQuantity):
		return errorJSON(c, fiber.StatusBadRequest, err.Error(), h.Version)
	case errors.Is(err, services.ErrInsufficientStock):
		return errorJSON(c, fiber.StatusBadRequest, "insufficient stock", h.Version)
	default:
		applog.Error(c, "order.place", err, map[string]any{
			"product_id": req.ProductID,
			"quantity":   req.Quantity,
		})
		return errorJSON(c, fiber.StatusInternalServerError, err.Error(), h.Version)
	}
}
