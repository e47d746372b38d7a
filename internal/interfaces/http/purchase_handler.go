package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frigoerp/frigorifico-api/internal/application/dto"
	"github.com/frigoerp/frigorifico-api/internal/application/purchases"
)

// PurchaseHandler registro e consulta de compras.
type PurchaseHandler struct {
	uc *purchases.RegisterPurchaseUseCase
}

// NewPurchaseHandler constrói o handler.
func NewPurchaseHandler(uc *purchases.RegisterPurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// Register registra uma compra: entrada de estoque, custo médio recalculado e
// contas a pagar parceladas quando for o caso. Tudo ou nada.
// POST /api/purchases
func (h *PurchaseHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.RegisterPurchase(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get devolve a compra com itens.
// GET /api/purchases/:id
func (h *PurchaseHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetPurchase(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista compras.
// GET /api/purchases
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListPurchases(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
