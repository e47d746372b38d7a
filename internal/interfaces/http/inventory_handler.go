package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frigoerp/frigorifico-api/internal/application/dto"
	appinventory "github.com/frigoerp/frigorifico-api/internal/application/inventory"
)

// InventoryHandler movimentos manuais de estoque e lotes de abate.
type InventoryHandler struct {
	movementUC  *appinventory.MovementUseCase
	slaughterUC *appinventory.SlaughterUseCase
}

// NewInventoryHandler constrói o handler.
func NewInventoryHandler(movementUC *appinventory.MovementUseCase, slaughterUC *appinventory.SlaughterUseCase) *InventoryHandler {
	return &InventoryHandler{movementUC: movementUC, slaughterUC: slaughterUC}
}

// RegisterMovement registra um ajuste manual de estoque (ENTRADA ou SAIDA).
// POST /api/inventory/movements
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.movementUC.RegisterMovement(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements extrato de movimentações de um produto.
// GET /api/inventory/movements/:productId
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.movementUC.ListByProduct(c.Context(), c.Params("productId"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RegisterSlaughter registra um lote de abate: entrada dos cortes no estoque
// com rendimento carcaça/vivo calculado.
// POST /api/inventory/slaughters
func (h *InventoryHandler) RegisterSlaughter(c *fiber.Ctx) error {
	var in dto.RegisterSlaughterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.slaughterUC.RegisterSlaughter(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetSlaughter devolve um lote de abate com itens.
// GET /api/inventory/slaughters/:id
func (h *InventoryHandler) GetSlaughter(c *fiber.Ctx) error {
	out, err := h.slaughterUC.GetSlaughter(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListSlaughters lista lotes de abate.
// GET /api/inventory/slaughters
func (h *InventoryHandler) ListSlaughters(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.slaughterUC.ListSlaughters(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
