package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frigoerp/frigorifico-api/internal/application/dto"
	"github.com/frigoerp/frigorifico-api/internal/application/fiscal"
)

// FiscalHandler emissão, consulta e cancelamento de NF-e de vendas.
type FiscalHandler struct {
	uc *fiscal.InvoiceUseCase
}

// NewFiscalHandler constrói o handler.
func NewFiscalHandler(uc *fiscal.InvoiceUseCase) *FiscalHandler {
	return &FiscalHandler{uc: uc}
}

// Emit envia a NF-e da venda ao provedor. O processamento é assíncrono;
// o status final chega pela consulta.
// POST /api/sales/:id/invoice
func (h *FiscalHandler) Emit(c *fiber.Ctx) error {
	out, err := h.uc.EmitForSale(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusAccepted).JSON(out)
}

// Consult atualiza o sub-registro fiscal com a situação corrente no provedor.
// GET /api/sales/:id/invoice
func (h *FiscalHandler) Consult(c *fiber.Ctx) error {
	out, err := h.uc.ConsultForSale(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Cancel cancela uma NF-e autorizada. Exige justificativa com ao menos 15 caracteres.
// DELETE /api/sales/:id/invoice
func (h *FiscalHandler) Cancel(c *fiber.Ctx) error {
	var in dto.CancelInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CancelForSale(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
