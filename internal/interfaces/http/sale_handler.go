package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frigoerp/frigorifico-api/internal/application/dto"
	"github.com/frigoerp/frigorifico-api/internal/application/reports"
	"github.com/frigoerp/frigorifico-api/internal/application/sales"
)

// SaleHandler registro e consulta de vendas.
type SaleHandler struct {
	uc        *sales.RegisterSaleUseCase
	receiptUC *reports.ReceiptUseCase
}

// NewSaleHandler constrói o handler.
func NewSaleHandler(uc *sales.RegisterSaleUseCase, receiptUC *reports.ReceiptUseCase) *SaleHandler {
	return &SaleHandler{uc: uc, receiptUC: receiptUC}
}

// Register registra uma venda: baixa estoque, grava movimentos e, conforme a
// condição de pagamento, credita a conta ou gera o título. Tudo ou nada.
// POST /api/sales
func (h *SaleHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.RegisterSale(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get devolve a venda com itens e sub-registro fiscal.
// GET /api/sales/:id
func (h *SaleHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetSale(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List lista vendas, mais recentes primeiro.
// GET /api/sales
func (h *SaleHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListSales(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Receipt devolve o recibo da venda em PDF.
// GET /api/sales/:id/receipt
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	data, err := h.receiptUC.SaleReceipt(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `inline; filename="recibo-venda.pdf"`)
	return c.Send(data)
}
