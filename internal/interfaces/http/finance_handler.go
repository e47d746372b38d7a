package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frigoerp/frigorifico-api/internal/application/dto"
	"github.com/frigoerp/frigorifico-api/internal/application/finance"
)

// FinanceHandler títulos (receber/pagar), baixas e contas bancárias.
type FinanceHandler struct {
	settlementUC *finance.SettlementUseCase
	bankUC       *finance.BankAccountUseCase
}

// NewFinanceHandler constrói o handler.
func NewFinanceHandler(settlementUC *finance.SettlementUseCase, bankUC *finance.BankAccountUseCase) *FinanceHandler {
	return &FinanceHandler{settlementUC: settlementUC, bankUC: bankUC}
}

// ListReceivables lista contas a receber. ?status=PENDENTE|PAGO filtra.
// GET /api/finance/receivables
func (h *FinanceHandler) ListReceivables(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.settlementUC.ListReceivables(c.Context(), c.Query("status"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SettleReceivable baixa um título a receber creditando a conta bancária.
// POST /api/finance/receivables/:id/settle
func (h *FinanceHandler) SettleReceivable(c *fiber.Ctx) error {
	var in dto.SettleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.settlementUC.SettleReceivable(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListPayables lista contas a pagar.
// GET /api/finance/payables
func (h *FinanceHandler) ListPayables(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.settlementUC.ListPayables(c.Context(), c.Query("status"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SettlePayable baixa um título a pagar debitando a conta bancária.
// POST /api/finance/payables/:id/settle
func (h *FinanceHandler) SettlePayable(c *fiber.Ctx) error {
	var in dto.SettleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.settlementUC.SettlePayable(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CreateBankAccount cria uma conta bancária com saldo inicial.
// POST /api/finance/accounts
func (h *FinanceHandler) CreateBankAccount(c *fiber.Ctx) error {
	var in dto.CreateBankAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.bankUC.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetBankAccount busca uma conta por id.
// GET /api/finance/accounts/:id
func (h *FinanceHandler) GetBankAccount(c *fiber.Ctx) error {
	out, err := h.bankUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListBankAccounts lista as contas ativas.
// GET /api/finance/accounts
func (h *FinanceHandler) ListBankAccounts(c *fiber.Ctx) error {
	out, err := h.bankUC.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Statement extrato da conta com saldo anterior e novo em cada lançamento.
// GET /api/finance/accounts/:id/statement
func (h *FinanceHandler) Statement(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.bankUC.Statement(c.Context(), c.Params("id"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeactivateBankAccount desativa uma conta.
// DELETE /api/finance/accounts/:id
func (h *FinanceHandler) DeactivateBankAccount(c *fiber.Ctx) error {
	if err := h.bankUC.Deactivate(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
