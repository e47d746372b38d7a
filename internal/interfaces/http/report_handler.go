package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/frigoerp/frigorifico-api/internal/application/dto"
	"github.com/frigoerp/frigorifico-api/internal/application/reports"
)

// ReportHandler relatórios gerenciais.
type ReportHandler struct {
	cashFlowUC *reports.CashFlowUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(cashFlowUC *reports.CashFlowUseCase) *ReportHandler {
	return &ReportHandler{cashFlowUC: cashFlowUC}
}

// CashFlow fluxo de caixa diário entre duas datas (formato 2006-01-02).
// GET /api/reports/cashflow?from=...&to=...
func (h *ReportHandler) CashFlow(c *fiber.Ctx) error {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro 'from' inválido, use AAAA-MM-DD"})
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro 'to' inválido, use AAAA-MM-DD"})
	}
	out, err := h.cashFlowUC.Flow(c.Context(), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
