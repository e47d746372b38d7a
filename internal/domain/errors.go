package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Erros de domínio (sem dependências de infraestrutura).
var (
	ErrNotFound            = errors.New("recurso não encontrado")
	ErrProductNotFound     = errors.New("produto não encontrado")
	ErrBankAccountNotFound = errors.New("conta bancária não encontrada")
	ErrUserNotFound        = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists  = errors.New("e-mail já cadastrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("não autorizado")
	ErrForbidden           = errors.New("acesso negado")
	ErrConflict            = errors.New("conflito de concorrência, tente novamente")
	ErrInsufficientStock   = errors.New("estoque insuficiente")
	ErrAlreadyPaid         = errors.New("título já baixado")
	ErrExternalService     = errors.New("falha no serviço externo")
)

// InsufficientStockError carrega o produto ofensor e o déficit, para que o chamador
// saiba exatamente qual linha da venda falhou. errors.Is(err, ErrInsufficientStock) é verdadeiro.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Available   decimal.Decimal
	Requested   decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	shortfall := e.Requested.Sub(e.Available)
	return fmt.Sprintf("estoque insuficiente para %q: disponível %s, solicitado %s (faltam %s)",
		e.ProductName, e.Available.String(), e.Requested.String(), shortfall.String())
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// Shortfall devolve a quantidade faltante.
func (e *InsufficientStockError) Shortfall() decimal.Decimal {
	return e.Requested.Sub(e.Available)
}

// ExternalServiceError preserva a mensagem do provedor fiscal e a lista estruturada
// de erros retornada, para exibição sem tradução. errors.Is(err, ErrExternalService) é verdadeiro.
type ExternalServiceError struct {
	Provider string
	Message  string
	Details  []string
}

func (e *ExternalServiceError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("%s: %s", e.Provider, e.Message)
	}
	return fmt.Sprintf("%s: %s (%d erros)", e.Provider, e.Message, len(e.Details))
}

// Unwrap permite errors.Is(err, ErrExternalService).
func (e *ExternalServiceError) Unwrap() error { return ErrExternalService }
