package repository

import "github.com/frigoerp/frigorifico-api/internal/domain/entity"

// MovementRepository porta do livro de movimentações. Só insere e lista:
// movimentos nunca são alterados nem removidos.
type MovementRepository interface {
	Create(m *entity.Movement) error
	ListByProduct(productID string, limit, offset int) ([]*entity.Movement, error)
	ListByReference(referenceID string) ([]*entity.Movement, error)
}
