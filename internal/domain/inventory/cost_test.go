package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/frigoerp/frigorifico-api/internal/domain/inventory"
)

func TestWeightedAverageCost_MisturaLotes(t *testing.T) {
	// 100 kg a R$ 10,00 em estoque; entram 50 kg a R$ 16,00 → média R$ 12,00
	got := inventory.WeightedAverageCost(
		decimal.NewFromInt(100), decimal.NewFromInt(10),
		decimal.NewFromInt(50), decimal.NewFromInt(16),
	)
	assert.True(t, got.Equal(decimal.NewFromInt(12)), "custo médio esperado 12, obtido %s", got)
}

func TestWeightedAverageCost_EstoqueZerado(t *testing.T) {
	// Sem estoque anterior o custo passa a ser o da entrada
	got := inventory.WeightedAverageCost(
		decimal.Zero, decimal.Zero,
		decimal.NewFromInt(30), decimal.NewFromFloat(22.50),
	)
	assert.True(t, got.Equal(decimal.NewFromFloat(22.50)))
}

func TestWeightedAverageCost_SomaNaoPositiva(t *testing.T) {
	got := inventory.WeightedAverageCost(decimal.Zero, decimal.NewFromInt(10), decimal.Zero, decimal.NewFromInt(5))
	assert.True(t, got.IsZero(), "soma zero deve devolver custo zero")
}
