package inventory

import "github.com/shopspring/decimal"

// WeightedAverageCost calcula o custo médio ponderado após uma entrada.
// NovoCusto = ((EstoqueAtual * CustoAtual) + (QtdEntrada * CustoEntrada)) / (EstoqueAtual + QtdEntrada)
func WeightedAverageCost(currentQty, currentCost, entryQty, entryCost decimal.Decimal) decimal.Decimal {
	sum := currentQty.Add(entryQty)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := currentQty.Mul(currentCost).Add(entryQty.Mul(entryCost))
	return num.Div(sum)
}
