package purchases

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/frigoerp/frigorifico-api/internal/application/dto"
	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
	"github.com/frigoerp/frigorifico-api/internal/domain/inventory"
	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

// RegisterPurchaseUseCase registra compras de forma transacional: incrementa
// estoque, recalcula o custo médio ponderado de cada produto, lança um movimento
// de ENTRADA por linha e cria os títulos a pagar parcelados.
type RegisterPurchaseUseCase struct {
	txRunner     TxRunner
	supplierRepo repository.SupplierRepository
	purchaseRepo repository.PurchaseRepository
}

// NewRegisterPurchaseUseCase constrói o caso de uso.
func NewRegisterPurchaseUseCase(txRunner TxRunner, supplierRepo repository.SupplierRepository, purchaseRepo repository.PurchaseRepository) *RegisterPurchaseUseCase {
	return &RegisterPurchaseUseCase{txRunner: txRunner, supplierRepo: supplierRepo, purchaseRepo: purchaseRepo}
}

// RegisterPurchase executa o fluxo completo do registro de compra.
// SupplierID vazio vira o sentinela de despesa operacional; fornecedor informado
// precisa existir e estar ativo.
func (uc *RegisterPurchaseUseCase) RegisterPurchase(ctx context.Context, userID string, in dto.RegisterPurchaseRequest) (*dto.PurchaseResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if item.UnitCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	supplierID := in.SupplierID
	if supplierID == "" {
		supplierID = entity.OperationalExpense
	} else {
		supplier, err := uc.supplierRepo.GetByID(supplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil || !supplier.Active {
			return nil, domain.ErrNotFound
		}
	}

	installments := in.Installments
	if installments <= 0 {
		installments = 1
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	now := time.Now()
	purchaseID := uuid.New().String()

	var purchase *entity.Purchase
	var items []*entity.PurchaseItem

	err := uc.txRunner.RunPurchase(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
		purchaseRepo repository.PurchaseRepository,
		payableRepo repository.PayableRepository,
	) error {
		// 1) Bloqueia e valida os produtos; cada um é lido uma única vez,
		// mesmo quando aparece em mais de uma linha
		locked := make(map[string]*entity.Product, len(in.Items))
		order := make([]string, 0, len(in.Items))
		for _, item := range in.Items {
			if _, ok := locked[item.ProductID]; ok {
				continue
			}
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil || !product.Active {
				return fmt.Errorf("%w: %s", domain.ErrProductNotFound, item.ProductID)
			}
			locked[item.ProductID] = product
			order = append(order, item.ProductID)
		}

		// 2) Total da compra
		var total decimal.Decimal
		items = items[:0]
		for _, item := range in.Items {
			subtotal := item.Quantity.Mul(item.UnitCost).Round(2)
			total = total.Add(subtotal)
			items = append(items, &entity.PurchaseItem{
				ID:         uuid.New().String(),
				PurchaseID: purchaseID,
				ProductID:  item.ProductID,
				Quantity:   item.Quantity,
				UnitCost:   item.UnitCost,
				Subtotal:   subtotal,
			})
		}

		purchase = &entity.Purchase{
			ID:            purchaseID,
			SupplierID:    supplierID,
			InvoiceNumber: in.InvoiceNumber,
			Date:          date,
			Installments:  installments,
			FirstDueDate:  in.FirstDueDate,
			Total:         total.Round(2),
			CreatedAt:     now,
			CreatedBy:     userID,
		}
		if err := purchaseRepo.Create(purchase); err != nil {
			return err
		}
		for _, it := range items {
			if err := purchaseRepo.CreateItem(it); err != nil {
				return err
			}
		}

		// 3) Custo médio ponderado acumulado linha a linha em memória; linhas
		// repetidas encadeiam sobre a quantidade e o custo já absorvidos
		for _, item := range in.Items {
			product := locked[item.ProductID]
			product.UnitCost = inventory.WeightedAverageCost(product.Quantity, product.UnitCost, item.Quantity, item.UnitCost)
			product.Quantity = product.Quantity.Add(item.Quantity)
		}

		// Uma escrita de custo e estoque por produto, um movimento de ENTRADA por linha
		for _, id := range order {
			product := locked[id]
			if err := productRepo.UpdateCost(id, product.UnitCost); err != nil {
				return err
			}
			if err := productRepo.UpdateStock(id, product.Quantity); err != nil {
				return err
			}
		}
		for _, item := range in.Items {
			mov := &entity.Movement{
				ID:          uuid.New().String(),
				ProductID:   item.ProductID,
				Type:        entity.MovementTypeEntry,
				Quantity:    item.Quantity,
				Reason:      fmt.Sprintf("Compra %s", purchaseID),
				ReferenceID: purchaseID,
				Date:        date,
				CreatedAt:   now,
				CreatedBy:   userID,
			}
			if err := movementRepo.Create(mov); err != nil {
				return err
			}
		}

		// 4) Títulos a pagar: um por parcela, vencimentos mensais a partir da primeira
		if in.FirstDueDate != nil {
			for _, p := range splitInstallments(purchase.Total, installments, *in.FirstDueDate) {
				payable := &entity.Payable{
					ID:          uuid.New().String(),
					SupplierID:  supplierID,
					PurchaseID:  purchaseID,
					Category:    in.InvoiceNumber,
					Amount:      p.amount,
					IssueDate:   date,
					DueDate:     p.dueDate,
					Installment: p.ordinal,
					Status:      entity.TitleStatusPending,
					CreatedAt:   now,
				}
				if err := payableRepo.Create(payable); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toPurchaseResponse(purchase, items), nil
}

type installment struct {
	ordinal int
	amount  decimal.Decimal
	dueDate time.Time
}

// splitInstallments divide o total em n parcelas de 2 casas; a última absorve a
// sobra do arredondamento para que a soma feche exatamente no total.
func splitInstallments(total decimal.Decimal, n int, firstDue time.Time) []installment {
	base := total.Div(decimal.NewFromInt(int64(n))).Round(2)
	out := make([]installment, 0, n)
	var accumulated decimal.Decimal
	for i := 1; i <= n; i++ {
		amount := base
		if i == n {
			amount = total.Sub(accumulated)
		}
		accumulated = accumulated.Add(amount)
		out = append(out, installment{
			ordinal: i,
			amount:  amount,
			dueDate: firstDue.AddDate(0, i-1, 0),
		})
	}
	return out
}

// GetPurchase devolve a compra completa com linhas.
func (uc *RegisterPurchaseUseCase) GetPurchase(ctx context.Context, id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.purchaseRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase, items), nil
}

// ListPurchases lista compras paginadas.
func (uc *RegisterPurchaseUseCase) ListPurchases(ctx context.Context, limit, offset int) (*dto.PurchaseListResponse, error) {
	list, err := uc.purchaseRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPurchaseResponse(p, nil))
	}
	return &dto.PurchaseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toPurchaseResponse(p *entity.Purchase, items []*entity.PurchaseItem) *dto.PurchaseResponse {
	if p == nil {
		return nil
	}
	resp := &dto.PurchaseResponse{
		ID:            p.ID,
		SupplierID:    p.SupplierID,
		InvoiceNumber: p.InvoiceNumber,
		Date:          p.Date,
		Installments:  p.Installments,
		FirstDueDate:  p.FirstDueDate,
		Total:         p.Total,
		Items:         make([]dto.PurchaseItemResponse, 0, len(items)),
		CreatedAt:     p.CreatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.PurchaseItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitCost:  it.UnitCost,
			Subtotal:  it.Subtotal,
		})
	}
	return resp
}
