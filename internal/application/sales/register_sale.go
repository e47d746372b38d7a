package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/frigoerp/frigorifico-api/internal/application/dto"
	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

// RegisterSaleUseCase registra vendas de forma transacional: valida estoque com
// bloqueio de linha (SELECT FOR UPDATE), congela o custo unitário de cada linha,
// decrementa quantidades, lança um movimento de SAIDA por linha e cria o título
// a receber ou o lançamento bancário conforme a condição de pagamento.
type RegisterSaleUseCase struct {
	txRunner   TxRunner
	clientRepo repository.ClientRepository
	saleRepo   repository.SaleRepository
}

// NewRegisterSaleUseCase constrói o caso de uso.
func NewRegisterSaleUseCase(txRunner TxRunner, clientRepo repository.ClientRepository, saleRepo repository.SaleRepository) *RegisterSaleUseCase {
	return &RegisterSaleUseCase{txRunner: txRunner, clientRepo: clientRepo, saleRepo: saleRepo}
}

// RegisterSale executa o fluxo completo do núcleo transacional de venda.
// Qualquer falha em qualquer passo desfaz tudo: sem venda, sem movimento,
// sem mudança de estoque, sem título, sem saldo.
func (uc *RegisterSaleUseCase) RegisterSale(ctx context.Context, userID string, in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	if in.ClientID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	switch in.PaymentCondition {
	case entity.PaymentImmediate, entity.PaymentTerm:
	default:
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || !item.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		if item.UnitPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.AdjustedTotal != nil && in.AdjustedTotal.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	// Cliente validado fora da transação (só leitura, não é recurso disputado)
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	now := time.Now()
	saleID := uuid.New().String()

	var sale *entity.Sale
	var items []*entity.SaleItem

	err = uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
		saleRepo repository.SaleRepository,
		receivableRepo repository.ReceivableRepository,
		bankRepo repository.BankAccountRepository,
	) error {
		// 1) Bloqueia e valida todos os produtos, na ordem das linhas.
		// A leitura autoritativa acontece aqui dentro; nunca em cache do chamador.
		// Linhas repetidas do mesmo produto consomem o mesmo saldo: a suficiência
		// é checada contra o que sobrou depois das linhas anteriores.
		locked := make(map[string]*entity.Product, len(in.Items))
		remaining := make(map[string]decimal.Decimal, len(in.Items))
		order := make([]string, 0, len(in.Items))
		for _, item := range in.Items {
			product, ok := locked[item.ProductID]
			if !ok {
				var err error
				product, err = productRepo.GetForUpdate(item.ProductID)
				if err != nil {
					return err
				}
				if product == nil || !product.Active {
					return fmt.Errorf("%w: %s", domain.ErrProductNotFound, item.ProductID)
				}
				if !product.Sellable {
					return domain.ErrInvalidInput
				}
				locked[item.ProductID] = product
				remaining[item.ProductID] = product.Quantity
				order = append(order, item.ProductID)
			}
			// 2) Suficiência de estoque antes de qualquer escrita
			available := remaining[item.ProductID]
			if available.LessThan(item.Quantity) {
				return &domain.InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Available:   available,
					Requested:   item.Quantity,
				}
			}
			remaining[item.ProductID] = available.Sub(item.Quantity)
		}

		// 3) Monta as linhas congelando o custo do produto no momento da venda
		var total decimal.Decimal
		items = items[:0]
		for _, item := range in.Items {
			product := locked[item.ProductID]
			unitPrice := item.UnitPrice
			if unitPrice.IsZero() {
				unitPrice = product.SalePrice
			}
			subtotal := item.Quantity.Mul(unitPrice).Round(2)
			total = total.Add(subtotal)
			items = append(items, &entity.SaleItem{
				ID:        uuid.New().String(),
				SaleID:    saleID,
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: unitPrice,
				UnitCost:  product.UnitCost, // retrato do custo; edições futuras não alteram
				Subtotal:  subtotal,
			})
		}

		// 4) Cabeça da venda: PAGO à vista, PENDENTE a prazo
		status := entity.SaleStatusPending
		if in.PaymentCondition == entity.PaymentImmediate {
			status = entity.SaleStatusPaid
		}
		sale = &entity.Sale{
			ID:               saleID,
			ClientID:         in.ClientID,
			Date:             date,
			PaymentCondition: in.PaymentCondition,
			DueDate:          in.DueDate,
			Total:            total.Round(2),
			AdjustedTotal:    in.AdjustedTotal,
			Status:           status,
			CreatedAt:        now,
			CreatedBy:        userID,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, it := range items {
			if err := saleRepo.CreateItem(it); err != nil {
				return err
			}
		}

		// 5) Uma escrita de estoque por produto e um movimento de SAIDA por linha
		for _, id := range order {
			if err := productRepo.UpdateStock(id, remaining[id]); err != nil {
				return err
			}
		}
		for _, item := range in.Items {
			mov := &entity.Movement{
				ID:          uuid.New().String(),
				ProductID:   item.ProductID,
				Type:        entity.MovementTypeExit,
				Quantity:    item.Quantity,
				Reason:      fmt.Sprintf("Venda %s", saleID),
				ReferenceID: saleID,
				Date:        date,
				CreatedAt:   now,
				CreatedBy:   userID,
			}
			if err := movementRepo.Create(mov); err != nil {
				return err
			}
		}

		// 6) A prazo com vencimento: um título a receber PENDENTE vinculado à venda
		if in.PaymentCondition == entity.PaymentTerm && in.DueDate != nil {
			rec := &entity.Receivable{
				ID:        uuid.New().String(),
				ClientID:  in.ClientID,
				SaleID:    saleID,
				Amount:    sale.FinalValue(),
				IssueDate: date,
				DueDate:   *in.DueDate,
				Status:    entity.TitleStatusPending,
				CreatedAt: now,
			}
			if err := receivableRepo.Create(rec); err != nil {
				return err
			}
		}

		// 7) À vista com conta informada: credita o valor final com lançamento pareado
		if in.PaymentCondition == entity.PaymentImmediate && in.BankAccountID != "" {
			account, err := bankRepo.GetForUpdate(in.BankAccountID)
			if err != nil {
				return err
			}
			if account == nil {
				return domain.ErrBankAccountNotFound
			}
			amount := sale.FinalValue()
			newBalance := account.Balance.Add(amount)
			if err := bankRepo.UpdateBalance(account.ID, newBalance); err != nil {
				return err
			}
			entry := &entity.BankEntry{
				ID:              uuid.New().String(),
				BankAccountID:   account.ID,
				Type:            entity.BankEntryCredit,
				Amount:          amount,
				PreviousBalance: account.Balance,
				NewBalance:      newBalance,
				Description:     fmt.Sprintf("Recebimento venda %s", saleID),
				ReferenceID:     saleID,
				Date:            date,
				CreatedAt:       now,
			}
			if err := bankRepo.CreateEntry(entry); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale, items), nil
}

// GetSale devolve a venda completa com linhas e sub-registro fiscal.
func (uc *RegisterSaleUseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.saleRepo.GetItems(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, items), nil
}

// ListSales lista vendas paginadas (sem linhas, para os detalhes usar GetSale).
func (uc *RegisterSaleUseCase) ListSales(ctx context.Context, limit, offset int) (*dto.SaleListResponse, error) {
	list, err := uc.saleRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s, nil))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toSaleResponse(s *entity.Sale, items []*entity.SaleItem) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	resp := &dto.SaleResponse{
		ID:               s.ID,
		ClientID:         s.ClientID,
		Date:             s.Date,
		PaymentCondition: s.PaymentCondition,
		DueDate:          s.DueDate,
		Total:            s.Total,
		AdjustedTotal:    s.AdjustedTotal,
		Status:           s.Status,
		Items:            make([]dto.SaleItemResponse, 0, len(items)),
		CreatedAt:        s.CreatedAt,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			UnitCost:  it.UnitCost,
			Subtotal:  it.Subtotal,
		})
	}
	if s.Fiscal != nil {
		resp.Fiscal = &dto.FiscalResponse{
			Ref:      s.Fiscal.Ref,
			Status:   s.Fiscal.Status,
			DanfeURL: s.Fiscal.DanfeURL,
			XMLURL:   s.Fiscal.XMLURL,
			Message:  s.Fiscal.Message,
		}
	}
	return resp
}
