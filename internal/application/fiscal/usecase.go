package fiscal

import (
	"context"
	"fmt"
	"strings"

	"github.com/frigoerp/frigorifico-api/internal/application/dto"
	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
	"github.com/frigoerp/frigorifico-api/pkg/logger"
)

// A SEFAZ exige justificativa de cancelamento com no mínimo 15 caracteres.
const minJustificationLen = 15

// InvoiceUseCase emite, consulta e cancela NF-e de vendas.
// O resultado de cada chamada ao provedor é gravado no sub-registro fiscal da
// venda, mensagens da SEFAZ verbatim.
type InvoiceUseCase struct {
	gateway     Gateway
	saleRepo    repository.SaleRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	unitRepo    repository.UnitRepository
	companyRepo repository.CompanyRepository
	log         *logger.Logger
}

// NewInvoiceUseCase constrói o caso de uso.
func NewInvoiceUseCase(
	gateway Gateway,
	saleRepo repository.SaleRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	unitRepo repository.UnitRepository,
	companyRepo repository.CompanyRepository,
	log *logger.Logger,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		gateway:     gateway,
		saleRepo:    saleRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		unitRepo:    unitRepo,
		companyRepo: companyRepo,
		log:         log,
	}
}

// EmitForSale monta o payload da venda e pede a autorização ao provedor.
// Venda com NF-e já autorizada ou em processamento não emite de novo.
func (uc *InvoiceUseCase) EmitForSale(ctx context.Context, saleID string) (*dto.FiscalResponse, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.Fiscal != nil {
		switch sale.Fiscal.Status {
		case entity.NFeStatusAuthorized, entity.NFeStatusProcessing:
			return nil, fmt.Errorf("%w: NF-e da venda já está %s", domain.ErrDuplicate, sale.Fiscal.Status)
		}
	}

	client, err := uc.clientRepo.GetByID(sale.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	company, err := uc.companyRepo.Get()
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: dados da empresa emissora não cadastrados", domain.ErrInvalidInput)
	}

	items, err := uc.saleRepo.GetItems(saleID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	products := map[string]*entity.Product{}
	unitCodes := map[string]string{}
	for _, item := range items {
		if _, ok := products[item.ProductID]; ok {
			continue
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrProductNotFound
		}
		products[product.ID] = product
		if _, ok := unitCodes[product.UnitID]; !ok {
			unit, err := uc.unitRepo.GetByID(product.UnitID)
			if err != nil {
				return nil, err
			}
			if unit != nil {
				unitCodes[product.UnitID] = unit.Code
			}
		}
	}

	payload, err := buildPayload(company, client, sale, items, products, unitCodes)
	if err != nil {
		return nil, err
	}

	// A referência é determinística por venda; reemissões após erro reutilizam
	// a mesma ref e o provedor trata como a mesma nota.
	ref := "venda-" + saleID

	uc.log.Info().Str("sale_id", saleID).Str("ref", ref).Msg("emitindo NF-e")
	result, err := uc.gateway.Emit(ctx, ref, payload)
	if err != nil {
		return nil, err
	}
	return uc.record(saleID, ref, result)
}

// ConsultForSale atualiza o sub-registro fiscal com a situação corrente no provedor.
func (uc *InvoiceUseCase) ConsultForSale(ctx context.Context, saleID string) (*dto.FiscalResponse, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.Fiscal == nil {
		return nil, fmt.Errorf("%w: venda ainda não tem NF-e emitida", domain.ErrNotFound)
	}

	result, err := uc.gateway.Consult(ctx, sale.Fiscal.Ref)
	if err != nil {
		return nil, err
	}
	return uc.record(saleID, sale.Fiscal.Ref, result)
}

// CancelForSale pede o cancelamento da NF-e autorizada da venda.
func (uc *InvoiceUseCase) CancelForSale(ctx context.Context, saleID string, in dto.CancelInvoiceRequest) (*dto.FiscalResponse, error) {
	if len(strings.TrimSpace(in.Justification)) < minJustificationLen {
		return nil, fmt.Errorf("%w: justificativa precisa de ao menos %d caracteres", domain.ErrInvalidInput, minJustificationLen)
	}

	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.Fiscal == nil || sale.Fiscal.Status != entity.NFeStatusAuthorized {
		return nil, fmt.Errorf("%w: só NF-e autorizada pode ser cancelada", domain.ErrInvalidInput)
	}

	uc.log.Info().Str("sale_id", saleID).Str("ref", sale.Fiscal.Ref).Msg("cancelando NF-e")
	result, err := uc.gateway.Cancel(ctx, sale.Fiscal.Ref, in.Justification)
	if err != nil {
		return nil, err
	}
	return uc.record(saleID, sale.Fiscal.Ref, result)
}

// record grava o resultado do provedor no sub-registro fiscal da venda.
func (uc *InvoiceUseCase) record(saleID, ref string, result *InvoiceResult) (*dto.FiscalResponse, error) {
	record := &entity.FiscalRecord{
		Ref:      ref,
		Status:   result.Status,
		DanfeURL: result.DanfeURL,
		XMLURL:   result.XMLURL,
		Message:  result.Message,
	}
	if err := uc.saleRepo.UpdateFiscal(saleID, record); err != nil {
		return nil, err
	}
	return &dto.FiscalResponse{
		Ref:      record.Ref,
		Status:   record.Status,
		DanfeURL: record.DanfeURL,
		XMLURL:   record.XMLURL,
		Message:  record.Message,
	}, nil
}
