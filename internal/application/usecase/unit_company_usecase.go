package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/frigoerp/frigorifico-api/internal/application/dto"
	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

// UnitUseCase unidades de medida do catálogo.
type UnitUseCase struct {
	repo repository.UnitRepository
}

// NewUnitUseCase constrói o caso de uso.
func NewUnitUseCase(repo repository.UnitRepository) *UnitUseCase {
	return &UnitUseCase{repo: repo}
}

// Create cadastra uma unidade com código único (KG, UN, CX...).
func (uc *UnitUseCase) Create(ctx context.Context, in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	unit := &entity.Unit{
		ID:          uuid.New().String(),
		Code:        code,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(unit); err != nil {
		return nil, err
	}
	return toUnitResponse(unit), nil
}

// List lista as unidades cadastradas.
func (uc *UnitUseCase) List(ctx context.Context) ([]dto.UnitResponse, error) {
	units, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, *toUnitResponse(u))
	}
	return out, nil
}

func toUnitResponse(u *entity.Unit) *dto.UnitResponse {
	return &dto.UnitResponse{ID: u.ID, Code: u.Code, Description: u.Description}
}

// CompanyUseCase dados da empresa emissora (registro único).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase constrói o caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Get devolve os dados da empresa, ErrNotFound se ainda não cadastrados.
func (uc *CompanyUseCase) Get(ctx context.Context) (*dto.CompanyResponse, error) {
	company, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// Upsert cria ou substitui os dados da empresa. CNPJ e regime são obrigatórios
// porque a emissão de NF-e depende deles.
func (uc *CompanyUseCase) Upsert(ctx context.Context, in dto.CompanyRequest) (*dto.CompanyResponse, error) {
	if in.CorporateName == "" || in.CNPJ == "" || in.TaxRegime == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	company := &entity.Company{
		CorporateName:     in.CorporateName,
		TradeName:         in.TradeName,
		CNPJ:              in.CNPJ,
		StateRegistration: in.StateRegistration,
		TaxRegime:         in.TaxRegime,
		Address:           toAddress(in.Address),
		Phone:             in.Phone,
		Email:             in.Email,
		UpdatedAt:         now,
	}
	if existing != nil {
		company.ID = existing.ID
		company.CreatedAt = existing.CreatedAt
	} else {
		company.ID = uuid.New().String()
		company.CreatedAt = now
	}
	if err := uc.repo.Upsert(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:                c.ID,
		CorporateName:     c.CorporateName,
		TradeName:         c.TradeName,
		CNPJ:              c.CNPJ,
		StateRegistration: c.StateRegistration,
		TaxRegime:         c.TaxRegime,
		Address:           toAddressDTO(c.Address),
		Phone:             c.Phone,
		Email:             c.Email,
	}
}
