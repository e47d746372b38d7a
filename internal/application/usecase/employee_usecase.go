package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/frigoerp/frigorifico-api/internal/application/dto"
	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

// EmployeeUseCase CRUD de funcionários.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase constrói o caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create cadastra um funcionário.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" || in.Salary.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	hiredAt := in.HiredAt
	if hiredAt.IsZero() {
		hiredAt = time.Now()
	}
	now := time.Now()
	employee := &entity.Employee{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Position:  in.Position,
		TaxID:     in.TaxID,
		Phone:     in.Phone,
		Salary:    in.Salary,
		HiredAt:   hiredAt,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Get devolve um funcionário pelo id.
func (uc *EmployeeUseCase) Get(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(employee), nil
}

// Update aplica os campos presentes no pedido.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		employee.Name = *in.Name
	}
	if in.Position != nil {
		employee.Position = *in.Position
	}
	if in.Phone != nil {
		employee.Phone = *in.Phone
	}
	if in.Salary != nil {
		if in.Salary.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		employee.Salary = *in.Salary
	}
	employee.UpdatedAt = time.Now()
	if err := uc.repo.Update(employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// List lista funcionários.
func (uc *EmployeeUseCase) List(ctx context.Context, onlyActive bool, limit, offset int) (*dto.EmployeeListResponse, error) {
	employees, err := uc.repo.List(onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		items = append(items, *toEmployeeResponse(e))
	}
	return &dto.EmployeeListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Deactivate desativa o funcionário (desligamento).
func (uc *EmployeeUseCase) Deactivate(ctx context.Context, id string) error {
	employee, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if employee == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(id)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:       e.ID,
		Name:     e.Name,
		Position: e.Position,
		TaxID:    e.TaxID,
		Phone:    e.Phone,
		Salary:   e.Salary,
		HiredAt:  e.HiredAt,
		Active:   e.Active,
	}
}
