// Package usecase contém os casos de uso de cadastro: clientes, fornecedores,
// produtos, funcionários, unidades e a empresa emissora. Remoção é sempre
// lógica, porque os registros são referenciados por vendas e compras antigas.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/frigoerp/frigorifico-api/internal/application/dto"
	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
	"github.com/frigoerp/frigorifico-api/internal/domain/repository"
)

// ClientUseCase CRUD de clientes.
type ClientUseCase struct {
	repo repository.ClientRepository
}

// NewClientUseCase constrói o caso de uso.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create cadastra um cliente.
func (uc *ClientUseCase) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	client := &entity.Client{
		ID:                uuid.New().String(),
		Name:              in.Name,
		TaxID:             in.TaxID,
		StateRegistration: in.StateRegistration,
		Email:             in.Email,
		Phone:             in.Phone,
		Address:           toAddress(in.Address),
		Active:            true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Get devolve um cliente pelo id.
func (uc *ClientUseCase) Get(ctx context.Context, id string) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(client), nil
}

// Update aplica os campos presentes no pedido.
func (uc *ClientUseCase) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.TaxID != nil {
		client.TaxID = *in.TaxID
	}
	if in.StateRegistration != nil {
		client.StateRegistration = *in.StateRegistration
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Address != nil {
		client.Address = toAddress(*in.Address)
	}
	client.UpdatedAt = time.Now()
	if err := uc.repo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// List lista clientes (só ativos por padrão).
func (uc *ClientUseCase) List(ctx context.Context, onlyActive bool, limit, offset int) (*dto.ClientListResponse, error) {
	clients, err := uc.repo.List(onlyActive, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// Deactivate desativa o cliente; vendas antigas continuam apontando para ele.
func (uc *ClientUseCase) Deactivate(ctx context.Context, id string) error {
	client, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if client == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Deactivate(id)
}

func toAddress(a dto.AddressDTO) entity.Address {
	return entity.Address{
		Street:   a.Street,
		Number:   a.Number,
		District: a.District,
		City:     a.City,
		CityCode: a.CityCode,
		State:    a.State,
		ZipCode:  a.ZipCode,
	}
}

func toAddressDTO(a entity.Address) dto.AddressDTO {
	return dto.AddressDTO{
		Street:   a.Street,
		Number:   a.Number,
		District: a.District,
		City:     a.City,
		CityCode: a.CityCode,
		State:    a.State,
		ZipCode:  a.ZipCode,
	}
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:                c.ID,
		Name:              c.Name,
		TaxID:             c.TaxID,
		StateRegistration: c.StateRegistration,
		Email:             c.Email,
		Phone:             c.Phone,
		Address:           toAddressDTO(c.Address),
		Active:            c.Active,
		CreatedAt:         c.CreatedAt,
	}
}
