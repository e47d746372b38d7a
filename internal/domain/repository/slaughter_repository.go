package repository

import "github.com/frigoerp/frigorifico-api/internal/domain/entity"

// SlaughterRepository porta de lotes de abate.
type SlaughterRepository interface {
	Create(s *entity.Slaughter) error
	CreateItem(item *entity.SlaughterItem) error
	GetByID(id string) (*entity.Slaughter, error)
	GetItems(slaughterID string) ([]*entity.SlaughterItem, error)
	List(limit, offset int) ([]*entity.Slaughter, error)
}
