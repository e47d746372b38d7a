package repository

import "github.com/frigoerp/frigorifico-api/internal/domain/entity"

// Portas dos cadastros. Remoção é sempre lógica (Deactivate); as listagens
// filtram por ativos a não ser que o chamador peça todos.

type ClientRepository interface {
	Create(c *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	Update(c *entity.Client) error
	List(onlyActive bool, limit, offset int) ([]*entity.Client, error)
	Deactivate(id string) error
}

type SupplierRepository interface {
	Create(s *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(s *entity.Supplier) error
	List(onlyActive bool, limit, offset int) ([]*entity.Supplier, error)
	Deactivate(id string) error
}

type EmployeeRepository interface {
	Create(e *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	Update(e *entity.Employee) error
	List(onlyActive bool, limit, offset int) ([]*entity.Employee, error)
	Deactivate(id string) error
}

type UnitRepository interface {
	Create(u *entity.Unit) error
	GetByID(id string) (*entity.Unit, error)
	GetByCode(code string) (*entity.Unit, error)
	List() ([]*entity.Unit, error)
}

// CompanyRepository guarda os dados da empresa emissora (registro único na prática).
type CompanyRepository interface {
	Get() (*entity.Company, error)
	Upsert(c *entity.Company) error
}

type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	Update(u *entity.User) error
	List(onlyActive bool, limit, offset int) ([]*entity.User, error)
	Deactivate(id string) error
}
