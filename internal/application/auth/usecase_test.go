package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frigoerp/frigorifico-api/internal/application/dto"
	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
	"github.com/frigoerp/frigorifico-api/pkg/config"
	"github.com/frigoerp/frigorifico-api/pkg/jwt"
)

type userRepoFake struct {
	byEmail map[string]*entity.User
	byID    map[string]*entity.User
}

func newUserRepoFake() *userRepoFake {
	return &userRepoFake{byEmail: map[string]*entity.User{}, byID: map[string]*entity.User{}}
}

func (r *userRepoFake) Create(u *entity.User) error {
	r.byEmail[u.Email] = u
	r.byID[u.ID] = u
	return nil
}
func (r *userRepoFake) GetByID(id string) (*entity.User, error) { return r.byID[id], nil }
func (r *userRepoFake) FindByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}
func (r *userRepoFake) Update(u *entity.User) error { r.byID[u.ID] = u; return nil }
func (r *userRepoFake) List(onlyActive bool, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byID {
		if onlyActive && !u.Active {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}
func (r *userRepoFake) Deactivate(id string) error {
	if u, ok := r.byID[id]; ok {
		u.Active = false
	}
	return nil
}

func jwtCfg() config.JWTConfig {
	return config.JWTConfig{Secret: "segredo-de-teste", Expiration: 60, Issuer: "frigorifico-api"}
}

func TestRegisterELogin(t *testing.T) {
	repo := newUserRepoFake()
	uc := NewUseCase(repo, jwtCfg())
	ctx := context.Background()

	user, err := uc.Register(ctx, dto.RegisterRequest{
		Name:     "Maria Silva",
		Email:    "Maria@Frigo.com.br",
		Password: "senha-forte-123",
		Role:     domain.RoleFinanceiro,
	})
	require.NoError(t, err)
	assert.Equal(t, "maria@frigo.com.br", user.Email)
	assert.Equal(t, domain.RoleFinanceiro, user.Role)

	// Hash nunca aparece na resposta e não é a senha em claro
	stored := repo.byEmail["maria@frigo.com.br"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "senha-forte-123", stored.PasswordHash)

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "maria@frigo.com.br", Password: "senha-forte-123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	userID, name, role, err := jwt.Parse("segredo-de-teste", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "Maria Silva", name)
	assert.Equal(t, domain.RoleFinanceiro, role)
}

func TestLogin_SenhaErrada(t *testing.T) {
	repo := newUserRepoFake()
	uc := NewUseCase(repo, jwtCfg())
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{
		Name: "João", Email: "joao@frigo.com.br", Password: "senha-forte-123", Role: domain.RoleVendas,
	})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "joao@frigo.com.br", Password: "senha-errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioDesativado(t *testing.T) {
	repo := newUserRepoFake()
	uc := NewUseCase(repo, jwtCfg())
	ctx := context.Background()

	user, err := uc.Register(ctx, dto.RegisterRequest{
		Name: "Ana", Email: "ana@frigo.com.br", Password: "senha-forte-123", Role: domain.RoleProducao,
	})
	require.NoError(t, err)
	require.NoError(t, uc.DeactivateUser(ctx, user.ID))

	_, err = uc.Login(ctx, dto.LoginRequest{Email: "ana@frigo.com.br", Password: "senha-forte-123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newUserRepoFake()
	uc := NewUseCase(repo, jwtCfg())
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{
		Name: "A", Email: "x@frigo.com.br", Password: "senha-forte-123", Role: domain.RoleAdmin,
	})
	require.NoError(t, err)

	_, err = uc.Register(ctx, dto.RegisterRequest{
		Name: "B", Email: "X@frigo.com.br", Password: "outra-senha-123", Role: domain.RoleAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_Validacoes(t *testing.T) {
	uc := NewUseCase(newUserRepoFake(), jwtCfg())
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Name: "A", Email: "a@b.c", Password: "curta", Role: domain.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(ctx, dto.RegisterRequest{Name: "A", Email: "a@b.c", Password: "senha-forte-123", Role: "gerente"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
