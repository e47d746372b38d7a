// seed popula a base com os dados mínimos de operação: unidades de medida
// padrão (KG, UN, CX, PC) e o primeiro usuário admin.
//
// Uso: go run ./cmd/seed
// Credenciais do admin vêm de SEED_ADMIN_EMAIL e SEED_ADMIN_PASSWORD;
// sem elas o usuário não é criado.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/frigoerp/frigorifico-api/internal/domain"
	"github.com/frigoerp/frigorifico-api/internal/domain/entity"
	"github.com/frigoerp/frigorifico-api/internal/infrastructure/postgres"
	"github.com/frigoerp/frigorifico-api/pkg/config"
)

var defaultUnits = []struct{ code, description string }{
	{"KG", "Quilograma"},
	{"UN", "Unidade"},
	{"CX", "Caixa"},
	{"PC", "Peça"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("carregar configuração: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexão ao PostgreSQL: %v", err)
	}
	defer pool.Close()

	unitRepo := postgres.NewUnitRepository(pool)
	for _, u := range defaultUnits {
		existing, err := unitRepo.GetByCode(u.code)
		if err != nil {
			fail("consultar unidade %s: %v", u.code, err)
		}
		if existing != nil {
			continue
		}
		err = unitRepo.Create(&entity.Unit{
			ID:          uuid.NewString(),
			Code:        u.code,
			Description: u.description,
			CreatedAt:   time.Now(),
		})
		if err != nil {
			fail("criar unidade %s: %v", u.code, err)
		}
		fmt.Printf("unidade %s criada\n", u.code)
	}

	email := strings.ToLower(strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL")))
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		fmt.Println("SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD não definidos, admin não criado")
		return
	}

	userRepo := postgres.NewUserRepository(pool)
	existing, err := userRepo.FindByEmail(email)
	if err != nil {
		fail("consultar admin: %v", err)
	}
	if existing != nil {
		fmt.Println("admin já existe, nada a fazer")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fail("gerar hash de senha: %v", err)
	}
	now := time.Now()
	err = userRepo.Create(&entity.User{
		ID:           uuid.NewString(),
		Name:         "Administrador",
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		fail("criar admin: %v", err)
	}
	fmt.Printf("admin %s criado\n", email)
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
