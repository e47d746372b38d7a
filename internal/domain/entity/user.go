package entity

import "time"

// User é um usuário do sistema com papel para a matriz de permissões.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string // admin | financeiro | vendas | producao
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
