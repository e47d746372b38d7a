package entity

import "time"

// Unit é uma unidade de medida do catálogo (KG, UN, CX, PC).
type Unit struct {
	ID          string
	Code        string // sigla usada na NF-e
	Description string
	CreatedAt   time.Time
}
