package entity

import "time"

// Company representa una empresa registrada (dueña de obligaciones accesorias).
// TaxID es el CNPJ: 14 dígitos sin puntuación, único en el sistema.
type Company struct {
	ID        int64
	Name      string
	TaxID     string
	Address   string
	Email     string // único en el sistema
	Phone     string // 11 dígitos (DDD + número)
	CreatedAt time.Time
	UpdatedAt time.Time
}
