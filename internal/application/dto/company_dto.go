package dto

import "time"

// CompanyRequest entrada para crear o actualizar (PUT, campos completos) una empresa.
// Los formatos de tax_id, email y phone los valida el dominio; aquí solo la forma.
type CompanyRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address" validate:"max=500"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id"`
	Address   string    `json:"address"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
