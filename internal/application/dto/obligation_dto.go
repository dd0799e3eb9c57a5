package dto

import "time"

// ObligationRequest entrada para crear o actualizar una obligación accesoria.
// Periodicity se acepta en cualquier capitalización y se normaliza a minúsculas.
type ObligationRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Periodicity string `json:"periodicity"`
	CompanyID   int64  `json:"company_id"`
}

// ObligationResponse salida de una obligación accesoria.
type ObligationResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Periodicity string    `json:"periodicity"`
	CompanyID   int64     `json:"company_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
