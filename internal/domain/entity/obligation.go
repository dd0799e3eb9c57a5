package entity

import "time"

// Periodicity cadencia de una obligación accesoria. Siempre en minúsculas una vez persistida.
type Periodicity string

// Periodicidades admitidas (deben coincidir con el CHECK de la tabla obligations).
const (
	PeriodicityMonthly   Periodicity = "mensal"
	PeriodicityQuarterly Periodicity = "trimestral"
	PeriodicityAnnual    Periodicity = "anual"
)

// Periodicities devuelve las periodicidades válidas en orden canónico.
func Periodicities() []Periodicity {
	return []Periodicity{PeriodicityMonthly, PeriodicityQuarterly, PeriodicityAnnual}
}

// Obligation representa una obligación accesoria recurrente de una empresa.
type Obligation struct {
	ID          int64
	Name        string
	Periodicity Periodicity
	CompanyID   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
