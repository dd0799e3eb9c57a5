// Package validation contiene los validadores de sintaxis de los campos de empresa
// y obligación. Son funciones puras: sin I/O ni estado.
package validation

import (
	"regexp"
	"strings"

	"github.com/jhoicas/empresas-api/internal/domain"
	"github.com/jhoicas/empresas-api/internal/domain/entity"
)

// Campos tal como se exponen en la API (mensajes de error).
const (
	FieldTaxID       = "tax_id"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldPeriodicity = "periodicity"
)

var (
	taxIDPattern = regexp.MustCompile(`^[0-9]{14}$`)
	phonePattern = regexp.MustCompile(`^[0-9]{11}$`)
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+@([A-Za-z0-9_-]+\.)+[A-Za-z0-9]+$`)
)

// ValidateTaxID acepta exactamente 14 dígitos decimales (CNPJ sin máscara).
func ValidateTaxID(s string) error {
	if !taxIDPattern.MatchString(s) {
		return &domain.FieldError{Field: FieldTaxID, Expected: "14 dígitos numéricos", Kind: domain.ErrInvalidFormat}
	}
	return nil
}

// ValidateEmail acepta local@dominio.tld.
func ValidateEmail(s string) error {
	if !emailPattern.MatchString(s) {
		return &domain.FieldError{Field: FieldEmail, Expected: "un email con formato usuario@dominio.tld", Kind: domain.ErrInvalidFormat}
	}
	return nil
}

// ValidatePhone acepta exactamente 11 dígitos decimales.
func ValidatePhone(s string) error {
	if !phonePattern.MatchString(s) {
		return &domain.FieldError{Field: FieldPhone, Expected: "11 dígitos numéricos", Kind: domain.ErrInvalidFormat}
	}
	return nil
}

// NormalizePeriodicity pasa s a minúsculas y verifica que sea una periodicidad admitida.
func NormalizePeriodicity(s string) (entity.Periodicity, error) {
	p := entity.Periodicity(strings.ToLower(s))
	for _, valid := range entity.Periodicities() {
		if p == valid {
			return p, nil
		}
	}
	return "", &domain.FieldError{Field: FieldPeriodicity, Expected: "'mensal', 'trimestral' ou 'anual'", Kind: domain.ErrInvalidEnum}
}

// ValidateCompany corre los validadores en orden: tax_id, email, phone.
// Devuelve el primer fallo.
func ValidateCompany(taxID, email, phone string) error {
	if err := ValidateTaxID(taxID); err != nil {
		return err
	}
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return ValidatePhone(phone)
}
