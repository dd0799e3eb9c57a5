package dto

// ErrorResponse cuerpo de error HTTP. Field se informa en errores de validación.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// HealthResponse cuerpo de /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
