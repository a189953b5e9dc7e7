package dto

import "github.com/shopspring/decimal"

// RegistrarPagoRequest registra un pago a un trabajador; el egreso
// financiero se inserta en la misma transacción.
type RegistrarPagoRequest struct {
	TrabajadorID string          `json:"trabajador_id" binding:"required,uuid"`
	Fecha        string          `json:"fecha" binding:"required"`
	Hora         string          `json:"hora" binding:"required"`
	Monto        decimal.Decimal `json:"monto"`
	Concepto     *string         `json:"concepto"`
}
