package dto

import "github.com/Dbaena34/Pio-Pio-Baena/internal/model"

// CrearPrecioRequest publica una lista de precios nueva; la vigente
// anterior queda desactivada en la misma transacción.
type CrearPrecioRequest struct {
	FechaVigencia string        `json:"fecha_vigencia" binding:"required"`
	Precios       model.Precios `json:"precios"`
}
