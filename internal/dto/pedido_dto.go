package dto

import (
	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"

	"github.com/shopspring/decimal"
)

// CrearPedidoRequest crea un pedido pendiente para un cliente, en
// canastillas por categoría. El precio total lo fija el llamador (la UI
// lo precalcula con la lista de precios vigente, pero puede ajustarlo).
type CrearPedidoRequest struct {
	ClienteID     string          `json:"cliente_id" binding:"required,uuid"`
	Fecha         string          `json:"fecha" binding:"required"`
	Hora          string          `json:"hora" binding:"required"`
	Canastillas   model.Conteo    `json:"canastillas"`
	PrecioTotal   decimal.Decimal `json:"precio_total"`
	Observaciones *string         `json:"observaciones"`
}

// ActualizarPedidoRequest edita un pedido mientras sigue pendiente.
type ActualizarPedidoRequest struct {
	Canastillas   model.Conteo    `json:"canastillas"`
	PrecioTotal   decimal.Decimal `json:"precio_total"`
	Observaciones *string         `json:"observaciones"`
}

// DespacharPedidoRequest materializa la entrega de un pedido pendiente.
// Las canastillas despachadas pueden diferir de las pedidas.
type DespacharPedidoRequest struct {
	Fecha         string       `json:"fecha" binding:"required"`
	Hora          string       `json:"hora" binding:"required"`
	Canastillas   model.Conteo `json:"canastillas"`
	Observaciones *string      `json:"observaciones"`
}

// VentaDia agrega las ventas completadas de una fecha.
type VentaDia struct {
	Fecha            string          `gorm:"column:fecha" json:"fecha"`
	CantidadVentas   int64           `gorm:"column:cantidad_ventas" json:"cantidad_ventas"`
	TotalCanastillas int64           `gorm:"column:total_canastillas" json:"total_canastillas"`
	TotalIngresos    decimal.Decimal `gorm:"column:total_ingresos" json:"total_ingresos"`
}

// VentasPorCategoria totaliza canastillas vendidas por categoría en un período.
type VentasPorCategoria struct {
	TotalC     int64 `gorm:"column:total_c" json:"total_c"`
	TotalB     int64 `gorm:"column:total_b" json:"total_b"`
	TotalA     int64 `gorm:"column:total_a" json:"total_a"`
	TotalAA    int64 `gorm:"column:total_aa" json:"total_aa"`
	TotalAAA   int64 `gorm:"column:total_aaa" json:"total_aaa"`
	TotalJumbo int64 `gorm:"column:total_jumbo" json:"total_jumbo"`
}
