package dto

import "github.com/shopspring/decimal"

// BalancePeriodo resume ingresos, egresos y balance neto de un período.
// Se calcula exclusivamente sobre movimientos_financieros.
type BalancePeriodo struct {
	TotalIngresos decimal.Decimal `gorm:"column:total_ingresos" json:"total_ingresos"`
	TotalEgresos  decimal.Decimal `gorm:"column:total_egresos" json:"total_egresos"`
	Balance       decimal.Decimal `gorm:"column:balance" json:"balance"`
}

// MovimientoPorCategoria agrega los movimientos de un período por
// (tipo, categoría).
type MovimientoPorCategoria struct {
	Tipo                 string          `gorm:"column:tipo" json:"tipo"`
	Categoria            string          `gorm:"column:categoria" json:"categoria"`
	Total                decimal.Decimal `gorm:"column:total" json:"total"`
	CantidadMovimientos  int64           `gorm:"column:cantidad_movimientos" json:"cantidad_movimientos"`
}

// ResumenProduccionVentas compara huevos producidos contra huevos vendidos
// (pedidos completados × 30 por canastilla) en un período.
type ResumenProduccionVentas struct {
	TotalProducido int64 `gorm:"column:total_producido" json:"total_producido"`
	TotalVendido   int64 `gorm:"column:total_vendido" json:"total_vendido"`
}

// ProduccionDia agrega la producción de una fecha por categoría.
type ProduccionDia struct {
	Fecha      string `gorm:"column:fecha" json:"fecha"`
	TipoC      int    `gorm:"column:tipo_c" json:"tipo_c"`
	TipoB      int    `gorm:"column:tipo_b" json:"tipo_b"`
	TipoA      int    `gorm:"column:tipo_a" json:"tipo_a"`
	TipoAA     int    `gorm:"column:tipo_aa" json:"tipo_aa"`
	TipoAAA    int    `gorm:"column:tipo_aaa" json:"tipo_aaa"`
	TipoJumbo  int    `gorm:"column:tipo_jumbo" json:"tipo_jumbo"`
	Total      int    `gorm:"column:total" json:"total"`
}

// TopCliente es una fila del ranking de clientes por compras completadas.
type TopCliente struct {
	Nombre           string          `gorm:"column:nombre" json:"nombre"`
	CantidadCompras  int64           `gorm:"column:cantidad_compras" json:"cantidad_compras"`
	TotalComprado    decimal.Decimal `gorm:"column:total_comprado" json:"total_comprado"`
	TotalCanastillas int64           `gorm:"column:total_canastillas" json:"total_canastillas"`
}

// CostoPorHuevo estima el costo unitario de producción de un período:
// egresos de alimento y mano de obra divididos por huevos producidos.
type CostoPorHuevo struct {
	EgresosProduccion decimal.Decimal `json:"egresos_produccion"`
	HuevosProducidos  int64           `json:"huevos_producidos"`
	CostoUnitario     decimal.Decimal `json:"costo_unitario"`
}

// EstadisticasStock es la foto actual del stock de huevos.
type EstadisticasStock struct {
	TotalHuevos int `gorm:"column:total_huevos" json:"total_huevos"`
	TipoC       int `gorm:"column:tipo_c" json:"tipo_c"`
	TipoB       int `gorm:"column:tipo_b" json:"tipo_b"`
	TipoA       int `gorm:"column:tipo_a" json:"tipo_a"`
	TipoAA      int `gorm:"column:tipo_aa" json:"tipo_aa"`
	TipoAAA     int `gorm:"column:tipo_aaa" json:"tipo_aaa"`
	TipoJumbo   int `gorm:"column:tipo_jumbo" json:"tipo_jumbo"`
}
