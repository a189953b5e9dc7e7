package dto

import "github.com/shopspring/decimal"

// RegistrarCompraRequest carga una compra de insumo al libro de compras.
type RegistrarCompraRequest struct {
	Nombre        string          `json:"nombre" binding:"required"`
	Categoria     string          `json:"categoria" binding:"required"`
	Cantidad      float64         `json:"cantidad" binding:"required"`
	Unidad        string          `json:"unidad" binding:"required"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
	CostoTotal    decimal.Decimal `json:"costo_total"`
	FechaCompra   string          `json:"fecha_compra" binding:"required"`
	Proveedor     *string         `json:"proveedor"`
}

// RegistrarConsumoRequest descuenta una salida de insumo del stock.
type RegistrarConsumoRequest struct {
	StockInsumoID string  `json:"stock_insumo_id" binding:"required,uuid"`
	Cantidad      float64 `json:"cantidad" binding:"required"`
	Motivo        *string `json:"motivo"`
}

// ActualizarStockMinimoRequest fija el umbral de alerta de un insumo.
type ActualizarStockMinimoRequest struct {
	StockMinimo float64 `json:"stock_minimo"`
}

// AjustarStockInsumoRequest corrige el stock de un insumo a una cantidad
// absoluta (conteo físico).
type AjustarStockInsumoRequest struct {
	NuevaCantidad float64 `json:"nueva_cantidad"`
	Motivo        *string `json:"motivo"`
}

// StockInsumoResponse es una fila del tablero de stock de insumos.
type StockInsumoResponse struct {
	ID             string  `json:"id"`
	Nombre         string  `json:"nombre"`
	Categoria      string  `json:"categoria"`
	Unidad         string  `json:"unidad"`
	CantidadActual float64 `json:"cantidad_actual"`
	StockMinimo    float64 `json:"stock_minimo"`
	Alerta         bool    `json:"alerta"`
}

// CompraPorCategoria agrega el gasto en insumos por categoría.
type CompraPorCategoria struct {
	Categoria       string          `gorm:"column:categoria" json:"categoria"`
	CantidadCompras int64           `gorm:"column:cantidad_compras" json:"cantidad_compras"`
	TotalGastado    decimal.Decimal `gorm:"column:total_gastado" json:"total_gastado"`
}
