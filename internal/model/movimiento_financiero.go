package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tipos de movimiento financiero.
const (
	MovimientoIngreso = "ingreso"
	MovimientoEgreso  = "egreso"
)

// Categorías que escriben las transacciones del sistema.
const (
	CategoriaVentaHuevos    = "Venta huevos"
	CategoriaPagoTrabajador = "Pago trabajador"
)

// MovimientoFinanciero es el libro mayor append-only de ingresos y egresos.
// Es la única fuente para los reportes de balance. Solo lo escriben las
// transacciones de despacho, compra y pago, nunca un handler.
type MovimientoFinanciero struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Fecha        string          `gorm:"size:10;not null;index"`
	Tipo         string          `gorm:"size:10;not null;index"` // ingreso | egreso
	Categoria    string          `gorm:"not null"`
	Monto        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Descripcion  *string
	ReferenciaID *uuid.UUID `gorm:"type:uuid"` // pedido, insumo o pago que lo originó
	CreatedAt    time.Time
}

func (MovimientoFinanciero) TableName() string { return "movimientos_financieros" }

func (m *MovimientoFinanciero) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
