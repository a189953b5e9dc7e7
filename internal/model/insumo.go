package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Tipos de movimiento de insumos.
const (
	MovimientoEntrada = "entrada"
	MovimientoSalida  = "salida"
)

// Insumo es el libro de compras de insumos, append-only. Cada compra
// genera en la misma transacción un egreso financiero y una entrada
// en el stock del insumo.
type Insumo struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Nombre        string          `gorm:"not null;index"`
	Categoria     string          `gorm:"not null"` // Alimento | Medicamento | Mantenimiento | Otros
	Cantidad      float64         `gorm:"not null"`
	Unidad        string          `gorm:"not null"`
	CostoUnitario decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CostoTotal    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FechaCompra   string          `gorm:"size:10;not null;index"`
	Proveedor     *string
	CreatedAt     time.Time
}

func (Insumo) TableName() string { return "insumos" }

func (i *Insumo) BeforeCreate(_ *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// StockInsumo mantiene una fila por insumo distinto (por nombre) con la
// cantidad vigente y el umbral de alerta.
type StockInsumo struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nombre         string    `gorm:"uniqueIndex;not null"`
	Categoria      string    `gorm:"not null"`
	Unidad         string    `gorm:"not null"`
	CantidadActual float64   `gorm:"not null;default:0"`
	StockMinimo    float64   `gorm:"not null;default:0"`
	UpdatedAt      time.Time
}

func (StockInsumo) TableName() string { return "stock_insumos" }

func (s *StockInsumo) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// EnAlerta indica si la cantidad vigente cayó al umbral mínimo o por debajo.
func (s StockInsumo) EnAlerta() bool { return s.CantidadActual <= s.StockMinimo }

// MovimientoInsumo registra cada entrada o salida de un insumo, append-only.
type MovimientoInsumo struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Fecha          string    `gorm:"size:10;not null;index"`
	Hora           string    `gorm:"size:8;not null"`
	StockInsumoID  uuid.UUID `gorm:"type:uuid;not null;index"`
	TipoMovimiento string    `gorm:"size:10;not null"` // entrada | salida
	Cantidad       float64   `gorm:"not null"`
	Motivo         *string
	CreatedAt      time.Time

	StockInsumo *StockInsumo `gorm:"foreignKey:StockInsumoID"`
}

func (MovimientoInsumo) TableName() string { return "movimientos_insumos" }

func (m *MovimientoInsumo) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
