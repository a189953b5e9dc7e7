package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tipos de ajuste manual de stock de huevos.
const (
	AjusteMerma      = "merma"
	AjusteCorreccion = "correccion"
)

// StockHuevos es la fila única (id=1) con el total acumulado por categoría.
// Solo la escriben las transacciones de producción, despacho y ajuste,
// nunca un handler directamente.
type StockHuevos struct {
	ID        int    `gorm:"primaryKey"`
	Conteo    Conteo `gorm:"embedded;embeddedPrefix:tipo_"`
	UpdatedAt time.Time
}

func (StockHuevos) TableName() string { return "stock_huevos" }

// AjusteStockHuevos es el historial append-only de ajustes manuales.
// Los deltas se guardan ya con signo: una merma de 5 huevos C se
// persiste como tipo_c = -5.
type AjusteStockHuevos struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Fecha       string    `gorm:"size:10;not null;index"`
	Hora        string    `gorm:"size:8;not null"`
	TipoAjuste  string    `gorm:"size:20;not null"` // merma | correccion
	Conteo      Conteo    `gorm:"embedded;embeddedPrefix:tipo_"`
	Motivo      *string
	CreatedAt   time.Time
}

func (AjusteStockHuevos) TableName() string { return "ajustes_stock_huevos" }

func (a *AjusteStockHuevos) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
