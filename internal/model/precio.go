package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PrecioHuevos es la lista de precios vigente por categoría.
// Invariante: a lo sumo una fila tiene activo=true; crear una lista
// nueva desactiva todas las anteriores en la misma transacción.
type PrecioHuevos struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	FechaVigencia string    `gorm:"size:10;not null;index"`
	Precios       Precios   `gorm:"embedded;embeddedPrefix:precio_"`
	Activo        bool      `gorm:"not null;default:false;index"`
	CreatedAt     time.Time
}

func (PrecioHuevos) TableName() string { return "precios_huevos" }

func (p *PrecioHuevos) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
