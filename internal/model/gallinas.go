package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PoblacionGallinas registra conteos de población; el registro más
// reciente por (fecha, hora) define la población vigente.
type PoblacionGallinas struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Fecha             string    `gorm:"size:10;not null;index"`
	Hora              string    `gorm:"size:8;not null"`
	CantidadGallinas  int       `gorm:"not null"`
	Descartes         int       `gorm:"not null;default:0"`
	Observaciones     *string
	CreatedAt         time.Time
}

func (PoblacionGallinas) TableName() string { return "poblacion_gallinas" }

func (p *PoblacionGallinas) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ConsumoAlimento registra el consumo diario; consumo_total se calcula
// como consumo_por_gallina × cantidad_gallinas al registrar.
type ConsumoAlimento struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Fecha             string    `gorm:"size:10;not null;index"`
	Hora              string    `gorm:"size:8;not null"`
	ConsumoPorGallina float64   `gorm:"not null"`
	CantidadGallinas  int       `gorm:"not null"`
	ConsumoTotal      float64   `gorm:"not null"`
	Observaciones     *string
	CreatedAt         time.Time
}

func (ConsumoAlimento) TableName() string { return "consumo_alimento" }

func (c *ConsumoAlimento) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
