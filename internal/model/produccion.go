package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProduccionDiaria registra cada recolección de huevos por categoría.
// Los registros son inmutables; su efecto sobre stock_huevos se aplica
// en la misma transacción que el insert.
type ProduccionDiaria struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Fecha         string    `gorm:"size:10;not null;index"` // YYYY-MM-DD
	Hora          string    `gorm:"size:8;not null"`        // HH:MM:SS
	Conteo        Conteo    `gorm:"embedded;embeddedPrefix:tipo_"`
	Observaciones *string
	CreatedAt     time.Time
}

func (ProduccionDiaria) TableName() string { return "produccion_diaria" }

func (p *ProduccionDiaria) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
