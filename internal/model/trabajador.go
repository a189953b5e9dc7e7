package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Trabajador de la granja, con baja lógica vía activo.
type Trabajador struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nombre    string    `gorm:"not null;index"`
	Cargo     *string
	Activo    bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Trabajador) TableName() string { return "trabajadores" }

func (t *Trabajador) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// PagoTrabajador registra cada pago; el egreso financiero correspondiente
// se inserta en la misma transacción.
type PagoTrabajador struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TrabajadorID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Fecha        string          `gorm:"size:10;not null;index"`
	Hora         string          `gorm:"size:8;not null"`
	Monto        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Concepto     *string
	CreatedAt    time.Time

	Trabajador *Trabajador `gorm:"foreignKey:TrabajadorID"`
}

func (PagoTrabajador) TableName() string { return "pagos_trabajadores" }

func (p *PagoTrabajador) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
