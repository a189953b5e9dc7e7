package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Estados del ciclo de vida de un pedido.
const (
	PedidoPendiente  = "pendiente"
	PedidoCompletado = "completado"
	PedidoCancelado  = "cancelado"
)

// Pedido de un cliente, en canastillas por categoría. Nace pendiente,
// pasa a completado solo mediante un despacho y a cancelado solo desde
// pendiente. Editable únicamente mientras está pendiente.
type Pedido struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClienteID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Fecha         string          `gorm:"size:10;not null;index"`
	Hora          string          `gorm:"size:8;not null"`
	Canastillas   Conteo          `gorm:"embedded;embeddedPrefix:canastillas_"`
	PrecioTotal   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Estado        string          `gorm:"size:20;not null;default:'pendiente';index"`
	Observaciones *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Cliente  *Cliente  `gorm:"foreignKey:ClienteID"`
	Despacho *Despacho `gorm:"foreignKey:PedidoID"`
}

func (Pedido) TableName() string { return "pedidos" }

func (p *Pedido) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Despacho materializa la entrega de un pedido. Las canastillas despachadas
// pueden diferir de las pedidas (despacho parcial o ajustado); el ingreso
// registrado usa siempre el precio_total del pedido.
type Despacho struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	PedidoID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Fecha         string    `gorm:"size:10;not null;index"`
	Hora          string    `gorm:"size:8;not null"`
	Canastillas   Conteo    `gorm:"embedded;embeddedPrefix:canastillas_"`
	Observaciones *string
	CreatedAt     time.Time

	Pedido *Pedido `gorm:"foreignKey:PedidoID"`
}

func (Despacho) TableName() string { return "despachos" }

func (d *Despacho) BeforeCreate(_ *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
