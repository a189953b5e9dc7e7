package model

import "github.com/shopspring/decimal"

// HuevosPorCanastilla es la unidad fija de venta: una canastilla son 30 huevos.
const HuevosPorCanastilla = 30

// Conteo agrupa una cantidad por cada categoría de huevo (C, B, A, AA, AAA, Jumbo).
// Se embebe en las tablas con un prefijo de columna: tipo_ para huevos sueltos,
// canastillas_ para pedidos y despachos.
type Conteo struct {
	C     int `gorm:"not null;default:0" json:"c"`
	B     int `gorm:"not null;default:0" json:"b"`
	A     int `gorm:"not null;default:0" json:"a"`
	AA    int `gorm:"not null;default:0" json:"aa"`
	AAA   int `gorm:"not null;default:0" json:"aaa"`
	Jumbo int `gorm:"not null;default:0" json:"jumbo"`
}

// Total suma las seis categorías.
func (c Conteo) Total() int {
	return c.C + c.B + c.A + c.AA + c.AAA + c.Jumbo
}

// EsCero indica si las seis categorías están en cero.
func (c Conteo) EsCero() bool { return c.Total() == 0 && !c.TieneNegativo() }

// TieneNegativo indica si alguna categoría es negativa.
func (c Conteo) TieneNegativo() bool {
	return c.C < 0 || c.B < 0 || c.A < 0 || c.AA < 0 || c.AAA < 0 || c.Jumbo < 0
}

// Negado devuelve el conteo con el signo invertido en cada categoría.
func (c Conteo) Negado() Conteo {
	return Conteo{C: -c.C, B: -c.B, A: -c.A, AA: -c.AA, AAA: -c.AAA, Jumbo: -c.Jumbo}
}

// Huevos convierte canastillas a huevos (×30 por categoría).
func (c Conteo) Huevos() Conteo {
	return Conteo{
		C:     c.C * HuevosPorCanastilla,
		B:     c.B * HuevosPorCanastilla,
		A:     c.A * HuevosPorCanastilla,
		AA:    c.AA * HuevosPorCanastilla,
		AAA:   c.AAA * HuevosPorCanastilla,
		Jumbo: c.Jumbo * HuevosPorCanastilla,
	}
}

// Sumado devuelve la suma categoría a categoría.
func (c Conteo) Sumado(o Conteo) Conteo {
	return Conteo{
		C:     c.C + o.C,
		B:     c.B + o.B,
		A:     c.A + o.A,
		AA:    c.AA + o.AA,
		AAA:   c.AAA + o.AAA,
		Jumbo: c.Jumbo + o.Jumbo,
	}
}

// Precios agrupa el precio unitario por categoría de huevo.
// Se embebe con el prefijo de columna precio_.
type Precios struct {
	C     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"c"`
	B     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"b"`
	A     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"a"`
	AA    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"aa"`
	AAA   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"aaa"`
	Jumbo decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"jumbo"`
}

// TodosPositivos indica si las seis categorías tienen precio mayor a cero.
func (p Precios) TodosPositivos() bool {
	zero := decimal.Zero
	return p.C.GreaterThan(zero) && p.B.GreaterThan(zero) && p.A.GreaterThan(zero) &&
		p.AA.GreaterThan(zero) && p.AAA.GreaterThan(zero) && p.Jumbo.GreaterThan(zero)
}
