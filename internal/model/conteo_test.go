package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConteoTotal(t *testing.T) {
	c := Conteo{C: 1, B: 2, A: 3, AA: 4, AAA: 5, Jumbo: 6}
	assert.Equal(t, 21, c.Total())
}

func TestConteoEsCero(t *testing.T) {
	assert.True(t, Conteo{}.EsCero())
	assert.False(t, Conteo{AA: 1}.EsCero())
	// la suma puede dar cero sin que el conteo sea cero
	assert.False(t, Conteo{C: 1, B: -1}.EsCero())
}

func TestConteoTieneNegativo(t *testing.T) {
	assert.False(t, Conteo{C: 5}.TieneNegativo())
	assert.True(t, Conteo{C: 5, Jumbo: -1}.TieneNegativo())
}

func TestConteoNegado(t *testing.T) {
	c := Conteo{C: 5, AAA: 2}
	n := c.Negado()
	assert.Equal(t, -5, n.C)
	assert.Equal(t, -2, n.AAA)
	assert.Equal(t, 0, n.B)
}

func TestConteoHuevos(t *testing.T) {
	// una canastilla son 30 huevos
	c := Conteo{C: 2, Jumbo: 1}
	h := c.Huevos()
	assert.Equal(t, 60, h.C)
	assert.Equal(t, 30, h.Jumbo)
	assert.Equal(t, 90, h.Total())
}

func TestConteoSumado(t *testing.T) {
	a := Conteo{C: 1, B: 2}
	b := Conteo{C: 3, Jumbo: 4}
	s := a.Sumado(b)
	assert.Equal(t, Conteo{C: 4, B: 2, Jumbo: 4}, s)
}

func TestPreciosTodosPositivos(t *testing.T) {
	p := Precios{
		C: decimal.NewFromInt(300), B: decimal.NewFromInt(350), A: decimal.NewFromInt(400),
		AA: decimal.NewFromInt(450), AAA: decimal.NewFromInt(500), Jumbo: decimal.NewFromInt(600),
	}
	assert.True(t, p.TodosPositivos())

	p.AA = decimal.Zero
	assert.False(t, p.TodosPositivos())
}
