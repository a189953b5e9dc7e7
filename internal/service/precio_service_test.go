package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/apperror"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func preciosDePrueba(base int64) model.Precios {
	return model.Precios{
		C:     decimal.NewFromInt(base),
		B:     decimal.NewFromInt(base + 50),
		A:     decimal.NewFromInt(base + 100),
		AA:    decimal.NewFromInt(base + 150),
		AAA:   decimal.NewFromInt(base + 200),
		Jumbo: decimal.NewFromInt(base + 300),
	}
}

func TestSinPreciosActualEsNil(t *testing.T) {
	db := baseDePrueba(t)
	svc := NewPrecioService(repository.NewPrecioRepository(db))

	actual, err := svc.Actual(context.Background())
	require.NoError(t, err)
	assert.Nil(t, actual)
}

func TestCrearPrecioDejaUnaSolaListaActiva(t *testing.T) {
	db := baseDePrueba(t)
	svc := NewPrecioService(repository.NewPrecioRepository(db))

	var ultimo string
	for i := 0; i < 4; i++ {
		fecha := fmt.Sprintf("2026-08-%02d", i+1)
		_, err := svc.Crear(context.Background(), dto.CrearPrecioRequest{
			FechaVigencia: fecha,
			Precios:       preciosDePrueba(int64(300 + i*10)),
		})
		require.NoError(t, err)
		ultimo = fecha
	}

	actual, err := svc.Actual(context.Background())
	require.NoError(t, err)
	require.NotNil(t, actual)
	assert.Equal(t, ultimo, actual.FechaVigencia)
	assert.True(t, actual.Precios.C.Equal(decimal.NewFromInt(330)))

	var activas int64
	require.NoError(t, db.Model(&model.PrecioHuevos{}).Where("activo = ?", true).Count(&activas).Error)
	assert.Equal(t, int64(1), activas)

	historial, err := svc.Historial(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, historial, 4)
}

func TestCrearPrecioExigeSeisPositivos(t *testing.T) {
	db := baseDePrueba(t)
	svc := NewPrecioService(repository.NewPrecioRepository(db))

	precios := preciosDePrueba(300)
	precios.Jumbo = decimal.Zero

	var ev *apperror.Validation
	_, err := svc.Crear(context.Background(), dto.CrearPrecioRequest{
		FechaVigencia: "2026-08-01",
		Precios:       precios,
	})
	require.ErrorAs(t, err, &ev)

	actual, err := svc.Actual(context.Background())
	require.NoError(t, err)
	assert.Nil(t, actual)
}
