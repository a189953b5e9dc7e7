package service

import (
	"context"
	"testing"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/apperror"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrarProduccionActualizaStock(t *testing.T) {
	db := baseDePrueba(t)
	svc := NewProduccionService(
		repository.NewProduccionRepository(db),
		repository.NewStockHuevosRepository(db),
	)

	id, err := svc.Registrar(context.Background(), dto.RegistrarProduccionRequest{
		Fecha:  "2026-08-01",
		Hora:   "07:30:00",
		Conteo: model.Conteo{C: 10, B: 20, AA: 5},
	})
	require.NoError(t, err)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())

	stock := stockActual(t, db)
	assert.Equal(t, 10, stock.C)
	assert.Equal(t, 20, stock.B)
	assert.Equal(t, 5, stock.AA)
	assert.Equal(t, 0, stock.Jumbo)
}

func TestRegistrarProduccionAcumula(t *testing.T) {
	db := baseDePrueba(t)
	svc := NewProduccionService(
		repository.NewProduccionRepository(db),
		repository.NewStockHuevosRepository(db),
	)

	for i := 0; i < 3; i++ {
		_, err := svc.Registrar(context.Background(), dto.RegistrarProduccionRequest{
			Fecha:  "2026-08-01",
			Hora:   "07:30:00",
			Conteo: model.Conteo{A: 7},
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 21, stockActual(t, db).A)
}

func TestRegistrarProduccionRechazaConteoInvalido(t *testing.T) {
	db := baseDePrueba(t)
	svc := NewProduccionService(
		repository.NewProduccionRepository(db),
		repository.NewStockHuevosRepository(db),
	)

	var ev *apperror.Validation

	_, err := svc.Registrar(context.Background(), dto.RegistrarProduccionRequest{
		Fecha:  "2026-08-01",
		Hora:   "07:30:00",
		Conteo: model.Conteo{C: -3},
	})
	require.ErrorAs(t, err, &ev)

	_, err = svc.Registrar(context.Background(), dto.RegistrarProduccionRequest{
		Fecha: "2026-08-01",
		Hora:  "07:30:00",
	})
	require.ErrorAs(t, err, &ev, "un conteo todo en cero no es una recoleccion")

	_, err = svc.Registrar(context.Background(), dto.RegistrarProduccionRequest{
		Fecha:  "01/08/2026",
		Hora:   "07:30:00",
		Conteo: model.Conteo{C: 1},
	})
	require.ErrorAs(t, err, &ev)

	// nada debe haber tocado el stock
	assert.True(t, stockActual(t, db).EsCero())
}

func TestTotalesPeriodoVacioDevuelveCeros(t *testing.T) {
	db := baseDePrueba(t)
	svc := NewProduccionService(
		repository.NewProduccionRepository(db),
		repository.NewStockHuevosRepository(db),
	)

	totales, err := svc.TotalesPeriodo(context.Background(), rangoAmplio())
	require.NoError(t, err)
	assert.Equal(t, 0, totales.Total())
	assert.Equal(t, int64(0), totales.DiasRegistrados)
}
