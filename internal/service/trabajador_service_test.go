package service

import (
	"context"
	"testing"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/apperror"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func nuevoTrabajadorService(db *gorm.DB) TrabajadorService {
	return NewTrabajadorService(
		repository.NewTrabajadorRepository(db),
		repository.NewPagoTrabajadorRepository(db),
		repository.NewMovimientoFinancieroRepository(db),
		db,
	)
}

func TestRegistrarPagoAsientaEgreso(t *testing.T) {
	db := baseDePrueba(t)
	svc := nuevoTrabajadorService(db)

	cargo := "Galponero"
	trabajadorID, err := svc.Crear(context.Background(), dto.CrearTrabajadorRequest{
		Nombre: "Pedro Rojas",
		Cargo:  &cargo,
	})
	require.NoError(t, err)

	concepto := "Quincena agosto"
	pagoID, err := svc.RegistrarPago(context.Background(), dto.RegistrarPagoRequest{
		TrabajadorID: trabajadorID.String(),
		Fecha:        "2026-08-15",
		Hora:         "17:00:00",
		Monto:        decimal.NewFromInt(250000),
		Concepto:     &concepto,
	})
	require.NoError(t, err)

	movs, err := repository.NewMovimientoFinancieroRepository(db).ListarPorRango(context.Background(), rangoAmplio())
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, model.MovimientoEgreso, movs[0].Tipo)
	assert.Equal(t, model.CategoriaPagoTrabajador, movs[0].Categoria)
	assert.True(t, movs[0].Monto.Equal(decimal.NewFromInt(250000)))
	require.NotNil(t, movs[0].ReferenciaID)
	assert.Equal(t, pagoID, *movs[0].ReferenciaID)

	total, err := svc.TotalPagado(context.Background(), trabajadorID, rangoAmplio())
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(250000)))
}

func TestRegistrarPagoValida(t *testing.T) {
	db := baseDePrueba(t)
	svc := nuevoTrabajadorService(db)

	var ev *apperror.Validation
	_, err := svc.RegistrarPago(context.Background(), dto.RegistrarPagoRequest{
		TrabajadorID: uuid.NewString(),
		Fecha:        "2026-08-15",
		Hora:         "17:00:00",
		Monto:        decimal.Zero,
	})
	require.ErrorAs(t, err, &ev)

	var er *apperror.Referential
	_, err = svc.RegistrarPago(context.Background(), dto.RegistrarPagoRequest{
		TrabajadorID: uuid.NewString(),
		Fecha:        "2026-08-15",
		Hora:         "17:00:00",
		Monto:        decimal.NewFromInt(1000),
	})
	require.ErrorAs(t, err, &er)
}

func TestTotalPagadoSinPagosEsCero(t *testing.T) {
	db := baseDePrueba(t)
	svc := nuevoTrabajadorService(db)

	trabajadorID, err := svc.Crear(context.Background(), dto.CrearTrabajadorRequest{Nombre: "Ana Mora"})
	require.NoError(t, err)

	total, err := svc.TotalPagado(context.Background(), trabajadorID, rangoAmplio())
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}
