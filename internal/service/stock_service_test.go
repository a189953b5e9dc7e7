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

func TestAjustarMermaSePersisteNegada(t *testing.T) {
	db := baseDePrueba(t)
	repo := repository.NewStockHuevosRepository(db)
	svc := NewStockService(repo)

	// una merma de 5 huevos C se guarda como tipo_c = -5
	id, err := svc.Ajustar(context.Background(), dto.AjusteStockRequest{
		TipoAjuste: model.AjusteMerma,
		Conteo:     model.Conteo{C: 5},
	})
	require.NoError(t, err)

	assert.Equal(t, -5, stockActual(t, db).C)

	ajustes, err := svc.HistorialAjustes(context.Background(), rangoAmplio())
	require.NoError(t, err)
	require.Len(t, ajustes, 1)
	assert.Equal(t, id, ajustes[0].ID)
	assert.Equal(t, model.AjusteMerma, ajustes[0].TipoAjuste)
	assert.Equal(t, -5, ajustes[0].Conteo.C)
}

func TestAjustarMermaRechazaMagnitudNegativa(t *testing.T) {
	db := baseDePrueba(t)
	svc := NewStockService(repository.NewStockHuevosRepository(db))

	var ev *apperror.Validation
	_, err := svc.Ajustar(context.Background(), dto.AjusteStockRequest{
		TipoAjuste: model.AjusteMerma,
		Conteo:     model.Conteo{C: -5},
	})
	require.ErrorAs(t, err, &ev)
	assert.True(t, stockActual(t, db).EsCero())
}

func TestAjustarCorreccionAdmiteCualquierSigno(t *testing.T) {
	db := baseDePrueba(t)
	svc := NewStockService(repository.NewStockHuevosRepository(db))

	_, err := svc.Ajustar(context.Background(), dto.AjusteStockRequest{
		TipoAjuste: model.AjusteCorreccion,
		Conteo:     model.Conteo{B: 12, AAA: -3},
	})
	require.NoError(t, err)

	stock := stockActual(t, db)
	assert.Equal(t, 12, stock.B)
	assert.Equal(t, -3, stock.AAA)
}

func TestStockEsSumaDeDeltas(t *testing.T) {
	db := baseDePrueba(t)
	stockSvc := NewStockService(repository.NewStockHuevosRepository(db))
	prodSvc := NewProduccionService(
		repository.NewProduccionRepository(db),
		repository.NewStockHuevosRepository(db),
	)

	_, err := prodSvc.Registrar(context.Background(), dto.RegistrarProduccionRequest{
		Fecha: "2026-08-01", Hora: "07:00:00", Conteo: model.Conteo{C: 100},
	})
	require.NoError(t, err)

	_, err = stockSvc.Ajustar(context.Background(), dto.AjusteStockRequest{
		TipoAjuste: model.AjusteMerma, Conteo: model.Conteo{C: 30},
	})
	require.NoError(t, err)

	_, err = stockSvc.Ajustar(context.Background(), dto.AjusteStockRequest{
		TipoAjuste: model.AjusteCorreccion, Conteo: model.Conteo{C: 5},
	})
	require.NoError(t, err)

	assert.Equal(t, 75, stockActual(t, db).C)
}
