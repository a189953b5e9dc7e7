package service

import (
	"context"
	"testing"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/apperror"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func nuevoReporteService(db *gorm.DB) ReporteService {
	return NewReporteService(
		repository.NewReporteRepository(db),
		repository.NewMovimientoFinancieroRepository(db),
		repository.NewStockHuevosRepository(db),
		repository.NewInsumoRepository(db),
		10,
	)
}

func TestPeriodoVacioDevuelveCerosSinError(t *testing.T) {
	db := baseDePrueba(t)
	svc := nuevoReporteService(db)
	ctx := context.Background()
	rango := rangoAmplio()

	balance, err := svc.Balance(ctx, rango)
	require.NoError(t, err)
	assert.True(t, balance.TotalIngresos.IsZero())
	assert.True(t, balance.TotalEgresos.IsZero())
	assert.True(t, balance.Balance.IsZero())

	resumen, err := svc.ResumenProduccionVentas(ctx, rango)
	require.NoError(t, err)
	assert.Equal(t, int64(0), resumen.TotalProducido)
	assert.Equal(t, int64(0), resumen.TotalVendido)

	costo, err := svc.CostoPorHuevo(ctx, rango)
	require.NoError(t, err)
	assert.True(t, costo.CostoUnitario.IsZero())

	top, err := svc.TopClientes(ctx, rango, 0)
	require.NoError(t, err)
	assert.Empty(t, top)

	stats, err := svc.EstadisticasStock(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalHuevos)
}

func TestRangoInvalido(t *testing.T) {
	db := baseDePrueba(t)
	svc := nuevoReporteService(db)

	var ev *apperror.Validation
	_, err := svc.Balance(context.Background(), dto.RangoFechas{
		FechaInicio: "2026-08-31", FechaFin: "2026-08-01",
	})
	require.ErrorAs(t, err, &ev)

	_, err = svc.Balance(context.Background(), dto.RangoFechas{
		FechaInicio: "agosto", FechaFin: "2026-08-31",
	})
	require.ErrorAs(t, err, &ev)
}

func TestBalanceYCostoConActividad(t *testing.T) {
	db := baseDePrueba(t)
	ctx := context.Background()
	rango := rangoAmplio()

	// producción: 1000 huevos C
	prodSvc := NewProduccionService(
		repository.NewProduccionRepository(db),
		repository.NewStockHuevosRepository(db),
	)
	_, err := prodSvc.Registrar(ctx, dto.RegistrarProduccionRequest{
		Fecha: "2026-08-01", Hora: "07:00:00", Conteo: model.Conteo{C: 1000},
	})
	require.NoError(t, err)

	// egreso de producción: compra de alimento por 500
	insumoSvc := nuevoInsumoService(db)
	comprarAlimento(t, insumoSvc, 100, 500)

	// ingreso: despacho de un pedido por 45000
	pedidoSvc := nuevoPedidoService(db)
	pedidoID := crearPedidoPrueba(t, db, pedidoSvc)
	_, err = pedidoSvc.Despachar(ctx, pedidoID, dto.DespacharPedidoRequest{
		Fecha: "2026-08-11", Hora: "08:00:00", Canastillas: model.Conteo{AA: 2, Jumbo: 1},
	})
	require.NoError(t, err)

	svc := nuevoReporteService(db)

	balance, err := svc.Balance(ctx, rango)
	require.NoError(t, err)
	assert.True(t, balance.TotalIngresos.Equal(decimal.NewFromInt(45000)))
	assert.True(t, balance.TotalEgresos.Equal(decimal.NewFromInt(500)))
	assert.True(t, balance.Balance.Equal(decimal.NewFromInt(44500)))

	resumen, err := svc.ResumenProduccionVentas(ctx, rango)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), resumen.TotalProducido)
	assert.Equal(t, int64(90), resumen.TotalVendido) // 3 canastillas × 30

	// 500 de alimento sobre 1000 huevos
	costo, err := svc.CostoPorHuevo(ctx, rango)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), costo.HuevosProducidos)
	assert.True(t, costo.CostoUnitario.Equal(decimal.NewFromFloat(0.5)))

	top, err := svc.TopClientes(ctx, rango, 0)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "Tienda La Esquina", top[0].Nombre)
	assert.True(t, top[0].TotalComprado.Equal(decimal.NewFromInt(45000)))

	porCat, err := svc.MovimientosPorCategoria(ctx, rango)
	require.NoError(t, err)
	assert.Len(t, porCat, 2)
}
