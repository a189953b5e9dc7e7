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

func nuevoInsumoService(db *gorm.DB) InsumoService {
	return NewInsumoService(
		repository.NewInsumoRepository(db),
		repository.NewMovimientoFinancieroRepository(db),
	)
}

func comprarAlimento(t *testing.T, svc InsumoService, cantidad float64, total int64) uuid.UUID {
	t.Helper()
	id, err := svc.RegistrarCompra(context.Background(), dto.RegistrarCompraRequest{
		Nombre:        "Alimento ponedoras",
		Categoria:     "Alimento",
		Cantidad:      cantidad,
		Unidad:        "kg",
		CostoUnitario: decimal.NewFromInt(total).Div(decimal.NewFromFloat(cantidad)),
		CostoTotal:    decimal.NewFromInt(total),
		FechaCompra:   "2026-08-05",
	})
	require.NoError(t, err)
	return id
}

func TestCompraCreaStockYAsientaEgreso(t *testing.T) {
	db := baseDePrueba(t)
	svc := nuevoInsumoService(db)

	compraID := comprarAlimento(t, svc, 100, 500)

	stock, err := svc.ListarStock(context.Background())
	require.NoError(t, err)
	require.Len(t, stock, 1)
	assert.Equal(t, "Alimento ponedoras", stock[0].Nombre)
	assert.Equal(t, 100.0, stock[0].CantidadActual)
	assert.Equal(t, 0.0, stock[0].StockMinimo)

	movs, err := repository.NewMovimientoFinancieroRepository(db).ListarPorRango(context.Background(), rangoAmplio())
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, model.MovimientoEgreso, movs[0].Tipo)
	assert.Equal(t, "Alimento", movs[0].Categoria)
	assert.True(t, movs[0].Monto.Equal(decimal.NewFromInt(500)))
	require.NotNil(t, movs[0].ReferenciaID)
	assert.Equal(t, compraID, *movs[0].ReferenciaID)

	entradas, err := svc.HistorialMovimientos(context.Background(), rangoAmplio())
	require.NoError(t, err)
	require.Len(t, entradas, 1)
	assert.Equal(t, model.MovimientoEntrada, entradas[0].TipoMovimiento)
}

func TestCompraRepetidaAcumulaSobreElMismoStock(t *testing.T) {
	db := baseDePrueba(t)
	svc := nuevoInsumoService(db)

	comprarAlimento(t, svc, 100, 500)
	comprarAlimento(t, svc, 50, 260)

	stock, err := svc.ListarStock(context.Background())
	require.NoError(t, err)
	require.Len(t, stock, 1)
	assert.Equal(t, 150.0, stock[0].CantidadActual)
}

func TestConsumoDescuentaYRegistraSalida(t *testing.T) {
	db := baseDePrueba(t)
	svc := nuevoInsumoService(db)
	comprarAlimento(t, svc, 100, 500)

	stock, err := svc.ListarStock(context.Background())
	require.NoError(t, err)
	stockID := stock[0].ID

	_, err = svc.RegistrarConsumo(context.Background(), dto.RegistrarConsumoRequest{
		StockInsumoID: stockID,
		Cantidad:      30,
	})
	require.NoError(t, err)

	stock, err = svc.ListarStock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 70.0, stock[0].CantidadActual)

	movs, err := svc.HistorialMovimientos(context.Background(), rangoAmplio())
	require.NoError(t, err)
	require.Len(t, movs, 2)
}

func TestConsumoInsumoInexistente(t *testing.T) {
	db := baseDePrueba(t)
	svc := nuevoInsumoService(db)

	var er *apperror.Referential
	_, err := svc.RegistrarConsumo(context.Background(), dto.RegistrarConsumoRequest{
		StockInsumoID: uuid.NewString(),
		Cantidad:      10,
	})
	require.ErrorAs(t, err, &er)
}

func TestAlertasPorUmbral(t *testing.T) {
	db := baseDePrueba(t)
	svc := nuevoInsumoService(db)
	comprarAlimento(t, svc, 20, 100)

	stock, err := svc.ListarStock(context.Background())
	require.NoError(t, err)
	stockID := uuid.MustParse(stock[0].ID)

	alertas, err := svc.Alertas(context.Background())
	require.NoError(t, err)
	assert.Empty(t, alertas)

	require.NoError(t, svc.ActualizarStockMinimo(context.Background(), stockID, 25))

	alertas, err = svc.Alertas(context.Background())
	require.NoError(t, err)
	require.Len(t, alertas, 1)
	assert.True(t, alertas[0].Alerta)
}

func TestAjusteAbsolutoRegistraDiferencia(t *testing.T) {
	db := baseDePrueba(t)
	svc := nuevoInsumoService(db)
	comprarAlimento(t, svc, 100, 500)

	stock, err := svc.ListarStock(context.Background())
	require.NoError(t, err)
	stockID := uuid.MustParse(stock[0].ID)

	// conteo físico: quedaban 80, no 100
	require.NoError(t, svc.AjustarStockAbsoluto(context.Background(), stockID, dto.AjustarStockInsumoRequest{
		NuevaCantidad: 80,
	}))

	stock, err = svc.ListarStock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 80.0, stock[0].CantidadActual)

	movs, err := svc.HistorialMovimientos(context.Background(), rangoAmplio())
	require.NoError(t, err)
	require.Len(t, movs, 2)
	assert.Equal(t, model.MovimientoSalida, movs[0].TipoMovimiento)
}
