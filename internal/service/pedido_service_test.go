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

func nuevoPedidoService(db *gorm.DB) PedidoService {
	return NewPedidoService(
		repository.NewPedidoRepository(db),
		repository.NewClienteRepository(db),
		repository.NewStockHuevosRepository(db),
		repository.NewMovimientoFinancieroRepository(db),
	)
}

func crearPedidoPrueba(t *testing.T, db *gorm.DB, svc PedidoService) uuid.UUID {
	t.Helper()
	clienteID := crearClientePrueba(t, db, "Tienda La Esquina")
	id, err := svc.Crear(context.Background(), dto.CrearPedidoRequest{
		ClienteID:   clienteID.String(),
		Fecha:       "2026-08-10",
		Hora:        "09:00:00",
		Canastillas: model.Conteo{AA: 2, Jumbo: 1},
		PrecioTotal: decimal.NewFromInt(45000),
	})
	require.NoError(t, err)
	return id
}

func TestCrearPedidoRequiereClienteActivo(t *testing.T) {
	db := baseDePrueba(t)
	svc := nuevoPedidoService(db)

	var er *apperror.Referential
	_, err := svc.Crear(context.Background(), dto.CrearPedidoRequest{
		ClienteID:   uuid.NewString(),
		Fecha:       "2026-08-10",
		Hora:        "09:00:00",
		Canastillas: model.Conteo{C: 1},
		PrecioTotal: decimal.NewFromInt(1000),
	})
	require.ErrorAs(t, err, &er)

	clienteID := crearClientePrueba(t, db, "Cliente Baja")
	clienteSvc := NewClienteService(repository.NewClienteRepository(db))
	require.NoError(t, clienteSvc.Desactivar(context.Background(), clienteID))

	_, err = svc.Crear(context.Background(), dto.CrearPedidoRequest{
		ClienteID:   clienteID.String(),
		Fecha:       "2026-08-10",
		Hora:        "09:00:00",
		Canastillas: model.Conteo{C: 1},
		PrecioTotal: decimal.NewFromInt(1000),
	})
	require.ErrorAs(t, err, &er)
}

func TestDespacharCompletaElPedido(t *testing.T) {
	db := baseDePrueba(t)
	svc := nuevoPedidoService(db)
	pedidoID := crearPedidoPrueba(t, db, svc)

	despachoID, err := svc.Despachar(context.Background(), pedidoID, dto.DespacharPedidoRequest{
		Fecha:       "2026-08-11",
		Hora:        "08:00:00",
		Canastillas: model.Conteo{AA: 2, Jumbo: 1},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, despachoID)

	// el stock baja en huevos: canastillas × 30, y puede quedar negativo
	stock := stockActual(t, db)
	assert.Equal(t, -60, stock.AA)
	assert.Equal(t, -30, stock.Jumbo)

	pedido, err := svc.Obtener(context.Background(), pedidoID)
	require.NoError(t, err)
	assert.Equal(t, model.PedidoCompletado, pedido.Estado)
	require.NotNil(t, pedido.Despacho)
	assert.Equal(t, 2, pedido.Despacho.Canastillas.AA)

	// el ingreso queda asentado por el precio del pedido
	movs, err := repository.NewMovimientoFinancieroRepository(db).ListarPorRango(context.Background(), rangoAmplio())
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, model.MovimientoIngreso, movs[0].Tipo)
	assert.Equal(t, model.CategoriaVentaHuevos, movs[0].Categoria)
	assert.True(t, movs[0].Monto.Equal(decimal.NewFromInt(45000)))
	require.NotNil(t, movs[0].ReferenciaID)
	assert.Equal(t, pedidoID, *movs[0].ReferenciaID)
}

func TestDespacharDosVecesFalla(t *testing.T) {
	db := baseDePrueba(t)
	svc := nuevoPedidoService(db)
	pedidoID := crearPedidoPrueba(t, db, svc)

	req := dto.DespacharPedidoRequest{
		Fecha:       "2026-08-11",
		Hora:        "08:00:00",
		Canastillas: model.Conteo{AA: 2, Jumbo: 1},
	}
	_, err := svc.Despachar(context.Background(), pedidoID, req)
	require.NoError(t, err)

	var es *apperror.State
	_, err = svc.Despachar(context.Background(), pedidoID, req)
	require.ErrorAs(t, err, &es)

	// el segundo intento no debe tocar el stock ni el ledger
	assert.Equal(t, -60, stockActual(t, db).AA)
	movs, err := repository.NewMovimientoFinancieroRepository(db).ListarPorRango(context.Background(), rangoAmplio())
	require.NoError(t, err)
	assert.Len(t, movs, 1)
}

func TestDespachoPuedeDiferirDelPedido(t *testing.T) {
	db := baseDePrueba(t)
	svc := nuevoPedidoService(db)
	pedidoID := crearPedidoPrueba(t, db, svc)

	// se entregó una canastilla AA menos; el ingreso igual usa el precio del pedido
	_, err := svc.Despachar(context.Background(), pedidoID, dto.DespacharPedidoRequest{
		Fecha:       "2026-08-11",
		Hora:        "08:00:00",
		Canastillas: model.Conteo{AA: 1, Jumbo: 1},
	})
	require.NoError(t, err)

	assert.Equal(t, -30, stockActual(t, db).AA)
	movs, err := repository.NewMovimientoFinancieroRepository(db).ListarPorRango(context.Background(), rangoAmplio())
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.True(t, movs[0].Monto.Equal(decimal.NewFromInt(45000)))
}

func TestCancelarSegunEstado(t *testing.T) {
	db := baseDePrueba(t)
	svc := nuevoPedidoService(db)

	pedidoID := crearPedidoPrueba(t, db, svc)
	require.NoError(t, svc.Cancelar(context.Background(), pedidoID))

	pedido, err := svc.Obtener(context.Background(), pedidoID)
	require.NoError(t, err)
	assert.Equal(t, model.PedidoCancelado, pedido.Estado)

	// cancelar un cancelado es idempotente
	require.NoError(t, svc.Cancelar(context.Background(), pedidoID))

	// cancelar un completado es conflicto de estado
	otroID := crearPedidoPrueba(t, db, svc)
	_, err = svc.Despachar(context.Background(), otroID, dto.DespacharPedidoRequest{
		Fecha: "2026-08-11", Hora: "08:00:00", Canastillas: model.Conteo{AA: 1},
	})
	require.NoError(t, err)

	var es *apperror.State
	require.ErrorAs(t, svc.Cancelar(context.Background(), otroID), &es)
}

func TestActualizarSoloPendientes(t *testing.T) {
	db := baseDePrueba(t)
	svc := nuevoPedidoService(db)
	pedidoID := crearPedidoPrueba(t, db, svc)

	err := svc.Actualizar(context.Background(), pedidoID, dto.ActualizarPedidoRequest{
		Canastillas: model.Conteo{C: 3},
		PrecioTotal: decimal.NewFromInt(30000),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Cancelar(context.Background(), pedidoID))

	var es *apperror.State
	err = svc.Actualizar(context.Background(), pedidoID, dto.ActualizarPedidoRequest{
		Canastillas: model.Conteo{C: 4},
		PrecioTotal: decimal.NewFromInt(40000),
	})
	require.ErrorAs(t, err, &es)

	var er *apperror.Referential
	err = svc.Actualizar(context.Background(), uuid.New(), dto.ActualizarPedidoRequest{
		Canastillas: model.Conteo{C: 1},
		PrecioTotal: decimal.NewFromInt(1000),
	})
	require.ErrorAs(t, err, &er)
}
