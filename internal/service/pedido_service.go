package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/apperror"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PedidoService maneja el ciclo de vida de pedidos y su despacho.
type PedidoService interface {
	Crear(ctx context.Context, req dto.CrearPedidoRequest) (uuid.UUID, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	ListPendientes(ctx context.Context) ([]model.Pedido, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPedidoRequest) error
	Cancelar(ctx context.Context, id uuid.UUID) error
	Despachar(ctx context.Context, id uuid.UUID, req dto.DespacharPedidoRequest) (uuid.UUID, error)
	HistorialVentas(ctx context.Context, rango dto.RangoFechas) ([]model.Pedido, error)
}

type pedidoService struct {
	repo        repository.PedidoRepository
	clientes    repository.ClienteRepository
	stock       repository.StockHuevosRepository
	movimientos repository.MovimientoFinancieroRepository
}

func NewPedidoService(
	repo repository.PedidoRepository,
	clientes repository.ClienteRepository,
	stock repository.StockHuevosRepository,
	movimientos repository.MovimientoFinancieroRepository,
) PedidoService {
	return &pedidoService{repo: repo, clientes: clientes, stock: stock, movimientos: movimientos}
}

func (s *pedidoService) Crear(ctx context.Context, req dto.CrearPedidoRequest) (uuid.UUID, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return uuid.Nil, apperror.NewValidation("cliente_id", "identificador inválido")
	}
	if err := validarFecha("fecha", req.Fecha); err != nil {
		return uuid.Nil, err
	}
	if err := validarHora("hora", req.Hora); err != nil {
		return uuid.Nil, err
	}
	if req.Canastillas.TieneNegativo() {
		return uuid.Nil, apperror.NewValidation("canastillas", "las canastillas deben ser enteros no negativos")
	}
	if req.PrecioTotal.LessThan(decimal.Zero) {
		return uuid.Nil, apperror.NewValidation("precio_total", "no puede ser negativo")
	}

	cliente, err := s.clientes.FindByID(ctx, clienteID)
	if err != nil || !cliente.Activo {
		return uuid.Nil, apperror.NewReferential("cliente", req.ClienteID)
	}

	pedido := model.Pedido{
		ClienteID:     clienteID,
		Fecha:         req.Fecha,
		Hora:          req.Hora,
		Canastillas:   req.Canastillas,
		PrecioTotal:   req.PrecioTotal,
		Estado:        model.PedidoPendiente,
		Observaciones: req.Observaciones,
	}
	if err := s.repo.Create(ctx, &pedido); err != nil {
		return uuid.Nil, err
	}
	return pedido.ID, nil
}

func (s *pedidoService) Obtener(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	p, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewReferential("pedido", id.String())
	}
	return p, err
}

func (s *pedidoService) ListPendientes(ctx context.Context) ([]model.Pedido, error) {
	return s.repo.ListPendientes(ctx)
}

// Actualizar edita un pedido solo mientras está pendiente.
func (s *pedidoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarPedidoRequest) error {
	if req.Canastillas.TieneNegativo() {
		return apperror.NewValidation("canastillas", "las canastillas deben ser enteros no negativos")
	}
	if req.PrecioTotal.LessThan(decimal.Zero) {
		return apperror.NewValidation("precio_total", "no puede ser negativo")
	}
	affected, err := s.repo.ActualizarPendiente(ctx, id, req)
	if err != nil {
		return err
	}
	if affected == 0 {
		pedido, findErr := s.repo.FindByID(ctx, id)
		if findErr != nil {
			return apperror.NewReferential("pedido", id.String())
		}
		return apperror.NewState("pedido", pedido.Estado, "solo un pedido pendiente es editable")
	}
	return nil
}

// Cancelar pasa un pedido de pendiente a cancelado. Cancelar un pedido ya
// cancelado es un no-op; un pedido completado no se puede cancelar.
func (s *pedidoService) Cancelar(ctx context.Context, id uuid.UUID) error {
	pedido, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewReferential("pedido", id.String())
	}
	if err != nil {
		return err
	}
	switch pedido.Estado {
	case model.PedidoCancelado:
		return nil
	case model.PedidoCompletado:
		return apperror.NewState("pedido", pedido.Estado, "un pedido completado no se cancela")
	}
	return s.repo.UpdateEstado(ctx, id, model.PedidoCancelado)
}

// Despachar materializa la entrega en una sola transacción: inserta el
// despacho, descuenta del stock canastillas × 30 por categoría, marca el
// pedido como completado y registra el ingreso por el precio total del
// pedido. No se exige stock suficiente: el stock puede quedar negativo y
// el tablero lo muestra como faltante a reponer.
func (s *pedidoService) Despachar(ctx context.Context, id uuid.UUID, req dto.DespacharPedidoRequest) (uuid.UUID, error) {
	if err := validarFecha("fecha", req.Fecha); err != nil {
		return uuid.Nil, err
	}
	if err := validarHora("hora", req.Hora); err != nil {
		return uuid.Nil, err
	}
	if req.Canastillas.TieneNegativo() {
		return uuid.Nil, apperror.NewValidation("canastillas", "las canastillas deben ser enteros no negativos")
	}

	despacho := model.Despacho{
		PedidoID:      id,
		Fecha:         req.Fecha,
		Hora:          req.Hora,
		Canastillas:   req.Canastillas,
		Observaciones: req.Observaciones,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		pedido, err := s.repo.FindByIDTx(tx, id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NewReferential("pedido", id.String())
		}
		if err != nil {
			return err
		}
		if pedido.Estado != model.PedidoPendiente {
			return apperror.NewState("pedido", pedido.Estado, "solo un pedido pendiente se despacha")
		}

		if err := s.repo.CreateDespachoTx(tx, &despacho); err != nil {
			return err
		}
		if err := s.stock.AplicarDeltaTx(tx, req.Canastillas.Huevos().Negado()); err != nil {
			return err
		}
		if err := s.repo.UpdateEstadoTx(tx, id, model.PedidoCompletado); err != nil {
			return err
		}
		descripcion := fmt.Sprintf("Despacho pedido %s", id)
		pedidoRef := pedido.ID
		return s.movimientos.CreateTx(tx, &model.MovimientoFinanciero{
			Fecha:        req.Fecha,
			Tipo:         model.MovimientoIngreso,
			Categoria:    model.CategoriaVentaHuevos,
			Monto:        pedido.PrecioTotal,
			Descripcion:  &descripcion,
			ReferenciaID: &pedidoRef,
		})
	})
	if txErr != nil {
		return uuid.Nil, envolverConsistencia("despacho actualiza stock, pedido y ledger", txErr)
	}
	return despacho.ID, nil
}

func (s *pedidoService) HistorialVentas(ctx context.Context, rango dto.RangoFechas) ([]model.Pedido, error) {
	return s.repo.HistorialVentas(ctx, rango)
}
