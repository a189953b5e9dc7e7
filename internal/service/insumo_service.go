package service

import (
	"context"
	"errors"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/apperror"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InsumoService maneja compras de insumos, su stock y sus movimientos.
type InsumoService interface {
	RegistrarCompra(ctx context.Context, req dto.RegistrarCompraRequest) (uuid.UUID, error)
	RegistrarConsumo(ctx context.Context, req dto.RegistrarConsumoRequest) (uuid.UUID, error)
	ListarStock(ctx context.Context) ([]dto.StockInsumoResponse, error)
	Alertas(ctx context.Context) ([]dto.StockInsumoResponse, error)
	ActualizarStockMinimo(ctx context.Context, stockID uuid.UUID, minimo float64) error
	AjustarStockAbsoluto(ctx context.Context, stockID uuid.UUID, req dto.AjustarStockInsumoRequest) error
	HistorialCompras(ctx context.Context, rango dto.RangoFechas) ([]model.Insumo, error)
	ComprasPorCategoria(ctx context.Context, rango dto.RangoFechas) ([]dto.CompraPorCategoria, error)
	HistorialMovimientos(ctx context.Context, rango dto.RangoFechas) ([]model.MovimientoInsumo, error)
}

type insumoService struct {
	repo        repository.InsumoRepository
	movimientos repository.MovimientoFinancieroRepository
}

func NewInsumoService(repo repository.InsumoRepository, movimientos repository.MovimientoFinancieroRepository) InsumoService {
	return &insumoService{repo: repo, movimientos: movimientos}
}

// RegistrarCompra inserta la compra y, en la misma transacción, suma al
// stock del insumo (creándolo con umbral 0 si es la primera compra de ese
// nombre), registra la entrada y asienta el egreso por el costo total.
func (s *insumoService) RegistrarCompra(ctx context.Context, req dto.RegistrarCompraRequest) (uuid.UUID, error) {
	if err := validarFecha("fecha_compra", req.FechaCompra); err != nil {
		return uuid.Nil, err
	}
	if req.Cantidad <= 0 {
		return uuid.Nil, apperror.NewValidation("cantidad", "debe ser mayor a cero")
	}
	if req.CostoTotal.LessThan(decimal.Zero) {
		return uuid.Nil, apperror.NewValidation("costo_total", "no puede ser negativo")
	}

	compra := model.Insumo{
		Nombre:        req.Nombre,
		Categoria:     req.Categoria,
		Cantidad:      req.Cantidad,
		Unidad:        req.Unidad,
		CostoUnitario: req.CostoUnitario,
		CostoTotal:    req.CostoTotal,
		FechaCompra:   req.FechaCompra,
		Proveedor:     req.Proveedor,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateCompraTx(tx, &compra); err != nil {
			return err
		}

		stock, err := s.repo.FindStockPorNombreTx(tx, req.Nombre)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			stock = &model.StockInsumo{
				Nombre:         req.Nombre,
				Categoria:      req.Categoria,
				Unidad:         req.Unidad,
				CantidadActual: req.Cantidad,
				StockMinimo:    0,
			}
			if err := s.repo.CreateStockTx(tx, stock); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := s.repo.AjustarCantidadTx(tx, stock.ID, req.Cantidad); err != nil {
				return err
			}
		}

		_, hora := ahora()
		motivo := "Compra de insumo"
		if err := s.repo.CreateMovimientoTx(tx, &model.MovimientoInsumo{
			Fecha:          req.FechaCompra,
			Hora:           hora,
			StockInsumoID:  stock.ID,
			TipoMovimiento: model.MovimientoEntrada,
			Cantidad:       req.Cantidad,
			Motivo:         &motivo,
		}); err != nil {
			return err
		}

		compraRef := compra.ID
		descripcion := "Compra " + req.Nombre
		return s.movimientos.CreateTx(tx, &model.MovimientoFinanciero{
			Fecha:        req.FechaCompra,
			Tipo:         model.MovimientoEgreso,
			Categoria:    req.Categoria,
			Monto:        req.CostoTotal,
			Descripcion:  &descripcion,
			ReferenciaID: &compraRef,
		})
	})
	if txErr != nil {
		return uuid.Nil, envolverConsistencia("compra actualiza stock_insumos y ledger", txErr)
	}
	return compra.ID, nil
}

// RegistrarConsumo descuenta una salida del stock del insumo y registra
// el movimiento, todo en una transacción. La cantidad se pasa positiva.
func (s *insumoService) RegistrarConsumo(ctx context.Context, req dto.RegistrarConsumoRequest) (uuid.UUID, error) {
	stockID, err := uuid.Parse(req.StockInsumoID)
	if err != nil {
		return uuid.Nil, apperror.NewValidation("stock_insumo_id", "identificador inválido")
	}
	if req.Cantidad <= 0 {
		return uuid.Nil, apperror.NewValidation("cantidad", "debe ser mayor a cero")
	}
	if _, err := s.repo.FindStockByID(ctx, stockID); err != nil {
		return uuid.Nil, apperror.NewReferential("insumo", req.StockInsumoID)
	}

	fecha, hora := ahora()
	mov := model.MovimientoInsumo{
		Fecha:          fecha,
		Hora:           hora,
		StockInsumoID:  stockID,
		TipoMovimiento: model.MovimientoSalida,
		Cantidad:       req.Cantidad,
		Motivo:         req.Motivo,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.AjustarCantidadTx(tx, stockID, -req.Cantidad); err != nil {
			return err
		}
		return s.repo.CreateMovimientoTx(tx, &mov)
	})
	if txErr != nil {
		return uuid.Nil, envolverConsistencia("consumo descuenta stock_insumos", txErr)
	}
	return mov.ID, nil
}

func (s *insumoService) ListarStock(ctx context.Context) ([]dto.StockInsumoResponse, error) {
	rows, err := s.repo.ListarStock(ctx)
	if err != nil {
		return nil, err
	}
	return stockToResponses(rows), nil
}

func (s *insumoService) Alertas(ctx context.Context) ([]dto.StockInsumoResponse, error) {
	rows, err := s.repo.Alertas(ctx)
	if err != nil {
		return nil, err
	}
	return stockToResponses(rows), nil
}

func (s *insumoService) ActualizarStockMinimo(ctx context.Context, stockID uuid.UUID, minimo float64) error {
	if minimo < 0 {
		return apperror.NewValidation("stock_minimo", "no puede ser negativo")
	}
	err := s.repo.ActualizarStockMinimo(ctx, stockID, minimo)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewReferential("insumo", stockID.String())
	}
	return err
}

// AjustarStockAbsoluto corrige el stock de un insumo a la cantidad física
// contada, registrando la diferencia como movimiento.
func (s *insumoService) AjustarStockAbsoluto(ctx context.Context, stockID uuid.UUID, req dto.AjustarStockInsumoRequest) error {
	if req.NuevaCantidad < 0 {
		return apperror.NewValidation("nueva_cantidad", "no puede ser negativa")
	}
	stock, err := s.repo.FindStockByID(ctx, stockID)
	if err != nil {
		return apperror.NewReferential("insumo", stockID.String())
	}

	delta := req.NuevaCantidad - stock.CantidadActual
	fecha, hora := ahora()
	tipo := model.MovimientoEntrada
	if delta < 0 {
		tipo = model.MovimientoSalida
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.FijarCantidadTx(tx, stockID, req.NuevaCantidad); err != nil {
			return err
		}
		if delta == 0 {
			return nil
		}
		cantidad := delta
		if cantidad < 0 {
			cantidad = -cantidad
		}
		return s.repo.CreateMovimientoTx(tx, &model.MovimientoInsumo{
			Fecha:          fecha,
			Hora:           hora,
			StockInsumoID:  stockID,
			TipoMovimiento: tipo,
			Cantidad:       cantidad,
			Motivo:         req.Motivo,
		})
	})
	return envolverConsistencia("ajuste absoluto de stock_insumos", txErr)
}

func (s *insumoService) HistorialCompras(ctx context.Context, rango dto.RangoFechas) ([]model.Insumo, error) {
	return s.repo.ListarCompras(ctx, rango)
}

func (s *insumoService) ComprasPorCategoria(ctx context.Context, rango dto.RangoFechas) ([]dto.CompraPorCategoria, error) {
	return s.repo.ComprasPorCategoria(ctx, rango)
}

func (s *insumoService) HistorialMovimientos(ctx context.Context, rango dto.RangoFechas) ([]model.MovimientoInsumo, error) {
	return s.repo.ListarMovimientos(ctx, rango)
}

func stockToResponses(rows []model.StockInsumo) []dto.StockInsumoResponse {
	out := make([]dto.StockInsumoResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, dto.StockInsumoResponse{
			ID:             s.ID.String(),
			Nombre:         s.Nombre,
			Categoria:      s.Categoria,
			Unidad:         s.Unidad,
			CantidadActual: s.CantidadActual,
			StockMinimo:    s.StockMinimo,
			Alerta:         s.EnAlerta(),
		})
	}
	return out
}
