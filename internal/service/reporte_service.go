package service

import (
	"context"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/repository"

	"github.com/shopspring/decimal"
)

// ReporteService concentra las consultas de solo lectura para tableros y
// reportes. Ninguna operación de este servicio escribe en la base; los
// períodos sin datos devuelven agregados en cero, nunca error.
type ReporteService interface {
	Balance(ctx context.Context, rango dto.RangoFechas) (dto.BalancePeriodo, error)
	Movimientos(ctx context.Context, rango dto.RangoFechas) ([]model.MovimientoFinanciero, error)
	MovimientosPorCategoria(ctx context.Context, rango dto.RangoFechas) ([]dto.MovimientoPorCategoria, error)
	ResumenProduccionVentas(ctx context.Context, rango dto.RangoFechas) (dto.ResumenProduccionVentas, error)
	ProduccionDiaria(ctx context.Context, rango dto.RangoFechas) ([]dto.ProduccionDia, error)
	VentasDiarias(ctx context.Context, rango dto.RangoFechas) ([]dto.VentaDia, error)
	VentasPorCategoria(ctx context.Context, rango dto.RangoFechas) (dto.VentasPorCategoria, error)
	TopClientes(ctx context.Context, rango dto.RangoFechas, limit int) ([]dto.TopCliente, error)
	CostoPorHuevo(ctx context.Context, rango dto.RangoFechas) (dto.CostoPorHuevo, error)
	EstadisticasStock(ctx context.Context) (dto.EstadisticasStock, error)
	ComprasPorCategoria(ctx context.Context, rango dto.RangoFechas) ([]dto.CompraPorCategoria, error)
}

type reporteService struct {
	reportes    repository.ReporteRepository
	movimientos repository.MovimientoFinancieroRepository
	stock       repository.StockHuevosRepository
	insumos     repository.InsumoRepository
	topDefault  int
}

func NewReporteService(
	reportes repository.ReporteRepository,
	movimientos repository.MovimientoFinancieroRepository,
	stock repository.StockHuevosRepository,
	insumos repository.InsumoRepository,
	topDefault int,
) ReporteService {
	if topDefault < 1 {
		topDefault = 10
	}
	return &reporteService{
		reportes:    reportes,
		movimientos: movimientos,
		stock:       stock,
		insumos:     insumos,
		topDefault:  topDefault,
	}
}

func (s *reporteService) Balance(ctx context.Context, rango dto.RangoFechas) (dto.BalancePeriodo, error) {
	if err := validarRango(rango.FechaInicio, rango.FechaFin); err != nil {
		return dto.BalancePeriodo{}, err
	}
	return s.movimientos.BalancePeriodo(ctx, rango)
}

func (s *reporteService) Movimientos(ctx context.Context, rango dto.RangoFechas) ([]model.MovimientoFinanciero, error) {
	if err := validarRango(rango.FechaInicio, rango.FechaFin); err != nil {
		return nil, err
	}
	return s.movimientos.ListarPorRango(ctx, rango)
}

func (s *reporteService) MovimientosPorCategoria(ctx context.Context, rango dto.RangoFechas) ([]dto.MovimientoPorCategoria, error) {
	if err := validarRango(rango.FechaInicio, rango.FechaFin); err != nil {
		return nil, err
	}
	return s.movimientos.PorCategoria(ctx, rango)
}

func (s *reporteService) ResumenProduccionVentas(ctx context.Context, rango dto.RangoFechas) (dto.ResumenProduccionVentas, error) {
	if err := validarRango(rango.FechaInicio, rango.FechaFin); err != nil {
		return dto.ResumenProduccionVentas{}, err
	}
	return s.reportes.ResumenProduccionVentas(ctx, rango)
}

func (s *reporteService) ProduccionDiaria(ctx context.Context, rango dto.RangoFechas) ([]dto.ProduccionDia, error) {
	if err := validarRango(rango.FechaInicio, rango.FechaFin); err != nil {
		return nil, err
	}
	return s.reportes.ProduccionDiariaPeriodo(ctx, rango)
}

func (s *reporteService) VentasDiarias(ctx context.Context, rango dto.RangoFechas) ([]dto.VentaDia, error) {
	if err := validarRango(rango.FechaInicio, rango.FechaFin); err != nil {
		return nil, err
	}
	return s.reportes.VentasDiarias(ctx, rango)
}

func (s *reporteService) VentasPorCategoria(ctx context.Context, rango dto.RangoFechas) (dto.VentasPorCategoria, error) {
	if err := validarRango(rango.FechaInicio, rango.FechaFin); err != nil {
		return dto.VentasPorCategoria{}, err
	}
	return s.reportes.VentasPorCategoria(ctx, rango)
}

func (s *reporteService) TopClientes(ctx context.Context, rango dto.RangoFechas, limit int) ([]dto.TopCliente, error) {
	if err := validarRango(rango.FechaInicio, rango.FechaFin); err != nil {
		return nil, err
	}
	if limit < 1 {
		limit = s.topDefault
	}
	return s.reportes.TopClientes(ctx, rango, limit)
}

// CostoPorHuevo divide los egresos de producción entre los huevos
// producidos del período. Sin producción el costo unitario queda en cero.
func (s *reporteService) CostoPorHuevo(ctx context.Context, rango dto.RangoFechas) (dto.CostoPorHuevo, error) {
	if err := validarRango(rango.FechaInicio, rango.FechaFin); err != nil {
		return dto.CostoPorHuevo{}, err
	}
	egresos, err := s.reportes.EgresosProduccion(ctx, rango)
	if err != nil {
		return dto.CostoPorHuevo{}, err
	}
	huevos, err := s.reportes.TotalHuevosProducidos(ctx, rango)
	if err != nil {
		return dto.CostoPorHuevo{}, err
	}
	costo := decimal.Zero
	if huevos > 0 {
		costo = egresos.DivRound(decimal.NewFromInt(huevos), 4)
	}
	return dto.CostoPorHuevo{
		EgresosProduccion: egresos,
		HuevosProducidos:  huevos,
		CostoUnitario:     costo,
	}, nil
}

func (s *reporteService) EstadisticasStock(ctx context.Context) (dto.EstadisticasStock, error) {
	return s.stock.Estadisticas(ctx)
}

func (s *reporteService) ComprasPorCategoria(ctx context.Context, rango dto.RangoFechas) ([]dto.CompraPorCategoria, error) {
	if err := validarRango(rango.FechaInicio, rango.FechaFin); err != nil {
		return nil, err
	}
	return s.insumos.ComprasPorCategoria(ctx, rango)
}
