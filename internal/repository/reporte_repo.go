package repository

import (
	"context"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReporteRepository concentra las agregaciones de solo lectura que cruzan
// varias tablas. Toda consulta sobre un período vacío devuelve ceros.
type ReporteRepository interface {
	ResumenProduccionVentas(ctx context.Context, rango dto.RangoFechas) (dto.ResumenProduccionVentas, error)
	ProduccionDiariaPeriodo(ctx context.Context, rango dto.RangoFechas) ([]dto.ProduccionDia, error)
	VentasDiarias(ctx context.Context, rango dto.RangoFechas) ([]dto.VentaDia, error)
	VentasPorCategoria(ctx context.Context, rango dto.RangoFechas) (dto.VentasPorCategoria, error)
	TopClientes(ctx context.Context, rango dto.RangoFechas, limit int) ([]dto.TopCliente, error)
	EgresosProduccion(ctx context.Context, rango dto.RangoFechas) (decimal.Decimal, error)
	TotalHuevosProducidos(ctx context.Context, rango dto.RangoFechas) (int64, error)
}

type reporteRepo struct{ db *gorm.DB }

func NewReporteRepository(db *gorm.DB) ReporteRepository { return &reporteRepo{db: db} }

func (r *reporteRepo) ResumenProduccionVentas(ctx context.Context, rango dto.RangoFechas) (dto.ResumenProduccionVentas, error) {
	var res dto.ResumenProduccionVentas
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE((SELECT SUM(tipo_c + tipo_b + tipo_a + tipo_aa + tipo_aaa + tipo_jumbo)
			          FROM produccion_diaria WHERE fecha BETWEEN ? AND ?), 0) AS total_producido,
			COALESCE((SELECT SUM((canastillas_c + canastillas_b + canastillas_a +
			                      canastillas_aa + canastillas_aaa + canastillas_jumbo) * 30)
			          FROM pedidos WHERE estado = 'completado' AND fecha BETWEEN ? AND ?), 0) AS total_vendido`,
		rango.FechaInicio, rango.FechaFin, rango.FechaInicio, rango.FechaFin).Scan(&res).Error
	return res, err
}

func (r *reporteRepo) ProduccionDiariaPeriodo(ctx context.Context, rango dto.RangoFechas) ([]dto.ProduccionDia, error) {
	var rows []dto.ProduccionDia
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			fecha,
			SUM(tipo_c)     AS tipo_c,
			SUM(tipo_b)     AS tipo_b,
			SUM(tipo_a)     AS tipo_a,
			SUM(tipo_aa)    AS tipo_aa,
			SUM(tipo_aaa)   AS tipo_aaa,
			SUM(tipo_jumbo) AS tipo_jumbo,
			SUM(tipo_c + tipo_b + tipo_a + tipo_aa + tipo_aaa + tipo_jumbo) AS total
		FROM produccion_diaria
		WHERE fecha BETWEEN ? AND ?
		GROUP BY fecha
		ORDER BY fecha`,
		rango.FechaInicio, rango.FechaFin).Scan(&rows).Error
	return rows, err
}

func (r *reporteRepo) VentasDiarias(ctx context.Context, rango dto.RangoFechas) ([]dto.VentaDia, error) {
	var rows []dto.VentaDia
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			fecha,
			COUNT(*) AS cantidad_ventas,
			SUM(canastillas_c + canastillas_b + canastillas_a +
			    canastillas_aa + canastillas_aaa + canastillas_jumbo) AS total_canastillas,
			COALESCE(SUM(precio_total), 0) AS total_ingresos
		FROM pedidos
		WHERE estado = 'completado' AND fecha BETWEEN ? AND ?
		GROUP BY fecha
		ORDER BY fecha`,
		rango.FechaInicio, rango.FechaFin).Scan(&rows).Error
	return rows, err
}

func (r *reporteRepo) VentasPorCategoria(ctx context.Context, rango dto.RangoFechas) (dto.VentasPorCategoria, error) {
	var res dto.VentasPorCategoria
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(canastillas_c), 0)     AS total_c,
			COALESCE(SUM(canastillas_b), 0)     AS total_b,
			COALESCE(SUM(canastillas_a), 0)     AS total_a,
			COALESCE(SUM(canastillas_aa), 0)    AS total_aa,
			COALESCE(SUM(canastillas_aaa), 0)   AS total_aaa,
			COALESCE(SUM(canastillas_jumbo), 0) AS total_jumbo
		FROM pedidos
		WHERE estado = 'completado' AND fecha BETWEEN ? AND ?`,
		rango.FechaInicio, rango.FechaFin).Scan(&res).Error
	return res, err
}

func (r *reporteRepo) TopClientes(ctx context.Context, rango dto.RangoFechas, limit int) ([]dto.TopCliente, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}
	var rows []dto.TopCliente
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.nombre,
			COUNT(p.id)                     AS cantidad_compras,
			COALESCE(SUM(p.precio_total), 0) AS total_comprado,
			SUM(p.canastillas_c + p.canastillas_b + p.canastillas_a +
			    p.canastillas_aa + p.canastillas_aaa + p.canastillas_jumbo) AS total_canastillas
		FROM pedidos p
		JOIN clientes c ON p.cliente_id = c.id
		WHERE p.estado = 'completado' AND p.fecha BETWEEN ? AND ?
		GROUP BY c.id, c.nombre
		ORDER BY total_comprado DESC
		LIMIT ?`,
		rango.FechaInicio, rango.FechaFin, limit).Scan(&rows).Error
	return rows, err
}

// EgresosProduccion suma los egresos atribuibles a producir huevos:
// compras de alimento y pagos a trabajadores.
func (r *reporteRepo) EgresosProduccion(ctx context.Context, rango dto.RangoFechas) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(monto), 0)
		FROM movimientos_financieros
		WHERE tipo = 'egreso'
		  AND fecha BETWEEN ? AND ?
		  AND (categoria LIKE '%Alimento%' OR categoria LIKE '%trabajador%')`,
		rango.FechaInicio, rango.FechaFin).Scan(&total).Error
	return total, err
}

func (r *reporteRepo) TotalHuevosProducidos(ctx context.Context, rango dto.RangoFechas) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(tipo_c + tipo_b + tipo_a + tipo_aa + tipo_aaa + tipo_jumbo), 0)
		FROM produccion_diaria
		WHERE fecha BETWEEN ? AND ?`,
		rango.FechaInicio, rango.FechaFin).Scan(&total).Error
	return total, err
}
