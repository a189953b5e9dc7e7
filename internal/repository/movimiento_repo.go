package repository

import (
	"context"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"

	"gorm.io/gorm"
)

// MovimientoFinancieroRepository maneja el libro mayor. Solo expone
// escritura transaccional: el ledger nunca se escribe por fuera de las
// transacciones de despacho, compra y pago.
type MovimientoFinancieroRepository interface {
	CreateTx(tx *gorm.DB, m *model.MovimientoFinanciero) error
	ListarPorRango(ctx context.Context, rango dto.RangoFechas) ([]model.MovimientoFinanciero, error)
	BalancePeriodo(ctx context.Context, rango dto.RangoFechas) (dto.BalancePeriodo, error)
	PorCategoria(ctx context.Context, rango dto.RangoFechas) ([]dto.MovimientoPorCategoria, error)
}

type movimientoRepo struct{ db *gorm.DB }

func NewMovimientoFinancieroRepository(db *gorm.DB) MovimientoFinancieroRepository {
	return &movimientoRepo{db: db}
}

func (r *movimientoRepo) CreateTx(tx *gorm.DB, m *model.MovimientoFinanciero) error {
	return tx.Create(m).Error
}

func (r *movimientoRepo) ListarPorRango(ctx context.Context, rango dto.RangoFechas) ([]model.MovimientoFinanciero, error) {
	var rows []model.MovimientoFinanciero
	err := r.db.WithContext(ctx).
		Where("fecha BETWEEN ? AND ?", rango.FechaInicio, rango.FechaFin).
		Order("fecha DESC, created_at DESC").
		Find(&rows).Error
	return rows, err
}

// BalancePeriodo calcula ingresos, egresos y balance del período. Un
// período sin movimientos devuelve ceros, nunca error.
func (r *movimientoRepo) BalancePeriodo(ctx context.Context, rango dto.RangoFechas) (dto.BalancePeriodo, error) {
	var b dto.BalancePeriodo
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(CASE WHEN tipo = 'ingreso' THEN monto ELSE 0 END), 0)      AS total_ingresos,
			COALESCE(SUM(CASE WHEN tipo = 'egreso' THEN monto ELSE 0 END), 0)       AS total_egresos,
			COALESCE(SUM(CASE WHEN tipo = 'ingreso' THEN monto ELSE -monto END), 0) AS balance
		FROM movimientos_financieros
		WHERE fecha BETWEEN ? AND ?`,
		rango.FechaInicio, rango.FechaFin).Scan(&b).Error
	return b, err
}

func (r *movimientoRepo) PorCategoria(ctx context.Context, rango dto.RangoFechas) ([]dto.MovimientoPorCategoria, error) {
	var rows []dto.MovimientoPorCategoria
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			tipo,
			categoria,
			COALESCE(SUM(monto), 0) AS total,
			COUNT(*)                AS cantidad_movimientos
		FROM movimientos_financieros
		WHERE fecha BETWEEN ? AND ?
		GROUP BY tipo, categoria
		ORDER BY tipo, total DESC`,
		rango.FechaInicio, rango.FechaFin).Scan(&rows).Error
	return rows, err
}
