package repository

import (
	"context"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PagoTrabajadorRepository maneja el historial de pagos a trabajadores.
// El alta exige un tx vivo porque el egreso financiero se inserta junto
// con el pago.
type PagoTrabajadorRepository interface {
	CreateTx(tx *gorm.DB, p *model.PagoTrabajador) error
	ListarPorRango(ctx context.Context, rango dto.RangoFechas) ([]model.PagoTrabajador, error)
	ListarPorTrabajador(ctx context.Context, trabajadorID uuid.UUID, rango dto.RangoFechas) ([]model.PagoTrabajador, error)
	TotalPorTrabajador(ctx context.Context, trabajadorID uuid.UUID, rango dto.RangoFechas) (decimal.Decimal, error)
}

type pagoRepo struct{ db *gorm.DB }

func NewPagoTrabajadorRepository(db *gorm.DB) PagoTrabajadorRepository { return &pagoRepo{db: db} }

func (r *pagoRepo) CreateTx(tx *gorm.DB, p *model.PagoTrabajador) error {
	return tx.Create(p).Error
}

func (r *pagoRepo) ListarPorRango(ctx context.Context, rango dto.RangoFechas) ([]model.PagoTrabajador, error) {
	var rows []model.PagoTrabajador
	err := r.db.WithContext(ctx).
		Preload("Trabajador").
		Where("fecha BETWEEN ? AND ?", rango.FechaInicio, rango.FechaFin).
		Order("fecha DESC, hora DESC").
		Find(&rows).Error
	return rows, err
}

func (r *pagoRepo) ListarPorTrabajador(ctx context.Context, trabajadorID uuid.UUID, rango dto.RangoFechas) ([]model.PagoTrabajador, error) {
	var rows []model.PagoTrabajador
	err := r.db.WithContext(ctx).
		Where("trabajador_id = ? AND fecha BETWEEN ? AND ?", trabajadorID, rango.FechaInicio, rango.FechaFin).
		Order("fecha DESC, hora DESC").
		Find(&rows).Error
	return rows, err
}

func (r *pagoRepo) TotalPorTrabajador(ctx context.Context, trabajadorID uuid.UUID, rango dto.RangoFechas) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(monto), 0)
		FROM pagos_trabajadores
		WHERE trabajador_id = ? AND fecha BETWEEN ? AND ?`,
		trabajadorID, rango.FechaInicio, rango.FechaFin).Scan(&total).Error
	return total, err
}
