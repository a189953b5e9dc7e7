package repository

import (
	"context"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"

	"gorm.io/gorm"
)

// ProduccionRepository es el acceso a datos de la producción diaria.
// Las altas solo ocurren dentro de la transacción que también actualiza
// el stock, por eso la escritura exige un tx vivo.
type ProduccionRepository interface {
	CreateTx(tx *gorm.DB, p *model.ProduccionDiaria) error
	ListarPorRango(ctx context.Context, rango dto.RangoFechas) ([]model.ProduccionDiaria, error)
	ListarPorFecha(ctx context.Context, fecha string) ([]model.ProduccionDiaria, error)
	TotalesPeriodo(ctx context.Context, rango dto.RangoFechas) (dto.TotalesProduccion, error)
	DB() *gorm.DB
}

type produccionRepo struct{ db *gorm.DB }

func NewProduccionRepository(db *gorm.DB) ProduccionRepository { return &produccionRepo{db: db} }

func (r *produccionRepo) DB() *gorm.DB { return r.db }

func (r *produccionRepo) CreateTx(tx *gorm.DB, p *model.ProduccionDiaria) error {
	return tx.Create(p).Error
}

func (r *produccionRepo) ListarPorRango(ctx context.Context, rango dto.RangoFechas) ([]model.ProduccionDiaria, error) {
	var rows []model.ProduccionDiaria
	err := r.db.WithContext(ctx).
		Where("fecha BETWEEN ? AND ?", rango.FechaInicio, rango.FechaFin).
		Order("fecha DESC, hora DESC").
		Find(&rows).Error
	return rows, err
}

func (r *produccionRepo) ListarPorFecha(ctx context.Context, fecha string) ([]model.ProduccionDiaria, error) {
	var rows []model.ProduccionDiaria
	err := r.db.WithContext(ctx).
		Where("fecha = ?", fecha).
		Order("hora DESC").
		Find(&rows).Error
	return rows, err
}

func (r *produccionRepo) TotalesPeriodo(ctx context.Context, rango dto.RangoFechas) (dto.TotalesProduccion, error) {
	var t dto.TotalesProduccion
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(tipo_c), 0)     AS total_c,
			COALESCE(SUM(tipo_b), 0)     AS total_b,
			COALESCE(SUM(tipo_a), 0)     AS total_a,
			COALESCE(SUM(tipo_aa), 0)    AS total_aa,
			COALESCE(SUM(tipo_aaa), 0)   AS total_aaa,
			COALESCE(SUM(tipo_jumbo), 0) AS total_jumbo,
			COUNT(*)                     AS dias_registrados
		FROM produccion_diaria
		WHERE fecha BETWEEN ? AND ?`,
		rango.FechaInicio, rango.FechaFin).Scan(&t).Error
	return t, err
}
