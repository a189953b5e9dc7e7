package repository

import (
	"context"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"

	"gorm.io/gorm"
)

// StockHuevosRepository maneja la fila única de stock de huevos y su
// historial de ajustes. AplicarDeltaTx es la única vía de mutación del
// stock; siempre corre dentro de la transacción del evento que lo origina.
type StockHuevosRepository interface {
	Obtener(ctx context.Context) (*model.StockHuevos, error)
	AplicarDeltaTx(tx *gorm.DB, delta model.Conteo) error
	CrearAjusteTx(tx *gorm.DB, a *model.AjusteStockHuevos) error
	ListarAjustes(ctx context.Context, rango dto.RangoFechas) ([]model.AjusteStockHuevos, error)
	Estadisticas(ctx context.Context) (dto.EstadisticasStock, error)
	DB() *gorm.DB
}

type stockHuevosRepo struct{ db *gorm.DB }

func NewStockHuevosRepository(db *gorm.DB) StockHuevosRepository { return &stockHuevosRepo{db: db} }

func (r *stockHuevosRepo) DB() *gorm.DB { return r.db }

func (r *stockHuevosRepo) Obtener(ctx context.Context) (*model.StockHuevos, error) {
	var s model.StockHuevos
	err := r.db.WithContext(ctx).First(&s, 1).Error
	return &s, err
}

func (r *stockHuevosRepo) AplicarDeltaTx(tx *gorm.DB, delta model.Conteo) error {
	res := tx.Model(&model.StockHuevos{}).Where("id = ?", 1).Updates(map[string]interface{}{
		"tipo_c":     gorm.Expr("tipo_c + ?", delta.C),
		"tipo_b":     gorm.Expr("tipo_b + ?", delta.B),
		"tipo_a":     gorm.Expr("tipo_a + ?", delta.A),
		"tipo_aa":    gorm.Expr("tipo_aa + ?", delta.AA),
		"tipo_aaa":   gorm.Expr("tipo_aaa + ?", delta.AAA),
		"tipo_jumbo": gorm.Expr("tipo_jumbo + ?", delta.Jumbo),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *stockHuevosRepo) CrearAjusteTx(tx *gorm.DB, a *model.AjusteStockHuevos) error {
	return tx.Create(a).Error
}

func (r *stockHuevosRepo) ListarAjustes(ctx context.Context, rango dto.RangoFechas) ([]model.AjusteStockHuevos, error) {
	var rows []model.AjusteStockHuevos
	err := r.db.WithContext(ctx).
		Where("fecha BETWEEN ? AND ?", rango.FechaInicio, rango.FechaFin).
		Order("fecha DESC, hora DESC").
		Find(&rows).Error
	return rows, err
}

func (r *stockHuevosRepo) Estadisticas(ctx context.Context) (dto.EstadisticasStock, error) {
	var e dto.EstadisticasStock
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(tipo_c + tipo_b + tipo_a + tipo_aa + tipo_aaa + tipo_jumbo) AS total_huevos,
			tipo_c, tipo_b, tipo_a, tipo_aa, tipo_aaa, tipo_jumbo
		FROM stock_huevos
		WHERE id = 1`).Scan(&e).Error
	return e, err
}
