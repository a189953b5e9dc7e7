package repository

import (
	"context"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InsumoRepository maneja el libro de compras, el stock por insumo y sus
// movimientos. Las escrituras con efecto derivado exigen un tx vivo.
type InsumoRepository interface {
	CreateCompraTx(tx *gorm.DB, i *model.Insumo) error
	ListarCompras(ctx context.Context, rango dto.RangoFechas) ([]model.Insumo, error)
	ComprasPorCategoria(ctx context.Context, rango dto.RangoFechas) ([]dto.CompraPorCategoria, error)

	FindStockPorNombreTx(tx *gorm.DB, nombre string) (*model.StockInsumo, error)
	FindStockByID(ctx context.Context, id uuid.UUID) (*model.StockInsumo, error)
	CreateStockTx(tx *gorm.DB, s *model.StockInsumo) error
	AjustarCantidadTx(tx *gorm.DB, stockID uuid.UUID, delta float64) error
	FijarCantidadTx(tx *gorm.DB, stockID uuid.UUID, cantidad float64) error
	ActualizarStockMinimo(ctx context.Context, stockID uuid.UUID, minimo float64) error
	ListarStock(ctx context.Context) ([]model.StockInsumo, error)
	Alertas(ctx context.Context) ([]model.StockInsumo, error)

	CreateMovimientoTx(tx *gorm.DB, m *model.MovimientoInsumo) error
	ListarMovimientos(ctx context.Context, rango dto.RangoFechas) ([]model.MovimientoInsumo, error)

	DB() *gorm.DB
}

type insumoRepo struct{ db *gorm.DB }

func NewInsumoRepository(db *gorm.DB) InsumoRepository { return &insumoRepo{db: db} }

func (r *insumoRepo) DB() *gorm.DB { return r.db }

func (r *insumoRepo) CreateCompraTx(tx *gorm.DB, i *model.Insumo) error {
	return tx.Create(i).Error
}

func (r *insumoRepo) ListarCompras(ctx context.Context, rango dto.RangoFechas) ([]model.Insumo, error) {
	var rows []model.Insumo
	err := r.db.WithContext(ctx).
		Where("fecha_compra BETWEEN ? AND ?", rango.FechaInicio, rango.FechaFin).
		Order("fecha_compra DESC").
		Find(&rows).Error
	return rows, err
}

func (r *insumoRepo) ComprasPorCategoria(ctx context.Context, rango dto.RangoFechas) ([]dto.CompraPorCategoria, error) {
	var rows []dto.CompraPorCategoria
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			categoria,
			COUNT(*)                        AS cantidad_compras,
			COALESCE(SUM(costo_total), 0)   AS total_gastado
		FROM insumos
		WHERE fecha_compra BETWEEN ? AND ?
		GROUP BY categoria
		ORDER BY total_gastado DESC`,
		rango.FechaInicio, rango.FechaFin).Scan(&rows).Error
	return rows, err
}

func (r *insumoRepo) FindStockPorNombreTx(tx *gorm.DB, nombre string) (*model.StockInsumo, error) {
	var s model.StockInsumo
	err := tx.Where("nombre = ?", nombre).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *insumoRepo) FindStockByID(ctx context.Context, id uuid.UUID) (*model.StockInsumo, error) {
	var s model.StockInsumo
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *insumoRepo) CreateStockTx(tx *gorm.DB, s *model.StockInsumo) error {
	return tx.Create(s).Error
}

func (r *insumoRepo) AjustarCantidadTx(tx *gorm.DB, stockID uuid.UUID, delta float64) error {
	res := tx.Model(&model.StockInsumo{}).Where("id = ?", stockID).
		Update("cantidad_actual", gorm.Expr("cantidad_actual + ?", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *insumoRepo) FijarCantidadTx(tx *gorm.DB, stockID uuid.UUID, cantidad float64) error {
	res := tx.Model(&model.StockInsumo{}).Where("id = ?", stockID).
		Update("cantidad_actual", cantidad)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *insumoRepo) ActualizarStockMinimo(ctx context.Context, stockID uuid.UUID, minimo float64) error {
	res := r.db.WithContext(ctx).Model(&model.StockInsumo{}).Where("id = ?", stockID).
		Update("stock_minimo", minimo)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *insumoRepo) ListarStock(ctx context.Context) ([]model.StockInsumo, error) {
	var rows []model.StockInsumo
	err := r.db.WithContext(ctx).
		Order("categoria, nombre").
		Find(&rows).Error
	return rows, err
}

func (r *insumoRepo) Alertas(ctx context.Context) ([]model.StockInsumo, error) {
	var rows []model.StockInsumo
	err := r.db.WithContext(ctx).
		Where("cantidad_actual <= stock_minimo").
		Order("categoria, nombre").
		Find(&rows).Error
	return rows, err
}

func (r *insumoRepo) CreateMovimientoTx(tx *gorm.DB, m *model.MovimientoInsumo) error {
	return tx.Create(m).Error
}

func (r *insumoRepo) ListarMovimientos(ctx context.Context, rango dto.RangoFechas) ([]model.MovimientoInsumo, error) {
	var rows []model.MovimientoInsumo
	err := r.db.WithContext(ctx).
		Preload("StockInsumo").
		Where("fecha BETWEEN ? AND ?", rango.FechaInicio, rango.FechaFin).
		Order("fecha DESC, hora DESC").
		Find(&rows).Error
	return rows, err
}
