package repository

import (
	"context"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"

	"gorm.io/gorm"
)

// PrecioRepository maneja las listas de precios. La creación corre
// siempre en una transacción que primero desactiva toda lista anterior,
// manteniendo el invariante de una sola fila activa.
type PrecioRepository interface {
	Actual(ctx context.Context) (*model.PrecioHuevos, error)
	DesactivarTodosTx(tx *gorm.DB) error
	CreateTx(tx *gorm.DB, p *model.PrecioHuevos) error
	Historial(ctx context.Context, limit int) ([]model.PrecioHuevos, error)
	DB() *gorm.DB
}

type precioRepo struct{ db *gorm.DB }

func NewPrecioRepository(db *gorm.DB) PrecioRepository { return &precioRepo{db: db} }

func (r *precioRepo) DB() *gorm.DB { return r.db }

func (r *precioRepo) Actual(ctx context.Context) (*model.PrecioHuevos, error) {
	var p model.PrecioHuevos
	err := r.db.WithContext(ctx).Where("activo = ?", true).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *precioRepo) DesactivarTodosTx(tx *gorm.DB) error {
	return tx.Model(&model.PrecioHuevos{}).Where("activo = ?", true).
		Update("activo", false).Error
}

func (r *precioRepo) CreateTx(tx *gorm.DB, p *model.PrecioHuevos) error {
	return tx.Create(p).Error
}

func (r *precioRepo) Historial(ctx context.Context, limit int) ([]model.PrecioHuevos, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}
	var rows []model.PrecioHuevos
	err := r.db.WithContext(ctx).
		Order("fecha_vigencia DESC, created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
