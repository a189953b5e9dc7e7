package repository

import (
	"context"
	"errors"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"

	"gorm.io/gorm"
)

// GallinasRepository maneja población de gallinas y consumo de alimento.
type GallinasRepository interface {
	CreatePoblacion(ctx context.Context, p *model.PoblacionGallinas) error
	PoblacionActual(ctx context.Context) (*model.PoblacionGallinas, error)
	HistorialPoblacion(ctx context.Context, rango dto.RangoFechas) ([]model.PoblacionGallinas, error)
	CreateConsumo(ctx context.Context, c *model.ConsumoAlimento) error
	HistorialConsumo(ctx context.Context, rango dto.RangoFechas) ([]model.ConsumoAlimento, error)
}

type gallinasRepo struct{ db *gorm.DB }

func NewGallinasRepository(db *gorm.DB) GallinasRepository { return &gallinasRepo{db: db} }

func (r *gallinasRepo) CreatePoblacion(ctx context.Context, p *model.PoblacionGallinas) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// PoblacionActual devuelve el registro más reciente por (fecha, hora).
// Sin registros devuelve una población en cero, no un error.
func (r *gallinasRepo) PoblacionActual(ctx context.Context) (*model.PoblacionGallinas, error) {
	var p model.PoblacionGallinas
	err := r.db.WithContext(ctx).
		Order("fecha DESC, hora DESC").
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.PoblacionGallinas{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *gallinasRepo) HistorialPoblacion(ctx context.Context, rango dto.RangoFechas) ([]model.PoblacionGallinas, error) {
	var rows []model.PoblacionGallinas
	err := r.db.WithContext(ctx).
		Where("fecha BETWEEN ? AND ?", rango.FechaInicio, rango.FechaFin).
		Order("fecha DESC, hora DESC").
		Find(&rows).Error
	return rows, err
}

func (r *gallinasRepo) CreateConsumo(ctx context.Context, c *model.ConsumoAlimento) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *gallinasRepo) HistorialConsumo(ctx context.Context, rango dto.RangoFechas) ([]model.ConsumoAlimento, error) {
	var rows []model.ConsumoAlimento
	err := r.db.WithContext(ctx).
		Where("fecha BETWEEN ? AND ?", rango.FechaInicio, rango.FechaFin).
		Order("fecha DESC, hora DESC").
		Find(&rows).Error
	return rows, err
}
