package repository

import (
	"context"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrabajadorRepository interface {
	Create(ctx context.Context, t *model.Trabajador) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Trabajador, error)
	ListActivos(ctx context.Context) ([]model.Trabajador, error)
	Update(ctx context.Context, t *model.Trabajador) error
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type trabajadorRepo struct{ db *gorm.DB }

func NewTrabajadorRepository(db *gorm.DB) TrabajadorRepository { return &trabajadorRepo{db: db} }

func (r *trabajadorRepo) Create(ctx context.Context, t *model.Trabajador) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *trabajadorRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Trabajador, error) {
	var t model.Trabajador
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return &t, err
}

func (r *trabajadorRepo) ListActivos(ctx context.Context) ([]model.Trabajador, error) {
	var rows []model.Trabajador
	err := r.db.WithContext(ctx).Where("activo = ?", true).Order("nombre").Find(&rows).Error
	return rows, err
}

func (r *trabajadorRepo) Update(ctx context.Context, t *model.Trabajador) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *trabajadorRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&model.Trabajador{}).Where("id = ?", id).
		Update("activo", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
