package repository

import (
	"context"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	ListActivos(ctx context.Context) ([]model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error
	Desactivar(ctx context.Context, id uuid.UUID) error
	HistorialPedidos(ctx context.Context, id uuid.UUID) ([]model.Pedido, error)
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *clienteRepo) ListActivos(ctx context.Context) ([]model.Cliente, error) {
	var rows []model.Cliente
	err := r.db.WithContext(ctx).Where("activo = ?", true).Order("nombre").Find(&rows).Error
	return rows, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Desactivar marca el cliente como inactivo; nunca se borra físicamente.
func (r *clienteRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&model.Cliente{}).Where("id = ?", id).
		Update("activo", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *clienteRepo) HistorialPedidos(ctx context.Context, id uuid.UUID) ([]model.Pedido, error) {
	var rows []model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Despacho").
		Where("cliente_id = ?", id).
		Order("fecha DESC, hora DESC").
		Find(&rows).Error
	return rows, err
}
