package repository

import (
	"context"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PedidoRepository maneja pedidos y despachos. El despacho exige un tx
// vivo: descuenta stock, completa el pedido y registra el ingreso como
// una sola unidad atómica.
type PedidoRepository interface {
	Create(ctx context.Context, p *model.Pedido) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Pedido, error)
	ListPendientes(ctx context.Context) ([]model.Pedido, error)
	ActualizarPendiente(ctx context.Context, id uuid.UUID, req dto.ActualizarPedidoRequest) (int64, error)
	UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error
	UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error
	CreateDespachoTx(tx *gorm.DB, d *model.Despacho) error
	HistorialVentas(ctx context.Context, rango dto.RangoFechas) ([]model.Pedido, error)
	DB() *gorm.DB
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) DB() *gorm.DB { return r.db }

func (r *pedidoRepo) Create(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *pedidoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).Preload("Cliente").First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindByIDTx relee el pedido dentro de la transacción de despacho para
// decidir sobre el estado vigente y no sobre una lectura previa.
func (r *pedidoRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := tx.First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pedidoRepo) ListPendientes(ctx context.Context) ([]model.Pedido, error) {
	var rows []model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Where("estado = ?", model.PedidoPendiente).
		Order("fecha ASC, hora ASC").
		Find(&rows).Error
	return rows, err
}

// ActualizarPendiente edita un pedido solo si sigue pendiente; devuelve
// las filas afectadas para que el servicio distinga "no existe" de
// "ya no es editable".
func (r *pedidoRepo) ActualizarPendiente(ctx context.Context, id uuid.UUID, req dto.ActualizarPedidoRequest) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Pedido{}).
		Where("id = ? AND estado = ?", id, model.PedidoPendiente).
		Updates(map[string]interface{}{
			"canastillas_c":     req.Canastillas.C,
			"canastillas_b":     req.Canastillas.B,
			"canastillas_a":     req.Canastillas.A,
			"canastillas_aa":    req.Canastillas.AA,
			"canastillas_aaa":   req.Canastillas.AAA,
			"canastillas_jumbo": req.Canastillas.Jumbo,
			"precio_total":      req.PrecioTotal,
			"observaciones":     req.Observaciones,
		})
	return res.RowsAffected, res.Error
}

func (r *pedidoRepo) UpdateEstado(ctx context.Context, id uuid.UUID, estado string) error {
	return r.db.WithContext(ctx).Model(&model.Pedido{}).Where("id = ?", id).
		Update("estado", estado).Error
}

func (r *pedidoRepo) UpdateEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error {
	return tx.Model(&model.Pedido{}).Where("id = ?", id).
		Update("estado", estado).Error
}

func (r *pedidoRepo) CreateDespachoTx(tx *gorm.DB, d *model.Despacho) error {
	return tx.Create(d).Error
}

func (r *pedidoRepo) HistorialVentas(ctx context.Context, rango dto.RangoFechas) ([]model.Pedido, error) {
	var rows []model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Despacho").
		Where("estado = ? AND fecha BETWEEN ? AND ?", model.PedidoCompletado, rango.FechaInicio, rango.FechaFin).
		Order("fecha DESC").
		Find(&rows).Error
	return rows, err
}
