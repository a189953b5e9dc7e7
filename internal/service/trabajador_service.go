package service

import (
	"context"
	"errors"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/apperror"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TrabajadorService maneja trabajadores y sus pagos.
type TrabajadorService interface {
	Crear(ctx context.Context, req dto.CrearTrabajadorRequest) (uuid.UUID, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.Trabajador, error)
	ListActivos(ctx context.Context) ([]model.Trabajador, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarTrabajadorRequest) error
	Desactivar(ctx context.Context, id uuid.UUID) error

	RegistrarPago(ctx context.Context, req dto.RegistrarPagoRequest) (uuid.UUID, error)
	HistorialPagos(ctx context.Context, rango dto.RangoFechas) ([]model.PagoTrabajador, error)
	PagosPorTrabajador(ctx context.Context, id uuid.UUID, rango dto.RangoFechas) ([]model.PagoTrabajador, error)
	TotalPagado(ctx context.Context, id uuid.UUID, rango dto.RangoFechas) (decimal.Decimal, error)
}

type trabajadorService struct {
	repo        repository.TrabajadorRepository
	pagos       repository.PagoTrabajadorRepository
	movimientos repository.MovimientoFinancieroRepository
	db          *gorm.DB
}

func NewTrabajadorService(
	repo repository.TrabajadorRepository,
	pagos repository.PagoTrabajadorRepository,
	movimientos repository.MovimientoFinancieroRepository,
	db *gorm.DB,
) TrabajadorService {
	return &trabajadorService{repo: repo, pagos: pagos, movimientos: movimientos, db: db}
}

func (s *trabajadorService) Crear(ctx context.Context, req dto.CrearTrabajadorRequest) (uuid.UUID, error) {
	if req.Nombre == "" {
		return uuid.Nil, apperror.NewValidation("nombre", "es obligatorio")
	}
	t := model.Trabajador{Nombre: req.Nombre, Cargo: req.Cargo, Activo: true}
	if err := s.repo.Create(ctx, &t); err != nil {
		return uuid.Nil, err
	}
	return t.ID, nil
}

func (s *trabajadorService) Obtener(ctx context.Context, id uuid.UUID) (*model.Trabajador, error) {
	t, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewReferential("trabajador", id.String())
	}
	return t, err
}

func (s *trabajadorService) ListActivos(ctx context.Context) ([]model.Trabajador, error) {
	return s.repo.ListActivos(ctx)
}

func (s *trabajadorService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarTrabajadorRequest) error {
	if req.Nombre == "" {
		return apperror.NewValidation("nombre", "es obligatorio")
	}
	t, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewReferential("trabajador", id.String())
	}
	if err != nil {
		return err
	}
	t.Nombre = req.Nombre
	t.Cargo = req.Cargo
	return s.repo.Update(ctx, t)
}

func (s *trabajadorService) Desactivar(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Desactivar(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewReferential("trabajador", id.String())
	}
	return err
}

// RegistrarPago inserta el pago y su egreso financiero en una sola
// transacción, con categoría fija "Pago trabajador".
func (s *trabajadorService) RegistrarPago(ctx context.Context, req dto.RegistrarPagoRequest) (uuid.UUID, error) {
	trabajadorID, err := uuid.Parse(req.TrabajadorID)
	if err != nil {
		return uuid.Nil, apperror.NewValidation("trabajador_id", "identificador inválido")
	}
	if err := validarFecha("fecha", req.Fecha); err != nil {
		return uuid.Nil, err
	}
	if err := validarHora("hora", req.Hora); err != nil {
		return uuid.Nil, err
	}
	if !req.Monto.GreaterThan(decimal.Zero) {
		return uuid.Nil, apperror.NewValidation("monto", "debe ser mayor a cero")
	}
	if _, err := s.repo.FindByID(ctx, trabajadorID); err != nil {
		return uuid.Nil, apperror.NewReferential("trabajador", req.TrabajadorID)
	}

	pago := model.PagoTrabajador{
		TrabajadorID: trabajadorID,
		Fecha:        req.Fecha,
		Hora:         req.Hora,
		Monto:        req.Monto,
		Concepto:     req.Concepto,
	}
	txErr := runTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.pagos.CreateTx(tx, &pago); err != nil {
			return err
		}
		pagoRef := pago.ID
		return s.movimientos.CreateTx(tx, &model.MovimientoFinanciero{
			Fecha:        req.Fecha,
			Tipo:         model.MovimientoEgreso,
			Categoria:    model.CategoriaPagoTrabajador,
			Monto:        req.Monto,
			Descripcion:  req.Concepto,
			ReferenciaID: &pagoRef,
		})
	})
	if txErr != nil {
		return uuid.Nil, envolverConsistencia("pago asienta egreso en ledger", txErr)
	}
	return pago.ID, nil
}

func (s *trabajadorService) HistorialPagos(ctx context.Context, rango dto.RangoFechas) ([]model.PagoTrabajador, error) {
	return s.pagos.ListarPorRango(ctx, rango)
}

func (s *trabajadorService) PagosPorTrabajador(ctx context.Context, id uuid.UUID, rango dto.RangoFechas) ([]model.PagoTrabajador, error) {
	return s.pagos.ListarPorTrabajador(ctx, id, rango)
}

func (s *trabajadorService) TotalPagado(ctx context.Context, id uuid.UUID, rango dto.RangoFechas) (decimal.Decimal, error) {
	return s.pagos.TotalPorTrabajador(ctx, id, rango)
}
