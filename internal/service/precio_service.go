package service

import (
	"context"
	"errors"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/apperror"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PrecioService maneja las listas de precios por categoría.
type PrecioService interface {
	// Actual devuelve la lista vigente, o nil si nunca se fijó un precio.
	Actual(ctx context.Context) (*model.PrecioHuevos, error)
	Crear(ctx context.Context, req dto.CrearPrecioRequest) (uuid.UUID, error)
	Historial(ctx context.Context, limit int) ([]model.PrecioHuevos, error)
}

type precioService struct {
	repo repository.PrecioRepository
}

func NewPrecioService(repo repository.PrecioRepository) PrecioService {
	return &precioService{repo: repo}
}

func (s *precioService) Actual(ctx context.Context) (*model.PrecioHuevos, error) {
	p, err := s.repo.Actual(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return p, err
}

// Crear publica una lista nueva: desactiva toda lista anterior y marca la
// nueva como activa dentro de la misma transacción, de modo que en ningún
// momento conviven dos filas activas.
func (s *precioService) Crear(ctx context.Context, req dto.CrearPrecioRequest) (uuid.UUID, error) {
	if err := validarFecha("fecha_vigencia", req.FechaVigencia); err != nil {
		return uuid.Nil, err
	}
	if !req.Precios.TodosPositivos() {
		return uuid.Nil, apperror.NewValidation("precios", "las seis categorías deben tener precio mayor a cero")
	}

	precio := model.PrecioHuevos{
		FechaVigencia: req.FechaVigencia,
		Precios:       req.Precios,
		Activo:        true,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.DesactivarTodosTx(tx); err != nil {
			return err
		}
		return s.repo.CreateTx(tx, &precio)
	})
	if txErr != nil {
		return uuid.Nil, envolverConsistencia("precio nuevo desactiva el anterior", txErr)
	}
	return precio.ID, nil
}

func (s *precioService) Historial(ctx context.Context, limit int) ([]model.PrecioHuevos, error) {
	return s.repo.Historial(ctx, limit)
}
