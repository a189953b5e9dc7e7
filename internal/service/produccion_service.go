package service

import (
	"context"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/apperror"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProduccionService registra recolecciones y expone sus consultas.
type ProduccionService interface {
	Registrar(ctx context.Context, req dto.RegistrarProduccionRequest) (uuid.UUID, error)
	ListarPorRango(ctx context.Context, rango dto.RangoFechas) ([]model.ProduccionDiaria, error)
	ListarPorFecha(ctx context.Context, fecha string) ([]model.ProduccionDiaria, error)
	TotalesPeriodo(ctx context.Context, rango dto.RangoFechas) (dto.TotalesProduccion, error)
}

type produccionService struct {
	repo  repository.ProduccionRepository
	stock repository.StockHuevosRepository
}

func NewProduccionService(repo repository.ProduccionRepository, stock repository.StockHuevosRepository) ProduccionService {
	return &produccionService{repo: repo, stock: stock}
}

// Registrar inserta la recolección y suma sus conteos al stock de huevos
// en una sola transacción: o quedan ambos efectos o ninguno.
func (s *produccionService) Registrar(ctx context.Context, req dto.RegistrarProduccionRequest) (uuid.UUID, error) {
	if err := validarFecha("fecha", req.Fecha); err != nil {
		return uuid.Nil, err
	}
	if err := validarHora("hora", req.Hora); err != nil {
		return uuid.Nil, err
	}
	if req.Conteo.TieneNegativo() {
		return uuid.Nil, apperror.NewValidation("conteo", "las cantidades deben ser enteros no negativos")
	}
	if req.Conteo.EsCero() {
		return uuid.Nil, apperror.NewValidation("conteo", "al menos una categoría debe ser mayor a cero")
	}

	registro := model.ProduccionDiaria{
		Fecha:         req.Fecha,
		Hora:          req.Hora,
		Conteo:        req.Conteo,
		Observaciones: req.Observaciones,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, &registro); err != nil {
			return err
		}
		return s.stock.AplicarDeltaTx(tx, req.Conteo)
	})
	if txErr != nil {
		return uuid.Nil, envolverConsistencia("produccion actualiza stock_huevos", txErr)
	}
	return registro.ID, nil
}

func (s *produccionService) ListarPorRango(ctx context.Context, rango dto.RangoFechas) ([]model.ProduccionDiaria, error) {
	return s.repo.ListarPorRango(ctx, rango)
}

func (s *produccionService) ListarPorFecha(ctx context.Context, fecha string) ([]model.ProduccionDiaria, error) {
	if err := validarFecha("fecha", fecha); err != nil {
		return nil, err
	}
	return s.repo.ListarPorFecha(ctx, fecha)
}

func (s *produccionService) TotalesPeriodo(ctx context.Context, rango dto.RangoFechas) (dto.TotalesProduccion, error) {
	return s.repo.TotalesPeriodo(ctx, rango)
}
