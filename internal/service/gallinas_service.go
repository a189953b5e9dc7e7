package service

import (
	"context"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/apperror"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/repository"

	"github.com/google/uuid"
)

// GallinasService maneja la población del galpón y su consumo de alimento.
type GallinasService interface {
	RegistrarPoblacion(ctx context.Context, req dto.RegistrarPoblacionRequest) (uuid.UUID, error)
	PoblacionActual(ctx context.Context) (*model.PoblacionGallinas, error)
	HistorialPoblacion(ctx context.Context, rango dto.RangoFechas) ([]model.PoblacionGallinas, error)
	RegistrarConsumo(ctx context.Context, req dto.RegistrarConsumoAlimentoRequest) (uuid.UUID, error)
	HistorialConsumo(ctx context.Context, rango dto.RangoFechas) ([]model.ConsumoAlimento, error)
}

type gallinasService struct {
	repo repository.GallinasRepository
}

func NewGallinasService(repo repository.GallinasRepository) GallinasService {
	return &gallinasService{repo: repo}
}

func (s *gallinasService) RegistrarPoblacion(ctx context.Context, req dto.RegistrarPoblacionRequest) (uuid.UUID, error) {
	if err := validarFecha("fecha", req.Fecha); err != nil {
		return uuid.Nil, err
	}
	if err := validarHora("hora", req.Hora); err != nil {
		return uuid.Nil, err
	}
	if req.CantidadGallinas < 0 {
		return uuid.Nil, apperror.NewValidation("cantidad_gallinas", "no puede ser negativa")
	}
	if req.Descartes < 0 {
		return uuid.Nil, apperror.NewValidation("descartes", "no puede ser negativo")
	}

	p := model.PoblacionGallinas{
		Fecha:            req.Fecha,
		Hora:             req.Hora,
		CantidadGallinas: req.CantidadGallinas,
		Descartes:        req.Descartes,
		Observaciones:    req.Observaciones,
	}
	if err := s.repo.CreatePoblacion(ctx, &p); err != nil {
		return uuid.Nil, apperror.NewStore("crear poblacion_gallinas", err)
	}
	return p.ID, nil
}

func (s *gallinasService) PoblacionActual(ctx context.Context) (*model.PoblacionGallinas, error) {
	return s.repo.PoblacionActual(ctx)
}

func (s *gallinasService) HistorialPoblacion(ctx context.Context, rango dto.RangoFechas) ([]model.PoblacionGallinas, error) {
	return s.repo.HistorialPoblacion(ctx, rango)
}

func (s *gallinasService) RegistrarConsumo(ctx context.Context, req dto.RegistrarConsumoAlimentoRequest) (uuid.UUID, error) {
	if err := validarFecha("fecha", req.Fecha); err != nil {
		return uuid.Nil, err
	}
	if err := validarHora("hora", req.Hora); err != nil {
		return uuid.Nil, err
	}
	if req.ConsumoPorGallina <= 0 {
		return uuid.Nil, apperror.NewValidation("consumo_por_gallina", "debe ser mayor a cero")
	}
	if req.CantidadGallinas <= 0 {
		return uuid.Nil, apperror.NewValidation("cantidad_gallinas", "debe ser mayor a cero")
	}

	c := model.ConsumoAlimento{
		Fecha:             req.Fecha,
		Hora:              req.Hora,
		ConsumoPorGallina: req.ConsumoPorGallina,
		CantidadGallinas:  req.CantidadGallinas,
		ConsumoTotal:      req.ConsumoPorGallina * float64(req.CantidadGallinas),
		Observaciones:     req.Observaciones,
	}
	if err := s.repo.CreateConsumo(ctx, &c); err != nil {
		return uuid.Nil, apperror.NewStore("crear consumo_alimento", err)
	}
	return c.ID, nil
}

func (s *gallinasService) HistorialConsumo(ctx context.Context, rango dto.RangoFechas) ([]model.ConsumoAlimento, error) {
	return s.repo.HistorialConsumo(ctx, rango)
}
