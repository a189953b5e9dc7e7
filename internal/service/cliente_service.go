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

type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (uuid.UUID, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	ListActivos(ctx context.Context) ([]model.Cliente, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) error
	Desactivar(ctx context.Context, id uuid.UUID) error
	Historial(ctx context.Context, id uuid.UUID) ([]model.Pedido, error)
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (uuid.UUID, error) {
	if req.Nombre == "" {
		return uuid.Nil, apperror.NewValidation("nombre", "es obligatorio")
	}
	cliente := model.Cliente{Nombre: req.Nombre, Contacto: req.Contacto, Activo: true}
	if err := s.repo.Create(ctx, &cliente); err != nil {
		return uuid.Nil, err
	}
	return cliente.ID, nil
}

func (s *clienteService) Obtener(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewReferential("cliente", id.String())
	}
	return c, err
}

func (s *clienteService) ListActivos(ctx context.Context) ([]model.Cliente, error) {
	return s.repo.ListActivos(ctx)
}

func (s *clienteService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarClienteRequest) error {
	if req.Nombre == "" {
		return apperror.NewValidation("nombre", "es obligatorio")
	}
	cliente, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewReferential("cliente", id.String())
	}
	if err != nil {
		return err
	}
	cliente.Nombre = req.Nombre
	cliente.Contacto = req.Contacto
	return s.repo.Update(ctx, cliente)
}

func (s *clienteService) Desactivar(ctx context.Context, id uuid.UUID) error {
	err := s.repo.Desactivar(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewReferential("cliente", id.String())
	}
	return err
}

func (s *clienteService) Historial(ctx context.Context, id uuid.UUID) ([]model.Pedido, error) {
	if _, err := s.Obtener(ctx, id); err != nil {
		return nil, err
	}
	return s.repo.HistorialPedidos(ctx, id)
}
