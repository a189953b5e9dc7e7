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

// StockService expone el stock de huevos y sus ajustes manuales.
type StockService interface {
	Obtener(ctx context.Context) (*model.StockHuevos, error)
	Estadisticas(ctx context.Context) (dto.EstadisticasStock, error)
	Ajustar(ctx context.Context, req dto.AjusteStockRequest) (uuid.UUID, error)
	HistorialAjustes(ctx context.Context, rango dto.RangoFechas) ([]model.AjusteStockHuevos, error)
}

type stockService struct {
	repo repository.StockHuevosRepository
}

func NewStockService(repo repository.StockHuevosRepository) StockService {
	return &stockService{repo: repo}
}

func (s *stockService) Obtener(ctx context.Context) (*model.StockHuevos, error) {
	return s.repo.Obtener(ctx)
}

func (s *stockService) Estadisticas(ctx context.Context) (dto.EstadisticasStock, error) {
	return s.repo.Estadisticas(ctx)
}

// Ajustar registra una merma o corrección y aplica el delta al stock en la
// misma transacción. Para mermas el llamador pasa magnitudes no negativas
// y acá se niegan antes de persistir: una merma de 5 huevos C queda
// guardada como tipo_c = -5. Las correcciones llevan el signo que traen.
func (s *stockService) Ajustar(ctx context.Context, req dto.AjusteStockRequest) (uuid.UUID, error) {
	delta := req.Conteo
	switch req.TipoAjuste {
	case model.AjusteMerma:
		if req.Conteo.TieneNegativo() {
			return uuid.Nil, apperror.NewValidation("conteo", "una merma se indica con magnitudes no negativas")
		}
		delta = req.Conteo.Negado()
	case model.AjusteCorreccion:
		// cualquier signo
	default:
		return uuid.Nil, apperror.NewValidation("tipo_ajuste", "debe ser merma o correccion")
	}

	fecha, hora := ahora()
	ajuste := model.AjusteStockHuevos{
		Fecha:      fecha,
		Hora:       hora,
		TipoAjuste: req.TipoAjuste,
		Conteo:     delta,
		Motivo:     req.Motivo,
	}
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CrearAjusteTx(tx, &ajuste); err != nil {
			return err
		}
		return s.repo.AplicarDeltaTx(tx, delta)
	})
	if txErr != nil {
		return uuid.Nil, envolverConsistencia("ajuste actualiza stock_huevos", txErr)
	}
	return ajuste.ID, nil
}

func (s *stockService) HistorialAjustes(ctx context.Context, rango dto.RangoFechas) ([]model.AjusteStockHuevos, error) {
	return s.repo.ListarAjustes(ctx, rango)
}
