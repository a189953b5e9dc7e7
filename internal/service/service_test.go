package service

import (
	"context"
	"testing"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/infra"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// baseDePrueba abre una base sqlite en memoria con el esquema migrado y
// el stock de huevos sembrado en cero.
func baseDePrueba(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.NewMemoryDatabase()
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func crearClientePrueba(t *testing.T, db *gorm.DB, nombre string) uuid.UUID {
	t.Helper()
	svc := NewClienteService(repository.NewClienteRepository(db))
	id, err := svc.Crear(context.Background(), dto.CrearClienteRequest{Nombre: nombre})
	require.NoError(t, err)
	return id
}

func stockActual(t *testing.T, db *gorm.DB) model.Conteo {
	t.Helper()
	stock, err := repository.NewStockHuevosRepository(db).Obtener(context.Background())
	require.NoError(t, err)
	return stock.Conteo
}

func rangoAmplio() dto.RangoFechas {
	return dto.RangoFechas{FechaInicio: "2000-01-01", FechaFin: "2099-12-31"}
}
