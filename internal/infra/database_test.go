package infra

import (
	"path/filepath"
	"testing"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemoryDatabaseSiembraElStock(t *testing.T) {
	db, err := NewMemoryDatabase()
	require.NoError(t, err)

	var stock model.StockHuevos
	require.NoError(t, db.First(&stock, 1).Error)
	assert.True(t, stock.Conteo.EsCero())
}

func TestNewDatabaseCreaElDirectorio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datos", "granja.db")
	db, err := NewDatabase(path)
	require.NoError(t, err)
	assert.FileExists(t, path)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func TestApplySchemaEsIdempotente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "granja.db")

	db, err := NewDatabase(path)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.Cliente{Nombre: "Marta"}).Error)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	// reabrir no debe duplicar la fila de stock ni tocar los datos
	db, err = NewDatabase(path)
	require.NoError(t, err)

	var stocks, clientes int64
	require.NoError(t, db.Model(&model.StockHuevos{}).Count(&stocks).Error)
	require.NoError(t, db.Model(&model.Cliente{}).Count(&clientes).Error)
	assert.Equal(t, int64(1), stocks)
	assert.Equal(t, int64(1), clientes)
}
