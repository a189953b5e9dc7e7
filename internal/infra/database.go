package infra

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase abre (o crea) el archivo sqlite, aplica el schema y siembra
// la fila única de stock_huevos si todavía no existe. El pool queda fijado
// en una sola conexión: el modelo es un solo proceso y un solo escritor, y
// sqlite serializa el resto.
func NewDatabase(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio de datos: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := applySchema(db); err != nil {
		return nil, fmt.Errorf("aplicar schema: %w", err)
	}
	return db, nil
}

// NewMemoryDatabase abre una base efímera en memoria con el schema
// aplicado. La usan los tests de servicios y repositorios.
func NewMemoryDatabase() (*gorm.DB, error) {
	return NewDatabase(":memory:")
}

// applySchema crea las tablas que falten y garantiza la fila única de
// stock de huevos. La presencia de esa fila marca la base como
// inicializada; re-ejecutar sobre una base existente es un no-op.
func applySchema(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.ProduccionDiaria{},
		&model.StockHuevos{},
		&model.AjusteStockHuevos{},
		&model.Insumo{},
		&model.StockInsumo{},
		&model.MovimientoInsumo{},
		&model.Cliente{},
		&model.Trabajador{},
		&model.PrecioHuevos{},
		&model.Pedido{},
		&model.Despacho{},
		&model.PagoTrabajador{},
		&model.MovimientoFinanciero{},
		&model.PoblacionGallinas{},
		&model.ConsumoAlimento{},
	); err != nil {
		return err
	}

	var count int64
	if err := db.Model(&model.StockHuevos{}).Where("id = ?", 1).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Create(&model.StockHuevos{ID: 1}).Error; err != nil {
			return err
		}
	}
	return nil
}
