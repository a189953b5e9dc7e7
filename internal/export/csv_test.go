package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscribirProduccionCSV(t *testing.T) {
	var buf bytes.Buffer
	err := EscribirProduccionCSV(&buf, []dto.ProduccionDia{
		{Fecha: "2026-08-01", TipoC: 10, TipoAA: 5, Total: 15},
	})
	require.NoError(t, err)

	lineas := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lineas, 2)
	assert.Equal(t, "fecha,tipo_c,tipo_b,tipo_a,tipo_aa,tipo_aaa,tipo_jumbo,total", lineas[0])
	assert.Equal(t, "2026-08-01,10,0,0,5,0,0,15", lineas[1])
}

func TestEscribirVentasCSV(t *testing.T) {
	var buf bytes.Buffer
	err := EscribirVentasCSV(&buf, []dto.VentaDia{
		{Fecha: "2026-08-11", CantidadVentas: 2, TotalCanastillas: 5, TotalIngresos: decimal.NewFromInt(75000)},
	})
	require.NoError(t, err)

	lineas := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lineas, 2)
	assert.Equal(t, "2026-08-11,2,5,75000.00", lineas[1])
}

func TestEscribirMovimientosCSVEscapaCampos(t *testing.T) {
	ref := uuid.New()
	desc := "Despacho, pedido grande"
	var buf bytes.Buffer
	err := EscribirMovimientosCSV(&buf, []model.MovimientoFinanciero{
		{
			Fecha:        "2026-08-11",
			Tipo:         model.MovimientoIngreso,
			Categoria:    model.CategoriaVentaHuevos,
			Monto:        decimal.NewFromInt(45000),
			Descripcion:  &desc,
			ReferenciaID: &ref,
		},
		{Fecha: "2026-08-12", Tipo: model.MovimientoEgreso, Categoria: "Alimento", Monto: decimal.NewFromInt(500)},
	})
	require.NoError(t, err)

	lineas := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lineas, 3)
	// la coma de la descripción obliga a comillar el campo
	assert.Contains(t, lineas[1], `"Despacho, pedido grande"`)
	assert.Contains(t, lineas[1], ref.String())
	assert.True(t, strings.HasSuffix(lineas[2], ",500.00,,"))
}

func TestEscribirLibroXLSX(t *testing.T) {
	var buf bytes.Buffer
	err := EscribirLibroXLSX(&buf, DatosLibro{
		Rango:   dto.RangoFechas{FechaInicio: "2026-08-01", FechaFin: "2026-08-31"},
		Resumen: dto.ResumenProduccionVentas{TotalProducido: 1000, TotalVendido: 90},
		Balance: dto.BalancePeriodo{
			TotalIngresos: decimal.NewFromInt(45000),
			TotalEgresos:  decimal.NewFromInt(500),
			Balance:       decimal.NewFromInt(44500),
		},
		Produccion: []dto.ProduccionDia{{Fecha: "2026-08-01", TipoC: 1000, Total: 1000}},
		Ventas:     []dto.VentaDia{{Fecha: "2026-08-11", CantidadVentas: 1, TotalCanastillas: 3, TotalIngresos: decimal.NewFromInt(45000)}},
	})
	require.NoError(t, err)
	// firma ZIP de un .xlsx
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")))
}
