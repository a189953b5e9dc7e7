package export

import (
	"fmt"
	"io"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"

	"github.com/xuri/excelize/v2"
)

// DatosLibro reúne todo lo que entra al libro XLSX de un período.
type DatosLibro struct {
	Rango       dto.RangoFechas
	Resumen     dto.ResumenProduccionVentas
	Balance     dto.BalancePeriodo
	Costo       dto.CostoPorHuevo
	Stock       dto.EstadisticasStock
	Produccion  []dto.ProduccionDia
	Ventas      []dto.VentaDia
	Movimientos []model.MovimientoFinanciero
}

// EscribirLibroXLSX genera un libro con cuatro hojas: Resumen,
// Producción, Ventas y Movimientos.
func EscribirLibroXLSX(w io.Writer, datos DatosLibro) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := escribirResumen(f, datos); err != nil {
		return err
	}
	if err := escribirProduccion(f, datos.Produccion); err != nil {
		return err
	}
	if err := escribirVentas(f, datos.Ventas); err != nil {
		return err
	}
	if err := escribirMovimientos(f, datos.Movimientos); err != nil {
		return err
	}

	f.DeleteSheet("Sheet1")
	if idx, err := f.GetSheetIndex("Resumen"); err == nil {
		f.SetActiveSheet(idx)
	}
	return f.Write(w)
}

func escribirResumen(f *excelize.File, datos DatosLibro) error {
	const hoja = "Resumen"
	if _, err := f.NewSheet(hoja); err != nil {
		return err
	}
	filas := [][]interface{}{
		{"Período", fmt.Sprintf("%s a %s", datos.Rango.FechaInicio, datos.Rango.FechaFin)},
		{},
		{"Huevos producidos", datos.Resumen.TotalProducido},
		{"Huevos vendidos", datos.Resumen.TotalVendido},
		{"Costo por huevo", datos.Costo.CostoUnitario.InexactFloat64()},
		{},
		{"Total ingresos", datos.Balance.TotalIngresos.InexactFloat64()},
		{"Total egresos", datos.Balance.TotalEgresos.InexactFloat64()},
		{"Balance", datos.Balance.Balance.InexactFloat64()},
		{},
		{"Stock actual (huevos)", datos.Stock.TotalHuevos},
	}
	for i, fila := range filas {
		if len(fila) == 0 {
			continue
		}
		celda, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(hoja, celda, &fila); err != nil {
			return err
		}
	}
	return nil
}

func escribirProduccion(f *excelize.File, filas []dto.ProduccionDia) error {
	const hoja = "Producción"
	if _, err := f.NewSheet(hoja); err != nil {
		return err
	}
	encabezado := []interface{}{"Fecha", "C", "B", "A", "AA", "AAA", "Jumbo", "Total"}
	if err := f.SetSheetRow(hoja, "A1", &encabezado); err != nil {
		return err
	}
	for i, p := range filas {
		fila := []interface{}{p.Fecha, p.TipoC, p.TipoB, p.TipoA, p.TipoAA, p.TipoAAA, p.TipoJumbo, p.Total}
		celda, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(hoja, celda, &fila); err != nil {
			return err
		}
	}
	return nil
}

func escribirVentas(f *excelize.File, filas []dto.VentaDia) error {
	const hoja = "Ventas"
	if _, err := f.NewSheet(hoja); err != nil {
		return err
	}
	encabezado := []interface{}{"Fecha", "Ventas", "Canastillas", "Ingresos"}
	if err := f.SetSheetRow(hoja, "A1", &encabezado); err != nil {
		return err
	}
	for i, v := range filas {
		fila := []interface{}{v.Fecha, v.CantidadVentas, v.TotalCanastillas, v.TotalIngresos.InexactFloat64()}
		celda, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(hoja, celda, &fila); err != nil {
			return err
		}
	}
	return nil
}

func escribirMovimientos(f *excelize.File, movs []model.MovimientoFinanciero) error {
	const hoja = "Movimientos"
	if _, err := f.NewSheet(hoja); err != nil {
		return err
	}
	encabezado := []interface{}{"Fecha", "Tipo", "Categoría", "Monto", "Descripción"}
	if err := f.SetSheetRow(hoja, "A1", &encabezado); err != nil {
		return err
	}
	for i, m := range movs {
		descripcion := ""
		if m.Descripcion != nil {
			descripcion = *m.Descripcion
		}
		fila := []interface{}{m.Fecha, m.Tipo, m.Categoria, m.Monto.InexactFloat64(), descripcion}
		celda, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(hoja, celda, &fila); err != nil {
			return err
		}
	}
	return nil
}
