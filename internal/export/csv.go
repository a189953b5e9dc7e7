package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/model"
)

// Los CSV se emiten en UTF-8 con fila de encabezados, pensados para
// abrirse directamente en una hoja de cálculo.

func EscribirProduccionCSV(w io.Writer, filas []dto.ProduccionDia) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"fecha", "tipo_c", "tipo_b", "tipo_a", "tipo_aa", "tipo_aaa", "tipo_jumbo", "total"}); err != nil {
		return err
	}
	for _, f := range filas {
		rec := []string{
			f.Fecha,
			strconv.Itoa(f.TipoC),
			strconv.Itoa(f.TipoB),
			strconv.Itoa(f.TipoA),
			strconv.Itoa(f.TipoAA),
			strconv.Itoa(f.TipoAAA),
			strconv.Itoa(f.TipoJumbo),
			strconv.Itoa(f.Total),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func EscribirVentasCSV(w io.Writer, filas []dto.VentaDia) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"fecha", "cantidad_ventas", "total_canastillas", "total_ingresos"}); err != nil {
		return err
	}
	for _, f := range filas {
		rec := []string{
			f.Fecha,
			strconv.FormatInt(f.CantidadVentas, 10),
			strconv.FormatInt(f.TotalCanastillas, 10),
			f.TotalIngresos.StringFixed(2),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func EscribirMovimientosCSV(w io.Writer, movs []model.MovimientoFinanciero) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"fecha", "tipo", "categoria", "monto", "descripcion", "referencia_id"}); err != nil {
		return err
	}
	for _, m := range movs {
		descripcion := ""
		if m.Descripcion != nil {
			descripcion = *m.Descripcion
		}
		referencia := ""
		if m.ReferenciaID != nil {
			referencia = m.ReferenciaID.String()
		}
		rec := []string{m.Fecha, m.Tipo, m.Categoria, m.Monto.StringFixed(2), descripcion, referencia}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
