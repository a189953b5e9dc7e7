package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/export"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

func (h *ReportesHandler) Balance(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	balance, err := h.svc.Balance(c.Request.Context(), rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

func (h *ReportesHandler) Movimientos(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	movs, err := h.svc.Movimientos(c.Request.Context(), rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, movs)
}

func (h *ReportesHandler) MovimientosPorCategoria(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	filas, err := h.svc.MovimientosPorCategoria(c.Request.Context(), rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, filas)
}

func (h *ReportesHandler) ResumenProduccionVentas(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	resumen, err := h.svc.ResumenProduccionVentas(c.Request.Context(), rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, resumen)
}

func (h *ReportesHandler) ProduccionDiaria(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	filas, err := h.svc.ProduccionDiaria(c.Request.Context(), rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, filas)
}

func (h *ReportesHandler) VentasDiarias(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	filas, err := h.svc.VentasDiarias(c.Request.Context(), rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, filas)
}

func (h *ReportesHandler) VentasPorCategoria(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	totales, err := h.svc.VentasPorCategoria(c.Request.Context(), rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, totales)
}

func (h *ReportesHandler) TopClientes(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	filas, err := h.svc.TopClientes(c.Request.Context(), rango, limit)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, filas)
}

func (h *ReportesHandler) CostoPorHuevo(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	costo, err := h.svc.CostoPorHuevo(c.Request.Context(), rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, costo)
}

func (h *ReportesHandler) ComprasPorCategoria(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	filas, err := h.svc.ComprasPorCategoria(c.Request.Context(), rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, filas)
}

// ExportarProduccionCSV descarga la producción diaria del período.
func (h *ReportesHandler) ExportarProduccionCSV(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	filas, err := h.svc.ProduccionDiaria(c.Request.Context(), rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=produccion_%s_%s.csv", rango.FechaInicio, rango.FechaFin))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	if err := export.EscribirProduccionCSV(c.Writer, filas); err != nil {
		fallar(c, err)
	}
}

// ExportarVentasCSV descarga las ventas diarias del período.
func (h *ReportesHandler) ExportarVentasCSV(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	filas, err := h.svc.VentasDiarias(c.Request.Context(), rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=ventas_%s_%s.csv", rango.FechaInicio, rango.FechaFin))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	if err := export.EscribirVentasCSV(c.Writer, filas); err != nil {
		fallar(c, err)
	}
}

// ExportarMovimientosCSV descarga el libro de movimientos del período.
func (h *ReportesHandler) ExportarMovimientosCSV(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	movs, err := h.svc.Movimientos(c.Request.Context(), rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=movimientos_%s_%s.csv", rango.FechaInicio, rango.FechaFin))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	if err := export.EscribirMovimientosCSV(c.Writer, movs); err != nil {
		fallar(c, err)
	}
}

// ExportarLibroXLSX arma el libro completo del período: resumen,
// producción, ventas y movimientos.
func (h *ReportesHandler) ExportarLibroXLSX(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	datos := export.DatosLibro{Rango: rango}
	var err error
	if datos.Resumen, err = h.svc.ResumenProduccionVentas(ctx, rango); err != nil {
		fallar(c, err)
		return
	}
	if datos.Balance, err = h.svc.Balance(ctx, rango); err != nil {
		fallar(c, err)
		return
	}
	if datos.Costo, err = h.svc.CostoPorHuevo(ctx, rango); err != nil {
		fallar(c, err)
		return
	}
	if datos.Stock, err = h.svc.EstadisticasStock(ctx); err != nil {
		fallar(c, err)
		return
	}
	if datos.Produccion, err = h.svc.ProduccionDiaria(ctx, rango); err != nil {
		fallar(c, err)
		return
	}
	if datos.Ventas, err = h.svc.VentasDiarias(ctx, rango); err != nil {
		fallar(c, err)
		return
	}
	if datos.Movimientos, err = h.svc.Movimientos(ctx, rango); err != nil {
		fallar(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=reporte_%s_%s.xlsx", rango.FechaInicio, rango.FechaFin))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := export.EscribirLibroXLSX(c.Writer, datos); err != nil {
		fallar(c, err)
	}
}
