package handler

import (
	"net/http"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/service"

	"github.com/gin-gonic/gin"
)

type InsumosHandler struct{ svc service.InsumoService }

func NewInsumosHandler(svc service.InsumoService) *InsumosHandler {
	return &InsumosHandler{svc: svc}
}

func (h *InsumosHandler) RegistrarCompra(c *gin.Context) {
	var req dto.RegistrarCompraRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.svc.RegistrarCompra(c.Request.Context(), req)
	if err != nil {
		fallar(c, err)
		return
	}
	creado(c, id)
}

func (h *InsumosHandler) RegistrarConsumo(c *gin.Context) {
	var req dto.RegistrarConsumoRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.svc.RegistrarConsumo(c.Request.Context(), req)
	if err != nil {
		fallar(c, err)
		return
	}
	creado(c, id)
}

func (h *InsumosHandler) ListarStock(c *gin.Context) {
	stock, err := h.svc.ListarStock(c.Request.Context())
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, stock)
}

func (h *InsumosHandler) Alertas(c *gin.Context) {
	alertas, err := h.svc.Alertas(c.Request.Context())
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, alertas)
}

func (h *InsumosHandler) ActualizarStockMinimo(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarStockMinimoRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.ActualizarStockMinimo(c.Request.Context(), id, req.StockMinimo); err != nil {
		fallar(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InsumosHandler) AjustarStock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AjustarStockInsumoRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.AjustarStockAbsoluto(c.Request.Context(), id, req); err != nil {
		fallar(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InsumosHandler) HistorialCompras(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	compras, err := h.svc.HistorialCompras(c.Request.Context(), rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, compras)
}

func (h *InsumosHandler) ComprasPorCategoria(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	compras, err := h.svc.ComprasPorCategoria(c.Request.Context(), rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, compras)
}

func (h *InsumosHandler) HistorialMovimientos(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	movs, err := h.svc.HistorialMovimientos(c.Request.Context(), rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, movs)
}
