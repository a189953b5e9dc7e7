package handler

import (
	"net/http"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/service"

	"github.com/gin-gonic/gin"
)

type StockHandler struct{ svc service.StockService }

func NewStockHandler(svc service.StockService) *StockHandler {
	return &StockHandler{svc: svc}
}

func (h *StockHandler) Obtener(c *gin.Context) {
	stock, err := h.svc.Obtener(c.Request.Context())
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, stock)
}

func (h *StockHandler) Estadisticas(c *gin.Context) {
	stats, err := h.svc.Estadisticas(c.Request.Context())
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *StockHandler) Ajustar(c *gin.Context) {
	var req dto.AjusteStockRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.svc.Ajustar(c.Request.Context(), req)
	if err != nil {
		fallar(c, err)
		return
	}
	creado(c, id)
}

func (h *StockHandler) HistorialAjustes(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	ajustes, err := h.svc.HistorialAjustes(c.Request.Context(), rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, ajustes)
}
