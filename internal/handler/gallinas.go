package handler

import (
	"net/http"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/service"

	"github.com/gin-gonic/gin"
)

type GallinasHandler struct{ svc service.GallinasService }

func NewGallinasHandler(svc service.GallinasService) *GallinasHandler {
	return &GallinasHandler{svc: svc}
}

func (h *GallinasHandler) RegistrarPoblacion(c *gin.Context) {
	var req dto.RegistrarPoblacionRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.svc.RegistrarPoblacion(c.Request.Context(), req)
	if err != nil {
		fallar(c, err)
		return
	}
	creado(c, id)
}

func (h *GallinasHandler) PoblacionActual(c *gin.Context) {
	p, err := h.svc.PoblacionActual(c.Request.Context())
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *GallinasHandler) HistorialPoblacion(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	filas, err := h.svc.HistorialPoblacion(c.Request.Context(), rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, filas)
}

func (h *GallinasHandler) RegistrarConsumo(c *gin.Context) {
	var req dto.RegistrarConsumoAlimentoRequest
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

func (h *GallinasHandler) HistorialConsumo(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	filas, err := h.svc.HistorialConsumo(c.Request.Context(), rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, filas)
}
