package handler

import (
	"net/http"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/apierror"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/service"

	"github.com/gin-gonic/gin"
)

type ProduccionHandler struct{ svc service.ProduccionService }

func NewProduccionHandler(svc service.ProduccionService) *ProduccionHandler {
	return &ProduccionHandler{svc: svc}
}

func (h *ProduccionHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarProduccionRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		fallar(c, err)
		return
	}
	creado(c, id)
}

func (h *ProduccionHandler) Listar(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	filas, err := h.svc.ListarPorRango(c.Request.Context(), rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, filas)
}

func (h *ProduccionHandler) ListarPorFecha(c *gin.Context) {
	fecha := c.Param("fecha")
	if fecha == "" {
		c.JSON(http.StatusBadRequest, apierror.New("fecha requerida"))
		return
	}
	filas, err := h.svc.ListarPorFecha(c.Request.Context(), fecha)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, filas)
}

func (h *ProduccionHandler) Totales(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	totales, err := h.svc.TotalesPeriodo(c.Request.Context(), rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, totales)
}
