package handler

import (
	"net/http"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/service"

	"github.com/gin-gonic/gin"
)

type TrabajadoresHandler struct{ svc service.TrabajadorService }

func NewTrabajadoresHandler(svc service.TrabajadorService) *TrabajadoresHandler {
	return &TrabajadoresHandler{svc: svc}
}

func (h *TrabajadoresHandler) Crear(c *gin.Context) {
	var req dto.CrearTrabajadorRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		fallar(c, err)
		return
	}
	creado(c, id)
}

func (h *TrabajadoresHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	t, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *TrabajadoresHandler) Listar(c *gin.Context) {
	ts, err := h.svc.ListActivos(c.Request.Context())
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, ts)
}

func (h *TrabajadoresHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarTrabajadorRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), id, req); err != nil {
		fallar(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TrabajadoresHandler) Desactivar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Desactivar(c.Request.Context(), id); err != nil {
		fallar(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TrabajadoresHandler) RegistrarPago(c *gin.Context) {
	var req dto.RegistrarPagoRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.svc.RegistrarPago(c.Request.Context(), req)
	if err != nil {
		fallar(c, err)
		return
	}
	creado(c, id)
}

func (h *TrabajadoresHandler) HistorialPagos(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	pagos, err := h.svc.HistorialPagos(c.Request.Context(), rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, pagos)
}

func (h *TrabajadoresHandler) PagosPorTrabajador(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	pagos, err := h.svc.PagosPorTrabajador(c.Request.Context(), id, rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, pagos)
}

func (h *TrabajadoresHandler) TotalPagado(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	total, err := h.svc.TotalPagado(c.Request.Context(), id, rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": total})
}
