package handler

import (
	"net/http"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

func (h *ClientesHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
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

func (h *ClientesHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cliente, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, cliente)
}

func (h *ClientesHandler) Listar(c *gin.Context) {
	clientes, err := h.svc.ListActivos(c.Request.Context())
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, clientes)
}

func (h *ClientesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarClienteRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), id, req); err != nil {
		fallar(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ClientesHandler) Desactivar(c *gin.Context) {
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

func (h *ClientesHandler) Historial(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pedidos, err := h.svc.Historial(c.Request.Context(), id)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, pedidos)
}
