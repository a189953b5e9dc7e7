package handler

import (
	"net/http"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/service"

	"github.com/gin-gonic/gin"
)

type PedidosHandler struct{ svc service.PedidoService }

func NewPedidosHandler(svc service.PedidoService) *PedidosHandler {
	return &PedidosHandler{svc: svc}
}

func (h *PedidosHandler) Crear(c *gin.Context) {
	var req dto.CrearPedidoRequest
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

func (h *PedidosHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pedido, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, pedido)
}

func (h *PedidosHandler) ListarPendientes(c *gin.Context) {
	pedidos, err := h.svc.ListPendientes(c.Request.Context())
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, pedidos)
}

func (h *PedidosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.ActualizarPedidoRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), id, req); err != nil {
		fallar(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PedidosHandler) Cancelar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Cancelar(c.Request.Context(), id); err != nil {
		fallar(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Despachar completa el pedido: descuenta stock, registra el despacho y
// asienta el ingreso, todo o nada.
func (h *PedidosHandler) Despachar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.DespacharPedidoRequest
	if !bindJSON(c, &req) {
		return
	}
	despachoID, err := h.svc.Despachar(c.Request.Context(), id, req)
	if err != nil {
		fallar(c, err)
		return
	}
	creado(c, despachoID)
}

func (h *PedidosHandler) HistorialVentas(c *gin.Context) {
	rango, ok := bindRango(c)
	if !ok {
		return
	}
	ventas, err := h.svc.HistorialVentas(c.Request.Context(), rango)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, ventas)
}
