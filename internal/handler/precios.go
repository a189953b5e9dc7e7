package handler

import (
	"net/http"
	"strconv"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/service"

	"github.com/gin-gonic/gin"
)

type PreciosHandler struct{ svc service.PrecioService }

func NewPreciosHandler(svc service.PrecioService) *PreciosHandler {
	return &PreciosHandler{svc: svc}
}

// Actual responde 204 cuando todavía no se publicó ninguna lista.
func (h *PreciosHandler) Actual(c *gin.Context) {
	precio, err := h.svc.Actual(c.Request.Context())
	if err != nil {
		fallar(c, err)
		return
	}
	if precio == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, precio)
}

func (h *PreciosHandler) Crear(c *gin.Context) {
	var req dto.CrearPrecioRequest
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

func (h *PreciosHandler) Historial(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	historial, err := h.svc.Historial(c.Request.Context(), limit)
	if err != nil {
		fallar(c, err)
		return
	}
	c.JSON(http.StatusOK, historial)
}
