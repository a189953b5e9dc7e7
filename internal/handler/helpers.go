package handler

import (
	"net/http"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/apierror"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// bindJSON deserializa y valida el cuerpo. Devuelve false si ya escribió
// la respuesta de error; el handler debe retornar de inmediato.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	return true
}

// bindRango lee fecha_inicio y fecha_fin del query string.
func bindRango(c *gin.Context) (dto.RangoFechas, bool) {
	var rango dto.RangoFechas
	if err := c.ShouldBindQuery(&rango); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("rango de fechas invalido: se esperan fecha_inicio y fecha_fin"))
		return rango, false
	}
	return rango, true
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return uuid.Nil, false
	}
	return id, true
}

// fallar delega el error al middleware ErrorHandler, que decide el
// código HTTP según el tipo.
func fallar(c *gin.Context, err error) {
	_ = c.Error(err)
}

// creado responde 201 con el ID del registro nuevo.
func creado(c *gin.Context, id uuid.UUID) {
	c.JSON(http.StatusCreated, dto.IDResponse{ID: id.String()})
}
