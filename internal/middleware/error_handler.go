package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/apierror"
	"github.com/Dbaena34/Pio-Pio-Baena/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorHandler traduce los errores tipados del dominio a códigos HTTP y
// garantiza que ningún detalle interno llegue al cliente.
//
//	Validation            → 400
//	Referential           → 404
//	State / Consistency   → 409
//	Store y el resto      → 500
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var ev *apperror.Validation
		if errors.As(err, &ev) {
			c.AbortWithStatusJSON(http.StatusBadRequest, apierror.NewFieldValidation(ev.Campo, ev.Detalle))
			return
		}
		var er *apperror.Referential
		if errors.As(err, &er) {
			c.AbortWithStatusJSON(http.StatusNotFound, apierror.New(er.Error()))
			return
		}
		var es *apperror.State
		if errors.As(err, &es) {
			c.AbortWithStatusJSON(http.StatusConflict, apierror.New(es.Error()))
			return
		}
		var ec *apperror.Consistency
		if errors.As(err, &ec) {
			log.Error().
				Str("request_id", c.GetString(RequestIDKey)).
				Str("path", c.FullPath()).
				Err(err).
				Msg("violación de consistencia")
			c.AbortWithStatusJSON(http.StatusConflict,
				apierror.New("No se pudo completar la operación sin romper la consistencia"))
			return
		}

		log.Error().
			Str("request_id", c.GetString(RequestIDKey)).
			Str("path", c.FullPath()).
			Str("method", c.Request.Method).
			Err(err).
			Msg("error no manejado")
		c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
	}
}

// Recovery convierte panics en respuestas 500.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Interface("panic", r).
					Msg("panic recuperado")
				c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
			}
		}()
		c.Next()
	}
}

// Logger registra cada request con método, ruta, estado y latencia.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("request_id", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
