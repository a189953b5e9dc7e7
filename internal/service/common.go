package service

import (
	"context"
	"errors"
	"time"

	"github.com/Dbaena34/Pio-Pio-Baena/internal/apperror"

	"gorm.io/gorm"
)

// runTx ejecuta fn dentro de una transacción GORM. Con db nil llama a
// fn(nil) directamente, lo que permite probar servicios sin base de datos.
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// esErrorDominio reconoce los errores tipados que deben atravesar una
// transacción sin re-envolverse como violación de consistencia.
func esErrorDominio(err error) bool {
	var v *apperror.Validation
	var r *apperror.Referential
	var s *apperror.State
	var c *apperror.Consistency
	return errors.As(err, &v) || errors.As(err, &r) || errors.As(err, &s) || errors.As(err, &c)
}

// envolverConsistencia pasa los errores de dominio tal cual y envuelve
// cualquier otro fallo transaccional como violación de consistencia.
func envolverConsistencia(regla string, err error) error {
	if err == nil || esErrorDominio(err) {
		return err
	}
	return apperror.NewConsistency(regla, err)
}

func validarFecha(campo, fecha string) error {
	if _, err := time.Parse("2006-01-02", fecha); err != nil {
		return apperror.NewValidation(campo, "fecha inválida, se espera YYYY-MM-DD")
	}
	return nil
}

func validarHora(campo, hora string) error {
	if _, err := time.Parse("15:04:05", hora); err != nil {
		return apperror.NewValidation(campo, "hora inválida, se espera HH:MM:SS")
	}
	return nil
}

func validarRango(inicio, fin string) error {
	if err := validarFecha("fecha_inicio", inicio); err != nil {
		return err
	}
	if err := validarFecha("fecha_fin", fin); err != nil {
		return err
	}
	if fin < inicio {
		return apperror.NewValidation("fecha_fin", "debe ser igual o posterior a fecha_inicio")
	}
	return nil
}

func ahora() (fecha, hora string) {
	now := time.Now()
	return now.Format("2006-01-02"), now.Format("15:04:05")
}
