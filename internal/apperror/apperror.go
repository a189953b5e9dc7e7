// Package apperror define la taxonomía de errores del dominio. Los
// repositorios y servicios devuelven estos tipos; la capa de presentación
// los traduce a respuestas HTTP sin exponer detalles internos.
package apperror

import "fmt"

// Validation: un dato del llamador viola una restricción de campo.
type Validation struct {
	Campo   string
	Detalle string
}

func (e *Validation) Error() string {
	return fmt.Sprintf("validación: %s: %s", e.Campo, e.Detalle)
}

// NewValidation construye un error de validación para un campo concreto.
func NewValidation(campo, detalle string) *Validation {
	return &Validation{Campo: campo, Detalle: detalle}
}

// Referential: una entidad referenciada no existe.
type Referential struct {
	Entidad string
	ID      string
}

func (e *Referential) Error() string {
	return fmt.Sprintf("%s %s no encontrado", e.Entidad, e.ID)
}

func NewReferential(entidad, id string) *Referential {
	return &Referential{Entidad: entidad, ID: id}
}

// State: la operación no es válida en el estado actual de la entidad.
type State struct {
	Entidad string
	Estado  string
	Detalle string
}

func (e *State) Error() string {
	return fmt.Sprintf("%s en estado %s: %s", e.Entidad, e.Estado, e.Detalle)
}

func NewState(entidad, estado, detalle string) *State {
	return &State{Entidad: entidad, Estado: estado, Detalle: detalle}
}

// Consistency: una regla de estado derivado no pudo aplicarse. Siempre
// aborta la transacción completa; nunca queda estado parcial.
type Consistency struct {
	Regla string
	Err   error
}

func (e *Consistency) Error() string {
	return fmt.Sprintf("consistencia: %s: %v", e.Regla, e.Err)
}

func (e *Consistency) Unwrap() error { return e.Err }

func NewConsistency(regla string, err error) *Consistency {
	return &Consistency{Regla: regla, Err: err}
}

// Store: fallo de la capa de almacenamiento (I/O, schema). Fatal, no se
// reintenta automáticamente.
type Store struct {
	Op  string
	Err error
}

func (e *Store) Error() string {
	return fmt.Sprintf("almacenamiento: %s: %v", e.Op, e.Err)
}

func (e *Store) Unwrap() error { return e.Err }

func NewStore(op string, err error) *Store {
	return &Store{Op: op, Err: err}
}
