package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsistencyEnvuelveLaCausa(t *testing.T) {
	causa := errors.New("disk I/O error")
	err := NewConsistency("despacho actualiza stock", causa)

	assert.ErrorIs(t, err, causa)
	assert.Contains(t, err.Error(), "despacho actualiza stock")

	var ec *Consistency
	require.ErrorAs(t, fmt.Errorf("tx: %w", err), &ec)
	assert.Equal(t, "despacho actualiza stock", ec.Regla)
}

func TestStoreEnvuelveLaCausa(t *testing.T) {
	causa := errors.New("database is locked")
	err := NewStore("crear pedido", causa)

	assert.ErrorIs(t, err, causa)

	var es *Store
	require.ErrorAs(t, err, &es)
	assert.Equal(t, "crear pedido", es.Op)
}

func TestMensajes(t *testing.T) {
	assert.Equal(t, "validación: fecha: fecha inválida, se espera YYYY-MM-DD",
		NewValidation("fecha", "fecha inválida, se espera YYYY-MM-DD").Error())
	assert.Equal(t, "cliente abc no encontrado", NewReferential("cliente", "abc").Error())
	assert.Equal(t, "pedido en estado completado: un pedido completado no se cancela",
		NewState("pedido", "completado", "un pedido completado no se cancela").Error())
}

func TestTiposNoSeConfunden(t *testing.T) {
	var ev *Validation
	var er *Referential
	err := NewReferential("pedido", "x")
	assert.False(t, errors.As(err, &ev))
	assert.True(t, errors.As(err, &er))
}
