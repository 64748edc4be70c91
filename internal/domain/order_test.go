package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{"EN_ESPERA", "EN_REPARACION", "FINALIZADA", "CANCELADA"} {
		status, ok := ParseOrderStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, OrderStatus(valid), status)
	}

	for _, invalid := range []string{"", "finalizada", "TERMINADA", "EN ESPERA", "DONE"} {
		_, ok := ParseOrderStatus(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	assert.False(t, StatusWaiting.Terminal())
	assert.False(t, StatusInRepair.Terminal())
	assert.True(t, StatusDone.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

func TestOrderStatusHuman(t *testing.T) {
	assert.Equal(t, "En Espera", StatusWaiting.Human())
	assert.Equal(t, "En Reparacion", StatusInRepair.Human())
	assert.Equal(t, "Finalizada", StatusDone.Human())
	assert.Equal(t, "Cancelada", StatusCancelled.Human())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("x")))
	assert.Equal(t, KindConflict, KindOf(Conflict("x")))
	assert.Equal(t, KindInternal, KindOf(assert.AnError))
}
