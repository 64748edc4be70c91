package notifier

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	entity "moteka/internal/domain"
)

type recordingSender struct {
	to, subject, body string
	calls             int
	err               error
}

func (s *recordingSender) Send(to, subject, body string) error {
	s.calls++
	s.to, s.subject, s.body = to, subject, body
	return s.err
}

func strPtr(s string) *string { return &s }

func sampleOrder(status entity.OrderStatus, email *string) *entity.WorkOrder {
	return &entity.WorkOrder{
		ID:     42,
		Status: status,
		Client: &entity.Client{Name: "Ana", Email: email},
		Motorcycle: &entity.Motorcycle{
			Plate: strPtr("ABC-123"),
		},
	}
}

func TestComposeStatusEmail(t *testing.T) {
	t.Run("done includes pickup line", func(t *testing.T) {
		subject, body := ComposeStatusEmail(sampleOrder(entity.StatusDone, nil), "frenos nuevos")

		assert.Equal(t, "Actualización de tu moto - Orden #42", subject)
		assert.Contains(t, body, "Hola Ana")
		assert.Contains(t, body, "Finalizada")
		assert.Contains(t, body, "lista para ser retirada")
		assert.Contains(t, body, "ABC-123")
		assert.Contains(t, body, "frenos nuevos")
	})

	t.Run("cancelled includes contact line", func(t *testing.T) {
		_, body := ComposeStatusEmail(sampleOrder(entity.StatusCancelled, nil), "")

		assert.Contains(t, body, "Cancelada")
		assert.Contains(t, body, "contáctanos")
		assert.NotContains(t, body, "Nota del taller")
	})

	t.Run("in repair has no closing lines", func(t *testing.T) {
		_, body := ComposeStatusEmail(sampleOrder(entity.StatusInRepair, nil), "")

		assert.Contains(t, body, "En Reparacion")
		assert.False(t, strings.Contains(body, "retirada"))
		assert.False(t, strings.Contains(body, "cancelada"))
	})
}

func TestNotifyStatusChange(t *testing.T) {
	t.Run("delivers to the client address", func(t *testing.T) {
		sender := &recordingSender{}
		n := New(sender, zap.NewNop())

		n.NotifyStatusChange(sampleOrder(entity.StatusDone, strPtr("ana@example.com")), "")

		assert.Equal(t, 1, sender.calls)
		assert.Equal(t, "ana@example.com", sender.to)
	})

	t.Run("skips silently without an address", func(t *testing.T) {
		sender := &recordingSender{}
		n := New(sender, zap.NewNop())

		n.NotifyStatusChange(sampleOrder(entity.StatusDone, nil), "")
		n.NotifyStatusChange(sampleOrder(entity.StatusDone, strPtr("")), "")

		assert.Equal(t, 0, sender.calls)
	})

	t.Run("absorbs delivery failures", func(t *testing.T) {
		sender := &recordingSender{err: errors.New("smtp down")}
		n := New(sender, zap.NewNop())

		assert.NotPanics(t, func() {
			n.NotifyStatusChange(sampleOrder(entity.StatusDone, strPtr("ana@example.com")), "")
		})
		assert.Equal(t, 1, sender.calls)
	})
}
