// Package notifier delivers customer emails for order status changes.
// Delivery runs detached from the request path and never propagates
// failures back to the caller.
package notifier

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"moteka/internal/config"
	entity "moteka/internal/domain"
)

// Sender pushes one composed message out. Kept narrow so tests can swap
// in a recorder.
type Sender interface {
	Send(to, subject, body string) error
}

type smtpSender struct {
	cfg config.SMTPConfig
}

func NewSMTPSender(cfg config.SMTPConfig) Sender {
	return &smtpSender{cfg: cfg}
}

func (s *smtpSender) Send(to, subject, body string) error {
	if s.cfg.Host == "" || s.cfg.User == "" || s.cfg.Pass == "" {
		return fmt.Errorf("smtp configuration is incomplete")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Pass)
	return d.DialAndSend(m)
}

// Notifier emails the order's client on every status change.
type Notifier struct {
	sender Sender
	logger *zap.Logger
}

func New(sender Sender, logger *zap.Logger) *Notifier {
	return &Notifier{sender: sender, logger: logger}
}

// NotifyStatusChange sends the customer email for an order transition.
// Missing client email means no delivery is attempted; send failures
// are logged and swallowed.
func (n *Notifier) NotifyStatusChange(order *entity.WorkOrder, note string) {
	if order == nil || order.Client == nil {
		return
	}
	if order.Client.Email == nil || *order.Client.Email == "" {
		n.logger.Info("status notification skipped, client has no email",
			zap.Int64("order_id", order.ID))
		return
	}

	subject, body := ComposeStatusEmail(order, note)
	if err := n.sender.Send(*order.Client.Email, subject, body); err != nil {
		n.logger.Warn("status notification failed",
			zap.Int64("order_id", order.ID),
			zap.String("status", string(order.Status)),
			zap.Error(err))
		return
	}

	n.logger.Info("status notification sent",
		zap.Int64("order_id", order.ID),
		zap.String("status", string(order.Status)))
}

// ComposeStatusEmail builds the customer-facing Spanish message.
func ComposeStatusEmail(order *entity.WorkOrder, note string) (subject, body string) {
	subject = fmt.Sprintf("Actualización de tu moto - Orden #%d", order.ID)

	var b strings.Builder
	fmt.Fprintf(&b, "Hola %s,\n\n", order.Client.Name)
	fmt.Fprintf(&b, "El estado de tu orden #%d cambió a: %s.\n", order.ID, order.Status.Human())

	switch order.Status {
	case entity.StatusDone:
		b.WriteString("Tu moto está lista para ser retirada en el taller.\n")
	case entity.StatusCancelled:
		b.WriteString("La orden fue cancelada. Si tienes dudas, contáctanos.\n")
	}

	if order.Motorcycle != nil && order.Motorcycle.Plate != nil && *order.Motorcycle.Plate != "" {
		fmt.Fprintf(&b, "Moto: %s\n", *order.Motorcycle.Plate)
	}
	if note != "" {
		fmt.Fprintf(&b, "\nNota del taller: %s\n", note)
	}

	b.WriteString("\nGracias por confiar en nosotros.\n")
	return subject, b.String()
}
