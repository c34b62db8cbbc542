package notification

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/DiegoA00/T5-PlagiSmart-sub000/pkg/config"
)

// Mailer envía correos de notificación vía SMTP.
type Mailer struct {
	host     string
	addr     string
	user     string
	password string
	from     string
}

// NewMailer construye el mailer con la configuración SMTP.
func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		host:     cfg.Host,
		addr:     cfg.Addr(),
		user:     cfg.User,
		password: cfg.Password,
		from:     cfg.Sender(),
	}
}

// Send envía un correo de texto plano a un único destinatario.
func (m *Mailer) Send(to, subject, body string) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	if err := e.Send(m.addr, auth); err != nil {
		return fmt.Errorf("mailer: enviar a %s: %w", to, err)
	}
	return nil
}
