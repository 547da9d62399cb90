package mail

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Mailer delivers outbound mail. Delivery is an external collaborator;
// callers treat failures as best-effort.
type Mailer interface {
	SendPasswordReset(to, resetURL string) error
}

// SMTPMailer sends mail through a plain SMTP relay.
type SMTPMailer struct {
	addr string
	from string
}

// NewSMTPMailer creates a mailer pointed at the given relay address.
func NewSMTPMailer(addr, from string) *SMTPMailer {
	return &SMTPMailer{addr: addr, from: from}
}

// SendPasswordReset emails a reset link to the user.
func (m *SMTPMailer) SendPasswordReset(to, resetURL string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	msg.WriteString("Subject: Reset your password\r\n")
	msg.WriteString("\r\n")
	msg.WriteString("A password reset was requested for your account.\r\n\r\n")
	fmt.Fprintf(&msg, "Reset link (valid for one hour, single use): %s\r\n\r\n", resetURL)
	msg.WriteString("If you did not request this, you can ignore this email.\r\n")

	return smtp.SendMail(m.addr, nil, m.from, []string{to}, []byte(msg.String()))
}
