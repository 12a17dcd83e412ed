package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log"
	"mime/multipart"
	"net/smtp"
	"net/textproto"

	"helha-jobapp/internal/config"
)

// Attachment is a file sent along with a mail
type Attachment struct {
	Filename string
	Content  []byte
}

// Mailer sends outgoing mail. The zero-config mailer is disabled and
// silently drops messages, matching dev environments without SMTP.
type Mailer interface {
	IsEnabled() bool
	Send(to, subject, body string) error
	SendWithAttachments(to, subject, body string, attachments []Attachment) error
}

// smtpMailer sends mail through a plain SMTP relay
type smtpMailer struct {
	cfg     config.SMTPConfig
	enabled bool
}

// NewMailer creates a mailer from SMTP config
func NewMailer(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{
		cfg:     cfg,
		enabled: cfg.Host != "",
	}
}

// IsEnabled checks if mail delivery is configured
func (m *smtpMailer) IsEnabled() bool {
	return m.enabled
}

// Send sends a plain text mail
func (m *smtpMailer) Send(to, subject, body string) error {
	return m.SendWithAttachments(to, subject, body, nil)
}

// SendWithAttachments sends a mail with optional file attachments
func (m *smtpMailer) SendWithAttachments(to, subject, body string, attachments []Attachment) error {
	if !m.enabled {
		log.Printf("⚠️ Mail delivery disabled, dropping mail to %s (%s)", to, subject)
		return nil
	}

	msg, err := m.buildMessage(to, subject, body, attachments)
	if err != nil {
		return err
	}

	addr := m.cfg.Host + ":" + m.cfg.Port
	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Printf("✉️ Mail sent to %s (%s)", to, subject)
	return nil
}

// buildMessage assembles a multipart MIME message
func (m *smtpMailer) buildMessage(to, subject, body string, attachments []Attachment) ([]byte, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%s\r\n\r\n", writer.Boundary())

	textHeader := textproto.MIMEHeader{}
	textHeader.Set("Content-Type", "text/plain; charset=utf-8")
	textPart, err := writer.CreatePart(textHeader)
	if err != nil {
		return nil, err
	}
	if _, err := textPart.Write([]byte(body)); err != nil {
		return nil, err
	}

	for _, att := range attachments {
		header := textproto.MIMEHeader{}
		header.Set("Content-Type", "application/octet-stream")
		header.Set("Content-Transfer-Encoding", "base64")
		header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", att.Filename))

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, err
		}

		encoded := base64.StdEncoding.EncodeToString(att.Content)
		if _, err := part.Write([]byte(encoded)); err != nil {
			return nil, err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
