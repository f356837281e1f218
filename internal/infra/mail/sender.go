package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password, from, templateDir string) *EmailSender {
	return &EmailSender{
		Host:        host,
		Port:        port,
		User:        user,
		Password:    password,
		From:        from,
		TemplateDir: templateDir,
	}
}

// SendSpecsheets sends the enquiry reply with the generated PDFs attached.
func (s *EmailSender) SendSpecsheets(to string, attachments []string) error {
	data := SpecsheetEmailData{AttachmentCount: len(attachments)}

	tmplPath := filepath.Join(s.TemplateDir, "specsheet_email.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("failed to load email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Product Enquiry")
	m.SetBody("text/html", body.String())
	for _, file := range attachments {
		m.Attach(file)
	}

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}

	return nil
}
