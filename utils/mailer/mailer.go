package mailer

import (
	"bytes"
	"crypto/tls"
	"embed"
	"fmt"
	"html/template"
	"net/smtp"
	"time"

	"github.com/officialsayandeeppaul/RecordHub/config"
)

//go:embed templates/*.html
var emailTemplates embed.FS

var (
	passwordResetTemplate   = template.Must(template.New("password_reset.html").ParseFS(emailTemplates, "templates/password_reset.html"))
	welcomeTemplate         = template.Must(template.New("welcome.html").ParseFS(emailTemplates, "templates/welcome.html"))
	dueDateReminderTemplate = template.Must(template.New("due_date_reminder.html").ParseFS(emailTemplates, "templates/due_date_reminder.html"))
)

type Client struct {
	cfg config.EmailConfig
}

func NewClient(cfg config.EmailConfig) *Client {
	return &Client{cfg: cfg}
}

func (c *Client) SendPasswordResetEmail(toEmail, name, resetLink string) error {
	data := struct {
		Name      string
		ResetLink string
		Year      int
	}{Name: name, ResetLink: resetLink, Year: time.Now().Year()}

	return c.send(toEmail, "Reset Your Password - RecordHub", passwordResetTemplate, data)
}

func (c *Client) SendWelcomeEmail(toEmail, name, dashboardLink string) error {
	data := struct {
		Name          string
		DashboardLink string
		Year          int
	}{Name: name, DashboardLink: dashboardLink, Year: time.Now().Year()}

	return c.send(toEmail, "Welcome to RecordHub", welcomeTemplate, data)
}

func (c *Client) SendDueDateReminderEmail(toEmail, name, recordTitle, dueDate, recordsLink string) error {
	data := struct {
		Name        string
		RecordTitle string
		DueDate     string
		RecordsLink string
		Year        int
	}{Name: name, RecordTitle: recordTitle, DueDate: dueDate, RecordsLink: recordsLink, Year: time.Now().Year()}

	return c.send(toEmail, "Due Date Reminder - RecordHub", dueDateReminderTemplate, data)
}

func (c *Client) send(toEmail, subject string, tmpl *template.Template, data interface{}) error {
	if c.cfg.Host == "" {
		return fmt.Errorf("smtp host is not configured")
	}

	from := c.cfg.FromAddress
	if from == "" {
		from = c.cfg.Username
	}
	if from == "" {
		return fmt.Errorf("smtp from address is not configured")
	}

	addr := fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)
	auth := smtp.PlainAuth("", c.cfg.Username, c.cfg.Password, c.cfg.Host)

	body := bytes.Buffer{}
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render email template %s: %w", tmpl.Name(), err)
	}

	fromHeader := from
	if c.cfg.FromName != "" {
		fromHeader = fmt.Sprintf("%q <%s>", c.cfg.FromName, from)
	}

	msg := buildHTMLMessage(fromHeader, toEmail, subject, body.String())

	if c.cfg.Username == "" && c.cfg.Password == "" {
		return smtp.SendMail(addr, nil, from, []string{toEmail}, []byte(msg))
	}

	if c.cfg.Port == 465 {
		return c.sendSMTPTLS(addr, auth, from, toEmail, msg)
	}

	return smtp.SendMail(addr, auth, from, []string{toEmail}, []byte(msg))
}

func (c *Client) sendSMTPTLS(addr string, auth smtp.Auth, from, toEmail, msg string) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: c.cfg.Host})
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, c.cfg.Host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(from); err != nil {
		return err
	}
	if err := client.Rcpt(toEmail); err != nil {
		return err
	}

	wc, err := client.Data()
	if err != nil {
		return err
	}
	_, err = wc.Write([]byte(msg))
	if err != nil {
		return err
	}
	if err := wc.Close(); err != nil {
		return err
	}

	return client.Quit()
}

func buildHTMLMessage(from, to, subject, htmlBody string) string {
	return fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"utf-8\"\r\n\r\n%s", from, to, subject, htmlBody)
}
