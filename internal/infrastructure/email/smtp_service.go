package email

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// EmailService is the notification channel collaborator. Delivery is a
// single attempt; callers decide whether a failure matters.
type EmailService interface {
	SendEmail(ctx context.Context, req EmailRequest) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpHost string
	smtpFrom string
}

func NewSMTPEmailService(host, port, from string) EmailService {
	return &smtpEmailService{
		smtpAddr: host + ":" + port,
		smtpHost: host,
		smtpFrom: from,
	}
}

// SendEmail sends a plain-text message over SMTP. The context deadline
// bounds the whole attempt: it caps the dial and is applied to the
// connection, so a black-holed server cannot pin the goroutine past it.
func (s *smtpEmailService) SendEmail(ctx context.Context, req EmailRequest) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, strings.Join(req.To, ", "), req.Subject, req.Body))

	done := make(chan error, 1)
	go func() {
		done <- s.send(ctx, req.To, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("email send timed out: %w", ctx.Err())
	}
}

func (s *smtpEmailService) send(ctx context.Context, to []string, msg []byte) error {
	dialTimeout := 10 * time.Second
	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline {
		dialTimeout = time.Until(deadline)
	}

	conn, err := net.DialTimeout("tcp", s.smtpAddr, dialTimeout)
	if err != nil {
		return err
	}
	defer conn.Close()

	if hasDeadline {
		conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, s.smtpHost)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Mail(s.smtpFrom); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return client.Quit()
}
