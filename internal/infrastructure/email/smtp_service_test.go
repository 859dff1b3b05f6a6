package email

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// silentListener accepts connections and never speaks, imitating a
// black-holed SMTP server.
func silentListener(t *testing.T) (host, port string) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			// Hold the connection open without a greeting.
			go func(c net.Conn) {
				time.Sleep(30 * time.Second)
				c.Close()
			}(conn)
		}
	}()

	host, port, err = net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	return host, port
}

func TestSendEmailIsBoundedByContextDeadline(t *testing.T) {
	host, port := silentListener(t)
	svc := NewSMTPEmailService(host, port, "noreply@example.com")

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := svc.SendEmail(ctx, EmailRequest{
		To:      []string{"admin@example.com"},
		Subject: "subject",
		Body:    "body",
	})
	elapsed := time.Since(start)

	assert.Error(t, err)
	assert.Less(t, elapsed, 2*time.Second,
		"a server that never answers must not stall the caller past the deadline")
}

func TestSendEmailConnectionRefused(t *testing.T) {
	// Reserve a port and close it so nothing listens there.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	ln.Close()

	svc := NewSMTPEmailService(host, port, "noreply@example.com")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err = svc.SendEmail(ctx, EmailRequest{To: []string{"admin@example.com"}})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to send email") ||
		strings.Contains(err.Error(), "timed out"))
}
