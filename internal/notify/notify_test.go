package notify

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FallsBackToLogNotifier(t *testing.T) {
	n := New(SMTPConfig{})
	_, ok := n.(logNotifier)
	assert.True(t, ok)
	assert.NoError(t, n.Send(context.Background(), "a@example.com", "hi", "body"))
}

func TestSMTPNotifier_Send(t *testing.T) {
	var gotAddr string
	var gotTo []string
	var gotMsg []byte
	n := &smtpNotifier{
		cfg: SMTPConfig{Host: "mail.local", Port: 2525, From: "noreply@example.com"},
		send: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotTo, gotMsg = addr, to, msg
			assert.Nil(t, a)
			return nil
		},
	}

	require.NoError(t, n.Send(context.Background(), "user@example.com", "Your code", "123456"))
	assert.Equal(t, "mail.local:2525", gotAddr)
	assert.Equal(t, []string{"user@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Your code\r\n")
	assert.Contains(t, string(gotMsg), "\r\n\r\n123456")
}

func TestSMTPNotifier_SendError(t *testing.T) {
	n := &smtpNotifier{
		cfg: SMTPConfig{Host: "mail.local", Port: 25},
		send: func(string, smtp.Auth, string, []string, []byte) error {
			return errors.New("connection refused")
		},
	}
	err := n.Send(context.Background(), "user@example.com", "s", "b")
	assert.ErrorContains(t, err, "connection refused")
}
