package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerificationMessage(t *testing.T) {
	msg := VerificationMessage("http://localhost:3000/", "ana@example.com", "abc 123")

	assert.Equal(t, "ana@example.com", msg.To)
	assert.Contains(t, msg.Body, "http://localhost:3000/new-verification?token=abc+123")
}

func TestNewSelectsTransport(t *testing.T) {
	m, err := New(Options{Transport: "log", From: "no-reply@x"})
	require.NoError(t, err)
	assert.IsType(t, &LogMailer{}, m)

	_, err = New(Options{Transport: "carrier-pigeon"})
	assert.Error(t, err)

	_, err = New(Options{Transport: "rabbitmq"})
	assert.Error(t, err, "missing url must fail before dialing")
}

func TestLogMailerRequiresRecipient(t *testing.T) {
	m := NewLogMailer("no-reply@x")
	assert.Error(t, m.Send(context.Background(), Message{Subject: "hi"}))
	assert.NoError(t, m.Send(context.Background(), Message{To: "a@b.c", Subject: "hi"}))
}
