package email

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type recordingDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func newTestSender(d dialer) *SMTPSender {
	return &SMTPSender{
		cfg:    Config{Host: "smtp.local", Port: 587, From: "noreply@postbox.local", FromName: "Postbox"},
		dialer: d,
	}
}

func TestSMTPSender_SendSuccess(t *testing.T) {
	d := &recordingDialer{}
	s := newTestSender(d)

	err := s.SendSuccess(context.Background(), "client@x.io", "Your package is ready.", "Package Ready for Pickup")

	require.NoError(t, err)
	require.Len(t, d.sent, 1)
	msg := d.sent[0]
	assert.Equal(t, []string{"client@x.io"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Package Ready for Pickup"}, msg.GetHeader("Subject"))
	assert.Equal(t, []string{`"Postbox" <noreply@postbox.local>`}, msg.GetHeader("From"))
}

func TestSMTPSender_WrapsDialError(t *testing.T) {
	dialErr := errors.New("connection refused")
	s := newTestSender(&recordingDialer{err: dialErr})

	err := s.SendSuccess(context.Background(), "client@x.io", "body", "subject")

	require.ErrorIs(t, err, dialErr)
	assert.Contains(t, err.Error(), "failed to send email")
}

func TestSMTPSender_CancelledContextSkipsDial(t *testing.T) {
	d := &recordingDialer{}
	s := newTestSender(d)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.SendSuccess(ctx, "client@x.io", "body", "subject")

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, d.sent)
}

func TestLogSender_NeverFails(t *testing.T) {
	s := NewLogSender(slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.NoError(t, s.SendSuccess(context.Background(), "a@x.io", "body", "subject"))
}
