package email

import (
	"bytes"
	"errors"
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

func newTestService(enabled bool) (*SMTPEmailService, *recordingDialer) {
	d := &recordingDialer{}
	svc := NewSMTPEmailService(SMTPConfig{
		Enabled:     enabled,
		Host:        "smtp.example.com",
		Port:        587,
		FromAddress: "helpdesk@example.com",
		FromName:    "DeskHub",
	})
	svc.dialer = d
	return svc, d
}

func TestSMTPEmailService_Send(t *testing.T) {
	svc, d := newTestService(true)
	require.True(t, svc.IsEnabled())

	err := svc.Send("jane@example.com", "Ticket assigned", "Ticket #4 <VPN> was assigned to you.")
	require.NoError(t, err)
	require.Len(t, d.sent, 1)

	m := d.sent[0]
	assert.Equal(t, []string{"jane@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Ticket assigned"}, m.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "&lt;VPN&gt;")
}

func TestSMTPEmailService_Disabled(t *testing.T) {
	svc, d := newTestService(false)
	assert.False(t, svc.IsEnabled())
	assert.Error(t, svc.Send("jane@example.com", "s", "b"))
	assert.Empty(t, d.sent)
}

func TestSMTPEmailService_DialError(t *testing.T) {
	svc, d := newTestService(true)
	d.err = errors.New("connection refused")
	err := svc.Send("jane@example.com", "s", "b")
	assert.ErrorContains(t, err, "failed to send email")
}

func TestSMTPEmailService_RequiresHostAndSender(t *testing.T) {
	svc := NewSMTPEmailService(SMTPConfig{Enabled: true})
	assert.False(t, svc.IsEnabled())
}
