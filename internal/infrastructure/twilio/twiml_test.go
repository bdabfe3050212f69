package twilio_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/chopp-api/internal/infrastructure/twilio"
)

func TestMessageResponse_EscapaYConserva(t *testing.T) {
	body := "🧾 Relatório 10/2025\nReceita <bruta> & líquida"
	out, err := twilio.MessageResponse(body)
	require.NoError(t, err)

	assert.Contains(t, string(out), `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, string(out), "&lt;bruta&gt; &amp;")

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	msg := doc.FindElement("/Response/Message")
	require.NotNil(t, msg)
	assert.Equal(t, body, msg.Text())
}
