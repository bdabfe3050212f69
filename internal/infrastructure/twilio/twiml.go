package twilio

import (
	"fmt"

	"github.com/beevik/etree"
)

// MessageResponse serializa <Response><Message>body</Message></Response>.
// etree escapa el texto; el cuerpo puede traer emojis, saltos de línea y '<'.
func MessageResponse(body string) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	resp := doc.CreateElement("Response")
	msg := resp.CreateElement("Message")
	msg.SetText(body)

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("twiml: serializar respuesta: %w", err)
	}
	return out, nil
}
