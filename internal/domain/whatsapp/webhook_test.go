package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inboundTextPayload = `{
  "object": "whatsapp_business_account",
  "entry": [{
    "id": "100000000000001",
    "changes": [{
      "field": "messages",
      "value": {
        "messaging_product": "whatsapp",
        "contacts": [{"profile": {"name": "Ravi Kumar"}, "wa_id": "919876511111"}],
        "messages": [{
          "from": "919876511111",
          "id": "wamid.ABC123",
          "timestamp": "1756700000",
          "type": "text",
          "text": {"body": "Do you have sky shots in stock?"}
        }]
      }
    }]
  }]
}`

const statusPayload = `{
  "object": "whatsapp_business_account",
  "entry": [{
    "changes": [{
      "field": "messages",
      "value": {
        "statuses": [{
          "id": "wamid.OUT1",
          "status": "delivered",
          "timestamp": "1756700100",
          "recipient_id": "919876522222"
        }]
      }
    }]
  }]
}`

func TestParseWebhookInboundText(t *testing.T) {
	messages, statuses, err := ParseWebhook([]byte(inboundTextPayload))
	require.NoError(t, err)
	assert.Empty(t, statuses)
	require.Len(t, messages, 1)

	m := messages[0]
	assert.Equal(t, "919876511111", m.From)
	assert.Equal(t, "Ravi Kumar", m.ProfileName)
	assert.Equal(t, "wamid.ABC123", m.MessageID)
	assert.Equal(t, "text", m.Type)
	assert.Equal(t, "Do you have sky shots in stock?", m.Content)
}

func TestParseWebhookStatuses(t *testing.T) {
	messages, statuses, err := ParseWebhook([]byte(statusPayload))
	require.NoError(t, err)
	assert.Empty(t, messages)
	require.Len(t, statuses, 1)

	s := statuses[0]
	assert.Equal(t, "wamid.OUT1", s.MessageID)
	assert.Equal(t, "delivered", s.Status)
	assert.Equal(t, "919876522222", s.RecipientID)
}

func TestParseWebhookButtonAndInteractive(t *testing.T) {
	payload := `{
	  "entry": [{"changes": [{"value": {"messages": [
	    {"from": "1", "id": "m1", "type": "button", "button": {"text": "Yes, interested", "payload": "YES"}},
	    {"from": "2", "id": "m2", "type": "interactive", "interactive": {"type": "button_reply", "button_reply": {"id": "b1", "title": "View catalog"}}},
	    {"from": "3", "id": "m3", "type": "interactive", "interactive": {"type": "list_reply", "list_reply": {"id": "l1", "title": "Sparklers"}}},
	    {"from": "4", "id": "m4", "type": "image"}
	  ]}}]}]
	}`

	messages, _, err := ParseWebhook([]byte(payload))
	require.NoError(t, err)
	require.Len(t, messages, 4)
	assert.Equal(t, "Yes, interested", messages[0].Content)
	assert.Equal(t, "View catalog", messages[1].Content)
	assert.Equal(t, "Sparklers", messages[2].Content)
	assert.Empty(t, messages[3].Content)
}

func TestParseWebhookUnknownShape(t *testing.T) {
	messages, statuses, err := ParseWebhook([]byte(`{"object": "something_else"}`))
	require.NoError(t, err)
	assert.Empty(t, messages)
	assert.Empty(t, statuses)

	_, _, err = ParseWebhook([]byte(`not json`))
	assert.Error(t, err)
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "919876511111", NormalizePhone("+91 98765 11111"))
	assert.Equal(t, "919876511111", NormalizePhone("91-98765-11111"))
	assert.Equal(t, "919876511111", NormalizePhone("919876511111"))
	assert.Equal(t, "", NormalizePhone("abc"))
}
