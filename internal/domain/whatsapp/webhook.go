package whatsapp

import "encoding/json"

// webhookPayload mirrors the Graph webhook envelope far enough to pull
// out inbound messages and delivery status updates.
type webhookPayload struct {
	Object string `json:"object"`
	Entry  []struct {
		ID      string `json:"id"`
		Changes []struct {
			Field string      `json:"field"`
			Value changeValue `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

type changeValue struct {
	MessagingProduct string `json:"messaging_product"`
	Contacts         []struct {
		Profile struct {
			Name string `json:"name"`
		} `json:"profile"`
		WaID string `json:"wa_id"`
	} `json:"contacts"`
	Messages []rawMessage `json:"messages"`
	Statuses []rawStatus  `json:"statuses"`
}

type rawMessage struct {
	From      string `json:"from"`
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
	Text      *struct {
		Body string `json:"body"`
	} `json:"text"`
	Button *struct {
		Text    string `json:"text"`
		Payload string `json:"payload"`
	} `json:"button"`
	Interactive *struct {
		Type        string `json:"type"`
		ButtonReply *struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"button_reply"`
		ListReply *struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"list_reply"`
	} `json:"interactive"`
}

type rawStatus struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	RecipientID string `json:"recipient_id"`
}

// InboundMessage is a parsed customer message from the webhook.
type InboundMessage struct {
	From        string `json:"from"`
	ProfileName string `json:"profileName"`
	MessageID   string `json:"messageId"`
	Type        string `json:"type"`
	Content     string `json:"content"`
}

// StatusUpdate is a delivery receipt for a message we sent.
type StatusUpdate struct {
	MessageID   string `json:"messageId"`
	Status      string `json:"status"`
	RecipientID string `json:"recipientId"`
}

// ParseWebhook extracts messages and statuses from a raw webhook body.
// Unknown shapes yield empty slices, not errors; Graph retries on
// non-200 and we never want that for payloads we simply do not handle.
func ParseWebhook(body []byte) ([]InboundMessage, []StatusUpdate, error) {
	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, nil, err
	}

	var messages []InboundMessage
	var statuses []StatusUpdate

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			names := map[string]string{}
			for _, contact := range change.Value.Contacts {
				names[contact.WaID] = contact.Profile.Name
			}

			for _, m := range change.Value.Messages {
				messages = append(messages, InboundMessage{
					From:        m.From,
					ProfileName: names[m.From],
					MessageID:   m.ID,
					Type:        m.Type,
					Content:     messageContent(m),
				})
			}
			for _, s := range change.Value.Statuses {
				statuses = append(statuses, StatusUpdate{
					MessageID:   s.ID,
					Status:      s.Status,
					RecipientID: s.RecipientID,
				})
			}
		}
	}

	return messages, statuses, nil
}

func messageContent(m rawMessage) string {
	switch m.Type {
	case "text":
		if m.Text != nil {
			return m.Text.Body
		}
	case "button":
		if m.Button != nil {
			return m.Button.Text
		}
	case "interactive":
		if m.Interactive != nil {
			if m.Interactive.ButtonReply != nil {
				return m.Interactive.ButtonReply.Title
			}
			if m.Interactive.ListReply != nil {
				return m.Interactive.ListReply.Title
			}
		}
	}
	return ""
}
