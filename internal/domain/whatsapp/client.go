package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"crackershop/internal/config"
)

const graphAPIBase = "https://graph.facebook.com/v17.0"

// ErrNotConfigured is returned when the API token or phone number ID is
// missing; callers map it to a configuration error response.
var ErrNotConfigured = errors.New("whatsapp api not configured")

// UpstreamError carries the Graph API failure through to the handler so
// the caller sees the upstream status and body.
type UpstreamError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("whatsapp api returned status %d", e.StatusCode)
}

// Client talks to the WhatsApp Business Cloud API.
type Client struct {
	cfg  config.WhatsAppConfig
	http *http.Client
	base string
}

func NewClient(cfg config.WhatsAppConfig) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 10 * time.Second},
		base: graphAPIBase,
	}
}

// NormalizePhone strips everything but digits. Graph wants E.164
// without the plus sign.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

type sendPayload struct {
	MessagingProduct string      `json:"messaging_product"`
	To               string      `json:"to"`
	Type             string      `json:"type"`
	Text             textPayload `json:"text"`
}

type textPayload struct {
	Body string `json:"body"`
}

// SendText delivers a free-form text message. The returned raw message
// is the Graph API response body on success.
func (c *Client) SendText(ctx context.Context, phone, message string) (json.RawMessage, error) {
	if c.cfg.APIToken == "" || c.cfg.PhoneNumberID == "" {
		return nil, ErrNotConfigured
	}

	payload := sendPayload{
		MessagingProduct: "whatsapp",
		To:               NormalizePhone(phone),
		Type:             "text",
		Text:             textPayload{Body: message},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s/messages", c.base, c.cfg.PhoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: respBody}
	}
	return respBody, nil
}

// VerifyToken reports whether the webhook subscribe token matches.
func (c *Client) VerifyToken(token string) bool {
	return token != "" && token == c.cfg.VerifyToken
}
