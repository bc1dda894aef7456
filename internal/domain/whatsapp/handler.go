package whatsapp

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Recorder receives parsed webhook traffic for the activity feed.
type Recorder interface {
	RecordInbound(msg InboundMessage)
	RecordStatus(update StatusUpdate)
}

// Handler serves the legacy flat-JSON surface the storefront and the
// Graph webhook already speak: no envelope, exact field names.
type Handler struct {
	client   *Client
	recorder Recorder
}

func NewHandler(client *Client, recorder Recorder) *Handler {
	return &Handler{client: client, recorder: recorder}
}

type sendMessageRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message"`
	MessageType string `json:"messageType"`
}

func (h *Handler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.PhoneNumber == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number and message are required"})
		return
	}

	raw, err := h.client.SendText(c.Request.Context(), req.PhoneNumber, req.Message)
	if err != nil {
		var upstream *UpstreamError
		switch {
		case errors.Is(err, ErrNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "WhatsApp integration not configured"})
		case errors.As(err, &upstream):
			c.JSON(upstream.StatusCode, gin.H{
				"error":   "Failed to send WhatsApp message",
				"details": upstream.Body,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send WhatsApp message"})
		}
		return
	}

	var parsed struct {
		Messages []struct {
			ID string `json:"id"`
		} `json:"messages"`
	}
	messageID := ""
	if json.Unmarshal(raw, &parsed) == nil && len(parsed.Messages) > 0 {
		messageID = parsed.Messages[0].ID
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"messageId": messageID,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// VerifyWebhook handles the Graph subscribe handshake: echo the
// challenge on a token match, 403 otherwise.
func (h *Handler) VerifyWebhook(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && h.client.VerifyToken(token) {
		c.String(http.StatusOK, challenge)
		return
	}
	c.Status(http.StatusForbidden)
}

func (h *Handler) ReceiveWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	messages, statuses, err := ParseWebhook(body)
	if err != nil {
		// Acknowledge anyway; Graph retries aggressively on non-200.
		log.Printf("event=whatsapp_webhook_parse_failed error=%v", err)
		c.JSON(http.StatusOK, gin.H{"status": "received"})
		return
	}

	for _, m := range messages {
		log.Printf("event=whatsapp_inbound from=%s type=%s content=%q", m.From, m.Type, m.Content)
		if h.recorder != nil {
			h.recorder.RecordInbound(m)
		}
	}
	for _, s := range statuses {
		log.Printf("event=whatsapp_status message_id=%s status=%s", s.MessageID, s.Status)
		if h.recorder != nil {
			h.recorder.RecordStatus(s)
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "received"})
}

// RegisterRoutes mounts the legacy public surface under /api/whatsapp.
func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	wa := rg.Group("/whatsapp")
	{
		wa.POST("/send-message", h.SendMessage)
		wa.GET("/webhook", h.VerifyWebhook)
		wa.POST("/webhook", h.ReceiveWebhook)
	}
}
