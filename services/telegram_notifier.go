package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Notifier sends a fire-and-forget text message to the dealership's
// notification channel. Delivery failures are logged, never surfaced; a
// single attempt is made with no retries.
type Notifier interface {
	Notify(ctx context.Context, text string)
}

// TelegramNotifier implements Notifier over the Telegram Bot API.
type TelegramNotifier struct {
	token      string
	chatID     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewTelegramNotifier creates a Telegram notifier. With an empty token the
// notifier degrades to logging the message locally.
func NewTelegramNotifier(token, chatID string, logger *zap.Logger) *TelegramNotifier {
	return &TelegramNotifier{
		token:      token,
		chatID:     chatID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

func (t *TelegramNotifier) Notify(ctx context.Context, text string) {
	if t.token == "" || t.chatID == "" {
		t.logger.Info("Telegram not configured, skipping notification",
			zap.Int("message_len", len(text)))
		return
	}

	apiURL := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", t.token)

	formData := url.Values{}
	formData.Set("chat_id", t.chatID)
	formData.Set("text", text)
	formData.Set("parse_mode", "Markdown")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL,
		strings.NewReader(formData.Encode()))
	if err != nil {
		t.logger.Warn("Failed to build Telegram request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.logger.Warn("Telegram notification failed", zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		t.logger.Warn("Telegram notification rejected",
			zap.String("status", resp.Status),
			zap.String("response", truncateResponse(body)),
		)
		return
	}

	t.logger.Info("Telegram notification sent", zap.String("chat_id", t.chatID))
}

func truncateResponse(body []byte) string {
	var apiErr struct {
		Description string `json:"description"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Description != "" {
		return apiErr.Description
	}
	if len(body) > 200 {
		return string(body[:200])
	}
	return string(body)
}
