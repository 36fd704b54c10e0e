package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/toyshop/storefront/internal/domain"
)

// DefaultTelegramAPIURL адрес Bot API
const DefaultTelegramAPIURL = "https://api.telegram.org"

// Telegram отправляет уведомление в чат магазина
type Telegram struct {
	apiURL     string
	botToken   string
	chatID     string
	httpClient *http.Client
}

// NewTelegram создает канал Telegram
func NewTelegram(apiURL, botToken, chatID string) *Telegram {
	if apiURL == "" {
		apiURL = DefaultTelegramAPIURL
	}
	return &Telegram{
		apiURL:   strings.TrimRight(apiURL, "/"),
		botToken: botToken,
		chatID:   chatID,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Name имя канала для логов
func (t *Telegram) Name() string { return "telegram" }

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Notify отправляет сообщение через sendMessage
func (t *Telegram) Notify(ctx context.Context, order *domain.Order) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:    t.chatID,
		Text:      summary(order, html.EscapeString),
		ParseMode: "HTML",
	})
	if err != nil {
		return fmt.Errorf("telegram: failed to encode message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiURL, t.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		// Токен бота входит в URL, в ошибку он попасть не должен
		return fmt.Errorf("telegram: failed to execute request: %w", redact(err, t.botToken))
	}
	defer resp.Body.Close()

	var result sendMessageResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&result); err != nil {
		return fmt.Errorf("telegram: unexpected response with status %d: %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK || !result.OK {
		return fmt.Errorf("telegram: sendMessage failed with status %d: %s", resp.StatusCode, result.Description)
	}

	return nil
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

func redact(err error, secret string) error {
	if secret == "" {
		return err
	}
	return &redactedError{msg: strings.ReplaceAll(err.Error(), secret, "***"), err: err}
}
