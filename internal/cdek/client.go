// Package cdek клиент API СДЭК v2: авторизация client_credentials и оформление отправлений.
package cdek

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/utils/measure"
)

// DefaultBaseURL боевой адрес API
const DefaultBaseURL = "https://api.cdek.ru"

// tokenSafetyMargin токен считается истекшим раньше, чем его отзовет СДЭК
const tokenSafetyMargin = time.Minute

var (
	// ErrNotConfigured не заданы ключи клиента
	ErrNotConfigured = errors.New("cdek: client id or secret is not configured")
	// ErrUnauthorized СДЭК отклонил токен и после повторной авторизации
	ErrUnauthorized = errors.New("cdek: unauthorized")
)

// TokenCache хранит токен доступа между запросами и репликами
type TokenCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, token string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Config параметры подключения и отправителя
type Config struct {
	BaseURL        string
	ClientID       string
	ClientSecret   string
	TariffCode     int
	SenderCityCode int
	ShipmentPoint  string // Код ПВЗ, куда магазин сдает посылки
}

// Client реализует domain.ShipmentBooker
type Client struct {
	cfg        Config
	httpClient *http.Client
	tokens     TokenCache
	measure    measure.Config
	logger     *zap.Logger
}

// NewClient создает клиент. Кэш токенов передается снаружи
func NewClient(cfg Config, tokens TokenCache, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		tokens:  tokens,
		measure: measure.DefaultConfig,
		logger:  logger,
	}
}

func (c *Client) tokenKey() string {
	return "cdek:" + c.cfg.ClientID
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// token возвращает токен из кэша или получает новый
func (c *Client) token(ctx context.Context) (string, error) {
	token, ok, err := c.tokens.Get(ctx, c.tokenKey())
	if err != nil {
		c.logger.Warn("cdek token cache read failed", zap.Error(err))
	}
	if ok {
		return token, nil
	}
	return c.authenticate(ctx)
}

func (c *Client) authenticate(ctx context.Context) (string, error) {
	if c.cfg.ClientID == "" || c.cfg.ClientSecret == "" {
		return "", ErrNotConfigured
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v2/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("cdek client: failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("cdek client: failed to request token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cdek client: token request failed with status %d: %s", resp.StatusCode, readSnippet(resp.Body))
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("cdek client: failed to decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("cdek client: empty access token")
	}

	ttl := time.Duration(tr.ExpiresIn)*time.Second - tokenSafetyMargin
	if ttl > 0 {
		if err := c.tokens.Set(ctx, c.tokenKey(), tr.AccessToken, ttl); err != nil {
			c.logger.Warn("cdek token cache write failed", zap.Error(err))
		}
	}

	return tr.AccessToken, nil
}

// do выполняет авторизованный запрос. На 401 токен сбрасывается,
// выполняется одна повторная авторизация и один повтор запроса
func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("cdek client: failed to encode request: %w", err)
		}
	}

	token, err := c.token(ctx)
	if err != nil {
		return 0, err
	}

	for attempt := 0; ; attempt++ {
		status, err := c.send(ctx, method, path, token, payload, out)
		if err != nil {
			return status, err
		}
		if status != http.StatusUnauthorized {
			return status, nil
		}
		if attempt > 0 {
			return status, ErrUnauthorized
		}

		c.logger.Info("cdek token rejected, re-authenticating")
		if err := c.tokens.Delete(ctx, c.tokenKey()); err != nil {
			c.logger.Warn("cdek token cache delete failed", zap.Error(err))
		}
		if token, err = c.authenticate(ctx); err != nil {
			return 0, err
		}
	}
}

func (c *Client) send(ctx context.Context, method, path, token string, payload []byte, out any) (int, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("cdek client: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("cdek client: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	case resp.StatusCode >= 400:
		return resp.StatusCode, fmt.Errorf("cdek client: %s %s failed with status %d: %s", method, path, resp.StatusCode, readSnippet(resp.Body))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("cdek client: failed to decode response: %w", err)
		}
	}

	return resp.StatusCode, nil
}

func readSnippet(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 512))
	return strings.TrimSpace(string(b))
}
