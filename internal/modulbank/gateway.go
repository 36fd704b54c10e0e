// Package modulbank адаптер платежного шлюза Модульбанка: подписанная форма оплаты
// и разбор уведомлений об оплате.
package modulbank

import (
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/toyshop/storefront/internal/domain"
	"github.com/toyshop/storefront/internal/utils/signature"
)

// StateComplete состояние успешной оплаты в колбэке
const StateComplete = "COMPLETE"

// DefaultPaymentURL адрес формы оплаты шлюза
const DefaultPaymentURL = "https://pay.modulbank.ru/pay"

// ErrNotConfigured не заданы реквизиты мерчанта
var ErrNotConfigured = errors.New("modulbank: merchant id or secret key is not configured")

// Config реквизиты мерчанта
type Config struct {
	MerchantID       string
	SecretKey        string
	PaymentURL       string
	PublicBaseURL    string
	Testing          bool
	RequireSignature bool // Отклонять колбэки без подписи
}

// Gateway реализует domain.PaymentGateway
type Gateway struct {
	cfg  Config
	now  func() time.Time
	salt func() string
}

// NewGateway создает адаптер шлюза
func NewGateway(cfg Config) *Gateway {
	if cfg.PaymentURL == "" {
		cfg.PaymentURL = DefaultPaymentURL
	}
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")

	return &Gateway{
		cfg: cfg,
		now: time.Now,
		salt: func() string {
			return strings.ReplaceAll(uuid.NewString(), "-", "")
		},
	}
}

// SuccessURL страница, куда шлюз вернет покупателя
func (g *Gateway) SuccessURL(orderID string) string {
	return g.cfg.PublicBaseURL + "/order/success?orderId=" + url.QueryEscape(orderID)
}

// CallbackURL адрес уведомления об оплате
func (g *Gateway) CallbackURL(orderID string) string {
	return g.cfg.PublicBaseURL + "/api/orders/" + url.PathEscape(orderID) + "/pay"
}

// BuildPaymentForm собирает подписанные поля формы оплаты.
// Сумма передается строкой ровно с двумя знаками после точки
func (g *Gateway) BuildPaymentForm(order *domain.Order) (*domain.PaymentForm, error) {
	if g.cfg.MerchantID == "" || g.cfg.SecretKey == "" {
		return nil, ErrNotConfigured
	}

	fields := map[string]string{
		"merchant":       g.cfg.MerchantID,
		"amount":         order.TotalAmount.StringFixed(2),
		"order_id":       order.ID,
		"description":    "Заказ №" + order.Number,
		"success_url":    g.SuccessURL(order.ID),
		"callback_url":   g.CallbackURL(order.ID),
		"client_name":    order.CustomerName,
		"client_phone":   order.CustomerPhone,
		"salt":           g.salt(),
		"unix_timestamp": strconv.FormatInt(g.now().Unix(), 10),
		"testing":        "0",
	}
	if g.cfg.Testing {
		fields["testing"] = "1"
	}
	if order.CustomerEmail != nil && *order.CustomerEmail != "" {
		fields["client_email"] = *order.CustomerEmail
	}

	sig := signature.Sign(fields, g.cfg.SecretKey)

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	form := &domain.PaymentForm{Action: g.cfg.PaymentURL, Fields: make([]domain.FormField, 0, len(fields)+1)}
	for _, name := range names {
		form.Fields = append(form.Fields, domain.FormField{Name: name, Value: fields[name]})
	}
	form.Fields = append(form.Fields, domain.FormField{Name: signature.FieldName, Value: sig})

	return form, nil
}

var formTemplate = template.Must(template.New("payment").Parse(`<!DOCTYPE html>
<html lang="ru">
<head>
<meta charset="utf-8">
<title>Переход к оплате</title>
</head>
<body onload="document.forms[0].submit()">
<form method="post" action="{{.Action}}">
{{- range .Fields}}
<input type="hidden" name="{{.Name}}" value="{{.Value}}">
{{- end}}
<noscript><button type="submit">Перейти к оплате</button></noscript>
</form>
</body>
</html>
`))

// RenderPaymentForm пишет HTML-страницу, которая сразу отправляет форму в шлюз
func (g *Gateway) RenderPaymentForm(w io.Writer, form *domain.PaymentForm) error {
	if err := formTemplate.Execute(w, form); err != nil {
		return fmt.Errorf("modulbank: failed to render payment form: %w", err)
	}
	return nil
}

// VerifyCallback проверяет подпись колбэка. Колбэк без подписи пропускается,
// если не включен RequireSignature
func (g *Gateway) VerifyCallback(callback *domain.PaymentCallback) error {
	if callback.Signature == "" {
		if g.cfg.RequireSignature {
			return domain.ErrInvalidSignature
		}
		return nil
	}

	if !signature.Verify(callback.Fields, callback.Signature, g.cfg.SecretKey) {
		return domain.ErrInvalidSignature
	}

	return nil
}

// IsCompleted сообщает, что шлюз подтвердил оплату
func (g *Gateway) IsCompleted(callback *domain.PaymentCallback) bool {
	return callback.State == StateComplete
}
