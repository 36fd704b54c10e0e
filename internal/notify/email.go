package notify

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/multierr"

	"github.com/toyshop/storefront/internal/domain"
)

// SMTPConfig параметры почтового сервера
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       []string // Адреса магазина
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Email отправляет письмо магазину и подтверждение покупателю
type Email struct {
	cfg  SMTPConfig
	send sendFunc
	now  func() time.Time
}

// NewEmail создает почтовый канал
func NewEmail(cfg SMTPConfig) *Email {
	return &Email{cfg: cfg, send: smtp.SendMail, now: time.Now}
}

// Name имя канала для логов
func (e *Email) Name() string { return "email" }

// Notify отправляет письма. Ошибка одного письма не отменяет другое
func (e *Email) Notify(ctx context.Context, order *domain.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if e.cfg.Username != "" {
		auth = smtp.PlainAuth("", e.cfg.Username, e.cfg.Password, e.cfg.Host)
	}
	addr := net.JoinHostPort(e.cfg.Host, strconv.Itoa(e.cfg.Port))

	var errs error
	if len(e.cfg.To) > 0 {
		msg := e.compose(e.cfg.To, subject(order), summary(order, plain))
		if err := e.send(addr, auth, e.cfg.From, e.cfg.To, msg); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("email: failed to notify shop: %w", err))
		}
	}

	if order.CustomerEmail != nil && *order.CustomerEmail != "" {
		to := []string{*order.CustomerEmail}
		body := fmt.Sprintf("Здравствуйте, %s!\n\nМы получили оплату заказа №%s на сумму %s %s.\nСкоро мы свяжемся с вами.\n",
			order.CustomerName, order.Number, order.TotalAmount.StringFixed(2), order.Currency)
		msg := e.compose(to, "Заказ №"+order.Number+" оплачен", body)
		if err := e.send(addr, auth, e.cfg.From, to, msg); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("email: failed to notify customer: %w", err))
		}
	}

	return errs
}

// compose собирает письмо в UTF-8 с закодированной темой
func (e *Email) compose(to []string, subj, body string) []byte {
	var b bytes.Buffer

	fmt.Fprintf(&b, "From: %s\r\n", e.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subj))
	fmt.Fprintf(&b, "Date: %s\r\n", e.now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))

	return b.Bytes()
}
