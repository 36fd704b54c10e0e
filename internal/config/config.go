package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress  string `env:"RUN_ADDRESS"`  // Адрес и порт запуска сервиса
	DatabaseURI string `env:"DATABASE_URI"` // URI подключения к БД
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Публичный адрес магазина для ссылок возврата и колбэков
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Админка
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"` // bcrypt
	AdminTokenSecret  string        `env:"ADMIN_TOKEN_SECRET"`
	AdminTokenTTL     time.Duration `env:"ADMIN_TOKEN_TTL" envDefault:"12h"`

	// Worker Pool побочных эффектов
	WorkerPoolSize  int `env:"WORKER_POOL_SIZE" envDefault:"3"`
	WorkerQueueSize int `env:"WORKER_QUEUE_SIZE" envDefault:"100"`

	RedisAddr string `env:"REDIS_ADDR"`

	KafkaBrokers string `env:"KAFKA_BROKERS"`
	KafkaTopic   string `env:"KAFKA_TOPIC" envDefault:"storefront.orders"`

	Modulbank Modulbank
	CDEK      CDEK
	Telegram  Telegram
	SMTP      SMTP
}

// Modulbank параметры платежного шлюза
type Modulbank struct {
	MerchantID       string `env:"MODULBANK_MERCHANT_ID"`
	SecretKey        string `env:"MODULBANK_SECRET_KEY"`
	PaymentURL       string `env:"MODULBANK_PAYMENT_URL" envDefault:"https://pay.modulbank.ru/pay"`
	Testing          bool   `env:"MODULBANK_TESTING"`
	RequireSignature bool   `env:"MODULBANK_REQUIRE_SIGNATURE"`
}

// CDEK параметры службы доставки
type CDEK struct {
	BaseURL        string `env:"CDEK_BASE_URL" envDefault:"https://api.cdek.ru"`
	ClientID       string `env:"CDEK_CLIENT_ID"`
	ClientSecret   string `env:"CDEK_CLIENT_SECRET"`
	TariffCode     int    `env:"CDEK_TARIFF_CODE" envDefault:"136"`
	SenderCityCode int    `env:"CDEK_SENDER_CITY_CODE" envDefault:"44"`
	ShipmentPoint  string `env:"CDEK_SHIPMENT_POINT"`
}

// Telegram параметры бота уведомлений
type Telegram struct {
	BotToken string `env:"TELEGRAM_BOT_TOKEN"`
	ChatID   string `env:"TELEGRAM_CHAT_ID"`
	APIURL   string `env:"TELEGRAM_API_URL"`
}

// SMTP параметры почтовых уведомлений
type SMTP struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
	From     string `env:"SMTP_FROM"`
	To       string `env:"NOTIFY_EMAIL_TO"`
}

// Enabled СДЭК подключается только при заданных учетных данных
func (c CDEK) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// Enabled канал без токена или чата отключен
func (t Telegram) Enabled() bool {
	return t.BotToken != "" && t.ChatID != ""
}

func (s SMTP) Enabled() bool {
	return s.Host != "" && s.From != ""
}

// Load загружает конфигурацию из флагов командной строки, .env и переменных окружения
func Load() (*Config, error) {
	return LoadFromArgs(os.Args[1:])
}

// LoadFromArgs загружает конфигурацию с заданными аргументами.
// Приоритет: env переменные > .env файл > флаги > дефолтные значения
func LoadFromArgs(args []string) (*Config, error) {
	cfg := &Config{}

	fset := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fset.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	fset.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	envFile := fset.String("env-file", ".env", "optional dotenv file")
	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("config: failed to parse flags: %w", err)
	}

	// godotenv не перезаписывает уже заданные переменные окружения
	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load %s: %w", *envFile, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.AdminTokenSecret == "" {
		// Без секрета токены не переживают рестарт, но подделать их нельзя
		secret, err := randomSecret()
		if err != nil {
			return nil, err
		}
		cfg.AdminTokenSecret = secret
	}
	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURI == "" {
		return fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}
	if c.WorkerPoolSize <= 0 {
		return fmt.Errorf("WORKER_POOL_SIZE must be positive, got %d", c.WorkerPoolSize)
	}
	if c.WorkerQueueSize <= 0 {
		return fmt.Errorf("WORKER_QUEUE_SIZE must be positive, got %d", c.WorkerQueueSize)
	}
	if c.AdminTokenTTL <= 0 {
		return fmt.Errorf("ADMIN_TOKEN_TTL must be positive, got %s", c.AdminTokenTTL)
	}
	if c.Modulbank.RequireSignature && c.Modulbank.SecretKey == "" {
		return fmt.Errorf("MODULBANK_SECRET_KEY is required when MODULBANK_REQUIRE_SIGNATURE is set")
	}
	if c.KafkaBrokers != "" && c.KafkaTopic == "" {
		return fmt.Errorf("KAFKA_TOPIC is required when KAFKA_BROKERS is set")
	}
	return nil
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("config: failed to generate admin token secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
