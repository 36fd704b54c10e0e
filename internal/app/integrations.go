package app

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/cache"
	"github.com/toyshop/storefront/internal/cdek"
	"github.com/toyshop/storefront/internal/config"
	"github.com/toyshop/storefront/internal/handlers"
	"github.com/toyshop/storefront/internal/notify"
)

// closer освобождает внешнее соединение при остановке
type closer struct {
	name  string
	close func() error
}

// integrations внешние клиенты, которые включаются конфигурацией
type integrations struct {
	tokens    cdek.TokenCache
	cachePing handlers.Pinger // nil без Redis
	channels  []notify.Channel
	closers   []closer
}

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// initIntegrations подключает Redis и Kafka и собирает каналы уведомлений
func initIntegrations(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*integrations, error) {
	integ := &integrations{}

	if cfg.RedisAddr != "" {
		client, err := cache.NewRedisClient(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		integ.tokens = cache.NewRedisTokenCache(client)
		integ.cachePing = redisPinger{client: client}
		integ.closers = append(integ.closers, closer{name: "redis", close: client.Close})
		logger.Info("token cache: redis", zap.String("addr", cfg.RedisAddr))
	} else {
		integ.tokens = cache.NewMemoryTokenCache()
		logger.Info("token cache: in-memory")
	}

	integ.channels = notificationChannels(cfg, logger)

	if brokers := notify.ParseBrokers(cfg.KafkaBrokers); len(brokers) > 0 {
		kafkaChannel := notify.NewKafka(notify.NewKafkaWriter(brokers, cfg.KafkaTopic))
		integ.channels = append(integ.channels, kafkaChannel)
		integ.closers = append(integ.closers, closer{name: "kafka", close: kafkaChannel.Close})
		logger.Info("notification channel enabled",
			zap.String("channel", kafkaChannel.Name()),
			zap.Strings("brokers", brokers),
			zap.String("topic", cfg.KafkaTopic),
		)
	}

	if len(integ.channels) == 0 {
		logger.Warn("no notification channels configured")
	}

	return integ, nil
}

// notificationChannels создает Telegram и email каналы. Без учетных данных канал пропускается
func notificationChannels(cfg *config.Config, logger *zap.Logger) []notify.Channel {
	var channels []notify.Channel

	if cfg.Telegram.Enabled() {
		channels = append(channels, notify.NewTelegram(cfg.Telegram.APIURL, cfg.Telegram.BotToken, cfg.Telegram.ChatID))
	}

	if cfg.SMTP.Enabled() {
		channels = append(channels, notify.NewEmail(notify.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			To:       splitList(cfg.SMTP.To),
		}))
	}

	for _, ch := range channels {
		logger.Info("notification channel enabled", zap.String("channel", ch.Name()))
	}

	return channels
}

func splitList(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// closeAll закрывает клиентов в обратном порядке
func closeAll(closers []closer, logger *zap.Logger) {
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].close(); err != nil {
			logger.Warn("failed to close client", zap.String("client", closers[i].name), zap.Error(err))
			continue
		}
		logger.Info("connection closed", zap.String("client", closers[i].name))
	}
}
