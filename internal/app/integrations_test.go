package app

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/toyshop/storefront/internal/cache"
	"github.com/toyshop/storefront/internal/config"
)

func channelNames(integ *integrations) []string {
	names := make([]string, 0, len(integ.channels))
	for _, ch := range integ.channels {
		names = append(names, ch.Name())
	}
	return names
}

func TestInitIntegrations_Defaults(t *testing.T) {
	integ, err := initIntegrations(context.Background(), &config.Config{}, zap.NewNop())
	require.NoError(t, err)

	assert.IsType(t, &cache.MemoryTokenCache{}, integ.tokens)
	assert.Nil(t, integ.cachePing)
	assert.Empty(t, integ.channels)
	assert.Empty(t, integ.closers)
}

func TestInitIntegrations_AllEnabled(t *testing.T) {
	srv := miniredis.RunT(t)

	cfg := &config.Config{
		RedisAddr:    srv.Addr(),
		KafkaBrokers: "localhost:9092, localhost:9093",
		KafkaTopic:   "storefront.orders",
		Telegram:     config.Telegram{BotToken: "bot", ChatID: "-100"},
		SMTP:         config.SMTP{Host: "smtp.example", Port: 587, From: "shop@toys.example", To: "a@toys.example, b@toys.example"},
	}

	integ, err := initIntegrations(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	assert.IsType(t, &cache.RedisTokenCache{}, integ.tokens)
	require.NotNil(t, integ.cachePing)
	assert.NoError(t, integ.cachePing.Ping(context.Background()))
	assert.Equal(t, []string{"telegram", "email", "kafka"}, channelNames(integ))

	// kafka-go не подключается до первой записи, закрытие проходит без брокера
	closeAll(integ.closers, zap.NewNop())
	assert.Error(t, integ.cachePing.Ping(context.Background()))
}

func TestInitIntegrations_RedisUnavailable(t *testing.T) {
	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	_, err := initIntegrations(context.Background(), &config.Config{RedisAddr: addr}, zap.NewNop())
	assert.Error(t, err)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a@x", "b@x"}, splitList(" a@x ,, b@x "))
	assert.Nil(t, splitList(""))
}
