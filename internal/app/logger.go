package app

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initLogger создает логгер. "production" включает JSON-формат,
// уровни zap ("debug", "warn", ...) меняют только порог в dev-режиме
func initLogger(logLevel string) (*zap.Logger, error) {
	if logLevel == "production" {
		logger, err := zap.NewProduction()
		if err != nil {
			return nil, fmt.Errorf("failed to init logger: %w", err)
		}
		return logger, nil
	}

	cfg := zap.NewDevelopmentConfig()
	if level, err := zapcore.ParseLevel(logLevel); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	return logger, nil
}
