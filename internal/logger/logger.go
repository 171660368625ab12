package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Log - глобальный логгер для всего приложения (синглтон).
// До вызова Initialize равен nil.
var Log *zap.Logger

// New создаёт production-логгер с заданным уровнем ("debug", "info", ...)
func New(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	// Создаём production конфигурацию логгера
	config := zap.NewProductionConfig()
	config.Level = lvl

	return config.Build()
}

// Initialize инициализирует глобальный логгер.
// Эта функция должна быть вызвана один раз при старте приложения
func Initialize(level string) error {
	logger, err := New(level)
	if err != nil {
		return err
	}

	// Устанавливаем глобальный логгер
	Log = logger
	return nil
}
