package app

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Mihklz/observer/internal/config"
	"github.com/Mihklz/observer/internal/logger"
	"github.com/Mihklz/observer/internal/sample"
	"github.com/Mihklz/observer/pkg/observer"
)

// Module собирает сценарий примера. *config.ExampleConfig предоставляет вызывающий.
var Module = fx.Module("example",
	fx.Provide(
		ProvideLogger,
		ProvidePublisher,
		ProvideParticipants,
		NewScenario,
	),
	fx.Invoke(RegisterScenario),
)

// ProvideConfig предоставляет конфигурацию из флагов, файла и окружения
func ProvideConfig() (*config.ExampleConfig, error) {
	return config.LoadExampleConfig()
}

// ProvideLogger инициализирует глобальный логгер и сбрасывает буфер при остановке
func ProvideLogger(lc fx.Lifecycle, cfg *config.ExampleConfig) (*zap.Logger, error) {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, err
	}

	log := logger.Log
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			// Sync на терминале возвращает ENOTTY, игнорируем
			_ = log.Sync()
			return nil
		},
	})

	return log, nil
}

// ProvidePublisher предоставляет издателя с заданной ёмкостью
func ProvidePublisher(cfg *config.ExampleConfig, log *zap.Logger) *observer.RealPublisher[sample.Value] {
	return observer.NewRealPublisher(cfg.Capacity, cfg.Initial,
		observer.WithLogger(log.Named("publisher")),
	)
}

// ProvideParticipants создаёт наблюдателей, у каждого свой ID
func ProvideParticipants(cfg *config.ExampleConfig) []*Participant {
	participants := make([]*Participant, 0, cfg.Observers)
	for i := 0; i < cfg.Observers; i++ {
		participants = append(participants, &Participant{
			ID:       uuid.NewString(),
			Observer: observer.NewRealObserver(cfg.Initial),
		})
	}
	return participants
}

// RegisterScenario запускает сценарий при старте приложения
func RegisterScenario(lc fx.Lifecycle, s *Scenario) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			_, err := s.Run()
			return err
		},
	})
}
