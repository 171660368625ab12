package app

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Mihklz/observer/internal/config"
	"github.com/Mihklz/observer/internal/sample"
	"github.com/Mihklz/observer/internal/version"
	"github.com/Mihklz/observer/pkg/observer"
)

// Participant — наблюдатель, созданный примером
type Participant struct {
	ID         string
	Observer   *observer.RealObserver[sample.Value]
	Subscribed bool
}

// ObserverState — значение участника после прогона
type ObserverState struct {
	ID         string
	Subscribed bool
	Value      sample.Value
}

// Report — итог прогона сценария
type Report struct {
	Subscribed int
	Rejected   int
	Published  sample.Value
	Observers  []ObserverState
}

// Scenario подписывает всех участников и затем меняет опубликованное значение
type Scenario struct {
	cfg          *config.ExampleConfig
	log          *zap.Logger
	publisher    *observer.RealPublisher[sample.Value]
	participants []*Participant
}

// NewScenario создаёт сценарий над готовыми издателем и участниками
func NewScenario(
	cfg *config.ExampleConfig,
	log *zap.Logger,
	publisher *observer.RealPublisher[sample.Value],
	participants []*Participant,
) *Scenario {
	return &Scenario{
		cfg:          cfg,
		log:          log,
		publisher:    publisher,
		participants: participants,
	}
}

// Run подписывает участников по порядку и публикует cfg.Next.
// Переполнение списка логируется и пропускается, если не задан cfg.Strict.
// Run рассчитан на один вызов.
func (s *Scenario) Run() (Report, error) {
	var report Report

	// Стартовая запись содержит и информацию о сборке
	fields := []zap.Field{
		zap.Int("capacity", s.publisher.Capacity()),
		zap.Int("observers", len(s.participants)),
		zap.Stringer("initial", s.publisher.Value()),
	}
	s.log.Info("Scenario started", append(fields, version.Fields()...)...)

	// Подписываем участников в порядке создания
	for _, p := range s.participants {
		err := s.publisher.Subscribe(p.Observer)
		switch {
		case err == nil:
			p.Subscribed = true
			report.Subscribed++
			s.log.Info("Observer subscribed",
				zap.String("observer_id", p.ID),
				zap.Int("observer_count", s.publisher.ObserverCount()),
			)
		case errors.Is(err, observer.ErrObserverListFull) && !s.cfg.Strict:
			report.Rejected++
			s.log.Warn("Observer rejected",
				zap.String("observer_id", p.ID),
				zap.Error(err),
			)
		default:
			return report, fmt.Errorf("subscribe observer %s: %w", p.ID, err)
		}
	}

	// Меняем значение: издатель оповещает всех подписанных синхронно
	s.publisher.ChangeValue(s.cfg.Next)
	report.Published = s.publisher.Value()

	s.log.Info("Value changed", zap.Stringer("value", report.Published))

	// Собираем итоговые значения, неподписанные должны остаться прежними
	for _, p := range s.participants {
		state := ObserverState{
			ID:         p.ID,
			Subscribed: p.Subscribed,
			Value:      p.Observer.Value(),
		}
		report.Observers = append(report.Observers, state)

		s.log.Info("Observer value",
			zap.String("observer_id", state.ID),
			zap.Bool("subscribed", state.Subscribed),
			zap.Stringer("value", state.Value),
		)
	}

	return report, nil
}
