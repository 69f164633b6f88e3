package availability

import (
	"context"
	"errors"
	"time"

	"github.com/aplet360/pricing-service/internal/domain"
	"github.com/aplet360/pricing-service/internal/engine"
)

const (
	policyFailOpen   = "fail_open"
	policyFailClosed = "fail_closed"
)

// Lookup результат загрузки доступности.
// Data равен nil при деградации; решение по датам тогда принимает политика Evaluator.
type Lookup struct {
	Data      *domain.AvailabilityData
	Degraded  bool
	Evaluator engine.Evaluator
}

// IsRangeBookable проверяет ночи [checkIn, checkOut)
func (l Lookup) IsRangeBookable(checkIn, checkOut time.Time) bool {
	return l.Evaluator.IsRangeBookable(checkIn, checkOut, l.Data)
}

// FirstUnavailableNight первая занятая ночь диапазона
func (l Lookup) FirstUnavailableNight(checkIn, checkOut time.Time) (time.Time, bool) {
	return l.Evaluator.FirstUnavailableNight(checkIn, checkOut, l.Data)
}

// Calendar вердикты по дням [from, to]
func (l Lookup) Calendar(from, to time.Time) []engine.DayAvailability {
	return l.Evaluator.Calendar(from, to, l.Data)
}

// Service загрузка доступности с graceful degradation
type Service struct {
	source    AvailabilitySource
	evaluator engine.Evaluator
	metrics   Metrics
	logger    Logger
}

// NewService создает сервис; failOpen определяет ответ при недоступности источника
func NewService(source AvailabilitySource, failOpen bool, metrics Metrics, logger Logger) *Service {
	return &Service{
		source:    source,
		evaluator: engine.Evaluator{FailOpen: failOpen},
		metrics:   metrics,
		logger:    logger,
	}
}

// Load получает доступность объекта.
// Отсутствие объекта возвращается как ErrPropertyNotFound, любые другие ошибки источника
// превращаются в деградированный результат без данных.
func (s *Service) Load(ctx context.Context, propertyID string) (*Lookup, error) {
	data, err := s.source.GetAvailability(ctx, propertyID)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errors.Is(err, domain.ErrPropertyNotFound) {
			s.logger.Warn("Availability: property_id=%s not found", propertyID)
			return nil, ErrPropertyNotFound
		}

		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить недоступность бэкенда
		policy := policyFailClosed
		if s.evaluator.FailOpen {
			policy = policyFailOpen
		}
		s.logger.Error("Availability source unavailable, applying graceful degradation (%s) for property_id=%s: %v",
			policy, propertyID, err)
		if s.metrics != nil {
			s.metrics.ObserveAvailabilityDegraded(policy)
		}

		return &Lookup{Degraded: true, Evaluator: s.evaluator}, nil
	}

	return &Lookup{Data: data, Evaluator: s.evaluator}, nil
}
