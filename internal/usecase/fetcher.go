package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"flightquery-service/internal/domain/entity"
	"flightquery-service/internal/domain/repository"
	"flightquery-service/pkg/logger"
	"flightquery-service/pkg/metrics"
)

// ScheduleFetcher resolves one schedule query into raw payloads and flat
// flight lists, one upstream call per requested direction.
type ScheduleFetcher struct {
	scheduleRepo repository.ScheduleRepository
	logger       logger.Logger
	metrics      *metrics.Metrics
}

// NewScheduleFetcher creates a new schedule fetcher.
func NewScheduleFetcher(scheduleRepo repository.ScheduleRepository, logger logger.Logger, metrics *metrics.Metrics) *ScheduleFetcher {
	return &ScheduleFetcher{
		scheduleRepo: scheduleRepo,
		logger:       logger,
		metrics:      metrics,
	}
}

type directionResult struct {
	direction entity.Direction
	payload   json.RawMessage
	flights   []entity.Flight
	err       error
}

// FetchSchedule issues the per-direction calls for the query. The two
// directions of mode=both are independent and run concurrently. The first
// failure fails the whole fetch; nothing is retried.
func (f *ScheduleFetcher) FetchSchedule(ctx context.Context, query entity.ScheduleQuery) (*entity.RawScheduleResult, error) {
	directions := query.Mode.Directions()

	results := make([]directionResult, len(directions))
	var wg sync.WaitGroup
	for i, direction := range directions {
		wg.Add(1)
		go func(i int, direction entity.Direction) {
			defer wg.Done()
			f.metrics.UpstreamCalls.WithLabelValues("flight_api").Inc()
			payload, flights, err := f.scheduleRepo.FetchSchedule(ctx, query.Airport, query.Day, direction)
			results[i] = directionResult{direction: direction, payload: payload, flights: flights, err: err}
		}(i, direction)
	}
	wg.Wait()

	result := &entity.RawScheduleResult{
		Payloads: make(map[entity.Direction]json.RawMessage, len(directions)),
		Flights:  make(map[entity.Direction][]entity.Flight, len(directions)),
		DayLabel: query.Day.Label(),
	}

	for _, res := range results {
		if res.err != nil {
			f.metrics.ErrorsCount.WithLabelValues("fetch_schedule").Inc()
			f.logger.Error("Schedule fetch failed", "airport", query.Airport, "direction", res.direction, "error", res.err)
			return nil, res.err
		}
		result.Payloads[res.direction] = res.payload
		result.Flights[res.direction] = res.flights
	}

	f.logger.Info("Schedule fetch complete",
		"airport", query.Airport,
		"mode", query.Mode,
		"day", query.Day.Label(),
		"flights", result.TotalFlights())

	return result, nil
}
