package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"flightquery-service/internal/domain/entity"
	"flightquery-service/pkg/metrics"
)

// One registry-backed metrics instance per test binary; promauto panics on
// duplicate registration.
var testMetrics = metrics.NewMetrics("flightquery_usecase_test")

type stubCompletionRepo struct {
	mu           sync.Mutex
	reply        string
	err          error
	calls        int
	lastMessages []entity.ChatMessage
}

func (s *stubCompletionRepo) Complete(_ context.Context, messages []entity.ChatMessage, _ entity.CompletionOptions) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.lastMessages = messages
	return s.reply, s.err
}

type stubScheduleRepo struct {
	mu      sync.Mutex
	flights map[entity.Direction][]entity.Flight
	err     error
	calls   int
}

func (s *stubScheduleRepo) FetchSchedule(_ context.Context, _ string, _ entity.DaySelector, direction entity.Direction) (json.RawMessage, []entity.Flight, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, nil, s.err
	}
	payload, _ := json.Marshal(map[string]interface{}{"direction": direction})
	return payload, s.flights[direction], nil
}

type stubAirportRepo struct {
	mu        sync.Mutex
	getErr    error
	getCalls  int
	listCalls int
}

func (s *stubAirportRepo) GetByCode(_ context.Context, code string) (*entity.Airport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getCalls++
	if s.getErr != nil {
		return nil, s.getErr
	}
	return &entity.Airport{Code: code, Name: code + " Airport", City: "Test City", Country: "Testland"}, nil
}

func (s *stubAirportRepo) ListSupported(_ context.Context) ([]entity.Airport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	return []entity.Airport{
		{Code: "DXB"}, {Code: "LHR"}, {Code: "CDG"},
		{Code: "SIN"}, {Code: "HKG"}, {Code: "AMS"},
	}, nil
}

// arrivalFlight builds a well-formed arrival record for tests.
func arrivalFlight(country, city, airline, number string) entity.Flight {
	return entity.Flight{
		Identification: &entity.Identification{Number: &entity.FlightNumber{Default: number}},
		Status:         &entity.FlightStatus{Text: "Landed"},
		Airline:        &entity.AirlineRef{Name: airline},
		Airport: &entity.AirportPair{Origin: &entity.AirportRef{
			Name:     city,
			Position: &entity.AirportPosition{Country: &entity.CountryRef{Name: country}},
		}},
	}
}

func classifierReply(relevant bool, mode, confidence string) string {
	return fmt.Sprintf(`{"relevant": %v, "mode": %q, "reasoning": "test", "confidence": %q}`, relevant, mode, confidence)
}
