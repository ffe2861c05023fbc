package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"flightquery-service/internal/domain/apperr"
	"flightquery-service/internal/domain/entity"
	"flightquery-service/internal/domain/repository"
	"flightquery-service/pkg/logger"
)

// HTTPScheduleRepository calls the flight-schedule API over HTTP.
type HTTPScheduleRepository struct {
	logger  logger.Logger
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewHTTPScheduleRepository creates a new schedule repository. The timeout
// applies per upstream call.
func NewHTTPScheduleRepository(baseURL, apiKey string, timeout time.Duration, logger logger.Logger) repository.ScheduleRepository {
	return &HTTPScheduleRepository{
		logger:  logger,
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// scheduleEnvelope mirrors the nested upstream shape down to the flight
// array. Every level is optional; a missing path degrades to an empty list.
type scheduleEnvelope struct {
	Result *struct {
		Response *struct {
			Airport *struct {
				PluginData *struct {
					Schedule map[string]struct {
						Data []entity.ScheduleEntry `json:"data"`
					} `json:"schedule"`
				} `json:"pluginData"`
			} `json:"airport"`
		} `json:"response"`
	} `json:"result"`
}

// FetchSchedule issues one GET for the given direction and extracts the
// nested flight array from the response.
func (r *HTTPScheduleRepository) FetchSchedule(ctx context.Context, airportCode string, day entity.DaySelector, direction entity.Direction) (json.RawMessage, []entity.Flight, error) {
	params := url.Values{}
	params.Set("mode", string(direction))
	params.Set("iata", airportCode)
	params.Set("day", fmt.Sprintf("%d", int(day)))

	endpoint := fmt.Sprintf("%s/schedule/%s?%s", r.baseURL, url.PathEscape(r.apiKey), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, nil, apperr.Upstream(apperr.CodeFlightAPIError, "failed to build schedule request", err)
	}
	req.Header.Set("Accept", "application/json")

	r.logger.Debug("Fetching schedule", "airport", airportCode, "direction", direction, "day", int(day))

	resp, err := r.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, nil, apperr.Timeout("flight schedule request timed out", err)
		}
		return nil, nil, apperr.Upstream(apperr.CodeFlightAPIError, "flight schedule request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, apperr.Upstream(apperr.CodeFlightAPIError, "failed to read schedule response", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, nil, apperr.UpstreamAuth(apperr.CodeFlightAPIError, "flight schedule API rejected credentials", fmt.Errorf("status %d", resp.StatusCode))
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, nil, apperr.UpstreamRateLimit("flight schedule API rate limit exceeded", fmt.Errorf("status %d", resp.StatusCode))
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil, apperr.NotFound(fmt.Sprintf("no schedule data for airport %s", airportCode))
	case resp.StatusCode != http.StatusOK:
		return nil, nil, apperr.Upstream(apperr.CodeFlightAPIError, fmt.Sprintf("flight schedule API returned status %d", resp.StatusCode), nil)
	}

	flights := extractFlights(body, direction)

	r.logger.Info("Schedule fetched", "airport", airportCode, "direction", direction, "flights", len(flights))

	return json.RawMessage(body), flights, nil
}

// extractFlights walks the nested path down to the flight array for the
// direction. Absence of any level yields an empty list.
func extractFlights(body []byte, direction entity.Direction) []entity.Flight {
	var envelope scheduleEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return []entity.Flight{}
	}
	if envelope.Result == nil || envelope.Result.Response == nil ||
		envelope.Result.Response.Airport == nil ||
		envelope.Result.Response.Airport.PluginData == nil {
		return []entity.Flight{}
	}
	section, ok := envelope.Result.Response.Airport.PluginData.Schedule[string(direction)]
	if !ok {
		return []entity.Flight{}
	}
	flights := make([]entity.Flight, 0, len(section.Data))
	for _, entry := range section.Data {
		flights = append(flights, entry.Flight)
	}
	return flights
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
