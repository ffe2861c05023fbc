package repository

import (
	"context"
	"encoding/json"

	"flightquery-service/internal/domain/entity"
)

// ScheduleRepository defines the interface for the flight-schedule API.
type ScheduleRepository interface {
	// FetchSchedule returns the raw upstream payload for one direction
	// alongside the flattened flight list extracted from it. A missing
	// nested flight array yields an empty list, not an error.
	FetchSchedule(ctx context.Context, airportCode string, day entity.DaySelector, direction entity.Direction) (json.RawMessage, []entity.Flight, error)
}
