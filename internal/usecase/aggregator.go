package usecase

import (
	"flightquery-service/internal/domain/entity"
)

// TopN is the breakdown depth used in response summaries and the answer
// prompt.
const TopN = 5

// ScheduleAggregator transforms flat flight lists into grouped summaries.
// All methods are pure; malformed records degrade to sentinel values
// instead of failing.
type ScheduleAggregator struct{}

// NewScheduleAggregator creates a new aggregator.
func NewScheduleAggregator() *ScheduleAggregator {
	return &ScheduleAggregator{}
}

// Aggregate groups one direction's flight list by counterpart country and
// city and accumulates the airline set. Every record lands in exactly one
// country group and one city group.
func (a *ScheduleAggregator) Aggregate(flights []entity.Flight, direction entity.Direction) *entity.DirectionAggregate {
	agg := &entity.DirectionAggregate{
		ByCountry:    entity.NewGroupedFlights(),
		ByCity:       entity.NewGroupedFlights(),
		Airlines:     entity.NewCountSet(),
		TotalFlights: len(flights),
	}

	for i := range flights {
		flight := &flights[i]

		country := flight.CounterpartCountry(direction)
		city := flight.CounterpartCity(direction)
		airline := flight.AirlineName()

		detail := entity.FlightDetail{
			Airline:      airline,
			FlightNumber: flight.Number(),
			Scheduled:    flight.ScheduledText(direction),
			Actual:       flight.ActualText(direction),
			Status:       flight.StatusText(),
			Aircraft:     flight.AircraftText(),
		}

		countryDetail := detail
		countryDetail.City = city
		agg.ByCountry.Append(country, countryDetail)

		cityDetail := detail
		cityDetail.Country = country
		agg.ByCity.Append(city, cityDetail)

		agg.Airlines.Add(airline)
	}

	return agg
}

// AggregateAll aggregates every direction present in the fetch result.
func (a *ScheduleAggregator) AggregateAll(raw *entity.RawScheduleResult) *entity.AggregatedSchedule {
	agg := &entity.AggregatedSchedule{
		Directions: make(map[entity.Direction]*entity.DirectionAggregate, len(raw.Flights)),
		DayLabel:   raw.DayLabel,
	}
	for direction, flights := range raw.Flights {
		agg.Directions[direction] = a.Aggregate(flights, direction)
	}
	return agg
}

// Summarize condenses the aggregate into response counts and top-N lists.
// The unique-airline figure deduplicates across both directions.
func (a *ScheduleAggregator) Summarize(agg *entity.AggregatedSchedule) *entity.ScheduleSummary {
	summary := &entity.ScheduleSummary{
		Directions: make(map[entity.Direction]entity.DirectionSummary, len(agg.Directions)),
	}

	uniqueAirlines := entity.NewCountSet()
	for direction, dirAgg := range agg.Directions {
		summary.TotalFlights += dirAgg.TotalFlights
		for _, name := range dirAgg.Airlines.Names() {
			uniqueAirlines.Add(name)
		}
		summary.Directions[direction] = entity.DirectionSummary{
			Flights:      dirAgg.TotalFlights,
			Countries:    dirAgg.ByCountry.Size(),
			Cities:       dirAgg.ByCity.Size(),
			TopCountries: dirAgg.ByCountry.TopN(TopN),
			TopAirlines:  dirAgg.Airlines.TopN(TopN),
		}
	}
	summary.UniqueAirlines = uniqueAirlines.Size()

	return summary
}
