package entity

import "time"

// Sentinel values assigned when the upstream payload is missing the
// corresponding nested field. Aggregation never drops a record over
// incomplete data; it attributes it to one of these instead.
const (
	UnknownCountry = "Unknown Country"
	UnknownCity    = "Unknown City"
	UnknownAirline = "Unknown Airline"
)

// ScheduleEntry is one element of the upstream schedule array.
type ScheduleEntry struct {
	Flight Flight `json:"flight"`
}

// Flight models one scheduled flight leg as returned by the schedule API.
// Every nested block is optional; use the accessor methods rather than
// probing the pointers so missing data degrades to sentinels in one place.
type Flight struct {
	Identification *Identification `json:"identification,omitempty"`
	Status         *FlightStatus   `json:"status,omitempty"`
	Aircraft       *Aircraft       `json:"aircraft,omitempty"`
	Airline        *AirlineRef     `json:"airline,omitempty"`
	Airport        *AirportPair    `json:"airport,omitempty"`
	Time           *FlightTime     `json:"time,omitempty"`
}

// Identification carries the flight number and callsign.
type Identification struct {
	Number   *FlightNumber `json:"number,omitempty"`
	Callsign string        `json:"callsign,omitempty"`
}

// FlightNumber holds the formatted flight number variants.
type FlightNumber struct {
	Default   string `json:"default,omitempty"`
	Alternate string `json:"alternative,omitempty"`
}

// FlightStatus carries the human-readable status text.
type FlightStatus struct {
	Text string `json:"text,omitempty"`
}

// Aircraft describes the equipment operating the leg.
type Aircraft struct {
	Model *AircraftModel `json:"model,omitempty"`
}

// AircraftModel is the aircraft type description.
type AircraftModel struct {
	Text string `json:"text,omitempty"`
	Code string `json:"code,omitempty"`
}

// AirlineRef identifies the operating airline.
type AirlineRef struct {
	Name string       `json:"name,omitempty"`
	Code *AirlineCode `json:"code,omitempty"`
}

// AirlineCode holds the airline designators.
type AirlineCode struct {
	IATA string `json:"iata,omitempty"`
	ICAO string `json:"icao,omitempty"`
}

// AirportPair carries the two endpoints of the leg. For an arrival the
// counterpart airport is Origin; for a departure it is Destination.
type AirportPair struct {
	Origin      *AirportRef `json:"origin,omitempty"`
	Destination *AirportRef `json:"destination,omitempty"`
}

// AirportRef is the counterpart-airport descriptor.
type AirportRef struct {
	Name     string           `json:"name,omitempty"`
	Code     *AirportCode     `json:"code,omitempty"`
	Position *AirportPosition `json:"position,omitempty"`
}

// AirportCode holds the airport designators.
type AirportCode struct {
	IATA string `json:"iata,omitempty"`
	ICAO string `json:"icao,omitempty"`
}

// AirportPosition locates the airport geographically.
type AirportPosition struct {
	Country *CountryRef `json:"country,omitempty"`
	Region  *RegionRef  `json:"region,omitempty"`
}

// CountryRef names the airport's country.
type CountryRef struct {
	Name string `json:"name,omitempty"`
	Code string `json:"code,omitempty"`
}

// RegionRef names the airport's city.
type RegionRef struct {
	City string `json:"city,omitempty"`
}

// FlightTime carries scheduled and actual times as unix timestamps.
type FlightTime struct {
	Scheduled *TimePair `json:"scheduled,omitempty"`
	Real      *TimePair `json:"real,omitempty"`
	Estimated *TimePair `json:"estimated,omitempty"`
}

// TimePair holds departure and arrival instants for one time class.
type TimePair struct {
	Departure int64 `json:"departure,omitempty"`
	Arrival   int64 `json:"arrival,omitempty"`
}

// Counterpart returns the airport descriptor on the far end of the leg:
// origin for arrivals, destination for departures. May be nil.
func (f *Flight) Counterpart(direction Direction) *AirportRef {
	if f.Airport == nil {
		return nil
	}
	if direction == DirectionArrivals {
		return f.Airport.Origin
	}
	return f.Airport.Destination
}

// CounterpartCountry resolves the counterpart airport's country, preferring
// the full name over the code, with the sentinel as last resort.
func (f *Flight) CounterpartCountry(direction Direction) string {
	ap := f.Counterpart(direction)
	if ap == nil || ap.Position == nil || ap.Position.Country == nil {
		return UnknownCountry
	}
	if ap.Position.Country.Name != "" {
		return ap.Position.Country.Name
	}
	if ap.Position.Country.Code != "" {
		return ap.Position.Country.Code
	}
	return UnknownCountry
}

// CounterpartCity resolves the counterpart airport's city, preferring the
// airport name over the IATA code, with the sentinel as last resort.
func (f *Flight) CounterpartCity(direction Direction) string {
	ap := f.Counterpart(direction)
	if ap == nil {
		return UnknownCity
	}
	if ap.Name != "" {
		return ap.Name
	}
	if ap.Code != nil && ap.Code.IATA != "" {
		return ap.Code.IATA
	}
	return UnknownCity
}

// AirlineName resolves the operating airline, preferring the full name over
// the IATA code, with the sentinel as last resort.
func (f *Flight) AirlineName() string {
	if f.Airline == nil {
		return UnknownAirline
	}
	if f.Airline.Name != "" {
		return f.Airline.Name
	}
	if f.Airline.Code != nil && f.Airline.Code.IATA != "" {
		return f.Airline.Code.IATA
	}
	return UnknownAirline
}

// Number returns the formatted flight number, falling back to the callsign.
func (f *Flight) Number() string {
	if f.Identification == nil {
		return ""
	}
	if f.Identification.Number != nil && f.Identification.Number.Default != "" {
		return f.Identification.Number.Default
	}
	return f.Identification.Callsign
}

// StatusText returns the upstream status string, empty when absent.
func (f *Flight) StatusText() string {
	if f.Status == nil {
		return ""
	}
	return f.Status.Text
}

// AircraftText returns the aircraft description, empty when absent.
func (f *Flight) AircraftText() string {
	if f.Aircraft == nil || f.Aircraft.Model == nil {
		return ""
	}
	return f.Aircraft.Model.Text
}

// ScheduledText formats the scheduled time for the given direction.
func (f *Flight) ScheduledText(direction Direction) string {
	if f.Time == nil {
		return ""
	}
	return formatInstant(f.Time.Scheduled, direction)
}

// ActualText formats the actual time for the given direction. Empty when
// the flight has not yet operated.
func (f *Flight) ActualText(direction Direction) string {
	if f.Time == nil {
		return ""
	}
	return formatInstant(f.Time.Real, direction)
}

func formatInstant(pair *TimePair, direction Direction) string {
	if pair == nil {
		return ""
	}
	ts := pair.Arrival
	if direction == DirectionDepartures {
		ts = pair.Departure
	}
	if ts == 0 {
		return ""
	}
	return time.Unix(ts, 0).UTC().Format("2006-01-02 15:04")
}
