package entity

// Direction is one of the two independent schedule facets.
type Direction string

const (
	DirectionArrivals   Direction = "arrivals"
	DirectionDepartures Direction = "departures"
)

// Mode is the classifier's choice of which direction(s) answer a question.
type Mode string

const (
	ModeArrivals   Mode = "arrivals"
	ModeDepartures Mode = "departures"
	ModeBoth       Mode = "both"
	ModeNone       Mode = "none"
)

// Valid reports whether m is a mode the fetcher can act on.
func (m Mode) Valid() bool {
	switch m {
	case ModeArrivals, ModeDepartures, ModeBoth:
		return true
	}
	return false
}

// Directions expands the mode into the directions to fetch.
func (m Mode) Directions() []Direction {
	switch m {
	case ModeArrivals:
		return []Direction{DirectionArrivals}
	case ModeDepartures:
		return []Direction{DirectionDepartures}
	case ModeBoth:
		return []Direction{DirectionArrivals, DirectionDepartures}
	}
	return nil
}

// DaySelector is the relative-date parameter of a schedule query.
type DaySelector int

const (
	DayYesterday DaySelector = -1
	DayToday     DaySelector = 1
	DayTomorrow  DaySelector = 2
)

// Valid reports whether d is one of the supported selectors.
func (d DaySelector) Valid() bool {
	return d == DayYesterday || d == DayToday || d == DayTomorrow
}

// Label returns the human label for the selector. Unrecognized values map
// to "Today".
func (d DaySelector) Label() string {
	switch d {
	case DayYesterday:
		return "Yesterday"
	case DayTomorrow:
		return "Tomorrow"
	default:
		return "Today"
	}
}

// ScheduleQuery holds the parameters of one schedule fetch.
type ScheduleQuery struct {
	Airport string
	Day     DaySelector
	Mode    Mode
}
