package entity

import (
	"encoding/json"
	"time"
)

// ResponseMetadata rides along with every response, including skipped and
// failed ones.
type ResponseMetadata struct {
	ResponseTimeMs  int64     `json:"responseTimeMs"`
	Timestamp       time.Time `json:"timestamp"`
	DataSource      string    `json:"dataSource,omitempty"`
	Model           string    `json:"model,omitempty"`
	FlightAPICalled bool      `json:"flightApiCalled"`
}

// DirectionSummary is the condensed view of one direction's aggregate.
type DirectionSummary struct {
	Flights      int          `json:"flights"`
	Countries    int          `json:"countries"`
	Cities       int          `json:"cities"`
	TopCountries []GroupCount `json:"topCountries"`
	TopAirlines  []string     `json:"topAirlines"`
}

// ScheduleSummary holds the counts and top-N breakdowns of one query.
type ScheduleSummary struct {
	TotalFlights   int                            `json:"totalFlights"`
	UniqueAirlines int                            `json:"uniqueAirlines"`
	Directions     map[Direction]DirectionSummary `json:"directions"`
}

// QueryResponse is the outward-facing result of one flight query.
type QueryResponse struct {
	Airport  string                        `json:"airport"`
	Question string                        `json:"question"`
	Answer   string                        `json:"answer"`
	Analysis ModeAnalysis                  `json:"analysis"`
	Summary  *ScheduleSummary              `json:"summary,omitempty"`
	Raw      map[Direction]json.RawMessage `json:"rawData,omitempty"`
	Metadata ResponseMetadata              `json:"metadata"`
}
