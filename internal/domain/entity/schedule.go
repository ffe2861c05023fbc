package entity

import (
	"encoding/json"
	"sort"
)

// RawScheduleResult carries the unmodified upstream payloads keyed by
// direction alongside the flattened flight lists. The raw payloads are
// passed through verbatim to the answer prompt.
type RawScheduleResult struct {
	Payloads map[Direction]json.RawMessage
	Flights  map[Direction][]Flight
	DayLabel string
}

// TotalFlights returns the combined length of the flat lists.
func (r *RawScheduleResult) TotalFlights() int {
	total := 0
	for _, flights := range r.Flights {
		total += len(flights)
	}
	return total
}

// FlightDetail is the per-flight tuple appended to each grouping. City is
// set in country groups and Country in city groups, whichever complements
// the grouping key.
type FlightDetail struct {
	City         string `json:"city,omitempty"`
	Country      string `json:"country,omitempty"`
	Airline      string `json:"airline"`
	FlightNumber string `json:"flightNumber"`
	Scheduled    string `json:"scheduled,omitempty"`
	Actual       string `json:"actual,omitempty"`
	Status       string `json:"status,omitempty"`
	Aircraft     string `json:"aircraft,omitempty"`
}

// GroupCount pairs a grouping key with its flight count.
type GroupCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// GroupedFlights maps a derived key to the flight details sharing it,
// preserving first-seen insertion order of the keys.
type GroupedFlights struct {
	order []string
	byKey map[string][]FlightDetail
}

// NewGroupedFlights returns an empty grouping.
func NewGroupedFlights() *GroupedFlights {
	return &GroupedFlights{byKey: make(map[string][]FlightDetail)}
}

// Append adds a detail record under key, registering the key on first use.
func (g *GroupedFlights) Append(key string, detail FlightDetail) {
	if _, seen := g.byKey[key]; !seen {
		g.order = append(g.order, key)
	}
	g.byKey[key] = append(g.byKey[key], detail)
}

// Keys returns the grouping keys in insertion order.
func (g *GroupedFlights) Keys() []string {
	return g.order
}

// Flights returns the detail records for key.
func (g *GroupedFlights) Flights(key string) []FlightDetail {
	return g.byKey[key]
}

// Size returns the number of distinct keys.
func (g *GroupedFlights) Size() int {
	return len(g.order)
}

// Total returns the number of detail records across all keys.
func (g *GroupedFlights) Total() int {
	total := 0
	for _, details := range g.byKey {
		total += len(details)
	}
	return total
}

// TopN returns the n largest groups by flight count, ties broken by
// first-seen order.
func (g *GroupedFlights) TopN(n int) []GroupCount {
	counts := make([]GroupCount, 0, len(g.order))
	for _, key := range g.order {
		counts = append(counts, GroupCount{Name: key, Count: len(g.byKey[key])})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if n < len(counts) {
		counts = counts[:n]
	}
	return counts
}

// MarshalJSON emits the grouping as an ordered object array so the key
// order survives serialization.
func (g *GroupedFlights) MarshalJSON() ([]byte, error) {
	type group struct {
		Name    string         `json:"name"`
		Count   int            `json:"count"`
		Flights []FlightDetail `json:"flights"`
	}
	groups := make([]group, 0, len(g.order))
	for _, key := range g.order {
		groups = append(groups, group{Name: key, Count: len(g.byKey[key]), Flights: g.byKey[key]})
	}
	return json.Marshal(groups)
}

// CountSet is an insertion-ordered multiset of names.
type CountSet struct {
	order  []string
	counts map[string]int
}

// NewCountSet returns an empty set.
func NewCountSet() *CountSet {
	return &CountSet{counts: make(map[string]int)}
}

// Add records one occurrence of name.
func (s *CountSet) Add(name string) {
	if _, seen := s.counts[name]; !seen {
		s.order = append(s.order, name)
	}
	s.counts[name]++
}

// Names returns the distinct names in insertion order.
func (s *CountSet) Names() []string {
	return s.order
}

// Size returns the number of distinct names.
func (s *CountSet) Size() int {
	return len(s.order)
}

// Contains reports whether name has been added.
func (s *CountSet) Contains(name string) bool {
	_, ok := s.counts[name]
	return ok
}

// TopN returns the n most frequent names, ties broken by first-seen order.
func (s *CountSet) TopN(n int) []string {
	type entry struct {
		name  string
		count int
	}
	entries := make([]entry, 0, len(s.order))
	for _, name := range s.order {
		entries = append(entries, entry{name, s.counts[name]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})
	if n > len(entries) {
		n = len(entries)
	}
	names := make([]string, 0, n)
	for _, e := range entries[:n] {
		names = append(names, e.name)
	}
	return names
}

// DirectionAggregate is the grouped view of one direction's flight list.
type DirectionAggregate struct {
	ByCountry    *GroupedFlights
	ByCity       *GroupedFlights
	Airlines     *CountSet
	TotalFlights int
}

// AggregatedSchedule collects the per-direction aggregates of one query.
type AggregatedSchedule struct {
	Directions map[Direction]*DirectionAggregate
	DayLabel   string
}
