package entity

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestGroupedFlightsInsertionOrder(t *testing.T) {
	g := NewGroupedFlights()
	g.Append("Germany", FlightDetail{FlightNumber: "LH 1"})
	g.Append("France", FlightDetail{FlightNumber: "AF 1"})
	g.Append("Germany", FlightDetail{FlightNumber: "LH 2"})

	keys := g.Keys()
	if len(keys) != 2 {
		t.Fatalf("Expected 2 keys, got %d", len(keys))
	}
	if keys[0] != "Germany" || keys[1] != "France" {
		t.Errorf("Expected first-seen order [Germany France], got %v", keys)
	}
	if g.Total() != 3 {
		t.Errorf("Expected total 3, got %d", g.Total())
	}
	if len(g.Flights("Germany")) != 2 {
		t.Errorf("Expected 2 flights for Germany, got %d", len(g.Flights("Germany")))
	}
}

func TestGroupedFlightsTopN(t *testing.T) {
	g := NewGroupedFlights()
	for i := 0; i < 1; i++ {
		g.Append("France", FlightDetail{})
	}
	for i := 0; i < 3; i++ {
		g.Append("Germany", FlightDetail{})
	}
	for i := 0; i < 2; i++ {
		g.Append("Spain", FlightDetail{})
	}

	top := g.TopN(2)
	if len(top) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(top))
	}
	if top[0].Name != "Germany" || top[0].Count != 3 {
		t.Errorf("Expected Germany/3 first, got %s/%d", top[0].Name, top[0].Count)
	}
	if top[1].Name != "Spain" || top[1].Count != 2 {
		t.Errorf("Expected Spain/2 second, got %s/%d", top[1].Name, top[1].Count)
	}

	// n larger than the group count returns everything
	all := g.TopN(10)
	if len(all) != 3 {
		t.Errorf("Expected 3 groups, got %d", len(all))
	}
}

func TestGroupedFlightsTopNTieBreak(t *testing.T) {
	g := NewGroupedFlights()
	g.Append("France", FlightDetail{})
	g.Append("Germany", FlightDetail{})

	top := g.TopN(2)
	if top[0].Name != "France" {
		t.Errorf("Expected tie broken by first-seen order, got %v first", top[0].Name)
	}
}

func TestGroupedFlightsMarshalPreservesOrder(t *testing.T) {
	g := NewGroupedFlights()
	g.Append("Zimbabwe", FlightDetail{})
	g.Append("Austria", FlightDetail{})

	data, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.Index(string(data), "Zimbabwe") > strings.Index(string(data), "Austria") {
		t.Errorf("Expected Zimbabwe before Austria in %s", data)
	}
}

func TestCountSet(t *testing.T) {
	s := NewCountSet()
	s.Add("Emirates")
	s.Add("KLM")
	s.Add("Emirates")
	s.Add("Emirates")
	s.Add("Lufthansa")
	s.Add("Lufthansa")

	if s.Size() != 3 {
		t.Errorf("Expected 3 distinct names, got %d", s.Size())
	}
	if !s.Contains("KLM") {
		t.Error("Expected KLM to be present")
	}

	top := s.TopN(2)
	if len(top) != 2 || top[0] != "Emirates" || top[1] != "Lufthansa" {
		t.Errorf("Expected [Emirates Lufthansa], got %v", top)
	}
}

func TestRawScheduleResultTotalFlights(t *testing.T) {
	raw := &RawScheduleResult{
		Flights: map[Direction][]Flight{
			DirectionArrivals:   make([]Flight, 3),
			DirectionDepartures: make([]Flight, 2),
		},
	}
	if got := raw.TotalFlights(); got != 5 {
		t.Errorf("Expected 5 flights, got %d", got)
	}
}
