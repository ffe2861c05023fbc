package entity

import "testing"

func TestCounterpartCountryFallbacks(t *testing.T) {
	tests := []struct {
		name   string
		flight Flight
		want   string
	}{
		{
			name: "full name preferred",
			flight: Flight{Airport: &AirportPair{Origin: &AirportRef{
				Position: &AirportPosition{Country: &CountryRef{Name: "Germany", Code: "DE"}},
			}}},
			want: "Germany",
		},
		{
			name: "code fallback",
			flight: Flight{Airport: &AirportPair{Origin: &AirportRef{
				Position: &AirportPosition{Country: &CountryRef{Code: "DE"}},
			}}},
			want: "DE",
		},
		{
			name:   "missing airport block",
			flight: Flight{},
			want:   UnknownCountry,
		},
		{
			name: "missing position",
			flight: Flight{Airport: &AirportPair{Origin: &AirportRef{
				Name: "Berlin Brandenburg Airport",
			}}},
			want: UnknownCountry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.flight.CounterpartCountry(DirectionArrivals)
			if got != tt.want {
				t.Errorf("Expected country %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCounterpartCityFallbacks(t *testing.T) {
	tests := []struct {
		name   string
		flight Flight
		want   string
	}{
		{
			name: "airport name preferred",
			flight: Flight{Airport: &AirportPair{Destination: &AirportRef{
				Name: "Berlin Brandenburg Airport",
				Code: &AirportCode{IATA: "BER"},
			}}},
			want: "Berlin Brandenburg Airport",
		},
		{
			name: "iata fallback",
			flight: Flight{Airport: &AirportPair{Destination: &AirportRef{
				Code: &AirportCode{IATA: "BER"},
			}}},
			want: "BER",
		},
		{
			name:   "missing everything",
			flight: Flight{},
			want:   UnknownCity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.flight.CounterpartCity(DirectionDepartures)
			if got != tt.want {
				t.Errorf("Expected city %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAirlineNameFallbacks(t *testing.T) {
	full := Flight{Airline: &AirlineRef{Name: "Emirates", Code: &AirlineCode{IATA: "EK"}}}
	if got := full.AirlineName(); got != "Emirates" {
		t.Errorf("Expected Emirates, got %q", got)
	}

	codeOnly := Flight{Airline: &AirlineRef{Code: &AirlineCode{IATA: "EK"}}}
	if got := codeOnly.AirlineName(); got != "EK" {
		t.Errorf("Expected EK, got %q", got)
	}

	missing := Flight{}
	if got := missing.AirlineName(); got != UnknownAirline {
		t.Errorf("Expected %q, got %q", UnknownAirline, got)
	}
}

func TestNumberFallsBackToCallsign(t *testing.T) {
	withNumber := Flight{Identification: &Identification{
		Number:   &FlightNumber{Default: "EK 29"},
		Callsign: "UAE29",
	}}
	if got := withNumber.Number(); got != "EK 29" {
		t.Errorf("Expected EK 29, got %q", got)
	}

	callsignOnly := Flight{Identification: &Identification{Callsign: "UAE29"}}
	if got := callsignOnly.Number(); got != "UAE29" {
		t.Errorf("Expected UAE29, got %q", got)
	}
}

func TestDaySelectorLabels(t *testing.T) {
	tests := []struct {
		day  DaySelector
		want string
	}{
		{DayYesterday, "Yesterday"},
		{DayToday, "Today"},
		{DayTomorrow, "Tomorrow"},
		{DaySelector(0), "Today"},
		{DaySelector(7), "Today"},
		{DaySelector(-5), "Today"},
	}

	for _, tt := range tests {
		if got := tt.day.Label(); got != tt.want {
			t.Errorf("Label(%d) = %q, want %q", int(tt.day), got, tt.want)
		}
	}
}

func TestModeDirections(t *testing.T) {
	if got := ModeArrivals.Directions(); len(got) != 1 || got[0] != DirectionArrivals {
		t.Errorf("ModeArrivals.Directions() = %v", got)
	}
	if got := ModeDepartures.Directions(); len(got) != 1 || got[0] != DirectionDepartures {
		t.Errorf("ModeDepartures.Directions() = %v", got)
	}
	if got := ModeBoth.Directions(); len(got) != 2 {
		t.Errorf("ModeBoth.Directions() = %v", got)
	}
	if got := ModeNone.Directions(); got != nil {
		t.Errorf("ModeNone.Directions() = %v, want nil", got)
	}
}

func TestScheduledTextUsesDirectionSide(t *testing.T) {
	flight := Flight{Time: &FlightTime{Scheduled: &TimePair{
		Departure: 1700000000,
		Arrival:   1700010000,
	}}}

	dep := flight.ScheduledText(DirectionDepartures)
	arr := flight.ScheduledText(DirectionArrivals)
	if dep == "" || arr == "" {
		t.Fatalf("Expected both sides formatted, got dep=%q arr=%q", dep, arr)
	}
	if dep == arr {
		t.Errorf("Expected different instants per direction, got %q twice", dep)
	}

	empty := Flight{}
	if got := empty.ScheduledText(DirectionArrivals); got != "" {
		t.Errorf("Expected empty string for missing time, got %q", got)
	}
}
