// Package templates holds the prompt and canned-answer text of the query
// pipeline. Keeping the wording in one place makes tone changes a
// single-file edit.
package templates

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"flightquery-service/internal/domain/entity"
)

// FallbackAnswer is returned when the classifier decides a question is not
// about aviation, without calling the schedule API.
const FallbackAnswer = "I'm sorry, I didn't quite catch how that relates to flights at this airport. " +
	"I can help with questions about arrivals, departures, airlines, destinations, and the airport itself. " +
	"Try asking something like \"Which airlines fly here today?\" or \"How many flights arrived this morning?\""

// AnswerPersona is the system instruction for the answer generator.
const AnswerPersona = `You are a friendly airport information agent helping travelers understand flight schedules.
Speak conversationally, the way a well-informed support agent would.
Always cite concrete figures from the data you are given (flight counts, airline names, country breakdowns).
Answer the traveler's question directly. Keep it focused and avoid filler.
Never end your reply with a question.`

// classificationPrompt asks the model to judge aviation relevance and pick
// a schedule mode. The reply must be a bare JSON object.
const classificationPrompt = `You are classifying a user question about the airport %s.

Question: %q

First decide whether the question is about aviation at all: flights, airlines,
aircraft, schedules, the airport itself, its ratings, location or facilities.

If it is relevant, pick which schedule data answers it:
- "arrivals": the question is about flights coming FROM somewhere else to this airport
- "departures": the question is about destinations, where flights GO TO from this airport
- "both": general airport facts, ratings, coordinates, totals, or ambiguous scope

Reply with ONLY a JSON object, no other text:
{"relevant": true/false, "mode": "arrivals"/"departures"/"both"/"none", "reasoning": "one sentence", "confidence": "high"/"medium"/"low"}`

// BuildClassificationPrompt renders the classification prompt for one
// question.
func BuildClassificationPrompt(question, airportCode string) string {
	return fmt.Sprintf(classificationPrompt, airportCode, question)
}

// BuildAnswerPrompt renders the data-bearing message for the answer
// generator: airport identity and metadata, the verbatim raw payloads,
// summary counts, and the top-N breakdowns per direction.
func BuildAnswerPrompt(question string, airport *entity.Airport, raw *entity.RawScheduleResult, agg *entity.AggregatedSchedule, summary *entity.ScheduleSummary, topN int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "A traveler is asking about %s", airport.Code)
	if airport.Name != "" {
		fmt.Fprintf(&b, " (%s, %s, %s)", airport.Name, airport.City, airport.Country)
	}
	fmt.Fprintf(&b, ".\nSchedule day: %s.\n\n", raw.DayLabel)

	writeAirportFacts(&b, airport)

	fmt.Fprintf(&b, "Summary: %d flights in total, %d distinct airlines.\n", summary.TotalFlights, summary.UniqueAirlines)
	for _, direction := range []entity.Direction{entity.DirectionArrivals, entity.DirectionDepartures} {
		dirAgg, ok := agg.Directions[direction]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n%s: %d flights, %d countries, %d cities.\n",
			titleCase(string(direction)), dirAgg.TotalFlights, dirAgg.ByCountry.Size(), dirAgg.ByCity.Size())

		fmt.Fprintf(&b, "Top countries by flight count:\n")
		for _, gc := range dirAgg.ByCountry.TopN(topN) {
			fmt.Fprintf(&b, "  - %s: %d flights\n", gc.Name, gc.Count)
		}
		fmt.Fprintf(&b, "Top airlines:\n")
		for _, name := range dirAgg.Airlines.TopN(topN) {
			fmt.Fprintf(&b, "  - %s\n", name)
		}
	}

	b.WriteString("\nComplete raw schedule data:\n")
	for direction, payload := range raw.Payloads {
		fmt.Fprintf(&b, "%s payload:\n%s\n", direction, compactJSON(payload))
	}

	fmt.Fprintf(&b, "\nThe traveler's question: %q\n", question)
	b.WriteString("Answer using the data above.")

	return b.String()
}

// writeAirportFacts appends the optional reference metadata block.
func writeAirportFacts(b *strings.Builder, airport *entity.Airport) {
	facts := make([]string, 0, 6)
	if airport.ICAO != "" {
		facts = append(facts, fmt.Sprintf("ICAO code %s", airport.ICAO))
	}
	if airport.HasLocation() {
		facts = append(facts, fmt.Sprintf("coordinates %.4f, %.4f", airport.Latitude, airport.Longitude))
	}
	if airport.ElevationFt != 0 {
		facts = append(facts, fmt.Sprintf("elevation %d ft", airport.ElevationFt))
	}
	if airport.Timezone != "" {
		facts = append(facts, fmt.Sprintf("timezone %s", airport.Timezone))
	}
	if airport.Website != "" {
		facts = append(facts, fmt.Sprintf("website %s", airport.Website))
	}
	if airport.HasRating() {
		facts = append(facts, fmt.Sprintf("traveler rating %.1f/5 from %d reviews", airport.Rating, airport.Reviews))
	}
	if len(facts) == 0 {
		return
	}
	fmt.Fprintf(b, "Airport facts: %s.\n\n", strings.Join(facts, "; "))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
