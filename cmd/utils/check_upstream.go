// Command utils checks connectivity to the flight-schedule API with the
// configured credentials and prints a one-line summary per direction.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"flightquery-service/internal/domain/entity"
	"flightquery-service/internal/infrastructure/config"
	apiRepo "flightquery-service/internal/interface/repository"
	"flightquery-service/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	airport := "DXB"
	if len(os.Args) > 1 {
		airport = os.Args[1]
	}

	log := logger.NewLogger("warn")
	repo := apiRepo.NewHTTPScheduleRepository(cfg.FlightAPIBaseURL, cfg.FlightAPIKey, cfg.FlightAPITimeout, log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	for _, direction := range []entity.Direction{entity.DirectionArrivals, entity.DirectionDepartures} {
		raw, flights, err := repo.FetchSchedule(ctx, airport, entity.DayToday, direction)
		if err != nil {
			fmt.Printf("%s %s: ERROR %v\n", airport, direction, err)
			continue
		}
		fmt.Printf("%s %s: %d flights, %d raw bytes\n", airport, direction, len(flights), len(raw))
	}
}
