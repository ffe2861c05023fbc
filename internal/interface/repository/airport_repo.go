package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"flightquery-service/internal/domain/entity"
	"flightquery-service/internal/domain/repository"
)

// supportedAirports is the fixed set the service answers questions about.
var supportedAirports = []entity.Airport{
	{Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "United Arab Emirates"},
	{Code: "LHR", Name: "London Heathrow Airport", City: "London", Country: "United Kingdom"},
	{Code: "CDG", Name: "Paris Charles de Gaulle Airport", City: "Paris", Country: "France"},
	{Code: "SIN", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore"},
	{Code: "HKG", Name: "Hong Kong International Airport", City: "Hong Kong", Country: "Hong Kong"},
	{Code: "AMS", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands"},
}

// StaticAirportRepository serves the built-in supported-airport list.
type StaticAirportRepository struct{}

// NewStaticAirportRepository creates an airport repository backed by the
// built-in list only.
func NewStaticAirportRepository() repository.AirportRepository {
	return &StaticAirportRepository{}
}

// GetByCode finds a supported airport by IATA code.
func (r *StaticAirportRepository) GetByCode(_ context.Context, code string) (*entity.Airport, error) {
	for i := range supportedAirports {
		if supportedAirports[i].Code == code {
			airport := supportedAirports[i]
			return &airport, nil
		}
	}
	return nil, fmt.Errorf("airport %s is not supported", code)
}

// ListSupported returns the fixed supported-airport set.
func (r *StaticAirportRepository) ListSupported(_ context.Context) ([]entity.Airport, error) {
	airports := make([]entity.Airport, len(supportedAirports))
	copy(airports, supportedAirports)
	return airports, nil
}

// GormAirportRepository enriches the built-in list with reference metadata
// from the airports table. Lookups fall back to the static entry when the
// table has no row for the code.
type GormAirportRepository struct {
	db     *gorm.DB
	static repository.AirportRepository
}

// NewGormAirportRepository creates a new GORM airport repository.
func NewGormAirportRepository(db *gorm.DB) repository.AirportRepository {
	return &GormAirportRepository{
		db:     db,
		static: NewStaticAirportRepository(),
	}
}

// Airports GORM model for database mapping
type Airports struct {
	ID          uint   `gorm:"primaryKey"`
	Code        string `gorm:"column:code;unique"`
	Name        string `gorm:"column:name"`
	City        string `gorm:"column:city"`
	Country     string `gorm:"column:country"`
	ICAO        string `gorm:"column:icao"`
	Latitude    float64
	Longitude   float64
	ElevationFt int    `gorm:"column:elevation_ft"`
	Timezone    string `gorm:"column:timezone"`
	Website     string `gorm:"column:website"`
	Wikipedia   string `gorm:"column:wikipedia"`
	Rating      float64
	Reviews     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the default table name
func (Airports) TableName() string {
	return "m_airports"
}

// GetByCode finds an airport by code, preferring the reference table.
func (r *GormAirportRepository) GetByCode(ctx context.Context, code string) (*entity.Airport, error) {
	var airport Airports
	result := r.db.WithContext(ctx).Where("code = ?", code).First(&airport)

	if result.Error != nil {
		// Reference table not populated for this code; the static list
		// still decides whether the airport is supported.
		return r.static.GetByCode(ctx, code)
	}

	return &entity.Airport{
		Code:        airport.Code,
		Name:        airport.Name,
		City:        airport.City,
		Country:     airport.Country,
		ICAO:        airport.ICAO,
		Latitude:    airport.Latitude,
		Longitude:   airport.Longitude,
		ElevationFt: airport.ElevationFt,
		Timezone:    airport.Timezone,
		Website:     airport.Website,
		Wikipedia:   airport.Wikipedia,
		Rating:      airport.Rating,
		Reviews:     airport.Reviews,
	}, nil
}

// ListSupported returns the fixed supported-airport set. The set is static
// regardless of what the reference table holds.
func (r *GormAirportRepository) ListSupported(ctx context.Context) ([]entity.Airport, error) {
	return r.static.ListSupported(ctx)
}
