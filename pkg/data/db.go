package data

import (
	"fmt"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/spencer-p/lowtides/pkg/forecast"
)

// LowTide is one daylight low tide as it was reported for a location.
type LowTide struct {
	gorm.Model
	Location   string `gorm:"uniqueIndex:idx_low_tide_event;not null"`
	Date       string `gorm:"uniqueIndex:idx_low_tide_event;not null"`
	Time       string `gorm:"uniqueIndex:idx_low_tide_event;not null"`
	HeightFeet float64
	// SeenAt is when the tide was last read off the page.
	SeenAt time.Time
}

// Store keeps the history of reported low tides.
type Store struct {
	db *gorm.DB
}

// PostgresDSNFromEnv builds a DSN from the standard PG* variables. ok is false
// when PGHOST is unset, which means history is not wanted.
func PostgresDSNFromEnv() (dsn string, ok bool) {
	host := os.Getenv("PGHOST")
	if host == "" {
		return "", false
	}
	dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host,
		envOr("PGUSER", "postgres"),
		os.Getenv("PGPASSWORD"),
		envOr("PGDATABASE", "lowtides"),
		envOr("PGPORT", "5432"))
	return dsn, true
}

// OpenPostgres connects and migrates the schema.
func OpenPostgres(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return New(db)
}

// New wraps an open database and migrates the schema.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&LowTide{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Record saves the low tides of res for location. Tides already recorded
// for the same date and time are updated in place.
func (s *Store) Record(location string, res *forecast.Result, seen time.Time) error {
	rows := Rows(location, res, seen)
	if len(rows) == 0 {
		return nil
	}
	tx := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "location"}, {Name: "date"}, {Name: "time"}},
		DoUpdates: clause.AssignmentColumns([]string{"height_feet", "seen_at", "updated_at"}),
	}).Create(&rows)
	if tx.Error != nil {
		return fmt.Errorf("record %s: %w", location, tx.Error)
	}
	return nil
}

// History returns up to limit of the most recently seen low tides for
// location, newest first.
func (s *Store) History(location string, limit int) ([]LowTide, error) {
	var result []LowTide
	tx := s.db.Where("location = ?", location).
		Order("seen_at desc").
		Limit(limit).
		Find(&result)
	if tx.Error != nil {
		return nil, fmt.Errorf("history %s: %w", location, tx.Error)
	}
	return result, nil
}

// Rows converts a result into the rows Record would write.
func Rows(location string, res *forecast.Result, seen time.Time) []LowTide {
	if res == nil {
		return nil
	}
	rows := make([]LowTide, 0, len(res.LowTides))
	for _, lt := range res.LowTides {
		rows = append(rows, LowTide{
			Location:   location,
			Date:       res.Date,
			Time:       lt.Time,
			HeightFeet: lt.HeightFeet,
			SeenAt:     seen,
		})
	}
	return rows
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
