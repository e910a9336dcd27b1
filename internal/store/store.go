package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"punchlog/internal/models"
)

const dailyHoursKey = "daily_hours_limit"

// DefaultDailyHours is the daily target used when no limit has been saved.
const DefaultDailyHours = 9

// Store persists attendance records and settings in a local SQLite database.
// Record reads and writes never fail from the caller's point of view: a
// broken backend logs a warning and degrades to an empty, ephemeral set.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

// Open connects to the database at path and runs migrations
func Open(path string, log *zap.Logger) (*Store, error) {
	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Quiet by default
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.AttendanceRecord{}, &models.Setting{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

// DefaultPath returns the path to the SQLite database file
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".punchlog", "punchlog.db"), nil
}

// Load returns all records in insertion order
func (s *Store) Load() []models.AttendanceRecord {
	var records []models.AttendanceRecord
	if err := s.db.Order("position ASC").Find(&records).Error; err != nil {
		s.log.Warn("failed to load attendance records", zap.Error(err))
		return nil
	}
	return records
}

// Save replaces the entire persisted record set
func (s *Store) Save(records []models.AttendanceRecord) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.AttendanceRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		for i := range records {
			records[i].Position = i
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		s.log.Warn("failed to save attendance records", zap.Error(err))
	}
}

// Clear drops every attendance record. Settings are kept.
func (s *Store) Clear() {
	if err := s.db.Where("1 = 1").Delete(&models.AttendanceRecord{}).Error; err != nil {
		s.log.Warn("failed to clear attendance records", zap.Error(err))
	}
}

// DailyHoursLimit returns the configured daily target hours.
// Absent or out-of-range values fall back to the default.
func (s *Store) DailyHoursLimit() float64 {
	var setting models.Setting
	if err := s.db.First(&setting, "key = ?", dailyHoursKey).Error; err != nil {
		return DefaultDailyHours
	}
	hours, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil || hours <= 0 || hours > 24 {
		return DefaultDailyHours
	}
	return hours
}

// SetDailyHoursLimit persists the daily target hours. Range validation is
// the engine's job; the store writes what it is given.
func (s *Store) SetDailyHoursLimit(hours float64) {
	setting := models.Setting{
		Key:   dailyHoursKey,
		Value: strconv.FormatFloat(hours, 'f', -1, 64),
	}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&setting).Error; err != nil {
		s.log.Warn("failed to save daily hours limit", zap.Error(err))
	}
}

// Close closes the database connection
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
