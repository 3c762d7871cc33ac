package db

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/jsphweid/ukulala/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

//go:embed schema.sql
var schema string

type preference struct {
	Tuning    string `gorm:"primaryKey"`
	Kind      string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

func (preference) TableName() string {
	return "preferences"
}

// SQLite keeps preferences in a sqlite3 database file.
type SQLite struct{ *gorm.DB }

// OpenSQLite returns a connection to a migrated sqlite3 database file on
// disk, creating the file and running migrations if necessary.
func OpenSQLite(filename string) (*SQLite, error) {
	gdb, err := gorm.Open(sqlite.Open(filename), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("error opening db file at '%s': %w", filename, err)
	}

	db := &SQLite{gdb}

	if err := db.Exec(schema).Error; err != nil {
		return nil, fmt.Errorf("error migrating db at '%s': %w", filename, err)
	}

	return db, nil
}

func (db *SQLite) Load(ctx context.Context, key model.PrefKey) ([]byte, error) {
	var row preference
	err := db.WithContext(ctx).
		Where("tuning = ? AND kind = ?", tuningPart(key), string(key.Kind)).
		Take(&row).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%s/%s: %w", tuningPart(key), key.Kind, ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("error loading preference %s/%s: %w", tuningPart(key), key.Kind, err)
	}
	return []byte(row.Value), nil
}

func (db *SQLite) Save(ctx context.Context, key model.PrefKey, value []byte) error {
	row := preference{
		Tuning:    tuningPart(key),
		Kind:      string(key.Kind),
		Value:     string(value),
		UpdatedAt: time.Now(),
	}
	if err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tuning"}, {Name: "kind"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).
		Error; err != nil {
		return fmt.Errorf("error saving preference %s/%s: %w", row.Tuning, row.Kind, err)
	}
	return nil
}

func (db *SQLite) Close() error {
	pool, err := db.DB.DB()
	if err != nil {
		return err
	}
	return pool.Close()
}
