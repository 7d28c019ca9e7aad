package storage

import (
	"context"
	"log"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Row is one persisted key-value entry.
type Row struct {
	Key       string `gorm:"primaryKey;size:191"`
	Value     []byte
	UpdatedAt time.Time
}

func (Row) TableName() string { return "storage_rows" }

// GormMedium stores each key as a row in a relational table. SQLite is the
// default (single-device deployments); MySQL is selectable for shared setups.
type GormMedium struct {
	db *gorm.DB
}

// Open connects with a short retry loop so the server survives a database
// that is still starting up, then migrates the key-value table.
func Open(driver, dsn string) (*GormMedium, error) {
	var db *gorm.DB
	var err error

	for i := 0; i < 5; i++ {
		cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
		switch driver {
		case "mysql":
			db, err = gorm.Open(mysql.Open(dsn), cfg)
		default:
			db, err = gorm.Open(sqlite.Open(dsn), cfg)
		}
		if err == nil {
			break
		}
		log.Printf("Failed to connect to storage. Retrying in 2 seconds... (%d/5)", i+1)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, errors.Wrapf(ErrUnavailable, "open %s storage: %v", driver, err)
	}

	if err := db.AutoMigrate(&Row{}); err != nil {
		return nil, errors.Wrapf(ErrUnavailable, "migrate storage table: %v", err)
	}
	return &GormMedium{db: db}, nil
}

func (m *GormMedium) GetItem(ctx context.Context, key string) ([]byte, error) {
	var row Row
	err := m.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(ErrUnavailable, "get %q: %v", key, err)
	}
	return row.Value, nil
}

func (m *GormMedium) SetItem(ctx context.Context, key string, value []byte) error {
	row := Row{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := m.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return errors.Wrapf(ErrUnavailable, "set %q: %v", key, err)
	}
	return nil
}

func (m *GormMedium) RemoveItem(ctx context.Context, key string) error {
	if err := m.db.WithContext(ctx).Delete(&Row{}, "key = ?", key).Error; err != nil {
		return errors.Wrapf(ErrUnavailable, "remove %q: %v", key, err)
	}
	return nil
}

// Ping verifies the underlying connection, for the system status endpoint.
func (m *GormMedium) Ping(ctx context.Context) error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return errors.Wrapf(ErrUnavailable, "ping: %v", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrapf(ErrUnavailable, "ping: %v", err)
	}
	return nil
}
