package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// collectionRow is one named collection persisted as a single JSON document.
// Collections are replaced whole, so a one-row-per-collection table keeps
// the same semantics as the Redis backend.
type collectionRow struct {
	Name      string `gorm:"primaryKey"`
	Data      []byte
	UpdatedAt time.Time
}

func (collectionRow) TableName() string { return "collections" }

// GormStore is the PostgreSQL backend, for deployments that already run a
// relational database.
type GormStore struct {
	DB *gorm.DB
}

// NewGormStore migrates the collections table and wraps the connection.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, err
	}
	return &GormStore{DB: db}, nil
}

func (s *GormStore) GetCollection(name string) ([]byte, error) {
	var row collectionRow
	err := s.DB.First(&row, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.Data, nil
}

func (s *GormStore) SetCollection(name string, data []byte) error {
	row := collectionRow{Name: name, Data: data}
	return s.DB.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
}

func (s *GormStore) GetFlag(name string) (bool, error) {
	data, err := s.GetCollection(name)
	if err != nil {
		return false, err
	}
	return string(data) == "true", nil
}

func (s *GormStore) SetFlag(name string, value bool) error {
	if value {
		return s.SetCollection(name, []byte("true"))
	}
	return s.SetCollection(name, []byte("false"))
}
