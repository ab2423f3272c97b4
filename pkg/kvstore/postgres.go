package kvstore

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Document is the gorm model backing the Postgres store: one row per key,
// the JSON cart document stored verbatim in Value.
type Document struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Document) TableName() string {
	return "kv_documents"
}

type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) (*PostgresStore, error) {
	if err := db.AutoMigrate(&Document{}); err != nil {
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func (p *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	var doc Document
	err := p.db.WithContext(ctx).First(&doc, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return doc.Value, nil
}

func (p *PostgresStore) Set(ctx context.Context, key, value string) error {
	doc := Document{Key: key, Value: value, UpdatedAt: time.Now()}
	return p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&doc).Error
}

func (p *PostgresStore) Delete(ctx context.Context, key string) error {
	return p.db.WithContext(ctx).Delete(&Document{}, "key = ?", key).Error
}

func (p *PostgresStore) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
