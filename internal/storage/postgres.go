package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one row of the dashboard_entries table.
type Entry struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     []byte `gorm:"type:bytea;not null"`
	UpdatedAt time.Time
}

func (Entry) TableName() string { return "dashboard_entries" }

// PostgresStore persists entries as rows, upserting a batch in one transaction.
type PostgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (p *PostgresStore) Name() string { return "postgres" }

func (p *PostgresStore) Load(ctx context.Context, keys []string) (map[string][]byte, error) {
	var rows []Entry
	if err := p.db.WithContext(ctx).Where("key IN ?", keys).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}

	out := make(map[string][]byte, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

func (p *PostgresStore) Save(ctx context.Context, entries map[string][]byte) error {
	if len(entries) == 0 {
		return nil
	}

	rows := make([]Entry, 0, len(entries))
	for k, v := range entries {
		rows = append(rows, Entry{Key: k, Value: v})
	}

	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&rows).Error
	})
	if err != nil {
		return fmt.Errorf("save entries: %w", err)
	}
	return nil
}

func (p *PostgresStore) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
