package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MosaabBleik/pharmacy-service/internal/database"
)

var pgTestKeys = []string{"jl_test_inventory", "jl_test_offline", "jl_test_missing"}

func newTestPostgresStore(t *testing.T) (*PostgresStore, *gorm.DB) {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	require.NoError(t, database.Migrate(url))

	db, err := gorm.Open(postgres.Open(url), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	purge := func() {
		require.NoError(t, db.Where("key IN ?", pgTestKeys).Delete(&Entry{}).Error)
	}
	purge()
	t.Cleanup(func() {
		purge()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return NewPostgresStore(db), db
}

func TestPostgresStore_missingKeys(t *testing.T) {
	s, _ := newTestPostgresStore(t)
	ctx := context.Background()

	got, err := s.Load(ctx, pgTestKeys)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = s.Load(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.NoError(t, s.Ping(ctx))
}

func TestPostgresStore_upsert(t *testing.T) {
	s, db := newTestPostgresStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, map[string][]byte{
		"jl_test_inventory": []byte(`[{"id":"paracetamol","stock":6}]`),
		"jl_test_offline":   []byte("false"),
	}))

	got, err := s.Load(ctx, pgTestKeys)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{
		"jl_test_inventory": []byte(`[{"id":"paracetamol","stock":6}]`),
		"jl_test_offline":   []byte("false"),
	}, got)

	// a second save of the same key updates the row in place
	require.NoError(t, s.Save(ctx, map[string][]byte{"jl_test_offline": []byte("true")}))

	got, err = s.Load(ctx, []string{"jl_test_offline", "jl_test_inventory"})
	require.NoError(t, err)
	assert.Equal(t, []byte("true"), got["jl_test_offline"])
	assert.Equal(t, []byte(`[{"id":"paracetamol","stock":6}]`), got["jl_test_inventory"])

	var count int64
	require.NoError(t, db.Model(&Entry{}).Where("key = ?", "jl_test_offline").Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var row Entry
	require.NoError(t, db.First(&row, "key = ?", "jl_test_offline").Error)
	assert.False(t, row.UpdatedAt.IsZero())
}

func TestPostgresStore_emptySaveIsNoop(t *testing.T) {
	s, db := newTestPostgresStore(t)

	require.NoError(t, s.Save(context.Background(), nil))

	var count int64
	require.NoError(t, db.Model(&Entry{}).Where("key IN ?", pgTestKeys).Count(&count).Error)
	assert.Zero(t, count)
}
