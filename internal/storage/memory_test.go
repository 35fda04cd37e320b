package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_LoadSave(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	got, err := m.Load(ctx, []string{"a", "b"})
	require.NoError(t, err)
	assert.Empty(t, got)

	buf := []byte(`[1,2]`)
	require.NoError(t, m.Save(ctx, map[string][]byte{"a": buf}))
	buf[0] = 'x'

	got, err = m.Load(ctx, []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"a": []byte(`[1,2]`)}, got)
	assert.NoError(t, m.Ping(ctx))
}
