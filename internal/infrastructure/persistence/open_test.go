package persistence_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoicegen/internal/infrastructure/persistence"
	"github.com/jhoicas/invoicegen/pkg/config"
)

func TestOpen_Bolt(t *testing.T) {
	stores, err := persistence.Open(context.Background(), config.StoreConfig{
		Driver:   config.StoreBolt,
		BoltPath: filepath.Join(t.TempDir(), "app.db"),
	}, config.DBConfig{})
	require.NoError(t, err)
	assert.NotNil(t, stores.Documents)
	assert.NotNil(t, stores.Directory)
	assert.NoError(t, stores.Close())
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := persistence.Open(context.Background(), config.StoreConfig{Driver: "mongo"}, config.DBConfig{})
	assert.Error(t, err)
}
