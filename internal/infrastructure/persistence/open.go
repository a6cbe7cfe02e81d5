// Package persistence elige el backend de almacenamiento según STORE_DRIVER.
package persistence

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoicegen/internal/domain/repository"
	"github.com/jhoicas/invoicegen/internal/infrastructure/boltstore"
	"github.com/jhoicas/invoicegen/internal/infrastructure/postgres"
	"github.com/jhoicas/invoicegen/pkg/config"
)

// Stores repositorios listos para inyectar.
type Stores struct {
	Documents repository.DocumentRepository
	Directory repository.DirectoryRepository
	close     func() error
}

// Close libera el archivo bbolt o el pool de PostgreSQL.
func (s *Stores) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open abre el backend configurado. Con postgres aplica el esquema al arrancar.
func Open(ctx context.Context, cfg config.StoreConfig, db config.DBConfig) (*Stores, error) {
	switch cfg.Driver {
	case config.StoreBolt, "":
		bdb, err := boltstore.Open(cfg.BoltPath)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Documents: boltstore.NewDocumentRepository(bdb),
			Directory: boltstore.NewDirectoryRepository(bdb),
			close:     bdb.Close,
		}, nil
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, db)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Stores{
			Documents: postgres.NewDocumentRepository(pool),
			Directory: postgres.NewDirectoryRepository(pool),
			close: func() error {
				pool.Close()
				return nil
			},
		}, nil
	default:
		return nil, fmt.Errorf("persistence: driver desconocido %q", cfg.Driver)
	}
}
