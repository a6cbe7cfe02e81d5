package repository

import (
	"context"

	"github.com/jhoicas/invoicegen/internal/domain/entity"
)

// DocumentRepository define el puerto de persistencia para documentos guardados.
// Los documentos quedan aislados por cuenta (identidad del usuario).
type DocumentRepository interface {
	Save(ctx context.Context, doc *entity.Document) error
	// GetByID devuelve (nil, nil) si el documento no existe en la cuenta.
	GetByID(ctx context.Context, accountID, id string) (*entity.Document, error)
	// ListByAccount devuelve los documentos más recientes primero.
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*entity.Document, error)
}
