package boltstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jhoicas/invoicegen/internal/domain/entity"
	"github.com/jhoicas/invoicegen/internal/domain/repository"
)

// DocumentRepository implementación bbolt de repository.DocumentRepository.
type DocumentRepository struct {
	db *DB
}

var _ repository.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository crea el repositorio sobre db.
func NewDocumentRepository(db *DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Save guarda el documento bajo la cuenta de su autor.
func (r *DocumentRepository) Save(ctx context.Context, doc *entity.Document) error {
	if doc == nil {
		return fmt.Errorf("boltstore: documento nil")
	}
	if err := r.db.put(ctx, doc.Author.AccountID, bucketDocuments, doc.ID, doc); err != nil {
		return fmt.Errorf("boltstore: guardar documento %s: %w", doc.Number, err)
	}
	return nil
}

// GetByID devuelve (nil, nil) si no existe en la cuenta.
func (r *DocumentRepository) GetByID(ctx context.Context, accountID, id string) (*entity.Document, error) {
	var doc entity.Document
	found, err := r.db.get(ctx, accountID, bucketDocuments, id, &doc)
	if err != nil {
		return nil, fmt.Errorf("boltstore: obtener documento: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &doc, nil
}

// ListByAccount documentos más recientes primero.
func (r *DocumentRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*entity.Document, error) {
	var docs []*entity.Document
	err := r.db.each(ctx, accountID, bucketDocuments, func(data []byte) error {
		var d entity.Document
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		docs = append(docs, &d)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("boltstore: listar documentos: %w", err)
	}
	sort.SliceStable(docs, func(i, j int) bool {
		if !docs[i].CreatedAt.Equal(docs[j].CreatedAt) {
			return docs[i].CreatedAt.After(docs[j].CreatedAt)
		}
		return docs[i].ID > docs[j].ID
	})
	return paginate(docs, limit, offset), nil
}

func paginate[T any](list []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(list) {
		return []T{}
	}
	list = list[offset:]
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list
}
