package boltstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/invoicegen/internal/domain/entity"
	"github.com/jhoicas/invoicegen/internal/domain/repository"
)

// DirectoryRepository implementación bbolt de repository.DirectoryRepository.
type DirectoryRepository struct {
	db *DB
}

var _ repository.DirectoryRepository = (*DirectoryRepository)(nil)

// NewDirectoryRepository crea el repositorio sobre db.
func NewDirectoryRepository(db *DB) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}

func (r *DirectoryRepository) SaveCustomer(ctx context.Context, c *entity.Customer) error {
	if err := r.db.put(ctx, c.AccountID, bucketCustomers, c.ID, c); err != nil {
		return fmt.Errorf("boltstore: guardar cliente: %w", err)
	}
	return nil
}

// ListCustomers clientes ordenados por nombre.
func (r *DirectoryRepository) ListCustomers(ctx context.Context, accountID string) ([]*entity.Customer, error) {
	out := []*entity.Customer{}
	err := r.db.each(ctx, accountID, bucketCustomers, func(data []byte) error {
		var c entity.Customer
		if err := json.Unmarshal(data, &c); err != nil {
			return err
		}
		out = append(out, &c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("boltstore: listar clientes: %w", err)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (r *DirectoryRepository) SaveProduct(ctx context.Context, p *entity.Product) error {
	if err := r.db.put(ctx, p.AccountID, bucketProducts, p.ID, p); err != nil {
		return fmt.Errorf("boltstore: guardar producto: %w", err)
	}
	return nil
}

// GetProduct devuelve (nil, nil) si no existe en la cuenta.
func (r *DirectoryRepository) GetProduct(ctx context.Context, accountID, id string) (*entity.Product, error) {
	var p entity.Product
	found, err := r.db.get(ctx, accountID, bucketProducts, id, &p)
	if err != nil {
		return nil, fmt.Errorf("boltstore: obtener producto: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &p, nil
}

// ListProducts productos ordenados por nombre.
func (r *DirectoryRepository) ListProducts(ctx context.Context, accountID string) ([]*entity.Product, error) {
	out := []*entity.Product{}
	err := r.db.each(ctx, accountID, bucketProducts, func(data []byte) error {
		var p entity.Product
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		out = append(out, &p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("boltstore: listar productos: %w", err)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}
