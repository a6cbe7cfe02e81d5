package repository

import (
	"context"

	"github.com/jhoicas/invoicegen/internal/domain/entity"
)

// DirectoryRepository define el puerto de persistencia de los directorios de
// clientes y productos (solo sirven para precargar datos).
type DirectoryRepository interface {
	SaveCustomer(ctx context.Context, c *entity.Customer) error
	ListCustomers(ctx context.Context, accountID string) ([]*entity.Customer, error)
	SaveProduct(ctx context.Context, p *entity.Product) error
	// GetProduct devuelve (nil, nil) si el producto no existe en la cuenta.
	GetProduct(ctx context.Context, accountID, id string) (*entity.Product, error)
	ListProducts(ctx context.Context, accountID string) ([]*entity.Product, error)
}
