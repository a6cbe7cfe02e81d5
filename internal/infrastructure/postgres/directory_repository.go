package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/invoicegen/internal/domain/entity"
	"github.com/jhoicas/invoicegen/internal/domain/repository"
)

var _ repository.DirectoryRepository = (*DirectoryRepo)(nil)

// DirectoryRepo implementación de DirectoryRepository (usable con pool o tx).
type DirectoryRepo struct {
	q Querier
}

// NewDirectoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDirectoryRepository(q Querier) *DirectoryRepo {
	return &DirectoryRepo{q: q}
}

// SaveCustomer inserta o reemplaza un cliente.
func (r *DirectoryRepo) SaveCustomer(ctx context.Context, c *entity.Customer) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO customers (id, account_id, name, tax_registration_no, address, phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, tax_registration_no = EXCLUDED.tax_registration_no,
		    address = EXCLUDED.address, phone = EXCLUDED.phone`,
		c.ID, c.AccountID, c.Name, nullIfEmpty(c.TaxRegistrationNo), nullIfEmpty(c.Address), nullIfEmpty(c.Phone), c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// ListCustomers clientes de la cuenta ordenados por nombre.
func (r *DirectoryRepo) ListCustomers(ctx context.Context, accountID string) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, account_id, name, tax_registration_no, address, phone, created_at
		FROM customers WHERE account_id = $1 ORDER BY lower(name)`, accountID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	list := []*entity.Customer{}
	for rows.Next() {
		var (
			c                     entity.Customer
			taxNo, address, phone *string
		)
		if err := rows.Scan(&c.ID, &c.AccountID, &c.Name, &taxNo, &address, &phone, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		c.TaxRegistrationNo = stringOrEmpty(taxNo)
		c.Address = stringOrEmpty(address)
		c.Phone = stringOrEmpty(phone)
		list = append(list, &c)
	}
	return list, rows.Err()
}

// SaveProduct inserta o reemplaza un producto.
func (r *DirectoryRepo) SaveProduct(ctx context.Context, p *entity.Product) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO products (id, account_id, name, rate, tax_code, unit, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, rate = EXCLUDED.rate, tax_code = EXCLUDED.tax_code, unit = EXCLUDED.unit`,
		p.ID, p.AccountID, p.Name, p.Rate, nullIfEmpty(p.TaxCode), nullIfEmpty(p.Unit), p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetProduct devuelve (nil, nil) si el producto no existe en la cuenta.
func (r *DirectoryRepo) GetProduct(ctx context.Context, accountID, id string) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `
		SELECT id, account_id, name, rate, tax_code, unit, created_at
		FROM products WHERE account_id = $1 AND id = $2`, accountID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// ListProducts productos de la cuenta ordenados por nombre.
func (r *DirectoryRepo) ListProducts(ctx context.Context, accountID string) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, account_id, name, rate, tax_code, unit, created_at
		FROM products WHERE account_id = $1 ORDER BY lower(name)`, accountID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := []*entity.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p             entity.Product
		taxCode, unit *string
	)
	if err := row.Scan(&p.ID, &p.AccountID, &p.Name, &p.Rate, &taxCode, &unit, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.TaxCode = stringOrEmpty(taxCode)
	p.Unit = stringOrEmpty(unit)
	return &p, nil
}
