package billing

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/invoicegen/internal/application/dto"
	"github.com/jhoicas/invoicegen/internal/domain"
	"github.com/jhoicas/invoicegen/internal/domain/entity"
	"github.com/jhoicas/invoicegen/internal/domain/repository"
	"github.com/jhoicas/invoicegen/pkg/currency"
)

// DirectoryUseCase directorios de clientes y productos de una cuenta.
type DirectoryUseCase struct {
	repo     repository.DirectoryRepository
	registry *WorkspaceRegistry
}

// NewDirectoryUseCase construye el caso de uso.
func NewDirectoryUseCase(repo repository.DirectoryRepository, registry *WorkspaceRegistry) *DirectoryUseCase {
	return &DirectoryUseCase{repo: repo, registry: registry}
}

// CreateCustomer agrega un cliente al directorio.
func (uc *DirectoryUseCase) CreateCustomer(ctx context.Context, accountID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(in.Name)
	if accountID == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Customer{
		ID:                uuid.New().String(),
		AccountID:         accountID,
		Name:              name,
		TaxRegistrationNo: strings.TrimSpace(in.TaxRegistrationNo),
		Address:           strings.TrimSpace(in.Address),
		Phone:             strings.TrimSpace(in.Phone),
		CreatedAt:         time.Now(),
	}
	if err := uc.repo.SaveCustomer(ctx, c); err != nil {
		return nil, err
	}
	return toCustomerResponse(c), nil
}

// ListCustomers clientes de la cuenta.
func (uc *DirectoryUseCase) ListCustomers(ctx context.Context, accountID string) ([]*dto.CustomerResponse, error) {
	list, err := uc.repo.ListCustomers(ctx, accountID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// CreateProduct agrega un producto con su tarifa. La tarifa pasa por el códec
// de moneda; un texto ilegible queda en cero.
func (uc *DirectoryUseCase) CreateProduct(ctx context.Context, accountID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if accountID == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}
	rate, _ := currency.ParseAny(in.Rate)
	p := &entity.Product{
		ID:        uuid.New().String(),
		AccountID: accountID,
		Name:      name,
		Rate:      rate,
		TaxCode:   strings.TrimSpace(in.TaxCode),
		Unit:      strings.TrimSpace(in.Unit),
		CreatedAt: time.Now(),
	}
	if err := uc.repo.SaveProduct(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// ListProducts productos de la cuenta.
func (uc *DirectoryUseCase) ListProducts(ctx context.Context, accountID string) ([]*dto.ProductResponse, error) {
	list, err := uc.repo.ListProducts(ctx, accountID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// ApplyProduct precarga una fila existente con el nombre y la tarifa del
// producto (más el código HSN/SAC o la unidad de área si el tipo los muestra).
// Solo actualiza filas: nunca agrega, así que no evade el techo de ítems.
func (uc *DirectoryUseCase) ApplyProduct(ctx context.Context, session entity.Session, kind entity.DocumentKind, rowID, productID string) (*dto.LineItemResponse, error) {
	p, err := uc.repo.GetProduct(ctx, session.AccountID, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	var out *dto.LineItemResponse
	err = uc.registry.With(session, func(ws *Workspace) error {
		store, err := ws.Store(kind)
		if err != nil {
			return err
		}
		upd := entity.RowUpdate{Label: &p.Name, Rate: p.Rate}
		attrs := map[string]string{}
		for _, c := range store.Spec().Columns {
			switch {
			case c.Key == entity.ColumnTaxCode && p.TaxCode != "":
				attrs[entity.AttrTaxCode] = p.TaxCode
			case c.Key == entity.ColumnUnitMeasure && p.Unit != "":
				attrs[entity.AttrAreaUnit] = p.Unit
			}
		}
		if len(attrs) > 0 {
			upd.Attributes = attrs
		}
		row, err := store.UpdateRow(rowID, upd)
		if err != nil {
			return err
		}
		resp := ToLineItemResponse(row)
		out = &resp
		return nil
	})
	return out, err
}
