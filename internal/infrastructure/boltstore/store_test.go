package boltstore_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoicegen/internal/domain/entity"
	"github.com/jhoicas/invoicegen/internal/infrastructure/boltstore"
)

func openDB(t *testing.T) *boltstore.DB {
	t.Helper()
	db, err := boltstore.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func document(id, account string, created time.Time) *entity.Document {
	return &entity.Document{
		ID:           id,
		Number:       "POS-20240115-" + id,
		Kind:         entity.KindPointOfSale,
		CreatedAt:    created,
		CustomerName: "Meera",
		Items: []entity.LineItem{{
			ID:          "r1",
			Label:       "Pen",
			Quantity:    decimal.NewFromInt(10),
			UnitMeasure: decimal.NewFromInt(1),
			Rate:        decimal.RequireFromString("10.50"),
			Amount:      decimal.NewFromInt(105),
		}},
		Totals: entity.Totals{
			Subtotal:   decimal.NewFromInt(105),
			Charges:    []entity.ChargeAmount{{Name: "Tax", Percent: decimal.NewFromInt(18), Amount: decimal.RequireFromString("18.9")}},
			GrandTotal: decimal.RequireFromString("123.9"),
		},
		Author: entity.Session{AccountID: account, DisplayName: "Asha"},
	}
}

// ── Documentos ──────────────────────────────────────────────────────────────

func TestDocumentRepository_SaveGet(t *testing.T) {
	repo := boltstore.NewDocumentRepository(openDB(t))
	ctx := context.Background()
	created := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, document("001", "acc-1", created)))

	got, err := repo.GetByID(ctx, "acc-1", "001")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "POS-20240115-001", got.Number)
	assert.True(t, created.Equal(got.CreatedAt))
	require.Len(t, got.Items, 1)
	assert.True(t, decimal.RequireFromString("10.50").Equal(got.Items[0].Rate))
	assert.True(t, decimal.RequireFromString("123.9").Equal(got.Totals.GrandTotal))

	// Aislado por cuenta.
	other, err := repo.GetByID(ctx, "acc-2", "001")
	require.NoError(t, err)
	assert.Nil(t, other)

	missing, err := repo.GetByID(ctx, "acc-1", "999")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDocumentRepository_ListMasRecientesPrimero(t *testing.T) {
	repo := boltstore.NewDocumentRepository(openDB(t))
	ctx := context.Background()
	base := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, document("001", "acc-1", base)))
	require.NoError(t, repo.Save(ctx, document("003", "acc-1", base.Add(2*time.Hour))))
	require.NoError(t, repo.Save(ctx, document("002", "acc-1", base.Add(time.Hour))))
	require.NoError(t, repo.Save(ctx, document("100", "acc-2", base.Add(3*time.Hour))))

	list, err := repo.ListByAccount(ctx, "acc-1", 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "003", list[0].ID)
	assert.Equal(t, "002", list[1].ID)
	assert.Equal(t, "001", list[2].ID)

	page, err := repo.ListByAccount(ctx, "acc-1", 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "002", page[0].ID)

	empty, err := repo.ListByAccount(ctx, "acc-9", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestDocumentRepository_ContextoCancelado(t *testing.T) {
	repo := boltstore.NewDocumentRepository(openDB(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, document("001", "acc-1", time.Now()))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpen_PersisteEntreAperturas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	db, err := boltstore.Open(path)
	require.NoError(t, err)
	require.NoError(t, boltstore.NewDocumentRepository(db).Save(ctx, document("001", "acc-1", time.Now())))
	require.NoError(t, db.Close())

	db, err = boltstore.Open(path)
	require.NoError(t, err)
	defer db.Close()
	got, err := boltstore.NewDocumentRepository(db).GetByID(ctx, "acc-1", "001")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

// ── Directorios ─────────────────────────────────────────────────────────────

func TestDirectoryRepository_ClientesYProductos(t *testing.T) {
	repo := boltstore.NewDirectoryRepository(openDB(t))
	ctx := context.Background()

	require.NoError(t, repo.SaveCustomer(ctx, &entity.Customer{ID: "c2", AccountID: "acc-1", Name: "zeta traders"}))
	require.NoError(t, repo.SaveCustomer(ctx, &entity.Customer{ID: "c1", AccountID: "acc-1", Name: "Alpha Stores"}))
	require.NoError(t, repo.SaveProduct(ctx, &entity.Product{ID: "p1", AccountID: "acc-1", Name: "Pen", Rate: decimal.RequireFromString("10.00"), TaxCode: "9608"}))

	customers, err := repo.ListCustomers(ctx, "acc-1")
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Alpha Stores", customers[0].Name)

	p, err := repo.GetProduct(ctx, "acc-1", "p1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.True(t, decimal.NewFromInt(10).Equal(p.Rate))
	assert.Equal(t, "9608", p.TaxCode)

	p, err = repo.GetProduct(ctx, "acc-2", "p1")
	require.NoError(t, err)
	assert.Nil(t, p)

	products, err := repo.ListProducts(ctx, "acc-2")
	require.NoError(t, err)
	assert.Empty(t, products)
}
