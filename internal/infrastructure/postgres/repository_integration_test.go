package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoicegen/internal/domain/entity"
	"github.com/jhoicas/invoicegen/internal/infrastructure/postgres"
	"github.com/jhoicas/invoicegen/pkg/config"
)

// Requiere TEST_DATABASE_URL apuntando a una base desechable.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, postgres.Migrate(ctx, pool))
	return pool
}

func TestDocumentRepo_SaveGetList(t *testing.T) {
	pool := testPool(t)
	repo := postgres.NewDocumentRepository(pool)
	ctx := context.Background()
	account := "acc-" + uuid.NewString()

	doc := &entity.Document{
		ID:           uuid.NewString(),
		Number:       "GST-20240115-042",
		Kind:         entity.KindProfessional,
		CreatedAt:    time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		CustomerName: "Acme",
		Fields:       map[string]string{entity.FieldTaxRegistration: "29ABCDE1234F1Z5"},
		Items: []entity.LineItem{{
			ID:          "r1",
			Label:       "Audit",
			Quantity:    decimal.NewFromInt(1),
			UnitMeasure: decimal.NewFromInt(1),
			Rate:        decimal.NewFromInt(1000),
			Amount:      decimal.NewFromInt(1000),
			Attributes:  map[string]string{entity.AttrTaxCode: "998222"},
		}},
		Totals: entity.Totals{
			Subtotal: decimal.NewFromInt(1000),
			Charges: []entity.ChargeAmount{
				{Name: "CGST", Percent: decimal.NewFromInt(9), Amount: decimal.NewFromInt(90)},
				{Name: "SGST", Percent: decimal.NewFromInt(9), Amount: decimal.NewFromInt(90)},
			},
			GrandTotal: decimal.NewFromInt(1180),
		},
		Author: entity.Session{AccountID: account, DisplayName: "Ravi", Premium: true},
	}
	require.NoError(t, repo.Save(ctx, doc))

	got, err := repo.GetByID(ctx, account, doc.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, doc.Number, got.Number)
	assert.Equal(t, doc.Fields, got.Fields)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "998222", got.Items[0].Attributes[entity.AttrTaxCode])
	require.Len(t, got.Totals.Charges, 2)
	assert.Equal(t, "SGST", got.Totals.Charges[1].Name)
	assert.True(t, decimal.NewFromInt(1180).Equal(got.Totals.GrandTotal))
	assert.Equal(t, doc.Author, got.Author)

	missing, err := repo.GetByID(ctx, "otra", doc.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	list, err := repo.ListByAccount(ctx, account, 10, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDirectoryRepo_Productos(t *testing.T) {
	pool := testPool(t)
	repo := postgres.NewDirectoryRepository(pool)
	ctx := context.Background()
	account := "acc-" + uuid.NewString()

	p := &entity.Product{ID: uuid.NewString(), AccountID: account, Name: "Pen", Rate: decimal.RequireFromString("10.50"), CreatedAt: time.Now()}
	require.NoError(t, repo.SaveProduct(ctx, p))

	got, err := repo.GetProduct(ctx, account, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, p.Rate.Equal(got.Rate))
	assert.Empty(t, got.TaxCode)

	list, err := repo.ListProducts(ctx, account)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
