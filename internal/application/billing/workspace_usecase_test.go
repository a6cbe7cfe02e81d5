package billing_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoicegen/internal/application/billing"
	"github.com/jhoicas/invoicegen/internal/application/dto"
	"github.com/jhoicas/invoicegen/internal/domain"
	"github.com/jhoicas/invoicegen/internal/domain/entity"
	"github.com/jhoicas/invoicegen/pkg/logger"
)

func newWorkspaceUC() *billing.WorkspaceUseCase {
	return billing.NewWorkspaceUseCase(billing.NewWorkspaceRegistry(), logger.Nop())
}

func TestWorkspaceUseCase_TechoGratuito(t *testing.T) {
	uc := newWorkspaceUC()
	for i := 0; i < entity.FreeItemLimit; i++ {
		_, err := uc.AddRow(freeSession, entity.KindPointOfSale)
		require.NoError(t, err)
	}

	_, err := uc.AddRow(freeSession, entity.KindPointOfSale)
	require.ErrorIs(t, err, domain.ErrLimitExceeded)
	var limitErr *domain.LimitError
	require.True(t, errors.As(err, &limitErr))
	assert.False(t, limitErr.Premium)
	assert.Equal(t, entity.FreeItemLimit, limitErr.Limit)
}

func TestWorkspaceUseCase_TiposAislados(t *testing.T) {
	uc := newWorkspaceUC()
	_, err := uc.AddRow(freeSession, entity.KindPointOfSale)
	require.NoError(t, err)

	snap, err := uc.Snapshot(freeSession, entity.KindRealEstate)
	require.NoError(t, err)
	assert.Empty(t, snap.Rows)

	snap, err = uc.Snapshot(freeSession, entity.KindPointOfSale)
	require.NoError(t, err)
	assert.Len(t, snap.Rows, 1)
	assert.Equal(t, entity.FreeItemLimit, snap.Limit)
}

func TestWorkspaceUseCase_CuentasAisladas(t *testing.T) {
	uc := newWorkspaceUC()
	_, err := uc.AddRow(freeSession, entity.KindPointOfSale)
	require.NoError(t, err)

	snap, err := uc.Snapshot(premiumSession, entity.KindPointOfSale)
	require.NoError(t, err)
	assert.Empty(t, snap.Rows)
	assert.Equal(t, entity.PremiumItemLimit, snap.Limit)
}

func TestWorkspaceUseCase_CambioDeSesionConservaFilas(t *testing.T) {
	uc := newWorkspaceUC()
	for i := 0; i < entity.FreeItemLimit; i++ {
		_, err := uc.AddRow(freeSession, entity.KindPointOfSale)
		require.NoError(t, err)
	}

	upgraded := freeSession
	upgraded.Premium = true
	upgraded.DisplayName = "Asha Traders"
	snap, err := uc.Snapshot(upgraded, entity.KindPointOfSale)
	require.NoError(t, err)
	assert.Len(t, snap.Rows, entity.FreeItemLimit)
	assert.Equal(t, entity.PremiumItemLimit, snap.Limit)
	_, err = uc.AddRow(upgraded, entity.KindPointOfSale)
	require.NoError(t, err)

	// un token anterior de la misma cuenta ve las mismas filas con su techo
	snap, err = uc.Snapshot(freeSession, entity.KindPointOfSale)
	require.NoError(t, err)
	assert.Len(t, snap.Rows, entity.FreeItemLimit+1)
	assert.Equal(t, entity.FreeItemLimit, snap.Limit)
	_, err = uc.AddRow(freeSession, entity.KindPointOfSale)
	assert.ErrorIs(t, err, domain.ErrLimitExceeded)

	snap, err = uc.Snapshot(upgraded, entity.KindPointOfSale)
	require.NoError(t, err)
	assert.Len(t, snap.Rows, entity.FreeItemLimit+1)
}

func TestWorkspaceUseCase_ResetEmpiezaDocumentoNuevo(t *testing.T) {
	uc := newWorkspaceUC()
	_, err := uc.AddRow(freeSession, entity.KindPointOfSale)
	require.NoError(t, err)
	_, err = uc.AddRow(freeSession, entity.KindProfessional)
	require.NoError(t, err)

	require.NoError(t, uc.Reset(freeSession, entity.KindPointOfSale))

	snap, err := uc.Snapshot(freeSession, entity.KindPointOfSale)
	require.NoError(t, err)
	assert.Empty(t, snap.Rows)
	snap, err = uc.Snapshot(freeSession, entity.KindProfessional)
	require.NoError(t, err)
	assert.Len(t, snap.Rows, 1, "el reset es por tipo")

	assert.ErrorIs(t, uc.Reset(freeSession, "invoice"), domain.ErrUnknownKind)
}

func TestWorkspaceUseCase_UpdateRowYTotales(t *testing.T) {
	uc := newWorkspaceUC()
	row, err := uc.AddRow(freeSession, entity.KindPointOfSale)
	require.NoError(t, err)

	updated, err := uc.UpdateRow(freeSession, entity.KindPointOfSale, row.ID, dto.UpdateRowRequest{
		Label:    strPtr("Pen"),
		Quantity: float64(3),
		Rate:     "₹150.50",
	})
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("451.50").Equal(updated.Amount))
	assert.Equal(t, "₹451.50", updated.AmountFormatted)

	snap, err := uc.Snapshot(freeSession, entity.KindPointOfSale)
	require.NoError(t, err)
	assert.Equal(t, "₹451.50", snap.Totals.SubtotalFormatted)
	assert.Equal(t, "₹532.77", snap.Totals.GrandTotalFormatted)
}

func TestWorkspaceUseCase_FilaDesconocida(t *testing.T) {
	uc := newWorkspaceUC()
	_, err := uc.AddRow(freeSession, entity.KindPointOfSale)
	require.NoError(t, err)

	err = uc.RemoveRow(freeSession, entity.KindPointOfSale, "no-existe")
	assert.ErrorIs(t, err, domain.ErrRowNotFound)
	_, err = uc.UpdateRow(freeSession, entity.KindPointOfSale, "no-existe", dto.UpdateRowRequest{})
	assert.ErrorIs(t, err, domain.ErrRowNotFound)

	snap, err := uc.Snapshot(freeSession, entity.KindPointOfSale)
	require.NoError(t, err)
	assert.Len(t, snap.Rows, 1)
}

func TestWorkspaceUseCase_TipoDesconocido(t *testing.T) {
	_, err := newWorkspaceUC().AddRow(freeSession, "invoice")
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestWorkspaceUseCase_AccesoConcurrente(t *testing.T) {
	uc := newWorkspaceUC()
	var wg sync.WaitGroup
	var mu sync.Mutex
	added := 0
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := uc.AddRow(premiumSession, entity.KindProfessional); err == nil {
				mu.Lock()
				added++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, entity.PremiumItemLimit, added)
	snap, err := uc.Snapshot(premiumSession, entity.KindProfessional)
	require.NoError(t, err)
	assert.Len(t, snap.Rows, entity.PremiumItemLimit)
}
