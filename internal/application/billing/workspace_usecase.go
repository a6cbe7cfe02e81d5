package billing

import (
	"errors"

	"github.com/jhoicas/invoicegen/internal/application/dto"
	"github.com/jhoicas/invoicegen/internal/domain"
	"github.com/jhoicas/invoicegen/internal/domain/entity"
	"github.com/jhoicas/invoicegen/pkg/logger"
)

// WorkspaceUseCase edición de filas del documento en curso de cada tipo.
type WorkspaceUseCase struct {
	registry *WorkspaceRegistry
	log      *logger.Logger
}

// NewWorkspaceUseCase construye el caso de uso.
func NewWorkspaceUseCase(registry *WorkspaceRegistry, log *logger.Logger) *WorkspaceUseCase {
	return &WorkspaceUseCase{registry: registry, log: log}
}

// Snapshot filas y totales actuales del tipo.
func (uc *WorkspaceUseCase) Snapshot(session entity.Session, kind entity.DocumentKind) (*dto.WorkspaceResponse, error) {
	var out *dto.WorkspaceResponse
	err := uc.registry.With(session, func(ws *Workspace) error {
		store, err := ws.Store(kind)
		if err != nil {
			return err
		}
		rows := store.Rows()
		resp := &dto.WorkspaceResponse{
			Kind:   string(kind),
			Limit:  store.Limit(),
			Rows:   make([]dto.LineItemResponse, 0, len(rows)),
			Totals: ToTotalsResponse(store.Totals()),
		}
		for _, r := range rows {
			resp.Rows = append(resp.Rows, ToLineItemResponse(r))
		}
		out = resp
		return nil
	})
	return out, err
}

// AddRow agrega una fila vacía. Devuelve *domain.LimitError si se alcanzó el techo.
func (uc *WorkspaceUseCase) AddRow(session entity.Session, kind entity.DocumentKind) (*dto.LineItemResponse, error) {
	var out *dto.LineItemResponse
	err := uc.registry.With(session, func(ws *Workspace) error {
		store, err := ws.Store(kind)
		if err != nil {
			return err
		}
		id, err := store.AddRow()
		if err != nil {
			return err
		}
		row, err := store.Row(id)
		if err != nil {
			return err
		}
		resp := ToLineItemResponse(row)
		out = &resp
		return nil
	})
	return out, err
}

// UpdateRow fusiona los cambios y devuelve la fila recalculada.
func (uc *WorkspaceUseCase) UpdateRow(session entity.Session, kind entity.DocumentKind, id string, in dto.UpdateRowRequest) (*dto.LineItemResponse, error) {
	var out *dto.LineItemResponse
	err := uc.registry.With(session, func(ws *Workspace) error {
		store, err := ws.Store(kind)
		if err != nil {
			return err
		}
		row, err := store.UpdateRow(id, entity.RowUpdate{
			Label:       in.Label,
			Quantity:    in.Quantity,
			UnitMeasure: in.UnitMeasure,
			Rate:        in.Rate,
			Attributes:  in.Attributes,
		})
		if err != nil {
			return err
		}
		resp := ToLineItemResponse(row)
		out = &resp
		return nil
	})
	uc.logRowNotFound(err, session, kind, id)
	return out, err
}

// RemoveRow elimina la fila. Una fila desconocida no modifica nada: se
// registra y se devuelve domain.ErrRowNotFound.
func (uc *WorkspaceUseCase) RemoveRow(session entity.Session, kind entity.DocumentKind, id string) error {
	err := uc.registry.With(session, func(ws *Workspace) error {
		store, err := ws.Store(kind)
		if err != nil {
			return err
		}
		return store.RemoveRow(id)
	})
	uc.logRowNotFound(err, session, kind, id)
	return err
}

// Reset descarta todas las filas del tipo para empezar un documento nuevo.
// Guardar no lo hace: las filas siguen en edición hasta pedirlo.
func (uc *WorkspaceUseCase) Reset(session entity.Session, kind entity.DocumentKind) error {
	return uc.registry.With(session, func(ws *Workspace) error {
		store, err := ws.Store(kind)
		if err != nil {
			return err
		}
		store.Reset()
		return nil
	})
}

func (uc *WorkspaceUseCase) logRowNotFound(err error, session entity.Session, kind entity.DocumentKind, id string) {
	if errors.Is(err, domain.ErrRowNotFound) {
		uc.log.Warn().
			Str("account_id", session.AccountID).
			Str("kind", string(kind)).
			Str("row_id", id).
			Msg("fila no encontrada, se ignora")
	}
}
