package billing

import (
	"fmt"
	"sync"

	"github.com/jhoicas/invoicegen/internal/domain"
	"github.com/jhoicas/invoicegen/internal/domain/entity"
	"github.com/jhoicas/invoicegen/internal/domain/invoice"
)

// Workspace contexto explícito de una sesión: su identidad y un Store por tipo
// de documento. Cambiar de tipo nunca arrastra filas entre Stores.
type Workspace struct {
	session entity.Session
	stores  map[entity.DocumentKind]*invoice.Store
}

// NewWorkspace crea un workspace vacío para la sesión.
func NewWorkspace(session entity.Session) *Workspace {
	return &Workspace{
		session: session,
		stores:  make(map[entity.DocumentKind]*invoice.Store),
	}
}

// Session identidad de la sesión dueña del workspace.
func (w *Workspace) Session() entity.Session { return w.session }

// Store devuelve (creándolo si hace falta) el Store del tipo.
func (w *Workspace) Store(kind entity.DocumentKind) (*invoice.Store, error) {
	if s, ok := w.stores[kind]; ok {
		return s, nil
	}
	spec, ok := kind.Spec()
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownKind, kind)
	}
	s := invoice.NewStore(spec, w.session)
	w.stores[kind] = s
	return s, nil
}

// adopt pasa el workspace a la sesión indicada sin perder filas.
func (w *Workspace) adopt(session entity.Session) {
	w.session = session
	for _, s := range w.stores {
		s.SetSession(session)
	}
}

// WorkspaceRegistry mantiene un workspace por cuenta y serializa el acceso a
// cada uno (las peticiones HTTP llegan concurrentes).
type WorkspaceRegistry struct {
	mu      sync.Mutex
	entries map[string]*workspaceEntry
}

type workspaceEntry struct {
	mu sync.Mutex
	ws *Workspace
}

// NewWorkspaceRegistry crea el registro vacío.
func NewWorkspaceRegistry() *WorkspaceRegistry {
	return &WorkspaceRegistry{entries: make(map[string]*workspaceEntry)}
}

// With ejecuta fn con acceso exclusivo al workspace de la cuenta. Si la sesión
// trae otros datos (p. ej. la cuenta pasó a premium) el workspace la adopta y
// conserva sus filas: dos tokens vigentes de la misma cuenta comparten filas.
func (r *WorkspaceRegistry) With(session entity.Session, fn func(*Workspace) error) error {
	r.mu.Lock()
	e, ok := r.entries[session.AccountID]
	if !ok {
		e = &workspaceEntry{ws: NewWorkspace(session)}
		r.entries[session.AccountID] = e
	}
	r.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ws.session != session {
		e.ws.adopt(session)
	}
	return fn(e.ws)
}
