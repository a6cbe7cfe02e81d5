package billing_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/invoicegen/internal/application/billing"
	"github.com/jhoicas/invoicegen/internal/domain/entity"
	"github.com/jhoicas/invoicegen/internal/domain/invoice"
)

var fixedNow = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

var (
	freeSession    = entity.Session{AccountID: "acc-1", DisplayName: "Asha", Premium: false}
	premiumSession = entity.Session{AccountID: "acc-2", DisplayName: "Ravi", Premium: true}
)

// seqIDs IDGenerator determinista.
type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (s *seqIDs) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("doc-%d", s.n)
}

func newAssembler() *billing.Assembler {
	numbers := invoice.NewRandomNumbererWith(func(int) int { return 7 })
	return billing.NewAssembler(&seqIDs{}, numbers, func() time.Time { return fixedNow })
}

// memDocs repositorio de documentos en memoria.
type memDocs struct {
	mu      sync.Mutex
	docs    map[string]*entity.Document
	failErr error
}

func newMemDocs() *memDocs { return &memDocs{docs: map[string]*entity.Document{}} }

func (m *memDocs) Save(_ context.Context, doc *entity.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	m.docs[doc.Author.AccountID+"/"+doc.ID] = doc
	return nil
}

func (m *memDocs) GetByID(_ context.Context, accountID, id string) (*entity.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.docs[accountID+"/"+id], nil
}

func (m *memDocs) ListByAccount(_ context.Context, accountID string, limit, offset int) ([]*entity.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.Document
	for _, d := range m.docs {
		if d.Author.AccountID == accountID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// memDirectory directorio en memoria.
type memDirectory struct {
	customers []*entity.Customer
	products  map[string]*entity.Product
}

func newMemDirectory() *memDirectory {
	return &memDirectory{products: map[string]*entity.Product{}}
}

func (m *memDirectory) SaveCustomer(_ context.Context, c *entity.Customer) error {
	m.customers = append(m.customers, c)
	return nil
}

func (m *memDirectory) ListCustomers(_ context.Context, accountID string) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range m.customers {
		if c.AccountID == accountID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memDirectory) SaveProduct(_ context.Context, p *entity.Product) error {
	m.products[p.ID] = p
	return nil
}

func (m *memDirectory) GetProduct(_ context.Context, accountID, id string) (*entity.Product, error) {
	p := m.products[id]
	if p == nil || p.AccountID != accountID {
		return nil, nil
	}
	return p, nil
}

func (m *memDirectory) ListProducts(_ context.Context, accountID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.products {
		if p.AccountID == accountID {
			out = append(out, p)
		}
	}
	return out, nil
}

// stubPDF y stubExporter dobles de infraestructura.
type stubPDF struct{}

func (stubPDF) GenerateDocumentPDF(_ context.Context, doc *entity.Document) ([]byte, error) {
	return []byte("%PDF-" + doc.Number), nil
}

type stubExporter struct{}

func (stubExporter) Export(doc *entity.Document) ([]byte, string, error) {
	if doc == nil {
		return nil, "", errors.New("nil")
	}
	return []byte("<document number=\"" + doc.Number + "\"/>"), "abc123", nil
}

func strPtr(s string) *string { return &s }
