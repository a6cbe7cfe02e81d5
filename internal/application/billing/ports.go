package billing

import (
	"context"

	"github.com/jhoicas/invoicegen/internal/domain/entity"
)

// IDGenerator genera identificadores únicos (y monótonos) dentro del proceso.
type IDGenerator interface {
	NextID() string
}

// DocumentPDFGenerator genera la versión imprimible (PDF) de un documento.
type DocumentPDFGenerator interface {
	GenerateDocumentPDF(ctx context.Context, doc *entity.Document) ([]byte, error)
}

// DocumentExporter exporta un documento a XML y calcula su huella sobre la
// forma canónica.
type DocumentExporter interface {
	Export(doc *entity.Document) (xmlBytes []byte, fingerprint string, err error)
}
