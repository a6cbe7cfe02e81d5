package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/invoicegen/internal/application/dto"
	"github.com/jhoicas/invoicegen/internal/domain"
	"github.com/jhoicas/invoicegen/internal/domain/entity"
	"github.com/jhoicas/invoicegen/internal/domain/repository"
	"github.com/jhoicas/invoicegen/pkg/logger"
)

// DocumentUseCase previsualiza, imprime, guarda y consulta documentos.
type DocumentUseCase struct {
	registry  *WorkspaceRegistry
	assembler *Assembler
	renderer  *HTMLRenderer
	pdf       DocumentPDFGenerator
	exporter  DocumentExporter
	repo      repository.DocumentRepository
	log       *logger.Logger
	now       func() time.Time
}

// NewDocumentUseCase construye el caso de uso inyectando sus dependencias.
func NewDocumentUseCase(
	registry *WorkspaceRegistry,
	assembler *Assembler,
	renderer *HTMLRenderer,
	pdf DocumentPDFGenerator,
	exporter DocumentExporter,
	repo repository.DocumentRepository,
	log *logger.Logger,
) *DocumentUseCase {
	return &DocumentUseCase{
		registry:  registry,
		assembler: assembler,
		renderer:  renderer,
		pdf:       pdf,
		exporter:  exporter,
		repo:      repo,
		log:       log,
		now:       time.Now,
	}
}

// collect arma el documento con las filas actuales del tipo.
func (uc *DocumentUseCase) collect(session entity.Session, kind entity.DocumentKind, in dto.DocumentHeaderRequest) (*entity.Document, error) {
	var doc *entity.Document
	err := uc.registry.With(session, func(ws *Workspace) error {
		store, err := ws.Store(kind)
		if err != nil {
			return err
		}
		header := entity.DocumentHeader{CustomerName: in.CustomerName, Fields: in.Fields}
		d, err := uc.assembler.Collect(kind, header, store.Rows(), ws.Session())
		if err != nil {
			return err
		}
		doc = d
		return nil
	})
	return doc, err
}

// Preview devuelve el HTML imprimible del documento en curso.
func (uc *DocumentUseCase) Preview(session entity.Session, kind entity.DocumentKind, in dto.DocumentHeaderRequest) (string, error) {
	doc, err := uc.collect(session, kind, in)
	if err != nil {
		return "", err
	}
	return uc.renderer.Render(doc, uc.now())
}

// Print genera el PDF del documento en curso.
func (uc *DocumentUseCase) Print(ctx context.Context, session entity.Session, kind entity.DocumentKind, in dto.DocumentHeaderRequest) (pdfBytes []byte, filename string, err error) {
	doc, err := uc.collect(session, kind, in)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.pdf.GenerateDocumentPDF(ctx, doc)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, doc.Number + ".pdf", nil
}

// Save arma y guarda el documento. Si el almacenamiento falla el documento se
// devuelve igual con Saved=false y una advertencia; las filas en edición se
// conservan.
func (uc *DocumentUseCase) Save(ctx context.Context, session entity.Session, kind entity.DocumentKind, in dto.DocumentHeaderRequest) (*dto.SaveDocumentResponse, error) {
	doc, err := uc.collect(session, kind, in)
	if err != nil {
		return nil, err
	}
	resp := &dto.SaveDocumentResponse{Document: ToDocumentResponse(doc), Saved: true}
	if err := uc.repo.Save(ctx, doc); err != nil {
		uc.log.Warn().Err(err).
			Str("account_id", session.AccountID).
			Str("number", doc.Number).
			Msg("no se pudo guardar el documento")
		resp.Saved = false
		resp.Warning = fmt.Errorf("%w: %v", domain.ErrStorage, err).Error()
		return resp, nil
	}
	uc.log.Info().
		Str("account_id", session.AccountID).
		Str("number", doc.Number).
		Int("items", len(doc.Items)).
		Msg("documento guardado")
	return resp, nil
}

// Get documento guardado de la cuenta.
func (uc *DocumentUseCase) Get(ctx context.Context, session entity.Session, id string) (*dto.DocumentResponse, error) {
	doc, err := uc.load(ctx, session, id)
	if err != nil {
		return nil, err
	}
	resp := ToDocumentResponse(doc)
	return &resp, nil
}

// List documentos guardados de la cuenta, más recientes primero.
func (uc *DocumentUseCase) List(ctx context.Context, session entity.Session, page dto.PageRequest) (*dto.DocumentListResponse, error) {
	page.DefaultPage()
	docs, err := uc.repo.ListByAccount(ctx, session.AccountID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("documentos: listar: %w", err)
	}
	out := &dto.DocumentListResponse{
		Items: make([]dto.DocumentResponse, 0, len(docs)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, d := range docs {
		out.Items = append(out.Items, ToDocumentResponse(d))
	}
	return out, nil
}

// ExportXML XML del documento guardado y su huella SHA-256 sobre la forma canónica.
func (uc *DocumentUseCase) ExportXML(ctx context.Context, session entity.Session, id string) (xmlBytes []byte, fingerprint string, err error) {
	doc, err := uc.load(ctx, session, id)
	if err != nil {
		return nil, "", err
	}
	xmlBytes, fingerprint, err = uc.exporter.Export(doc)
	if err != nil {
		return nil, "", fmt.Errorf("xml: exportación fallida: %w", err)
	}
	return xmlBytes, fingerprint, nil
}

func (uc *DocumentUseCase) load(ctx context.Context, session entity.Session, id string) (*entity.Document, error) {
	doc, err := uc.repo.GetByID(ctx, session.AccountID, id)
	if err != nil {
		return nil, fmt.Errorf("documentos: obtener: %w", err)
	}
	if doc == nil {
		return nil, domain.ErrNotFound
	}
	return doc, nil
}
