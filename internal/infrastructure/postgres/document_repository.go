package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/invoicegen/internal/domain/entity"
	"github.com/jhoicas/invoicegen/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo implementación PostgreSQL de DocumentRepository. Cabecera,
// ítems y recargos se guardan en una sola transacción.
type DocumentRepo struct {
	pool *pgxpool.Pool
}

// NewDocumentRepository construye el adaptador.
func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepo {
	return &DocumentRepo{pool: pool}
}

// Save persiste el documento completo.
func (r *DocumentRepo) Save(ctx context.Context, doc *entity.Document) error {
	fields, err := jsonMap(doc.Fields)
	if err != nil {
		return fmt.Errorf("encode fields: %w", err)
	}
	return inTx(ctx, r.pool, func(q Querier) error {
		_, err := q.Exec(ctx, `
			INSERT INTO documents (id, account_id, number, kind, created_at, customer_name, fields, subtotal, grand_total, author_name, premium)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			doc.ID, doc.Author.AccountID, doc.Number, string(doc.Kind), doc.CreatedAt, doc.CustomerName, fields,
			doc.Totals.Subtotal, doc.Totals.GrandTotal, doc.Author.DisplayName, doc.Author.Premium,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("document id already exists: %w", err)
			}
			return fmt.Errorf("insert document: %w", err)
		}
		for i, it := range doc.Items {
			attrs, err := jsonMap(it.Attributes)
			if err != nil {
				return fmt.Errorf("encode attributes: %w", err)
			}
			_, err = q.Exec(ctx, `
				INSERT INTO document_items (document_id, position, id, label, quantity, unit_measure, rate, amount, attributes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				doc.ID, i, it.ID, it.Label, it.Quantity, it.UnitMeasure, it.Rate, it.Amount, attrs,
			)
			if err != nil {
				return fmt.Errorf("insert document item: %w", err)
			}
		}
		for i, c := range doc.Totals.Charges {
			_, err := q.Exec(ctx, `
				INSERT INTO document_charges (document_id, position, name, percent, amount)
				VALUES ($1, $2, $3, $4, $5)`,
				doc.ID, i, c.Name, c.Percent, c.Amount,
			)
			if err != nil {
				return fmt.Errorf("insert document charge: %w", err)
			}
		}
		return nil
	})
}

// GetByID devuelve (nil, nil) si el documento no existe en la cuenta.
func (r *DocumentRepo) GetByID(ctx context.Context, accountID, id string) (*entity.Document, error) {
	return loadDocument(ctx, r.pool, accountID, id)
}

// ListByAccount documentos de la cuenta, más recientes primero.
func (r *DocumentRepo) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*entity.Document, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id FROM documents
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`, accountID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan document id: %w", err)
	}

	list := make([]*entity.Document, 0, len(ids))
	for _, id := range ids {
		doc, err := loadDocument(ctx, r.pool, accountID, id)
		if err != nil {
			return nil, err
		}
		if doc != nil {
			list = append(list, doc)
		}
	}
	return list, nil
}

func loadDocument(ctx context.Context, q Querier, accountID, id string) (*entity.Document, error) {
	var (
		doc    entity.Document
		kind   string
		fields []byte
	)
	err := q.QueryRow(ctx, `
		SELECT id, number, kind, created_at, customer_name, fields, subtotal, grand_total, account_id, author_name, premium
		FROM documents WHERE account_id = $1 AND id = $2`, accountID, id).Scan(
		&doc.ID, &doc.Number, &kind, &doc.CreatedAt, &doc.CustomerName, &fields,
		&doc.Totals.Subtotal, &doc.Totals.GrandTotal,
		&doc.Author.AccountID, &doc.Author.DisplayName, &doc.Author.Premium,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	doc.Kind = entity.DocumentKind(kind)
	if doc.Fields, err = scanJSONMap(fields); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT id, label, quantity, unit_measure, rate, amount, attributes
		FROM document_items WHERE document_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("list document items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			it    entity.LineItem
			attrs []byte
		)
		if err := rows.Scan(&it.ID, &it.Label, &it.Quantity, &it.UnitMeasure, &it.Rate, &it.Amount, &attrs); err != nil {
			return nil, fmt.Errorf("scan document item: %w", err)
		}
		if it.Attributes, err = scanJSONMap(attrs); err != nil {
			return nil, fmt.Errorf("decode attributes: %w", err)
		}
		doc.Items = append(doc.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	chargeRows, err := q.Query(ctx, `
		SELECT name, percent, amount
		FROM document_charges WHERE document_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("list document charges: %w", err)
	}
	defer chargeRows.Close()
	for chargeRows.Next() {
		var c entity.ChargeAmount
		if err := chargeRows.Scan(&c.Name, &c.Percent, &c.Amount); err != nil {
			return nil, fmt.Errorf("scan document charge: %w", err)
		}
		doc.Totals.Charges = append(doc.Totals.Charges, c)
	}
	return &doc, chargeRows.Err()
}
