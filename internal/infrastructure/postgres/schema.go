package postgres

import (
	"context"
	"fmt"
)

// schema tablas de documentos y directorios. Idempotente.
const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id            TEXT PRIMARY KEY,
	account_id    TEXT        NOT NULL,
	number        TEXT        NOT NULL,
	kind          TEXT        NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL,
	customer_name TEXT        NOT NULL DEFAULT '',
	fields        JSONB,
	subtotal      NUMERIC(20,4) NOT NULL,
	grand_total   NUMERIC(20,4) NOT NULL,
	author_name   TEXT        NOT NULL DEFAULT '',
	premium       BOOLEAN     NOT NULL DEFAULT FALSE
);
CREATE INDEX IF NOT EXISTS idx_documents_account_created ON documents (account_id, created_at DESC);

CREATE TABLE IF NOT EXISTS document_items (
	document_id  TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
	position     INT  NOT NULL,
	id           TEXT NOT NULL,
	label        TEXT NOT NULL DEFAULT '',
	quantity     NUMERIC(20,4) NOT NULL,
	unit_measure NUMERIC(20,4) NOT NULL,
	rate         NUMERIC(20,4) NOT NULL,
	amount       NUMERIC(20,4) NOT NULL,
	attributes   JSONB,
	PRIMARY KEY (document_id, position)
);

CREATE TABLE IF NOT EXISTS document_charges (
	document_id TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
	position    INT  NOT NULL,
	name        TEXT NOT NULL,
	percent     NUMERIC(9,4)  NOT NULL,
	amount      NUMERIC(20,4) NOT NULL,
	PRIMARY KEY (document_id, position)
);

CREATE TABLE IF NOT EXISTS customers (
	id                  TEXT PRIMARY KEY,
	account_id          TEXT NOT NULL,
	name                TEXT NOT NULL,
	tax_registration_no TEXT,
	address             TEXT,
	phone               TEXT,
	created_at          TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_customers_account ON customers (account_id);

CREATE TABLE IF NOT EXISTS products (
	id         TEXT PRIMARY KEY,
	account_id TEXT NOT NULL,
	name       TEXT NOT NULL,
	rate       NUMERIC(20,4) NOT NULL,
	tax_code   TEXT,
	unit       TEXT,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_products_account ON products (account_id);
`

// Migrate crea las tablas si no existen.
func Migrate(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
