package postgres

import (
	"context"
	"fmt"
)

// schema is the full DDL. Child rows are removed by the database via
// ON DELETE CASCADE; repository code relies on that for vendor and
// invoice deletion.
const schema = `
CREATE TABLE IF NOT EXISTS vendors (
    id             UUID PRIMARY KEY,
    created_at     TIMESTAMPTZ NOT NULL,
    name           TEXT NOT NULL,
    contact_person TEXT,
    phone          TEXT,
    email          TEXT,
    address        TEXT,
    payment_terms  TEXT NOT NULL,
    visit_cadence  TEXT,
    has_display    BOOLEAN NOT NULL DEFAULT FALSE,
    display_rent   NUMERIC(14,2) NOT NULL DEFAULT 0,
    remarks        TEXT,
    status         TEXT NOT NULL DEFAULT 'active'
);

CREATE TABLE IF NOT EXISTS brands (
    id         UUID PRIMARY KEY,
    created_at TIMESTAMPTZ NOT NULL,
    vendor_id  UUID NOT NULL REFERENCES vendors(id) ON DELETE CASCADE,
    name       TEXT NOT NULL,
    sku        TEXT NOT NULL,
    category   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_brands_vendor ON brands(vendor_id);

CREATE TABLE IF NOT EXISTS issues (
    id             UUID PRIMARY KEY,
    created_at     TIMESTAMPTZ NOT NULL,
    vendor_id      UUID NOT NULL REFERENCES vendors(id) ON DELETE CASCADE,
    product_name   TEXT NOT NULL,
    issue_type     TEXT NOT NULL,
    quantity       INTEGER NOT NULL DEFAULT 0,
    estimated_loss NUMERIC(14,2) NOT NULL DEFAULT 0,
    description    TEXT NOT NULL DEFAULT '',
    status         TEXT NOT NULL DEFAULT 'pending',
    resolved_at    TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_issues_vendor ON issues(vendor_id);

CREATE TABLE IF NOT EXISTS invoices (
    id           UUID PRIMARY KEY,
    created_at   TIMESTAMPTZ NOT NULL,
    vendor_id    UUID NOT NULL REFERENCES vendors(id) ON DELETE CASCADE,
    number       TEXT NOT NULL,
    invoice_date TIMESTAMPTZ NOT NULL,
    amount       NUMERIC(14,2) NOT NULL,
    total_items  INTEGER NOT NULL DEFAULT 0,
    due_date     TIMESTAMPTZ,
    updated_at   TIMESTAMPTZ NOT NULL,
    UNIQUE (vendor_id, number)
);

CREATE TABLE IF NOT EXISTS payments (
    id            UUID PRIMARY KEY,
    created_at    TIMESTAMPTZ NOT NULL,
    invoice_id    UUID NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
    payment_date  TIMESTAMPTZ NOT NULL,
    amount        NUMERIC(14,2) NOT NULL,
    method        TEXT NOT NULL DEFAULT 'unspecified',
    cheque_number TEXT,
    cheque_date   TIMESTAMPTZ,
    notes         TEXT
);

CREATE INDEX IF NOT EXISTS idx_payments_invoice ON payments(invoice_id);

CREATE TABLE IF NOT EXISTS credit_notes (
    id             UUID PRIMARY KEY,
    created_at     TIMESTAMPTZ NOT NULL,
    invoice_id     UUID NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
    number         TEXT NOT NULL UNIQUE,
    credit_date    TIMESTAMPTZ NOT NULL,
    amount         NUMERIC(14,2) NOT NULL,
    items_returned INTEGER NOT NULL DEFAULT 0,
    reason         TEXT NOT NULL DEFAULT '',
    description    TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_credit_notes_invoice ON credit_notes(invoice_id);
`

// ApplySchema creates all tables and indexes if they do not exist.
func ApplySchema(ctx context.Context, pool *Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
