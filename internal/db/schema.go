package db

import (
	"context"
	"database/sql"
)

const bootstrapSchema = `
CREATE TABLE IF NOT EXISTS users (
    id text PRIMARY KEY,
    name text NOT NULL,
    email text NOT NULL,
    image text,
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS vendors (
    id uuid PRIMARY KEY,
    user_id text NOT NULL REFERENCES users(id),
    name text NOT NULL,
    bank_account text NOT NULL,
    bank_name text NOT NULL,
    address1 text NOT NULL,
    address2 text,
    city text,
    country text,
    zip_code text,
    created_at timestamptz NOT NULL DEFAULT NOW(),
    updated_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS vendors_user_id_idx
ON vendors (user_id);
`

// Bootstrap creates the schema if it does not exist yet. It is idempotent
// and safe to run on every startup.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, bootstrapSchema)
	return err
}
