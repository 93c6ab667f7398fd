package storage

import (
	"context"
	"database/sql"
	"errors"
)

// KVRepo es el backend persistente de la sesión: un key-value plano
// sobre sqlite, el equivalente local del localStorage del navegador.
type KVRepo struct{ db *sql.DB }

func NewKVRepo(db *sql.DB) *KVRepo { return &KVRepo{db: db} }

// Get devuelve (valor, true) si la clave existe. Clave ausente no es
// error: es (_, false, nil).
func (r *KVRepo) Get(ctx context.Context, key string) (string, bool, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT value FROM session_kv WHERE key = ?
`, key)
	var v string
	err := row.Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (r *KVRepo) Put(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO session_kv (key, value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (key) DO UPDATE SET
  value      = excluded.value,
  updated_at = CURRENT_TIMESTAMP
`, key, value)
	return err
}

func (r *KVRepo) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `
DELETE FROM session_kv WHERE key = ?
`, key)
	return err
}
