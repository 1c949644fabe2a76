package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"animal-shelter-dashboard/internal/domain/outcomes"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OutcomesRepo guarda cada documento como JSONB en "<database>"."<collection>".
type OutcomesRepo struct {
	db    *sql.DB
	table string
}

func NewOutcomesRepo(db *sql.DB, database, collection string) *OutcomesRepo {
	return &OutcomesRepo{
		db:    db,
		table: pgx.Identifier{database, collection}.Sanitize(),
	}
}

func (r *OutcomesRepo) Find(ctx context.Context, p outcomes.Predicate) ([]outcomes.Record, error) {
	b := newWhereBuilder()
	where, err := b.compile(p)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT data FROM `+r.table+` WHERE `+where+` ORDER BY seq ASC`, b.args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: find: %w", err)
	}
	defer rows.Close()

	out := make([]outcomes.Record, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var rec outcomes.Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("postgres: decode document: %w", err)
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}

func (r *OutcomesRepo) InsertOne(ctx context.Context, rec outcomes.Record) (string, error) {
	data, err := encodeDoc(rec)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	if _, err := r.db.ExecContext(ctx, `INSERT INTO `+r.table+` (id, data) VALUES ($1, $2::jsonb)`, id, data); err != nil {
		return "", fmt.Errorf("postgres: insert: %w", err)
	}
	return id, nil
}

// Update: `data || changes` es el $set; `NOT data @> changes` descarta los que no cambian,
// así RowsAffected cuenta modificados y no matcheados.
func (r *OutcomesRepo) Update(ctx context.Context, p outcomes.Predicate, changes outcomes.Record, many bool) (int64, error) {
	data, err := encodeDoc(changes)
	if err != nil {
		return 0, err
	}

	b := newWhereBuilder(data)
	where, err := b.compile(p)
	if err != nil {
		return 0, err
	}

	q := `UPDATE ` + r.table + ` SET data = data || $1::jsonb WHERE ` + where + ` AND NOT (data @> $1::jsonb)`
	if !many {
		q = `UPDATE ` + r.table + ` SET data = data || $1::jsonb
			WHERE id = (SELECT id FROM ` + r.table + ` WHERE ` + where + ` ORDER BY seq ASC LIMIT 1)
			AND NOT (data @> $1::jsonb)`
	}

	res, err := r.db.ExecContext(ctx, q, b.args...)
	if err != nil {
		return 0, fmt.Errorf("postgres: update: %w", err)
	}
	return res.RowsAffected()
}

func (r *OutcomesRepo) Delete(ctx context.Context, p outcomes.Predicate, many bool) (int64, error) {
	b := newWhereBuilder()
	where, err := b.compile(p)
	if err != nil {
		return 0, err
	}

	q := `DELETE FROM ` + r.table + ` WHERE ` + where
	if !many {
		q = `DELETE FROM ` + r.table + `
			WHERE id = (SELECT id FROM ` + r.table + ` WHERE ` + where + ` ORDER BY seq ASC LIMIT 1)`
	}

	res, err := r.db.ExecContext(ctx, q, b.args...)
	if err != nil {
		return 0, fmt.Errorf("postgres: delete: %w", err)
	}
	return res.RowsAffected()
}

func encodeDoc(rec outcomes.Record) (string, error) {
	if rec == nil {
		rec = outcomes.Record{}
	}
	b, err := json.Marshal(rec.WithoutRowKey())
	if err != nil {
		return "", fmt.Errorf("postgres: encode document: %w", err)
	}
	return string(b), nil
}
