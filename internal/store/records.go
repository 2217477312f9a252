// records.go implements record storage and retrieval.
//
// Records are stored as JSON text in insertion order. The position column is
// dense and zero-based within a collection, so the order of search ties is
// the order records were imported in.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// AppendRecords adds records after the existing ones.
func (s *SQLiteStore) AppendRecords(ctx context.Context, name string, data []json.RawMessage) (int, error) {
	var n int
	err := s.Tx(ctx, func(tx *sql.Tx) error {
		id, err := collectionID(ctx, tx, name)
		if err != nil {
			return err
		}
		n, err = insertRecords(ctx, tx, id, data)
		return err
	})
	return n, err
}

// ReplaceRecords removes every record in the collection and inserts data in
// its place. Readers see either the old set or the new one.
func (s *SQLiteStore) ReplaceRecords(ctx context.Context, name string, data []json.RawMessage) (int, error) {
	var n int
	err := s.Tx(ctx, func(tx *sql.Tx) error {
		id, err := collectionID(ctx, tx, name)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE collection_id = ?`, id); err != nil {
			return fmt.Errorf("clear records of %s: %w", name, err)
		}
		n, err = insertRecords(ctx, tx, id, data)
		return err
	})
	return n, err
}

func insertRecords(ctx context.Context, tx *sql.Tx, collection int64, data []json.RawMessage) (int, error) {
	var next int
	err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position) + 1, 0) FROM records WHERE collection_id = ?`,
		collection).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("get next position: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO records (collection_id, position, data, created_at)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for i, d := range data {
		if !isObject(d) {
			return 0, fmt.Errorf("%w: record %d", ErrInvalidRecord, i)
		}
		if _, err := stmt.ExecContext(ctx, collection, next+i, string(d), now); err != nil {
			return 0, fmt.Errorf("insert record %d: %w", i, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `UPDATE collections SET updated_at = ? WHERE id = ?`, now, collection); err != nil {
		return 0, fmt.Errorf("touch collection: %w", err)
	}
	return len(data), nil
}

// isObject reports whether d is a JSON object.
func isObject(d json.RawMessage) bool {
	for _, c := range d {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return json.Valid(d)
		default:
			return false
		}
	}
	return false
}

// Records returns records in position order. A limit of 0 returns all.
func (s *SQLiteStore) Records(ctx context.Context, name string, limit int) ([]Record, error) {
	if _, err := s.Collection(ctx, name); err != nil {
		return nil, err
	}

	q := `SELECT r.id, r.position, r.data, r.created_at FROM records r
		JOIN collections c ON c.id = r.collection_id
		WHERE c.name = ? ORDER BY r.position`
	args := []any{name}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var data string
		if err := rows.Scan(&r.ID, &r.Position, &data, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		r.Data = json.RawMessage(data)
		out = append(out, r)
	}
	return out, rows.Err()
}

// CountRecords returns the number of records in a collection.
func (s *SQLiteStore) CountRecords(ctx context.Context, name string) (int64, error) {
	c, err := s.Collection(ctx, name)
	if err != nil {
		return 0, err
	}
	return c.Records, nil
}
