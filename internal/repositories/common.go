package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/karnaval/go-costume-catalog/internal/common"

	sq "github.com/Masterminds/squirrel"
)

// psql renders $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func columns(cols ...string) string {
	return strings.Join(cols, ", ")
}

func returning(cols []string) string {
	return "RETURNING " + columns(cols...)
}

// execAffectingOne runs a statement that must touch exactly one row,
// zero rows is common.ErrNoRows.
func execAffectingOne(ctx context.Context, db sqlTx, query string, args ...interface{}) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return common.ErrNoRows
	}
	return nil
}

func execAffected(ctx context.Context, db sqlTx, query string, args ...interface{}) (int64, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func queryExists(ctx context.Context, db sqlTx, query string, args ...interface{}) (bool, error) {
	var exists bool
	if err := db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func collectRows[T any](rows *sql.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()

	result := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
