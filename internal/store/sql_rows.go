package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-seller-sync/internal/logger"
)

// rowScanner is the subset of *sql.Rows used by scan functions.
type rowScanner interface {
	Scan(dest ...any) error
}

// selectAll runs query and scans every row with scan. fn names the calling
// method in logs.
func selectAll[T any](ctx context.Context, db *DB, fn string, query string, args []any, scan func(rowScanner) (T, error)) ([]T, error) {
	log := logger.FromContext(ctx)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Str("pg_code", postgresError(err)).Msg("failed to execute query")
		return nil, db.wrapQueryError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]T, 0, 64)
	for rows.Next() {
		item, scanErr := scan(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, db.wrapQueryError(ErrScanningRows, rowsErr)
	}

	return results, nil
}

var _ rowScanner = (*sql.Rows)(nil)
