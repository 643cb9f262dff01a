package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-seller-sync/internal/logger"
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	migrate            func(*sql.DB) error
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return db.migrate(db.DB)
}

// wrapQueryError tags err with sentinel and, when the classifier says the
// failure is transient, with ErrTemporarilyUnavailable as well.
func (db *DB) wrapQueryError(sentinel, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrTemporarilyUnavailable, sentinel, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
