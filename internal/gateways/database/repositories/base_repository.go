package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tcgmarket/marketplace/internal/domain/apperr"
	"github.com/tcgmarket/marketplace/marketplace/config"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

// BaseRepository provides common repository functionality
type BaseRepository struct {
	db             bun.IDB
	defaultTimeout time.Duration
}

// NewBaseRepository wraps either a *bun.DB or a bun.Tx.
func NewBaseRepository(db bun.IDB) BaseRepository {
	return BaseRepository{
		db:             db,
		defaultTimeout: config.DefaultQueryTimeout,
	}
}

// RepositoryError represents a repository-level error
type RepositoryError struct {
	Operation string
	Entity    string
	Err       error
}

func (re *RepositoryError) Error() string {
	return fmt.Sprintf("repository error during %s for %s: %v", re.Operation, re.Entity, re.Err)
}

func (re *RepositoryError) Unwrap() error {
	return re.Err
}

func (br *BaseRepository) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, br.defaultTimeout)
}

// HandleErrorWithID maps driver errors to domain errors: missing rows become
// NotFoundError, unique violations become ConflictError.
func (br *BaseRepository) HandleErrorWithID(operation, entity string, id interface{}, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return &apperr.NotFoundError{Entity: entity, ID: id}
	}

	if constraint, ok := uniqueViolation(err); ok {
		return &apperr.ConflictError{Entity: entity, Field: constraint, Value: id}
	}

	return &RepositoryError{
		Operation: operation,
		Entity:    entity,
		Err:       err,
	}
}

// RequireAffected turns an update or delete that touched no rows into a
// NotFoundError.
func (br *BaseRepository) RequireAffected(res sql.Result, entity string, id interface{}) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return &RepositoryError{Operation: "rows_affected", Entity: entity, Err: err}
	}
	if affected == 0 {
		return &apperr.NotFoundError{Entity: entity, ID: id}
	}
	return nil
}

// ExecWithTimeout executes a query with timeout and error handling
func (br *BaseRepository) ExecWithTimeout(ctx context.Context, operation, entity string, id interface{}, query func(context.Context) (sql.Result, error)) (sql.Result, error) {
	timeoutCtx, cancel := br.WithTimeout(ctx)
	defer cancel()

	result, err := query(timeoutCtx)
	return result, br.HandleErrorWithID(operation, entity, id, err)
}

// SelectWithTimeout executes a select query with timeout and error handling
func (br *BaseRepository) SelectWithTimeout(ctx context.Context, operation, entity string, id interface{}, query func(context.Context) error) error {
	timeoutCtx, cancel := br.WithTimeout(ctx)
	defer cancel()

	return br.HandleErrorWithID(operation, entity, id, query(timeoutCtx))
}

func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return pgErr.ConstraintName, true
	}
	var drvErr pgdriver.Error
	if errors.As(err, &drvErr) && drvErr.Field('C') == pgerrcode.UniqueViolation {
		return drvErr.Field('n'), true
	}
	return "", false
}
