package logger

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
)

// QueryHook logs bun statements with their duration. Failures are always
// logged; successful statements only when Verbose is set.
type QueryHook struct {
	Verbose bool
}

var _ bun.QueryHook = (*QueryHook)(nil)

func NewQueryHook(verbose bool) *QueryHook {
	return &QueryHook{Verbose: verbose}
}

func (h *QueryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *QueryHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	err := event.Err
	// a lookup miss is not a failure
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
	}
	if err == nil && !h.Verbose {
		return
	}

	var rows int64
	if event.Result != nil {
		rows, _ = event.Result.RowsAffected()
	}
	logStatement(event.Operation(), event.Query, time.Since(event.StartTime), rows, err)
}

func logStatement(operation, query string, took time.Duration, rows int64, err error) {
	if err != nil {
		slog.Error("Query failed",
			slog.String("type", "db"),
			slog.String("operation", operation),
			slog.String("query", query),
			slog.Duration("took", took),
			slog.String("error", err.Error()),
		)
		return
	}

	slog.Debug("Query executed",
		slog.String("type", "db"),
		slog.String("operation", operation),
		slog.String("query", query),
		slog.Duration("took", took),
		slog.Int64("affected_rows", rows),
	)
}
