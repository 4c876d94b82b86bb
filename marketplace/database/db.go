package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jpillora/backoff"
	"github.com/tcgmarket/marketplace/internal/gateways/database/models"
	"github.com/tcgmarket/marketplace/marketplace"
	"github.com/tcgmarket/marketplace/marketplace/config"
	"github.com/tcgmarket/marketplace/marketplace/logger"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// tables in creation order.
var tables = []any{
	(*models.User)(nil),
	(*models.Card)(nil),
	(*models.Deck)(nil),
	(*models.DeckCard)(nil),
	(*models.Favorite)(nil),
	(*models.FavoriteDeck)(nil),
	(*models.CardHistory)(nil),
	(*models.DeckHistory)(nil),
	(*models.Transaction)(nil),
	(*models.TransactionDetail)(nil),
}

var tableNames = []string{
	"users",
	"cards",
	"decks",
	"deck_cards",
	"favorites",
	"favorites_decks",
	"cards_history",
	"decks_history",
	"transactions",
	"transaction_details",
}

var indexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_cards_user_id ON cards(user_id);",
	"CREATE INDEX IF NOT EXISTS idx_cards_in_stock ON cards(card_id) WHERE quantity > 0;",
	"CREATE INDEX IF NOT EXISTS idx_decks_user_id ON decks(user_id);",
	"CREATE INDEX IF NOT EXISTS idx_decks_created_at ON decks(created_at DESC);",
	"CREATE INDEX IF NOT EXISTS idx_deck_cards_card_id ON deck_cards(card_id);",
	"CREATE INDEX IF NOT EXISTS idx_favorites_card_id ON favorites(card_id);",
	"CREATE INDEX IF NOT EXISTS idx_favorites_decks_deck_id ON favorites_decks(deck_id);",
	"CREATE INDEX IF NOT EXISTS idx_transactions_user_date ON transactions(user_id, transaction_date DESC);",
	"CREATE INDEX IF NOT EXISTS idx_transaction_details_tx ON transaction_details(transaction_id);",
	"CREATE INDEX IF NOT EXISTS idx_users_email ON users(email);",
}

type DB struct {
	pool  *pgxpool.Pool
	bunDB *bun.DB
}

// New waits for the server to accept TCP connections, then opens the pgx
// pool and the bun handle used by the repositories.
func New(ctx context.Context, cfg marketplace.DBConfig, logQueries bool) (*DB, error) {
	if err := waitForServer(ctx, cfg); err != nil {
		return nil, err
	}

	poolConfig, err := pgxpool.ParseConfig(buildConnString(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}
	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}
	if cfg.MaxIdleConns > 0 {
		poolConfig.MinConns = int32(cfg.MaxIdleConns)
	}
	if cfg.MaxLifetime > 0 {
		poolConfig.MaxConnLifetime = time.Duration(cfg.MaxLifetime) * time.Second
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	bunDB := newBunDB(cfg)
	bunDB.AddQueryHook(logger.NewQueryHook(logQueries))

	return &DB{pool: pool, bunDB: bunDB}, nil
}

func waitForServer(ctx context.Context, cfg marketplace.DBConfig) error {
	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	b := &backoff.Backoff{
		Min:    500 * time.Millisecond,
		Max:    5 * time.Second,
		Factor: 2,
		Jitter: true,
	}
	dialer := net.Dialer{Timeout: config.NetworkDialTimeout}

	var err error
	for attempt := 1; attempt <= config.MaxRetries; attempt++ {
		var conn net.Conn
		conn, err = dialer.DialContext(ctx, "tcp", addr)
		if err == nil {
			conn.Close()
			return nil
		}

		wait := b.Duration()
		slog.Warn("Database not reachable yet",
			slog.String("type", "db"),
			slog.String("addr", addr),
			slog.Int("attempt", attempt),
			slog.Duration("retry_in", wait),
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return fmt.Errorf("database server unreachable after %d attempts: %w", config.MaxRetries, err)
}

func buildConnString(cfg marketplace.DBConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     cfg.Database,
		RawQuery: url.Values{"sslmode": {cfg.SSLMode}, "connect_timeout": {"5"}}.Encode(),
	}
	return u.String()
}

func newBunDB(cfg marketplace.DBConfig) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(buildConnString(cfg))))
	if cfg.PoolSize > 0 {
		sqldb.SetMaxOpenConns(cfg.PoolSize)
	}
	if cfg.MaxIdleConns > 0 {
		sqldb.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxLifetime > 0 {
		sqldb.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)
	}
	return bun.NewDB(sqldb, pgdialect.New())
}

func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

func (db *DB) BunDB() *bun.DB {
	return db.bunDB
}

// Ping checks both handles; the health endpoint reports 503 when it fails.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.pool.Ping(ctx); err != nil {
		return fmt.Errorf("pool ping: %w", err)
	}
	if err := db.bunDB.PingContext(ctx); err != nil {
		return fmt.Errorf("bun ping: %w", err)
	}
	return nil
}

func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
	if db.bunDB != nil {
		db.bunDB.Close()
	}
}

// InitializeSchema creates the marketplace tables and indexes if missing.
func (db *DB) InitializeSchema(ctx context.Context) error {
	for _, model := range tables {
		if _, err := db.bunDB.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	for _, idx := range indexes {
		if _, err := db.ExecWithLog(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	logger.LogSystem("Schema initialized", slog.Int("tables", len(tables)), slog.Int("indexes", len(indexes)))
	return nil
}

// ResetTables truncates every marketplace table that exists.
func (db *DB) ResetTables(ctx context.Context) error {
	rows, err := db.pool.Query(ctx, `SELECT table_name FROM information_schema.tables WHERE table_schema = 'public'`)
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}
	present := map[string]bool{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err == nil {
			present[name] = true
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}

	var names []string
	for _, name := range tableNames {
		if present[name] {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		slog.Warn("No marketplace tables found to reset", slog.String("type", "db"))
		return nil
	}

	stmt := "TRUNCATE TABLE " + joinIdentifiers(names) + " RESTART IDENTITY CASCADE;"
	if _, err := db.ExecWithLog(ctx, stmt); err != nil {
		return fmt.Errorf("failed to truncate tables: %w", err)
	}

	logger.LogSystem("Tables truncated", slog.Any("tables", names))
	return nil
}

func joinIdentifiers(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = `"` + strings.ReplaceAll(n, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ", ")
}

func (db *DB) ExecWithLog(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	start := time.Now()
	result, err := db.pool.Exec(ctx, sql, args...)
	logger.LogQuery(sql, time.Since(start), err)
	return result, err
}
