package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/tcgmarket/marketplace/marketplace"
	"github.com/tcgmarket/marketplace/marketplace/database"
	"github.com/tcgmarket/marketplace/marketplace/logger"
)

type CLI struct {
	Config string `help:"Path to the TOML config." default:"config.toml" type:"path"`

	Init  initCmd  `cmd:"" help:"Create missing tables and indexes."`
	Reset resetCmd `cmd:"" help:"Truncate every marketplace table."`
	Check checkCmd `cmd:"" help:"Verify the database is reachable."`
}

type initCmd struct{}

func (initCmd) Run(ctx context.Context, db *database.DB) error {
	return db.InitializeSchema(ctx)
}

type resetCmd struct {
	Yes bool `help:"Confirm that all data will be deleted." short:"y"`
}

func (r resetCmd) Run(ctx context.Context, db *database.DB) error {
	if !r.Yes {
		slog.Warn("Refusing to reset without --yes", slog.String("type", "sys"))
		return nil
	}
	return db.ResetTables(ctx)
}

type checkCmd struct{}

func (checkCmd) Run(ctx context.Context, db *database.DB) error {
	if err := db.Ping(ctx); err != nil {
		return err
	}
	slog.Info("Database reachable", slog.String("type", "db"))
	return nil
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("migrate"),
		kong.Description("Marketplace schema management"),
		kong.UsageOnError(),
	)

	cfg, err := marketplace.LoadConfig(cli.Config)
	if err != nil {
		slog.Error("Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.SetDefault(slog.New(logger.New("Migrate", cfg.Log.Format, cfg.Log.Level, cfg.Log.AddSource)))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db, err := database.New(ctx, cfg.DB, cfg.Log.Queries)
	if err != nil {
		slog.Error("Failed to connect to database", slog.String("type", "db"), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	kctx.BindTo(ctx, (*context.Context)(nil))
	kctx.Bind(db)
	if err := kctx.Run(); err != nil {
		slog.Error("Command failed", slog.String("command", kctx.Command()), slog.String("error", err.Error()))
		db.Close()
		os.Exit(1)
	}
	slog.Info("Done", slog.String("command", kctx.Command()))
}
