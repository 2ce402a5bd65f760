package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/assetledger/backend/internal/infrastructure/config"
	"github.com/assetledger/backend/internal/infrastructure/logger"
	"github.com/assetledger/backend/internal/infrastructure/migration"
	"github.com/assetledger/backend/migrations"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const defaultMigrationsPath = "migrations"

var errUsage = errors.New("invalid usage")

// options are the parsed flags shared by every command
type options struct {
	path string
	yes  bool
	log  *zap.Logger
}

// source returns the migrations to run: a directory when -path is set,
// otherwise the set compiled into the binary
func (o options) source() fs.FS {
	if o.path != "" {
		return os.DirFS(o.path)
	}
	return migrations.FS
}

type command struct {
	needsDB bool
	run     func(o options, m *migration.Migrator, args []string) error
}

var commands = map[string]command{
	"create":  {run: runCreate},
	"list":    {run: runList},
	"up":      {needsDB: true, run: func(_ options, m *migration.Migrator, _ []string) error { return m.Up() }},
	"down":    {needsDB: true, run: runDown},
	"step":    {needsDB: true, run: runStep},
	"version": {needsDB: true, run: runVersion},
	"force":   {needsDB: true, run: runForce},
}

func main() {
	var (
		o        options
		logLevel string
	)
	flag.StringVar(&o.path, "path", "", "Read migrations from this directory instead of the embedded set")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&o.yes, "yes", false, "Confirm destructive commands (down) against a production config")
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(2)
	}
	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n\n", args[0])
		printUsage()
		os.Exit(2)
	}

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: logger.DefaultTimeFormat,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	o.log = log

	if err := execute(o, cmd, args); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		log.Error("Migration command failed", zap.String("command", args[0]), zap.Error(err))
		os.Exit(1)
	}
}

func execute(o options, cmd command, args []string) error {
	if !cmd.needsDB {
		return cmd.run(o, nil, args[1:])
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if args[0] == "down" && cfg.IsProduction() && !o.yes {
		return fmt.Errorf("%w: refusing to roll back a production database without -yes", errUsage)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	m, err := migration.New(db, o.source(), o.log)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer m.Close()

	o.log.Info("Running migration command",
		zap.String("command", args[0]),
		zap.String("database", cfg.Database.DBName),
	)
	return cmd.run(o, m, args[1:])
}

func runCreate(o options, _ *migration.Migrator, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: migrate create <name> [description]", errUsage)
	}
	dir := o.path
	if dir == "" {
		dir = defaultMigrationsPath
	}
	description := ""
	if len(args) > 1 {
		description = args[1]
	}
	mf, err := migration.CreateMigration(dir, args[0], description, time.Now())
	if err != nil {
		return err
	}
	o.log.Info("Migration created",
		zap.String("version", mf.Version),
		zap.String("up_file", mf.UpPath),
		zap.String("down_file", mf.DownPath),
	)
	return nil
}

func runList(o options, _ *migration.Migrator, _ []string) error {
	names, err := migration.ListMigrations(o.source())
	if err != nil {
		return err
	}
	if len(names) == 0 {
		o.log.Info("No migrations found")
		return nil
	}
	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}

func runDown(_ options, m *migration.Migrator, _ []string) error {
	return m.Down()
}

func runStep(_ options, m *migration.Migrator, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: migrate step <n>", errUsage)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n == 0 {
		return fmt.Errorf("%w: step count must be a non-zero integer, got %q", errUsage, args[0])
	}
	return m.Steps(n)
}

func runVersion(o options, m *migration.Migrator, _ []string) error {
	version, dirty, err := m.Version()
	if err != nil {
		return err
	}
	if version == 0 {
		o.log.Info("No migrations applied")
		return nil
	}
	o.log.Info("Current migration version", zap.Uint("version", version), zap.Bool("dirty", dirty))
	return nil
}

func runForce(_ options, m *migration.Migrator, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: migrate force <version>", errUsage)
	}
	version, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: invalid version %q", errUsage, args[0])
	}
	return m.Force(version)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Asset ledger schema migrations

Usage:
  migrate [flags] <command> [arguments]

Commands:
  up                    Apply all pending migrations
  down                  Roll back all migrations (needs -yes in production)
  step <n>              Apply n migrations, negative n rolls back
  version               Show the applied version
  force <version>       Mark a version as applied after a failed run
  create <name> [desc]  Write a new up/down file pair
  list                  List available migrations

Flags:
  -path string          Migrations directory (default: the embedded set)
  -log-level string     debug, info, warn or error (default: info)
  -yes                  Confirm destructive commands

Database settings come from config.toml and ASSET_DATABASE_* variables.`)
}
