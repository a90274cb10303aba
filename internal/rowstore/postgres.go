package rowstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ankush0407/salon-backend/internal/config"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// Postgres is a Store that keeps the sheet layout in a relational table:
// one row per (sheet, row_num) with the cells as a text array, header at
// row_num 1. It exists for deployments without a Google spreadsheet.
type Postgres struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewPostgres opens a pooled connection and verifies it.
func NewPostgres(cfg *config.DatabaseConfig, log zerolog.Logger) (*Postgres, error) {
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MaxLifetime)

	// Test connection with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	p := &Postgres{
		db:  db,
		log: log.With().Str("component", "rowstore").Str("backend", "postgres").Logger(),
	}

	p.log.Info().
		Str("host", cfg.Host).
		Str("database", cfg.Name).
		Int("max_open_conns", cfg.MaxOpenConns).
		Msg("Postgres row store connected")

	return p, nil
}

// Close releases the connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}

// RunMigrations executes all pending migrations using golang-migrate
func (p *Postgres) RunMigrations(migrationsPath string) error {
	p.log.Info().Str("path", migrationsPath).Msg("Running database migrations")

	driver, err := postgres.WithInstance(p.db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	p.log.Info().
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("Migrations completed")

	return nil
}

// EnsureTables inserts header rows for any standard table that is empty.
func (p *Postgres) EnsureTables(ctx context.Context) error {
	for table, headers := range Headers {
		var count int
		err := p.db.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM sheet_rows WHERE sheet = $1", table).Scan(&count)
		if err != nil {
			return fmt.Errorf("failed to inspect sheet %s: %w", table, err)
		}
		if count > 0 {
			continue
		}
		_, err = p.db.ExecContext(ctx,
			"INSERT INTO sheet_rows (sheet, row_num, cells) VALUES ($1, 1, $2)",
			table, pq.Array(headers))
		if err != nil {
			return fmt.Errorf("failed to seed sheet %s: %w", table, err)
		}
		p.log.Info().Str("sheet", table).Msg("Seeded header row")
	}
	return nil
}

// GetAll implements Store.
func (p *Postgres) GetAll(ctx context.Context, table string) ([]Record, error) {
	rows, err := p.db.QueryContext(ctx,
		"SELECT cells FROM sheet_rows WHERE sheet = $1 ORDER BY row_num", table)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", table, err)
	}
	defer rows.Close()

	var raw [][]string
	for rows.Next() {
		var cells []string
		if err := rows.Scan(pq.Array(&cells)); err != nil {
			return nil, err
		}
		raw = append(raw, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return []Record{}, nil
	}

	headers := raw[0]
	records := make([]Record, 0, len(raw)-1)
	for _, row := range raw[1:] {
		records = append(records, rowRecord(headers, row))
	}
	return records, nil
}

// Append implements Store.
func (p *Postgres) Append(ctx context.Context, table string, records []Record) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	headers, lastRow, err := headerAndLastRow(ctx, tx, table)
	if err != nil {
		return err
	}

	for i, rec := range records {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO sheet_rows (sheet, row_num, cells) VALUES ($1, $2, $3)",
			table, lastRow+1+i, pq.Array(recordValues(headers, rec)))
		if err != nil {
			return fmt.Errorf("failed to append to sheet %s: %w", table, err)
		}
	}

	return tx.Commit()
}

// UpdateRow implements Store.
func (p *Postgres) UpdateRow(ctx context.Context, table string, rowNumber int, rec Record) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	headers, lastRow, err := headerAndLastRow(ctx, tx, table)
	if err != nil {
		return err
	}
	if rowNumber < 2 || rowNumber > lastRow {
		return fmt.Errorf("sheet %s has no row %d", table, rowNumber)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE sheet_rows SET cells = $1 WHERE sheet = $2 AND row_num = $3",
		pq.Array(recordValues(headers, rec)), table, rowNumber)
	if err != nil {
		return fmt.Errorf("failed to update sheet %s row %d: %w", table, rowNumber, err)
	}

	return tx.Commit()
}

// DeleteRow implements Store. The delete and the renumbering of later rows
// commit together.
func (p *Postgres) DeleteRow(ctx context.Context, table string, rowNumber int) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"DELETE FROM sheet_rows WHERE sheet = $1 AND row_num = $2", table, rowNumber)
	if err != nil {
		return fmt.Errorf("failed to delete sheet %s row %d: %w", table, rowNumber, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("sheet %s has no row %d", table, rowNumber)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE sheet_rows SET row_num = row_num - 1 WHERE sheet = $1 AND row_num > $2",
		table, rowNumber)
	if err != nil {
		return fmt.Errorf("failed to renumber sheet %s rows: %w", table, err)
	}

	return tx.Commit()
}

// headerAndLastRow reads a sheet's column order and its highest row number.
func headerAndLastRow(ctx context.Context, tx *sql.Tx, table string) ([]string, int, error) {
	var headers []string
	err := tx.QueryRowContext(ctx,
		"SELECT cells FROM sheet_rows WHERE sheet = $1 AND row_num = 1", table).
		Scan(pq.Array(&headers))
	if err == sql.ErrNoRows {
		return nil, 0, fmt.Errorf("sheet %s has no header row", table)
	}
	if err != nil {
		return nil, 0, err
	}

	var lastRow int
	err = tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(row_num), 0) FROM sheet_rows WHERE sheet = $1", table).
		Scan(&lastRow)
	if err != nil {
		return nil, 0, err
	}
	return headers, lastRow, nil
}
