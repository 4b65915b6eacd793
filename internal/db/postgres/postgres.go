package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/hrutik5321/mechanicshop/internal/db"
	"github.com/hrutik5321/mechanicshop/internal/ui/table"
	pgxzero "github.com/jackc/pgx-zerolog"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// PingTimeout bounds the connectivity check done by Connect.
const PingTimeout = 10 * time.Second

var errNotConnected = errors.New("database not connected")

type PostgresDB struct {
	pool *pgxpool.Pool
	out  io.Writer
	log  zerolog.Logger

	traceSQL   bool
	traceLevel tracelog.LogLevel
}

type Option func(*PostgresDB)

// WithOutput sets where ExecuteQueryAndPrintResult writes. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(p *PostgresDB) {
		p.out = w
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(p *PostgresDB) {
		p.log = logger
	}
}

// WithSQLTrace logs every statement through pgx tracelog at the given level.
func WithSQLTrace(level tracelog.LogLevel) Option {
	return func(p *PostgresDB) {
		p.traceSQL = true
		p.traceLevel = level
	}
}

func New(opts ...Option) *PostgresDB {
	p := &PostgresDB{
		out: os.Stdout,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Connect implements db.DB. The pool never holds more than one connection.
func (p *PostgresDB) Connect(ctx context.Context, cfg db.ConnConfig) error {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to parse pgx pool config: %w", err)
	}
	poolConfig.MaxConns = 1
	poolConfig.MinConns = 0

	if p.traceSQL {
		poolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   pgxzero.NewLogger(p.log),
			LogLevel: p.traceLevel,
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return err
	}

	p.pool = pool
	p.log.Info().Str("database", cfg.Database).Str("host", cfg.Host).Msg("connected to the database")
	return nil
}

// Close db
func (p *PostgresDB) Close() error {
	if p.pool != nil {
		p.log.Info().Msg("closing database connection")
		p.pool.Close()
		p.pool = nil
	}
	return nil
}

// ExecuteUpdate
func (p *PostgresDB) ExecuteUpdate(ctx context.Context, sql string, args ...any) error {
	if p.pool == nil {
		return errNotConnected
	}

	_, err := p.pool.Exec(ctx, sql, args...)
	return err
}

// ExecuteQueryAndPrintResult
func (p *PostgresDB) ExecuteQueryAndPrintResult(ctx context.Context, sql string, args ...any) (int, error) {
	rs, err := p.FetchRows(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	if err := table.Render(p.out, rs.Columns, rs.Rows); err != nil {
		return 0, err
	}
	return len(rs.Rows), nil
}

// ExecuteQueryAndReturnResult
func (p *PostgresDB) ExecuteQueryAndReturnResult(ctx context.Context, sql string, args ...any) ([][]string, error) {
	rs, err := p.FetchRows(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return rs.Rows, nil
}

// ExecuteQuery
func (p *PostgresDB) ExecuteQuery(ctx context.Context, sql string, args ...any) (int, error) {
	if p.pool == nil {
		return 0, errNotConnected
	}

	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	count := 0
	if rows.Next() {
		count = 1
	}
	rows.Close()
	if rows.Err() != nil {
		return 0, rows.Err()
	}
	return count, nil
}

// CurrSeqVal
func (p *PostgresDB) CurrSeqVal(ctx context.Context, sequence string) (int, error) {
	if p.pool == nil {
		return -1, errNotConnected
	}

	var val int64
	err := p.pool.QueryRow(ctx, `SELECT currval($1::text::regclass)`, sequence).Scan(&val)
	if errors.Is(err, pgx.ErrNoRows) {
		return -1, nil
	}
	if err != nil {
		return -1, err
	}
	return int(val), nil
}

// FetchRows
func (p *PostgresDB) FetchRows(ctx context.Context, sql string, args ...any) (db.RowSet, error) {
	if p.pool == nil {
		return db.RowSet{}, errNotConnected
	}

	rows, err := p.pool.Query(ctx, sql, args...)
	if err != nil {
		return db.RowSet{}, err
	}
	defer rows.Close()

	fds := rows.FieldDescriptions()
	cols := make([]string, len(fds))
	for i, fd := range fds {
		cols[i] = string(fd.Name)
	}

	var data [][]string
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return db.RowSet{}, err
		}
		r := make([]string, len(values))
		for i, v := range values {
			r[i] = formatValue(fds[i].DataTypeOID, v)
		}
		data = append(data, r)
	}
	if rows.Err() != nil {
		return db.RowSet{}, rows.Err()
	}

	return db.RowSet{
		Columns: cols,
		Rows:    data,
	}, nil
}

// formatValue renders a decoded column value as text.
func formatValue(oid uint32, v any) string {
	switch val := v.(type) {

	case nil:
		return "NULL"

	// UUID as [16]byte
	case [16]byte:
		if uid, err := uuid.FromBytes(val[:]); err == nil {
			return uid.String()
		}
		return fmt.Sprint(val)

	case []byte:
		if oid == pgtype.UUIDOID {
			if uid, err := uuid.FromBytes(val); err == nil {
				return uid.String()
			}
		}
		return string(val)

	// pgx UUID type
	case pgtype.UUID:
		if val.Valid {
			return val.String()
		}
		return "NULL"

	case time.Time:
		if oid == pgtype.DateOID {
			return val.Format("2006-01-02")
		}
		return val.Format("2006-01-02 15:04:05")

	// pgtype.Numeric and friends
	case driver.Valuer:
		dv, err := val.Value()
		if err != nil || dv == nil {
			return "NULL"
		}
		return fmt.Sprint(dv)

	case fmt.Stringer:
		return val.String()

	default:
		return fmt.Sprint(v)
	}
}
