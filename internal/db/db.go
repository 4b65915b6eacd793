package db

import (
	"context"
	"fmt"
	"net"
	"net/url"
)

// Connection parameters for the shop database.
type ConnConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN builds a postgres URL. The password is escaped so it can't break the URL.
func (c ConnConfig) DSN() string {
	userInfo := url.User(c.User)
	if c.Password != "" {
		userInfo = url.UserPassword(c.User, c.Password)
	}
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     userInfo,
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.Database,
		RawQuery: "sslmode=" + sslMode,
	}
	return u.String()
}

// Redacted is the DSN without the password, safe to print.
func (c ConnConfig) Redacted() string {
	return fmt.Sprintf("postgres://%s@%s/%s", c.User, net.JoinHostPort(c.Host, c.Port), c.Database)
}

// RowSet is a query result with every value rendered as text.
type RowSet struct {
	Columns []string
	Rows    [][]string
}

// DB is the gateway every shop operation goes through. Values are always
// passed as bind parameters, never spliced into the statement text.
type DB interface {
	Connect(ctx context.Context, cfg ConnConfig) error
	Close() error

	// ExecuteUpdate runs INSERT/UPDATE/DELETE/DDL.
	ExecuteUpdate(ctx context.Context, sql string, args ...any) error
	// ExecuteQueryAndPrintResult prints the header and one tab separated line
	// per row, and returns the number of rows.
	ExecuteQueryAndPrintResult(ctx context.Context, sql string, args ...any) (int, error)
	// ExecuteQueryAndReturnResult returns the rows without printing anything.
	ExecuteQueryAndReturnResult(ctx context.Context, sql string, args ...any) ([][]string, error)
	// ExecuteQuery reports 1 if the query returned at least one row, else 0.
	ExecuteQuery(ctx context.Context, sql string, args ...any) (int, error)
	FetchRows(ctx context.Context, sql string, args ...any) (RowSet, error)
	// CurrSeqVal returns currval of the sequence, or -1 when there is none.
	CurrSeqVal(ctx context.Context, sequence string) (int, error)
}
