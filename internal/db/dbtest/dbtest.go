// Package dbtest connects tests to a disposable PostgreSQL database.
//
// Tests using it are skipped unless MECHANICSHOP_TEST_DATABASE_URL points at a
// database the tests may freely drop and recreate the shop tables in.
package dbtest

import (
	"context"
	_ "embed"
	"io"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/hrutik5321/mechanicshop/internal/db"
	"github.com/hrutik5321/mechanicshop/internal/db/postgres"
	"github.com/stretchr/testify/require"
)

const EnvDatabaseURL = "MECHANICSHOP_TEST_DATABASE_URL"

//go:embed schema.sql
var schema string

// ConnConfig reads the test database location from the environment and skips
// the test when it is not set.
func ConnConfig(t *testing.T) db.ConnConfig {
	t.Helper()

	raw := os.Getenv(EnvDatabaseURL)
	if raw == "" {
		t.Skipf("%s not set, skipping database test", EnvDatabaseURL)
	}

	u, err := url.Parse(raw)
	require.NoError(t, err)

	password, _ := u.User.Password()
	port := u.Port()
	if port == "" {
		port = "5432"
	}
	sslMode := u.Query().Get("sslmode")

	return db.ConnConfig{
		Host:     u.Hostname(),
		Port:     port,
		User:     u.User.Username(),
		Password: password,
		Database: strings.TrimPrefix(u.Path, "/"),
		SSLMode:  sslMode,
	}
}

// Open connects a gateway writing printed results to out and recreates the
// shop schema. The connection is closed when the test ends.
func Open(t *testing.T, out io.Writer) *postgres.PostgresDB {
	t.Helper()

	cfg := ConnConfig(t)
	gw := postgres.New(postgres.WithOutput(out))
	require.NoError(t, gw.Connect(context.Background(), cfg))
	t.Cleanup(func() { _ = gw.Close() })

	Reset(t, gw)
	return gw
}

// Reset drops and recreates every shop table.
func Reset(t *testing.T, gw db.DB) {
	t.Helper()

	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		require.NoError(t, gw.ExecuteUpdate(context.Background(), stmt), stmt)
	}
}
