// Package sqlerr turns PostgreSQL driver errors into hints an operator at the
// shop terminal can act on.
package sqlerr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Code int

const (
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
	StringTooLong
	InvalidText
	UndefinedTable
	UndefinedFunction
)

// SQLSTATE values we treat specially.
var codes = map[string]Code{
	"23505": UniqueViolation,
	"23503": ForeignKeyViolation,
	"23502": NotNullViolation,
	"23514": CheckViolation,
	"22001": StringTooLong,
	"22P02": InvalidText,
	"42P01": UndefinedTable,
	"42883": UndefinedFunction,
}

func MapCode(sqlState string) Code {
	if c, ok := codes[sqlState]; ok {
		return c
	}
	return Other
}

// ErrCode reports the category of err, or Other when it isn't a PostgreSQL error.
func ErrCode(err error) Code {
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return MapCode(pgerr.Code)
	}
	return Other
}

// Hint returns a one-line explanation of err for the operator, or "" when
// there's nothing to add to the database's own message.
func Hint(err error) string {
	if errors.Is(err, pgx.ErrNoRows) {
		return "No matching record was found"
	}

	var pgerr *pgconn.PgError
	if !errors.As(err, &pgerr) {
		return ""
	}

	entity := entityName(pgerr.TableName)

	switch MapCode(pgerr.Code) {
	case UniqueViolation:
		column := uniqueColumn(pgerr.ConstraintName)
		if column == "" {
			column = "identifier"
		}
		return fmt.Sprintf("A %s with this %s already exists", entity, column)

	case ForeignKeyViolation:
		return fmt.Sprintf("The %s references a record that does not exist", entity)

	case NotNullViolation:
		field := humanize(pgerr.ColumnName)
		if field == "" {
			field = "field"
		}
		return fmt.Sprintf("The %s is required", field)

	case CheckViolation:
		return fmt.Sprintf("The %s values do not meet required conditions", entity)

	case StringTooLong:
		return "A value is longer than the column allows"

	case InvalidText:
		return "A value has the wrong format for its column"

	case UndefinedTable, UndefinedFunction:
		return "The database schema does not match what this program expects"
	}
	return ""
}

// entityName turns a table name such as "closed_request" into "Closed Request".
func entityName(table string) string {
	if table == "" {
		return "record"
	}
	return humanize(table)
}

func humanize(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

var keySuffix = regexp.MustCompile(`^[a-z0-9]+(?:_[a-z0-9]+)*?_([a-z0-9]+)_key$`)

// uniqueColumn guesses the column from a constraint name. Primary keys
// ("customer_pkey") yield "".
func uniqueColumn(constraint string) string {
	if constraint == "" || strings.HasSuffix(constraint, "_pkey") {
		return ""
	}
	if strings.HasPrefix(constraint, "unique_") {
		parts := strings.Split(constraint, "_")
		if len(parts) >= 3 {
			return humanize(parts[len(parts)-1])
		}
	}
	if m := keySuffix.FindStringSubmatch(constraint); len(m) > 1 {
		return humanize(m[1])
	}
	return ""
}
