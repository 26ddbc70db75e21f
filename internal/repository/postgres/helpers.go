package postgres

import (
	"fmt"
	"sort"
	"strings"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// setClause renders a column->value map into a deterministic
// "col1 = $1, col2 = $2" fragment plus the matching args slice.
// Placeholders start at $1; callers append their WHERE args after.
func setClause(fields map[string]interface{}) (string, []interface{}) {
	cols := make([]string, 0, len(fields))
	for col := range fields {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	parts := make([]string, 0, len(cols))
	args := make([]interface{}, 0, len(cols))
	for i, col := range cols {
		parts = append(parts, fmt.Sprintf("%s = $%d", col, i+1))
		args = append(args, fields[col])
	}
	return strings.Join(parts, ", "), args
}
