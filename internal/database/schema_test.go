package database

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ticketOrdersDDL(t *testing.T) string {
	t.Helper()
	for _, stmt := range schemaStatements {
		if strings.Contains(stmt, "ticket_orders") {
			return stmt
		}
	}
	t.Fatal("ticket_orders DDL not found")
	return ""
}

func TestAllForeignKeysCascade(t *testing.T) {
	fk := regexp.MustCompile(`FOREIGN KEY[^,\n]*`)
	for _, stmt := range schemaStatements {
		for _, clause := range fk.FindAllString(stmt, -1) {
			assert.Contains(t, clause, "ON DELETE CASCADE", "in statement:\n%s", stmt)
		}
	}
}

// order_number must allow NULL while staying unique.  Concurrent
// purchase transactions insert NULL first and write the formatted
// number once the row id is known; a NOT NULL sentinel value would make
// them contend on one unique-index entry.
func TestOrderNumberColumnNullableAndUnique(t *testing.T) {
	ddl := ticketOrdersDDL(t)

	col := regexp.MustCompile(`order_number\s+[^,\n]*`).FindString(ddl)
	require.NotEmpty(t, col)
	assert.NotContains(t, col, "NOT NULL")
	assert.NotContains(t, col, "DEFAULT ''")
	assert.Contains(t, ddl, "UNIQUE INDEX uq_orders_number (order_number)")
}
