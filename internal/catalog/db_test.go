package catalog

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSchema = `
CREATE TABLE products (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    image TEXT NOT NULL DEFAULT '',
    price_small NUMERIC NOT NULL,
    price_medium NUMERIC NOT NULL,
    price_large NUMERIC NOT NULL,
    created_at DATETIME,
    updated_at DATETIME
);
`

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_fk=1"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := conn.Exec("DROP TABLE IF EXISTS products").Error; err != nil {
		t.Fatalf("reset schema: %v", err)
	}
	if err := conn.Exec(testSchema).Error; err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return conn
}
