package customers

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSchema = `
CREATE TABLE customers (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL UNIQUE,
    contact TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    is_admin BOOLEAN NOT NULL DEFAULT 0,
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
	if err := conn.Exec("DROP TABLE IF EXISTS customers").Error; err != nil {
		t.Fatalf("reset schema: %v", err)
	}
	if err := conn.Exec(testSchema).Error; err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return conn
}
