package orders

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSchema = `
CREATE TABLE orders (
    id TEXT PRIMARY KEY,
    customer_name TEXT NOT NULL,
    customer_contact TEXT NOT NULL,
    description TEXT NOT NULL,
    ordered_at DATETIME NOT NULL,
    address TEXT NOT NULL,
    payment_method TEXT NOT NULL,
    total NUMERIC NOT NULL,
    status TEXT NOT NULL DEFAULT 'confirmado',
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
	if err := conn.Exec("DROP TABLE IF EXISTS orders").Error; err != nil {
		t.Fatalf("reset schema: %v", err)
	}
	if err := conn.Exec(testSchema).Error; err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return conn
}
