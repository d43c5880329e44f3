package sqlite

import (
	"fmt"
	"sync/atomic"
	"testing"

	gormLogger "gorm.io/gorm/logger"
)

var testDBCounter atomic.Int64

// NewTestDB opens a fresh in-memory database with the schema migrated.
// Each call gets its own database so tests stay isolated; the shared
// cache keeps it alive across the pool's single connection.
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	name := fmt.Sprintf("testdb_%d", testDBCounter.Add(1))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := open(dsn, gormLogger.Silent)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	return db
}
