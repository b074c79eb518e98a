package store

import (
	"os"
	"testing"
)

// DatabaseStore tests need a disposable Postgres database, e.g.
// SLICK_TEST_DATABASE_DSN="host=localhost user=postgres dbname=slick_test".
func TestDatabaseStore(t *testing.T) {
	dsn := os.Getenv("SLICK_TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("SLICK_TEST_DATABASE_DSN not set")
	}

	ds, err := NewDatabaseStore(dsn)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	defer ds.Close()

	if err := ds.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	runStoreSuite(t, ds)
}
