package database

import (
	"path/filepath"
	"testing"
)

func TestOpenCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer Close(db)

	var one int
	if err := db.Raw("SELECT 1").Scan(&one).Error; err != nil || one != 1 {
		t.Errorf("SELECT 1 = %d, %v", one, err)
	}
}

func TestOpenInMemoryIsolatedByName(t *testing.T) {
	a, err := OpenInMemory("isolated_a")
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	defer Close(a)
	b, err := OpenInMemory("isolated_b")
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	defer Close(b)

	if err := a.Exec("CREATE TABLE only_in_a (id INTEGER)").Error; err != nil {
		t.Fatalf("create table: %v", err)
	}
	if b.Migrator().HasTable("only_in_a") {
		t.Error("table leaked into another in-memory database")
	}
	if !a.Migrator().HasTable("only_in_a") {
		t.Error("table missing in its own database")
	}
}
