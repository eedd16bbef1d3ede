package state

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		t.Fatalf("failed to init schema: %v", err)
	}

	return db
}

func TestGetPanelEmpty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	panel, err := getPanel(db)
	if err != nil {
		t.Fatalf("getPanel failed: %v", err)
	}
	if panel != nil {
		t.Errorf("expected nil panel state on empty db, got %+v", panel)
	}
}

func TestSaveAndGetPanel(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	in := PanelState{Collapsed: true, Muted: true, ServerURL: "ws://host:7860/ws"}
	if err := savePanel(db, in); err != nil {
		t.Fatalf("savePanel failed: %v", err)
	}

	got, err := getPanel(db)
	if err != nil {
		t.Fatalf("getPanel failed: %v", err)
	}
	if got == nil {
		t.Fatal("getPanel returned nil after save")
	}
	if *got != in {
		t.Errorf("roundtrip = %+v, want %+v", *got, in)
	}
}

func TestSavePanelUpsert(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := savePanel(db, PanelState{Collapsed: true}); err != nil {
		t.Fatal(err)
	}
	if err := savePanel(db, PanelState{Muted: true, ServerURL: "ws://b"}); err != nil {
		t.Fatal(err)
	}

	got, err := getPanel(db)
	if err != nil {
		t.Fatal(err)
	}
	want := PanelState{Collapsed: false, Muted: true, ServerURL: "ws://b"}
	if *got != want {
		t.Errorf("after upsert = %+v, want %+v", *got, want)
	}
}
