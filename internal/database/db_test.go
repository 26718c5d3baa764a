package database

import (
	"context"
	"io/fs"
	"strings"
	"testing"
)

func TestConnect_Validation(t *testing.T) {
	if _, err := Connect(context.Background(), ""); err == nil {
		t.Fatalf("expected error for empty dsn")
	}

	if _, err := Connect(context.Background(), "invalid-dsn"); err == nil {
		t.Fatalf("expected error for invalid dsn")
	}
}

func TestMigrate_NilPool(t *testing.T) {
	if err := Migrate(nil); err == nil {
		t.Fatalf("expected error for nil pool")
	}
	if err := Rollback(nil, 0); err == nil {
		t.Fatalf("expected error for zero steps")
	}
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrationFiles, "migrations")
	if err != nil {
		t.Fatalf("read embedded migrations: %v", err)
	}

	ups, downs := map[string]bool{}, map[string]bool{}
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		}
	}
	if len(ups) == 0 {
		t.Fatalf("expected at least one migration")
	}
	for version := range ups {
		if !downs[version] {
			t.Fatalf("migration %s has no down file", version)
		}
	}
}

func TestSchemaCascadesCompanyChildren(t *testing.T) {
	raw, err := fs.ReadFile(migrationFiles, "migrations/000001_create_content_schema.up.sql")
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	schema := string(raw)
	for _, table := range []string{"company_features", "company_services"} {
		idx := strings.Index(schema, "CREATE TABLE IF NOT EXISTS "+table)
		if idx < 0 {
			t.Fatalf("missing table %s", table)
		}
		block := schema[idx:]
		block = block[:strings.Index(block, ");")]
		if !strings.Contains(block, "REFERENCES companies (id) ON DELETE CASCADE") {
			t.Fatalf("expected %s to cascade on company delete", table)
		}
	}
	if !strings.Contains(schema, "CONSTRAINT companies_slug_key UNIQUE (slug)") {
		t.Fatalf("expected unique slug constraint")
	}
}
