package sqlitestore

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/sidereusnuntius/moviedeck/internal/config"
	"github.com/sidereusnuntius/moviedeck/internal/initialization"
	"github.com/sidereusnuntius/moviedeck/internal/localstore"
)

var (
	ctx   = context.Background()
	store *SettingsStore
)

func TestMain(m *testing.M) {
	db, err := initialization.OpenDB(":memory:")
	if err != nil {
		panic(err)
	}
	defer db.Close()

	cfg := config.Configuration{
		DbUrl:            ":memory:",
		MigrationsFolder: "../../../migrations",
	}
	if err = initialization.SetupDB(&cfg, db); err != nil {
		panic(err)
	}

	store = New(db)
	os.Exit(m.Run())
}

func TestGetMissingKey(t *testing.T) {
	_, err := store.Get(ctx, "missing")
	if !errors.Is(err, localstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSetAndGet(t *testing.T) {
	if err := store.Set(ctx, localstore.KeyTheme, "dark"); err != nil {
		t.Fatal("unexpected error:", err)
	}

	value, err := store.Get(ctx, localstore.KeyTheme)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if value != "dark" {
		t.Errorf("expected dark, got %q", value)
	}
}

func TestSetOverwrites(t *testing.T) {
	key := "overwrite-key"
	if err := store.Set(ctx, key, "first"); err != nil {
		t.Fatal(err)
	}
	if err := store.Set(ctx, key, "second"); err != nil {
		t.Fatal(err)
	}

	value, err := store.Get(ctx, key)
	if err != nil {
		t.Fatal(err)
	}
	if value != "second" {
		t.Errorf("expected second, got %q", value)
	}
}

func TestDelete(t *testing.T) {
	key := "delete-key"
	if err := store.Set(ctx, key, "value"); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(ctx, key); err != nil {
		t.Fatal("unexpected error:", err)
	}

	if _, err := store.Get(ctx, key); !errors.Is(err, localstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting again is not an error.
	if err := store.Delete(ctx, key); err != nil {
		t.Errorf("delete must be idempotent, got %v", err)
	}
}
