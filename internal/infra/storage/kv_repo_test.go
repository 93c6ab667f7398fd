package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestRepo(t *testing.T) *KVRepo {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "session.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := Migrate(db); err != nil {
		t.Fatal(err)
	}
	return NewKVRepo(db)
}

func TestKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	if _, ok, err := r.Get(ctx, "access_token"); err != nil || ok {
		t.Fatalf("fresh get = (%v, %v)", ok, err)
	}

	if err := r.Put(ctx, "access_token", "tok-1"); err != nil {
		t.Fatal(err)
	}
	v, ok, err := r.Get(ctx, "access_token")
	if err != nil || !ok || v != "tok-1" {
		t.Fatalf("get = (%q, %v, %v)", v, ok, err)
	}

	// upsert pisa el valor anterior
	if err := r.Put(ctx, "access_token", "tok-2"); err != nil {
		t.Fatal(err)
	}
	v, _, _ = r.Get(ctx, "access_token")
	if v != "tok-2" {
		t.Fatalf("after upsert = %q", v)
	}

	if err := r.Delete(ctx, "access_token"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := r.Get(ctx, "access_token"); ok {
		t.Error("key survived delete")
	}

	// delete de clave inexistente no es error
	if err := r.Delete(ctx, "nope"); err != nil {
		t.Errorf("delete missing key: %v", err)
	}
}

func TestKVKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	_ = r.Put(ctx, "access_token", "t")
	_ = r.Put(ctx, "selected_game_id", "3")

	if err := r.Delete(ctx, "access_token"); err != nil {
		t.Fatal(err)
	}
	v, ok, _ := r.Get(ctx, "selected_game_id")
	if !ok || v != "3" {
		t.Errorf("sibling key clobbered: (%q, %v)", v, ok)
	}
}
