package blob

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFSPutGetList(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := NewFS(dir, "mealplan")
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}

	info, err := store.Put(ctx, "2026-10-12/report.json", []byte(`{"ok":true}`), "application/json")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if info.Key != "mealplan/2026-10-12/report.json" || info.Size != 11 {
		t.Fatalf("info = %+v", info)
	}
	if _, err := os.Stat(filepath.Join(dir, "mealplan", "2026-10-12", "report.json")); err != nil {
		t.Fatalf("file not written: %v", err)
	}

	// Put overwrites.
	if _, err := store.Put(ctx, "2026-10-12/report.json", []byte(`{}`), "application/json"); err != nil {
		t.Fatalf("second Put: %v", err)
	}
	got, err := store.Get(ctx, "2026-10-12/report.json")
	if err != nil || string(got) != "{}" {
		t.Fatalf("Get = %q, %v", got, err)
	}

	_, _ = store.Put(ctx, "2026-10-12/shopping.csv", []byte("a,b\n"), "text/csv")
	_, _ = store.Put(ctx, "2026-10-19/report.json", []byte("{}"), "application/json")

	list, err := store.List(ctx, "2026-10-12/")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].Key != "mealplan/2026-10-12/report.json" || list[1].Key != "mealplan/2026-10-12/shopping.csv" {
		t.Fatalf("List = %+v", list)
	}
}

func TestFSMissingKey(t *testing.T) {
	store, _ := NewFS(t.TempDir(), "")
	if _, err := store.Get(context.Background(), "nope.json"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestFSRejectsEscapingKeys(t *testing.T) {
	store, _ := NewFS(t.TempDir(), "")
	for _, key := range []string{"../evil", "a/../../b", ""} {
		if _, err := store.Put(context.Background(), key, []byte("x"), ""); err == nil {
			t.Errorf("Put(%q) succeeded, want error", key)
		}
	}
}

func TestOpenDrivers(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, Options{Dir: t.TempDir()})
	if err != nil || s.Driver() != DriverFS {
		t.Fatalf("Open(default) = %v, %v", s, err)
	}
	if _, err := Open(ctx, Options{Driver: "s3"}); err == nil {
		t.Fatal("s3 without bucket should fail")
	}
	if _, err := Open(ctx, Options{Driver: "gcs"}); err == nil {
		t.Fatal("unknown driver should fail")
	}
	if _, err := Open(ctx, Options{Driver: "fs"}); err == nil {
		t.Fatal("fs without dir should fail")
	}
}
