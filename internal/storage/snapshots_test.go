package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sandeepkv93/todomatic/internal/model"
)

func TestSnapshotsSaveReloadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.db")
	kv, err := Open(BackendSQLite, path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	ctx := context.Background()
	if err := NewSnapshots(kv).Save(ctx, []model.Task{model.NewTask("buy milk")}); err != nil {
		t.Fatalf("save: %v", err)
	}
	_ = kv.Close()

	reopened, err := Open(BackendSQLite, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	tasks, err := NewSnapshots(reopened).Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Name != "buy milk" || tasks[0].Completed {
		t.Fatalf("unexpected reloaded tasks: %#v", tasks)
	}
}

func TestSnapshotsLoadMissingAndEmpty(t *testing.T) {
	kv := NewFileKV(filepath.Join(t.TempDir(), "kv.json"))
	snaps := NewSnapshots(kv)
	ctx := context.Background()

	tasks, err := snaps.Load(ctx)
	if err != nil || tasks == nil || len(tasks) != 0 {
		t.Fatalf("expected empty list, got %#v err=%v", tasks, err)
	}

	if err := kv.Set(ctx, TasksKey, ""); err != nil {
		t.Fatalf("set: %v", err)
	}
	tasks, err = snaps.Load(ctx)
	if err != nil || len(tasks) != 0 {
		t.Fatalf("expected empty list for blank value, got %#v err=%v", tasks, err)
	}
}

func TestSnapshotsLoadCorrupt(t *testing.T) {
	kv := NewFileKV(filepath.Join(t.TempDir(), "kv.json"))
	ctx := context.Background()
	if err := kv.Set(ctx, TasksKey, "{not json"); err != nil {
		t.Fatalf("set: %v", err)
	}

	tasks, err := NewSnapshots(kv).Load(ctx)
	if !errors.Is(err, ErrCorruptSnapshot) {
		t.Fatalf("expected ErrCorruptSnapshot, got %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Fatalf("expected empty list on corrupt data, got %#v", tasks)
	}
	raw, ok, _ := kv.Get(ctx, TasksKey)
	if !ok || raw != "{not json" {
		t.Fatalf("corrupt value should be left in place, got %q ok=%v", raw, ok)
	}
}

func TestSnapshotsUndecodableFileLoadsEmptyThenSaves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.json")
	if err := os.WriteFile(path, []byte("garbage{"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	snaps := NewSnapshots(NewFileKV(path))
	ctx := context.Background()

	tasks, err := snaps.Load(ctx)
	if !errors.Is(err, ErrCorruptSnapshot) {
		t.Fatalf("expected ErrCorruptSnapshot, got %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Fatalf("expected empty list, got %#v", tasks)
	}
	raw, _ := os.ReadFile(path)
	if string(raw) != "garbage{" {
		t.Fatalf("load must not rewrite the file, got %q", raw)
	}

	if err := snaps.Save(ctx, []model.Task{model.NewTask("fresh start")}); err != nil {
		t.Fatalf("save after undecodable file: %v", err)
	}
	tasks, err = snaps.Load(ctx)
	if err != nil || len(tasks) != 1 || tasks[0].Name != "fresh start" {
		t.Fatalf("unexpected reload: %#v err=%v", tasks, err)
	}
}

func TestSnapshotsSavedAt(t *testing.T) {
	snaps := NewSnapshots(NewFileKV(filepath.Join(t.TempDir(), "kv.json")))
	ctx := context.Background()
	if _, ok, err := snaps.SavedAt(ctx); ok || err != nil {
		t.Fatalf("expected nothing saved yet: ok=%v err=%v", ok, err)
	}
	if err := snaps.Save(ctx, nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	if at, ok, err := snaps.SavedAt(ctx); !ok || err != nil || at.IsZero() {
		t.Fatalf("expected save time: %s ok=%v err=%v", at, ok, err)
	}
}

func TestSnapshotsClear(t *testing.T) {
	kv := NewFileKV(filepath.Join(t.TempDir(), "kv.json"))
	snaps := NewSnapshots(kv)
	ctx := context.Background()
	if err := snaps.Save(ctx, []model.Task{{ID: "todo-1", Name: "a"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := snaps.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, TasksKey); ok {
		t.Fatal("expected tasks key removed")
	}
}

func TestSnapshotsWireFormat(t *testing.T) {
	kv := NewFileKV(filepath.Join(t.TempDir(), "kv.json"))
	ctx := context.Background()
	if err := NewSnapshots(kv).Save(ctx, []model.Task{{ID: "todo-1", Name: "a", Completed: true}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, _, _ := kv.Get(ctx, TasksKey)
	want := `[{"id":"todo-1","name":"a","completed":true}]`
	if raw != want {
		t.Fatalf("unexpected wire format:\n got %s\nwant %s", raw, want)
	}
}
