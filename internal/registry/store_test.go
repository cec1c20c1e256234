package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkgctl/pkgctl/internal/fsops"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "node_registry.json")
	return NewStore(fsops.NewRealFS(), path), path
}

func TestStore_LoadMissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Load()
	if !errors.Is(err, ErrUnreadable) {
		t.Errorf("expected ErrUnreadable, got %v", err)
	}
}

func TestStore_LoadInvalidJSON(t *testing.T) {
	store, path := newTestStore(t)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to seed registry: %v", err)
	}

	_, err := store.Load()
	if !errors.Is(err, ErrUnreadable) {
		t.Errorf("expected ErrUnreadable, got %v", err)
	}
}

func TestStore_LoadNullNodes(t *testing.T) {
	store, path := newTestStore(t)
	if err := os.WriteFile(path, []byte(`{"nodes": null}`), 0644); err != nil {
		t.Fatalf("failed to seed registry: %v", err)
	}

	doc, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.Nodes == nil {
		t.Error("expected Nodes to be initialized")
	}
}

func TestStore_SaveFormat(t *testing.T) {
	store, path := newTestStore(t)

	doc := NewDocument()
	doc.Add(Entry{Name: "robot_arm", Path: "src/robot_arm", Target: NodeTarget, Type: NodeType})

	if err := store.Save(doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read registry: %v", err)
	}

	want := `{
  "nodes": [
    {
      "name": "robot_arm",
      "path": "src/robot_arm",
      "target": "qnx",
      "type": "rti_dds"
    }
  ]
}
`
	if string(data) != want {
		t.Errorf("registry format mismatch:\ngot:\n%s\nwant:\n%s", data, want)
	}
}

func TestStore_SaveEmptyDocument(t *testing.T) {
	store, path := newTestStore(t)

	if err := store.Save(NewDocument()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read registry: %v", err)
	}

	want := "{\n  \"nodes\": []\n}\n"
	if string(data) != want {
		t.Errorf("expected %q, got %q", want, data)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	doc := NewDocument()
	doc.Add(Entry{Name: "lidar_driver", Path: "src/lidar_driver", Target: NodeTarget, Type: NodeType})
	doc.Add(Entry{Name: "motor_ctl", Path: "src/motor_ctl", Target: NodeTarget, Type: NodeType})

	if err := store.Save(doc); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(loaded.Nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(loaded.Nodes))
	}
	if loaded.Nodes[0].Name != "lidar_driver" || loaded.Nodes[1].Name != "motor_ctl" {
		t.Errorf("insertion order not preserved: %+v", loaded.Nodes)
	}
}

func TestDocument_Find(t *testing.T) {
	doc := NewDocument()
	doc.Add(Entry{Name: "robot_arm", Path: "src/robot_arm"})

	entry, ok := doc.Find("robot_arm")
	if !ok {
		t.Fatal("expected to find robot_arm")
	}
	if entry.Path != "src/robot_arm" {
		t.Errorf("expected path 'src/robot_arm', got %q", entry.Path)
	}

	if _, ok := doc.Find("robot"); ok {
		t.Error("Find must match exactly, not by prefix")
	}
	if _, ok := doc.Find("missing"); ok {
		t.Error("expected missing name to be absent")
	}
}

func TestDocument_Remove(t *testing.T) {
	doc := NewDocument()
	doc.Add(Entry{Name: "a"})
	doc.Add(Entry{Name: "b"})
	doc.Add(Entry{Name: "c"})

	if !doc.Remove("b") {
		t.Fatal("expected Remove to report true")
	}
	if len(doc.Nodes) != 2 {
		t.Fatalf("expected 2 nodes after remove, got %d", len(doc.Nodes))
	}
	if doc.Nodes[0].Name != "a" || doc.Nodes[1].Name != "c" {
		t.Errorf("unexpected nodes after remove: %+v", doc.Nodes)
	}

	if doc.Remove("missing") {
		t.Error("expected Remove of missing name to report false")
	}
}
