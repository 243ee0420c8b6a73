package denseindex

import (
	"context"
	"errors"
	"testing"

	"github.com/therealutkarshpriyadarshi/vector/internal/quantization"
)

func TestRegistryCreateGetList(t *testing.T) {
	reg, err := NewRegistry(t.TempDir(), nil, nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	idx, err := reg.Create("movies", CreateConfig{
		Dimension:     4,
		MaxCacheLevel: 3,
		LMax:          3,
		Variant:       quantization.TagHalfPrecisionFP,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if idx.Name != "movies" {
		t.Errorf("idx.Name = %q, want movies", idx.Name)
	}

	if _, err := reg.Create("movies", CreateConfig{Dimension: 4}); !errors.Is(err, ErrAlreadyExists) {
		t.Fatalf("Create duplicate = %v, want ErrAlreadyExists", err)
	}

	got, err := reg.Get("movies")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != idx {
		t.Errorf("Get returned a different *DenseIndex than Create")
	}

	names, err := reg.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 1 || names[0] != "movies" {
		t.Fatalf("List = %v, want [movies]", names)
	}
}

func TestRegistryGetReopensFromDisk(t *testing.T) {
	root := t.TempDir()
	reg1, err := NewRegistry(root, nil, nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	idx, err := reg1.Create("docs", CreateConfig{
		Dimension:     3,
		MaxCacheLevel: 2,
		LMax:          2,
		Variant:       quantization.TagHalfPrecisionFP,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	vec := []float32{1, 0, 0}
	if err := idx.Insert(context.Background(), Embedding{ID: "a", Raw: vec}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := idx.Flush(0); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	reg2, err := NewRegistry(root, nil, nil)
	if err != nil {
		t.Fatalf("NewRegistry (second): %v", err)
	}
	reopened, err := reg2.Get("docs")
	if err != nil {
		t.Fatalf("Get (second registry): %v", err)
	}
	if reopened.Dimension != 3 {
		t.Errorf("reopened.Dimension = %d, want 3", reopened.Dimension)
	}
}

func TestRegistryDeleteRemovesCollection(t *testing.T) {
	reg, err := NewRegistry(t.TempDir(), nil, nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	if _, err := reg.Create("temp", CreateConfig{
		Dimension:     2,
		MaxCacheLevel: 1,
		LMax:          1,
		Variant:       quantization.TagHalfPrecisionFP,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := reg.Delete("temp"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	names, err := reg.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 0 {
		t.Fatalf("List after delete = %v, want empty", names)
	}

	if _, err := reg.Get("temp"); err == nil {
		t.Fatal("Get after delete = nil error, want a not-found error")
	}
}

func TestRegistryClose(t *testing.T) {
	reg, err := NewRegistry(t.TempDir(), nil, nil)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	for _, name := range []string{"a", "b"} {
		if _, err := reg.Create(name, CreateConfig{
			Dimension:     2,
			MaxCacheLevel: 1,
			LMax:          1,
			Variant:       quantization.TagHalfPrecisionFP,
		}); err != nil {
			t.Fatalf("Create(%q): %v", name, err)
		}
	}
	if err := reg.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}
