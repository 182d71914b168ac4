package catalog_test

import (
	"testing"

	"jumpnjoy-ops/internal/checklist"
	"jumpnjoy-ops/internal/checklist/catalog"
)

func TestCafeCatalog(t *testing.T) {
	c := catalog.Cafe()

	t.Run("type keys and order", func(t *testing.T) {
		types := c.Types()
		want := []string{"opening", "midday", "closing"}
		if len(types) != len(want) {
			t.Fatalf("expected %d types, got %d", len(want), len(types))
		}
		for i, k := range want {
			if types[i].Key != k {
				t.Errorf("type %d: expected %q, got %q", i, k, types[i].Key)
			}
		}
	})

	t.Run("item counts", func(t *testing.T) {
		counts := map[string]int{"opening": 6, "midday": 8, "closing": 8}
		for key, want := range counts {
			items, ok := c.ItemsOf(key)
			if !ok {
				t.Fatalf("missing type %q", key)
			}
			if len(items) != want {
				t.Errorf("%s: expected %d items, got %d", key, want, len(items))
			}
		}
		if c.Len() != 22 {
			t.Errorf("expected 22 items total, got %d", c.Len())
		}
	})

	t.Run("lookup", func(t *testing.T) {
		item, ok := c.Item("opening", "ground_coffee")
		if !ok {
			t.Fatal("expected ground_coffee in opening")
		}
		if item.Label != "Ground coffee" {
			t.Errorf("unexpected label %q", item.Label)
		}
		if c.Has("opening", "lock_secure_premises") {
			t.Error("closing item should not resolve under opening")
		}
		if _, ok := c.ItemsOf("overnight"); ok {
			t.Error("unknown type should not resolve")
		}
	})

	t.Run("returned slices are copies", func(t *testing.T) {
		items, _ := c.ItemsOf("opening")
		items[0] = checklist.ItemDefinition{ID: "mutated", Label: "Mutated"}
		again, _ := c.ItemsOf("opening")
		if again[0].ID != "ground_coffee" {
			t.Error("catalog items leaked mutable state")
		}
	})
}

func TestMarshalCatalog(t *testing.T) {
	c := catalog.Marshal()

	if c.Name() != "marshal" {
		t.Errorf("unexpected name %q", c.Name())
	}
	for _, key := range []string{"opening", "midday", "closing"} {
		if _, ok := c.ItemsOf(key); !ok {
			t.Errorf("missing type %q", key)
		}
	}
	if !c.Has("opening", "check_springs") {
		t.Error("expected check_springs in marshal opening")
	}
}

func TestNewRejectsDuplicates(t *testing.T) {
	t.Run("duplicate item id within a type", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic on duplicate item id")
			}
		}()
		catalog.New("broken", "0",
			checklist.TypeDefinition{
				Key: "opening",
				Items: []checklist.ItemDefinition{
					{ID: "a", Label: "A"},
					{ID: "a", Label: "A again"},
				},
			},
		)
	})

	t.Run("duplicate type key", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic on duplicate type key")
			}
		}()
		catalog.New("broken", "0",
			checklist.TypeDefinition{Key: "opening"},
			checklist.TypeDefinition{Key: "opening"},
		)
	})
}
