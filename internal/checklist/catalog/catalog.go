// Package catalog holds the static, versioned checklist definitions.
// Catalogs are pure data: no I/O, no failure modes at request time.
package catalog

import (
	"fmt"

	"jumpnjoy-ops/internal/checklist"
)

// Catalog is the single source of truth for which items must appear, in
// what order, under which checklist type, for any date.
type Catalog struct {
	name    string
	version string
	types   []checklist.TypeDefinition
	index   map[checklist.SlotKey]checklist.ItemDefinition
}

// New builds a catalog from ordered type definitions. Duplicate type keys
// or duplicate item ids within a type are programmer errors and panic at
// package init.
func New(name, version string, types ...checklist.TypeDefinition) *Catalog {
	c := &Catalog{
		name:    name,
		version: version,
		types:   types,
		index:   make(map[checklist.SlotKey]checklist.ItemDefinition),
	}

	seenTypes := make(map[string]bool, len(types))
	for _, t := range types {
		if seenTypes[t.Key] {
			panic(fmt.Sprintf("catalog %s: duplicate checklist type %q", name, t.Key))
		}
		seenTypes[t.Key] = true

		for _, item := range t.Items {
			key := checklist.SlotKey{Type: t.Key, ItemID: item.ID}
			if _, dup := c.index[key]; dup {
				panic(fmt.Sprintf("catalog %s: duplicate item %q in type %q", name, item.ID, t.Key))
			}
			c.index[key] = item
		}
	}
	return c
}

// Name returns the catalog name, e.g. "cafe".
func (c *Catalog) Name() string { return c.name }

// Version returns the catalog definition version.
func (c *Catalog) Version() string { return c.version }

// Types lists the checklist types in their defined order.
func (c *Catalog) Types() []checklist.TypeDefinition {
	out := make([]checklist.TypeDefinition, len(c.types))
	copy(out, c.types)
	return out
}

// ItemsOf returns the ordered items of one checklist type.
func (c *Catalog) ItemsOf(typeKey string) ([]checklist.ItemDefinition, bool) {
	for _, t := range c.types {
		if t.Key == typeKey {
			items := make([]checklist.ItemDefinition, len(t.Items))
			copy(items, t.Items)
			return items, true
		}
	}
	return nil, false
}

// Item looks up one item definition by type key and item id.
func (c *Catalog) Item(typeKey, itemID string) (checklist.ItemDefinition, bool) {
	item, ok := c.index[checklist.SlotKey{Type: typeKey, ItemID: itemID}]
	return item, ok
}

// Has reports whether the (type, item) pair exists in the catalog.
func (c *Catalog) Has(typeKey, itemID string) bool {
	_, ok := c.Item(typeKey, itemID)
	return ok
}

// Len is the total number of items across all types.
func (c *Catalog) Len() int { return len(c.index) }
