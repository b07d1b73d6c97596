// Package checklist holds the two set-like collections: the food-name list
// feeding the roulette wheel, and the packed-item flags over the packing
// catalog.
package checklist

import "sync"

// FoodList is an ordered set of unique food names. Order is insertion order.
type FoodList struct {
	mu    sync.Mutex
	names []string
}

// NewFoodList creates a FoodList with the given entries.
func NewFoodList(names []string) *FoodList {
	f := &FoodList{}
	f.Replace(names)
	return f
}

// Add appends name unless an exact match already exists.
func (f *FoodList) Add(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range f.names {
		if n == name {
			return false
		}
	}
	f.names = append(f.names, name)
	return true
}

// Delete removes every entry exactly equal to name (at most one in practice,
// since Add dedupes).
func (f *FoodList) Delete(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.names[:0:0]
	for _, n := range f.names {
		if n != name {
			kept = append(kept, n)
		}
	}
	changed := len(kept) != len(f.names)
	f.names = kept
	return changed
}

// Names returns a copy of the list.
func (f *FoodList) Names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Replace swaps the whole list, e.g. from a loaded snapshot.
func (f *FoodList) Replace(names []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.names = make([]string, len(names))
	copy(f.names, names)
}

// PackedItems maps a packing-catalog item name to its packed flag. Absent
// entries mean "not packed".
type PackedItems struct {
	mu     sync.Mutex
	packed map[string]bool
}

// NewPackedItems creates an empty PackedItems.
func NewPackedItems() *PackedItems {
	return &PackedItems{packed: make(map[string]bool)}
}

// Toggle flips the flag for item; an absent key counts as false before the
// flip, so the first toggle sets true.
func (p *PackedItems) Toggle(item string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.packed[item] = !p.packed[item]
	return p.packed[item]
}

// Map returns a copy of the flags.
func (p *PackedItems) Map() map[string]bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]bool, len(p.packed))
	for k, v := range p.packed {
		out[k] = v
	}
	return out
}

// Replace swaps the flag map, e.g. from a loaded snapshot.
func (p *PackedItems) Replace(packed map[string]bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.packed = make(map[string]bool, len(packed))
	for k, v := range packed {
		p.packed[k] = v
	}
}

// PackedCount returns how many flags are currently true.
func (p *PackedItems) PackedCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, v := range p.packed {
		if v {
			n++
		}
	}
	return n
}
