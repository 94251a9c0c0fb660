package preset

import (
	"fmt"
	"sync"
)

// Store persists custom presets.
type Store interface {
	LoadCustomPresets() ([]Preset, error)
	SaveCustomPresets([]Preset) error
}

// Catalog holds the built-in presets followed by the custom ones.
// It is safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	store    Store
	builtins []Preset
	custom   []Preset
}

// NewCatalog creates a catalog and loads custom presets from store.
// store may be nil for an in-memory catalog. A load error is returned along
// with a usable catalog that has no custom presets.
func NewCatalog(store Store) (*Catalog, error) {
	c := &Catalog{
		store:    store,
		builtins: Builtins(),
	}
	if store == nil {
		return c, nil
	}

	custom, err := store.LoadCustomPresets()
	if err != nil {
		return c, fmt.Errorf("load custom presets: %w", err)
	}
	for _, p := range custom {
		if p.ID == "" {
			continue
		}
		p.Custom = true
		c.custom = append(c.custom, p)
	}
	return c, nil
}

// All returns every preset, built-ins first.
func (c *Catalog) All() []Preset {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Preset, 0, len(c.builtins)+len(c.custom))
	out = append(out, c.builtins...)
	out = append(out, c.custom...)
	return out
}

// Custom returns the custom presets in the order they were added.
func (c *Catalog) Custom() []Preset {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Preset(nil), c.custom...)
}

// Find returns the preset with the given id.
func (c *Catalog) Find(id string) (Preset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.builtins {
		if p.ID == id {
			return p, true
		}
	}
	for _, p := range c.custom {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// Add appends a custom preset and persists the custom list.
// A preset with an existing custom id replaces it.
func (c *Catalog) Add(p Preset) error {
	if p.Name == "" {
		return ErrEmptyName
	}
	p.Custom = true

	c.mu.Lock()
	defer c.mu.Unlock()

	next := make([]Preset, 0, len(c.custom)+1)
	replaced := false
	for _, existing := range c.custom {
		if existing.ID == p.ID {
			next = append(next, p)
			replaced = true
			continue
		}
		next = append(next, existing)
	}
	if !replaced {
		next = append(next, p)
	}
	return c.commitLocked(next)
}

// Delete removes a custom preset.
func (c *Catalog) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range c.builtins {
		if p.ID == id {
			return ErrBuiltin
		}
	}

	next := make([]Preset, 0, len(c.custom))
	for _, p := range c.custom {
		if p.ID != id {
			next = append(next, p)
		}
	}
	if len(next) == len(c.custom) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return c.commitLocked(next)
}

// commitLocked saves custom and installs it only if the save succeeds.
func (c *Catalog) commitLocked(custom []Preset) error {
	if c.store != nil {
		if err := c.store.SaveCustomPresets(custom); err != nil {
			return fmt.Errorf("save custom presets: %w", err)
		}
	}
	c.custom = custom
	return nil
}
