// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package screenplay

import (
	"fmt"

	"github.com/pdiddy/rpy-tools/internal/rpy"
)

// idPrefix prefixes identifiers assigned to speakers that were not
// pre-seeded.
const idPrefix = "ch_"

// Characters maps speaker display names to script identifiers in
// first-seen order. The zero value is ready to use.
type Characters struct {
	ids   map[string]string
	order []string
}

// NewCharacters returns a map pre-seeded with the given characters, in
// order. Later duplicates of a name are ignored.
func NewCharacters(seed []rpy.Character) *Characters {
	c := &Characters{}
	for _, ch := range seed {
		c.add(ch.Name, ch.ID)
	}
	return c
}

func (c *Characters) add(name, id string) {
	if c.ids == nil {
		c.ids = make(map[string]string)
	}
	if _, ok := c.ids[name]; ok {
		return
	}
	c.ids[name] = id
	c.order = append(c.order, name)
}

// ID returns the identifier for name, assigning ch_<n> on first sight
// where n is the number of characters known at that point.
func (c *Characters) ID(name string) string {
	if id, ok := c.ids[name]; ok {
		return id
	}
	id := fmt.Sprintf("%s%d", idPrefix, len(c.order))
	c.add(name, id)
	return id
}

// Len returns the number of known characters.
func (c *Characters) Len() int {
	return len(c.order)
}

// List returns every character in first-seen order.
func (c *Characters) List() []rpy.Character {
	out := make([]rpy.Character, len(c.order))
	for i, name := range c.order {
		out[i] = rpy.Character{Name: name, ID: c.ids[name]}
	}
	return out
}
