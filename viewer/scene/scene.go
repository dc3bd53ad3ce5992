// Package scene holds the ordered set of vectors drawn by the viewer.
package scene

import (
	"image/color"

	"vecview/viewer/geom"
	"vecview/viewer/labels"
)

const initialCap = 16

// Entry is one vector, drawn as an arrow from the world origin to Pos.
type Entry struct {
	Pos   geom.Vec2
	Color color.RGBA
	Label string
}

// Collection is an insertion-ordered list of entries. Draw order and label
// order both follow insertion order.
//
// Labels come from a counter owned by the collection. Clear keeps the counter;
// Reset clears and restarts labeling from "a".
type Collection struct {
	entries []Entry
	next    int
}

func New() *Collection { return &Collection{} }

// Append adds an entry labeled with the next label in sequence.
func (c *Collection) Append(pos geom.Vec2, col color.RGBA) Entry {
	c.reserve(len(c.entries) + 1)
	e := Entry{Pos: pos, Color: col, Label: labels.For(c.next)}
	c.next++
	c.entries = append(c.entries, e)
	return e
}

func (c *Collection) reserve(want int) {
	if want <= cap(c.entries) {
		return
	}
	newCap := cap(c.entries) * 2
	if newCap == 0 {
		newCap = initialCap
	}
	if newCap < want {
		newCap = want
	}
	grown := make([]Entry, len(c.entries), newCap)
	copy(grown, c.entries)
	c.entries = grown
}

// Clear drops all entries but keeps storage and the label counter.
func (c *Collection) Clear() { c.entries = c.entries[:0] }

// ResetLabels restarts labeling from "a".
func (c *Collection) ResetLabels() { c.next = 0 }

// Reset clears the collection and restarts labeling.
func (c *Collection) Reset() {
	c.Clear()
	c.ResetLabels()
}

func (c *Collection) Len() int       { return len(c.entries) }
func (c *Collection) Cap() int       { return cap(c.entries) }
func (c *Collection) At(i int) Entry { return c.entries[i] }

// Each calls fn for every entry in insertion order until fn returns false.
func (c *Collection) Each(fn func(i int, e Entry) bool) {
	for i, e := range c.entries {
		if !fn(i, e) {
			return
		}
	}
}

// Entries returns a copy of all entries.
func (c *Collection) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}
