// Package colorspace describes color spaces and the directed, costed rules
// that convert pixel buffers between them.
package colorspace

import (
	"errors"
	"fmt"

	"github.com/kovidgoyal/colorpath/pixbuf"
)

var _ = fmt.Print

// ColorSpace is a named color representation with a fixed number of
// channels per pixel. IDs are unique within a Catalog, so two ColorSpace
// values from the same catalog are equal exactly when their IDs are.
type ColorSpace struct {
	ID       int
	Name     string
	Channels int
}

func (c ColorSpace) String() string { return c.Name }

// Transform converts a buffer in a rule's input color space into a new
// buffer in its output color space. It must not modify its argument.
type Transform func(*pixbuf.Buffer) (*pixbuf.Buffer, error)

// Rule is a directed conversion between two color spaces. Cost is a
// relative measure of precision loss and computational expense.
type Rule struct {
	Input, Output ColorSpace
	Cost          int
	Transform     Transform
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s → %s (cost: %d)", r.Input, r.Output, r.Cost)
}

// IsSelfLoop reports whether the rule converts a color space into itself.
// Such rules are never used for conversion.
func (r *Rule) IsSelfLoop() bool { return r.Input == r.Output }

// IOSig returns the number of input and output channels of the rule.
func (r *Rule) IOSig() (int, int) { return r.Input.Channels, r.Output.Channels }

// ErrNotFound is returned when looking up a color space that is not in the
// catalog.
var ErrNotFound = errors.New("color space not found")

// Catalog is an immutable, ordered collection of color spaces and the
// rules between them.
type Catalog struct {
	spaces []ColorSpace
	rules  []*Rule
	by_id  map[int]ColorSpace
}

// NewCatalog validates spaces and rules and returns a catalog holding them
// in the given order.
func NewCatalog(spaces []ColorSpace, rules []Rule) (*Catalog, error) {
	ans := Catalog{
		spaces: make([]ColorSpace, 0, len(spaces)),
		rules:  make([]*Rule, 0, len(rules)),
		by_id:  make(map[int]ColorSpace, len(spaces)),
	}
	for _, s := range spaces {
		if _, exists := ans.by_id[s.ID]; exists {
			return nil, fmt.Errorf("duplicate color space id: %d (%s)", s.ID, s.Name)
		}
		if s.Channels < 1 {
			return nil, fmt.Errorf("color space %s has invalid channel count: %d", s.Name, s.Channels)
		}
		ans.by_id[s.ID] = s
		ans.spaces = append(ans.spaces, s)
	}
	for i, r := range rules {
		for _, s := range []ColorSpace{r.Input, r.Output} {
			if q, found := ans.by_id[s.ID]; !found || q != s {
				return nil, fmt.Errorf("rule %d (%s → %s) references unregistered color space: %s", i, r.Input, r.Output, s)
			}
		}
		if r.Cost < 0 {
			return nil, fmt.Errorf("rule %d (%s → %s) has negative cost: %d", i, r.Input, r.Output, r.Cost)
		}
		if r.Transform == nil {
			return nil, fmt.Errorf("rule %d (%s → %s) has no transform", i, r.Input, r.Output)
		}
		ans.rules = append(ans.rules, &r)
	}
	return &ans, nil
}

// ByID returns the color space with the specified id or an error wrapping
// ErrNotFound.
func (c *Catalog) ByID(id int) (ColorSpace, error) {
	if s, found := c.by_id[id]; found {
		return s, nil
	}
	return ColorSpace{}, fmt.Errorf("there is no color space with the id %d: %w", id, ErrNotFound)
}

// ByName returns the first color space with the specified name or an error
// wrapping ErrNotFound.
func (c *Catalog) ByName(name string) (ColorSpace, error) {
	for _, s := range c.spaces {
		if s.Name == name {
			return s, nil
		}
	}
	return ColorSpace{}, fmt.Errorf("there is no color space named %#v: %w", name, ErrNotFound)
}

// Spaces returns the color spaces in catalog order.
func (c *Catalog) Spaces() []ColorSpace { return append([]ColorSpace(nil), c.spaces...) }

// Rules returns the conversion rules in catalog order. The rules must not be
// modified.
func (c *Catalog) Rules() []*Rule { return append([]*Rule(nil), c.rules...) }
