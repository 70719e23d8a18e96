package colorspace

import (
	"fmt"

	"github.com/kovidgoyal/colorpath/search"
)

var _ = fmt.Print

// Index maps every color space to the rules that have it as input, in
// catalog order. It is read-only after construction and safe for concurrent
// use.
type Index struct {
	rules map[ColorSpace][]*Rule
}

var _ search.Graph[ColorSpace] = (*Index)(nil)

func NewIndex(c *Catalog) *Index {
	ans := Index{rules: make(map[ColorSpace][]*Rule, len(c.spaces))}
	for _, r := range c.rules {
		ans.rules[r.Input] = append(ans.rules[r.Input], r)
	}
	return &ans
}

// RulesFrom returns a copy of the rules whose input is s, in catalog order.
func (x *Index) RulesFrom(s ColorSpace) []*Rule { return append([]*Rule(nil), x.rules[s]...) }

// Neighbors returns an edge for every rule leaving s, self loops excluded.
func (x *Index) Neighbors(s ColorSpace) []search.Edge[ColorSpace] {
	rules := x.rules[s]
	ans := make([]search.Edge[ColorSpace], 0, len(rules))
	for _, r := range rules {
		if !r.IsSelfLoop() {
			ans = append(ans, search.Edge[ColorSpace]{Cost: r.Cost, To: r.Output})
		}
	}
	return ans
}

// Rule returns the cheapest rule converting from into to, the earliest in
// catalog order when several are equally cheap.
func (x *Index) Rule(from, to ColorSpace) (ans *Rule, found bool) {
	for _, r := range x.rules[from] {
		if r.Output == to && (ans == nil || r.Cost < ans.Cost) {
			ans = r
		}
	}
	return ans, ans != nil
}
