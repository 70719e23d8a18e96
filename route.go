package colorpath

import (
	"fmt"
	"strings"

	"github.com/kovidgoyal/colorpath/colorspace"
	"github.com/kovidgoyal/colorpath/pixbuf"
)

var _ = fmt.Print

// Route is a chain of conversion rules leading from one color space to
// another. Routes are immutable and can be applied any number of times,
// concurrently.
type Route struct {
	spaces []colorspace.ColorSpace
	rules  []*colorspace.Rule
	cost   int
}

// Spaces returns the color spaces visited by the route, both endpoints
// included.
func (r *Route) Spaces() []colorspace.ColorSpace {
	return append([]colorspace.ColorSpace(nil), r.spaces...)
}

// Rules returns the rules applied by the route, in order.
func (r *Route) Rules() []*colorspace.Rule { return append([]*colorspace.Rule(nil), r.rules...) }

// Cost is the sum of the costs of the rules in the route.
func (r *Route) Cost() int { return r.cost }

// Len is the number of rules in the route.
func (r *Route) Len() int { return len(r.rules) }

func (r *Route) From() colorspace.ColorSpace { return r.spaces[0] }

func (r *Route) To() colorspace.ColorSpace { return r.spaces[len(r.spaces)-1] }

func (r *Route) String() string {
	items := make([]string, len(r.spaces))
	for i, s := range r.spaces {
		items[i] = s.Name
	}
	return strings.Join(items, " → ")
}

// IsSuitableFor reports whether every rule in the route accepts the channel
// count produced by the previous one, starting with i channels and ending
// with o channels.
func (r *Route) IsSuitableFor(i, o int) bool {
	for _, rule := range r.rules {
		qi, qo := rule.IOSig()
		if qi != i {
			return false
		}
		i = qo
	}
	return i == o
}

// Apply runs the rules of the route on buf in order. buf must be in the
// From() color space and the result is in the To() color space. buf itself is
// never modified, and is returned as is for a route without rules.
func (r *Route) Apply(buf *pixbuf.Buffer) (ans *pixbuf.Buffer, err error) {
	if err = check_channels(buf, r.From(), "input"); err != nil {
		return nil, err
	}
	ans = buf
	for i, rule := range r.rules {
		if ans, err = rule.Transform(ans); err != nil {
			return nil, fmt.Errorf("converting from %s to %s failed: %w", rule.Input, rule.Output, err)
		}
		stage := "output"
		if i < len(r.rules)-1 {
			stage = fmt.Sprintf("intermediate (%s → %s)", rule.Input, rule.Output)
		}
		if err = check_channels(ans, rule.Output, stage); err != nil {
			return nil, err
		}
	}
	return ans, nil
}
