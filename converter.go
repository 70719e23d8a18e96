package colorpath

import (
	"fmt"
	"log/slog"

	"github.com/kovidgoyal/colorpath/colorspace"
	"github.com/kovidgoyal/colorpath/pixbuf"
	"github.com/kovidgoyal/colorpath/search"
)

var _ = fmt.Print

// RouteObserver is called with every route a Converter is about to apply.
// It may be called concurrently.
type RouteObserver func(*Route)

type converterConfig struct {
	logger       *slog.Logger
	observer     RouteObserver
	observer_set bool
}

// Option sets an optional parameter for New.
type Option func(*converterConfig)

// WithLogger sets the logger used by the default route observer. Defaults
// to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *converterConfig) { c.logger = l }
}

// WithRouteObserver replaces the default route observer, which logs every
// route at debug level. A nil observer disables route tracing.
func WithRouteObserver(f RouteObserver) Option {
	return func(c *converterConfig) {
		c.observer = f
		c.observer_set = true
	}
}

// Converter converts buffers between the color spaces of a catalog. It is
// safe for concurrent use.
type Converter struct {
	catalog  *colorspace.Catalog
	index    *colorspace.Index
	observer RouteObserver
}

// New creates a Converter for the specified catalog, indexing its rules
// once.
func New(catalog *colorspace.Catalog, opts ...Option) *Converter {
	cfg := converterConfig{}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	ans := Converter{catalog: catalog, index: colorspace.NewIndex(catalog), observer: cfg.observer}
	if !cfg.observer_set {
		logger := cfg.logger
		ans.observer = func(r *Route) {
			logger.Debug("converting color", "path", r.String(), "cost", r.Cost())
		}
	}
	return &ans
}

func (c *Converter) Catalog() *colorspace.Catalog { return c.catalog }

// Route returns the cheapest chain of rules converting from into to. When
// from and to are the same the route has no rules.
func (c *Converter) Route(from, to colorspace.ColorSpace) (*Route, error) {
	path, found := search.ShortestPath(from, func(s colorspace.ColorSpace) bool { return s == to }, c.index)
	if !found {
		return nil, &UnreachableError{From: from, To: to}
	}
	ans := Route{spaces: path.Nodes, cost: path.Cost, rules: make([]*colorspace.Rule, 0, len(path.Nodes)-1)}
	for i := 1; i < len(path.Nodes); i++ {
		prev, next := path.Nodes[i-1], path.Nodes[i]
		rule, found := c.index.Rule(prev, next)
		if !found {
			panic(fmt.Sprintf("the route %s uses the non-existent conversion %s → %s", &ans, prev, next))
		}
		ans.rules = append(ans.rules, rule)
	}
	return &ans, nil
}

// Convert converts buf from one color space to another using the cheapest
// available chain of rules. buf must have the channel count of from and is
// returned unchanged if from and to are the same. On failure no buffer is
// returned.
func (c *Converter) Convert(buf *pixbuf.Buffer, from, to colorspace.ColorSpace) (*pixbuf.Buffer, error) {
	if err := check_channels(buf, from, "input"); err != nil {
		return nil, err
	}
	if from == to {
		return buf, nil
	}
	r, err := c.Route(from, to)
	if err != nil {
		return nil, err
	}
	if c.observer != nil {
		c.observer(r)
	}
	return r.Apply(buf)
}

// ConvertByID is the same as Convert with the color spaces looked up in the
// catalog by id.
func (c *Converter) ConvertByID(buf *pixbuf.Buffer, from, to int) (*pixbuf.Buffer, error) {
	f, err := c.catalog.ByID(from)
	if err != nil {
		return nil, err
	}
	t, err := c.catalog.ByID(to)
	if err != nil {
		return nil, err
	}
	return c.Convert(buf, f, t)
}
