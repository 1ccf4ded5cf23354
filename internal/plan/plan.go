package plan

import (
	"slices"

	"shape-mapper/internal/fieldpath"
	"shape-mapper/internal/mapping"
)

// Config holds plan construction settings.
type Config struct {
	// Order is the application order per direction.
	Order mapping.OrderDef
	// Cache, when set, shares parsed paths between compilations.
	Cache *fieldpath.Cache
}

// DefaultConfig returns ascending order for both directions and no cache.
func DefaultConfig() Config {
	return Config{
		Order: mapping.OrderDef{
			LeftToRight: mapping.Ascending,
			RightToLeft: mapping.Ascending,
		},
	}
}

// Option customizes a Config.
type Option func(*Config)

// WithOrder sets the application order for one direction.
func WithOrder(d mapping.Direction, o mapping.Order) Option {
	return func(c *Config) {
		if d == mapping.LeftToRight {
			c.Order.LeftToRight = o
		} else {
			c.Order.RightToLeft = o
		}
	}
}

// WithOrders sets the application order for both directions.
func WithOrders(def mapping.OrderDef) Option {
	return func(c *Config) {
		c.Order = def
	}
}

// WithCache shares parsed paths through cache while compiling.
func WithCache(cache *fieldpath.Cache) Option {
	return func(c *Config) {
		c.Cache = cache
	}
}

// Plan is a compiled, ordered set of rules.
type Plan struct {
	rules []*mapping.Rule
	order mapping.OrderDef
}

// New builds a plan from already compiled rules.
func New(rules []*mapping.Rule, opts ...Option) *Plan {
	cfg := newConfig(opts)

	return &Plan{
		rules: slices.Clone(rules),
		order: cfg.Order,
	}
}

// Compile compiles specs and builds a plan from them.
// Failures are *mapping.CompileError.
func Compile(specs []mapping.RuleSpec, opts ...Option) (*Plan, error) {
	cfg := newConfig(opts)

	rules, err := mapping.NewCompiler(cfg.Cache).CompileAll(specs)
	if err != nil {
		return nil, err
	}

	return &Plan{rules: rules, order: cfg.Order}, nil
}

// FromFile builds a plan from a loaded rule file. The file's order applies
// unless overridden by opts.
func FromFile(rf *mapping.RuleFile, registry *mapping.TransformRegistry, opts ...Option) (*Plan, error) {
	specs, err := rf.Specs(registry)
	if err != nil {
		return nil, err
	}

	return Compile(specs, append([]Option{WithOrders(rf.Order)}, opts...)...)
}

func newConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Rules returns the rules in declaration order.
func (p *Plan) Rules() []*mapping.Rule {
	return slices.Clone(p.rules)
}

// Len returns the number of rules.
func (p *Plan) Len() int { return len(p.rules) }

// Order returns the application order for direction d.
func (p *Plan) Order(d mapping.Direction) mapping.Order {
	return p.order.For(d)
}

// ordered returns the rules in the order they apply in direction d.
func (p *Plan) ordered(d mapping.Direction) []*mapping.Rule {
	if p.order.For(d) == mapping.Ascending {
		return p.rules
	}

	out := slices.Clone(p.rules)
	slices.Reverse(out)

	return out
}
