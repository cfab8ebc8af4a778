// Package agentselect provides a top-level convenience entry point for
// creating a selection engine with minimal boilerplate.
//
// Usage:
//
//	import "github.com/BaSui01/agentselect"
//
//	engine, err := agentselect.New()
//	engine, err := agentselect.New(agentselect.WithOracle(client), agentselect.WithLogger(logger))
//
//	result, err := engine.SelectAndSequence(ctx, task, types.StringContext(bag), budget)
package agentselect

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/BaSui01/agentselect/config"
	"github.com/BaSui01/agentselect/selection"
)

// Option configures the engine created by [New].
type Option func(*options)

type options struct {
	cfg         *config.Config
	oracle      selection.Oracle
	logger      *zap.Logger
	registry    *selection.Registry
	metrics     *selection.Metrics
	metricsReg  prometheus.Registerer
	wantMetrics bool
}

// WithConfig sets a full configuration. Defaults to [config.DefaultConfig].
func WithConfig(cfg *config.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithOracle sets the complexity oracle. Without one, classification always
// uses the default judgment.
func WithOracle(oracle selection.Oracle) Option {
	return func(o *options) { o.oracle = oracle }
}

// WithLogger sets a custom zap logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRegistry sets a pre-built capability registry, overriding the
// workers defined in the configuration.
func WithRegistry(registry *selection.Registry) Option {
	return func(o *options) { o.registry = registry }
}

// WithMetrics enables Prometheus metrics registered against reg.
// Pass nil to use the default registerer.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) { o.metricsReg = reg; o.wantMetrics = true }
}

// New creates a [selection.Engine] with the default insurance-domain
// registry unless overridden.
func New(opts ...Option) (*selection.Engine, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.cfg == nil {
		o.cfg = config.DefaultConfig()
	}
	if o.wantMetrics {
		o.metrics = selection.NewMetrics(o.cfg.Engine.MetricsNamespace, o.metricsReg)
	}

	return selection.NewEngine(o.cfg, o.registry, o.oracle, o.metrics, o.logger)
}
