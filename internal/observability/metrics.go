// Package observability exposes Prometheus counters for rflib diagnostics.
// The host simulation tool mounts Handler() wherever it serves metrics; the
// formula packages only ever touch the package-level Count helpers.
package observability

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the Prometheus metrics rflib emits.
type Collector struct {
	gatherer prometheus.Gatherer

	// Errors counts raised formula errors, labeled by taxonomy kind
	// (domain, computation, structural, invalid_argument).
	Errors *prometheus.CounterVec

	// Advisories counts non-fatal diagnostics, such as the
	// electrically-large dipole warning.
	Advisories prometheus.Counter
}

// NewCollector registers the rflib metrics against the provided registerer,
// defaulting to the global Prometheus registry when nil. Re-registration of
// identical collectors is tolerated so multiple library consumers in one
// process share counters.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	errs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rflib_errors_total",
		Help: "Total number of formula errors raised, labeled by taxonomy kind.",
	}, []string{"kind"})
	errs, err := registerCounterVec(reg, errs, "rflib_errors_total")
	if err != nil {
		return nil, err
	}

	advisories, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rflib_advisories_total",
		Help: "Total number of non-fatal advisories emitted.",
	}), "rflib_advisories_total")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:   gatherer,
		Errors:     errs,
		Advisories: advisories,
	}, nil
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// CountError increments the error counter for the given taxonomy kind.
func (c *Collector) CountError(kind string) {
	if c == nil || c.Errors == nil {
		return
	}
	c.Errors.WithLabelValues(kind).Inc()
}

// CountAdvisory increments the advisory counter.
func (c *Collector) CountAdvisory() {
	if c == nil || c.Advisories == nil {
		return
	}
	c.Advisories.Inc()
}

var (
	defaultMu        sync.Mutex
	defaultCollector *Collector
	defaultBuilt     bool
)

// Default returns the process-wide collector, registering it against the
// global Prometheus registry on first use. A registration failure leaves a
// nil collector in place, which drops counts rather than failing callers.
func Default() *Collector {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if !defaultBuilt {
		defaultCollector, _ = NewCollector(nil)
		defaultBuilt = true
	}
	return defaultCollector
}

// SetDefault replaces the process-wide collector. Intended for hosts that
// run their own registry and for tests.
func SetDefault(c *Collector) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultCollector = c
	defaultBuilt = true
}

// CountError increments the default collector's error counter.
func CountError(kind string) { Default().CountError(kind) }

// CountAdvisory increments the default collector's advisory counter.
func CountAdvisory() { Default().CountAdvisory() }

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}
