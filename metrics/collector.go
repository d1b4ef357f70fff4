package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/wippyai/g2-bridge/forward"
	"github.com/wippyai/g2-bridge/handle"
)

// Call outcomes.
const (
	OutcomeOK            = "ok"
	OutcomeEngineFailure = "engine_failure"
	OutcomeError         = "error"
)

// Collector records engine call and handle metrics. It implements
// forward.Hook and handle.Observer.
type Collector struct {
	calls         *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	grows         *prometheus.CounterVec
	handlesOpen   *prometheus.GaugeVec
	handlesOpened *prometheus.CounterVec
}

var (
	_ forward.Hook    = (*Collector)(nil)
	_ handle.Observer = (*Collector)(nil)
)

// New creates a Collector and registers it with reg. A nil reg leaves the
// metrics unregistered.
func New(reg prometheus.Registerer) (*Collector, error) {
	buckets := []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30}
	c := &Collector{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "g2bridge_engine_calls_total",
			Help: "Engine calls by entry point and outcome",
		}, []string{"symbol", "template", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "g2bridge_engine_call_seconds",
			Help:    "Engine call duration by template",
			Buckets: buckets,
		}, []string{"template"}),
		grows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "g2bridge_buffer_grows_total",
			Help: "Response buffer growths requested by the engine",
		}, []string{"symbol"}),
		handlesOpen: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "g2bridge_handles_open",
			Help: "Engine handles currently open",
		}, []string{"kind"}),
		handlesOpened: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "g2bridge_handles_opened_total",
			Help: "Engine handles opened",
		}, []string{"kind"}),
	}
	if reg != nil {
		for _, col := range c.collectors() {
			if err := reg.Register(col); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

func (c *Collector) collectors() []prometheus.Collector {
	return []prometheus.Collector{c.calls, c.duration, c.grows, c.handlesOpen, c.handlesOpened}
}

var (
	defaultOnce      sync.Once
	defaultCollector *Collector
)

// Default returns the process-wide Collector registered with the default
// prometheus registry.
func Default() *Collector {
	defaultOnce.Do(func() {
		c, err := New(nil)
		if err != nil {
			panic(err)
		}
		prometheus.MustRegister(c.collectors()...)
		defaultCollector = c
	})
	return defaultCollector
}

// AfterCall implements forward.Hook.
func (c *Collector) AfterCall(info forward.CallInfo) {
	outcome := OutcomeOK
	switch {
	case info.Err != nil:
		outcome = OutcomeError
	case info.Template.ReturnsStatus() && info.ReturnCode != 0:
		outcome = OutcomeEngineFailure
	}
	sym := string(info.Symbol)
	tmpl := info.Template.String()

	c.calls.WithLabelValues(sym, tmpl, outcome).Inc()
	c.duration.WithLabelValues(tmpl).Observe(info.Duration.Seconds())
	if info.Grows > 0 {
		c.grows.WithLabelValues(sym).Add(float64(info.Grows))
	}
}

// OnHandleEvent implements handle.Observer.
func (c *Collector) OnHandleEvent(e handle.Event) {
	kind := e.Entry.Kind.String()
	switch e.Type {
	case handle.EventOpened:
		c.handlesOpen.WithLabelValues(kind).Inc()
		c.handlesOpened.WithLabelValues(kind).Inc()
	case handle.EventClosed:
		c.handlesOpen.WithLabelValues(kind).Dec()
	}
}
