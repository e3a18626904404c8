// Package metrics constructs the metrics the application will track.
package metrics

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ledger"

// Metrics holds the set of prometheus collectors the node updates.
type Metrics struct {
	count atomic.Int64

	requests    prometheus.Counter
	errors      prometheus.Counter
	panics      prometheus.Counter
	goroutines  prometheus.Gauge
	admitted    prometheus.Counter
	rejected    *prometheus.CounterVec
	blocks      prometheus.Counter
	chainHeight prometheus.Gauge
	mining      prometheus.Histogram
}

// New constructs the collectors and registers them with the registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		requests: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Number of requests handled.",
		}),
		errors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Number of requests that returned an error.",
		}),
		panics: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "panics_total",
			Help:      "Number of handler panics recovered.",
		}),
		goroutines: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "goroutines",
			Help:      "Number of goroutines sampled every 100 requests.",
		}),
		admitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_admitted_total",
			Help:      "Number of transactions admitted to the mempool.",
		}),
		rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_rejected_total",
			Help:      "Number of transactions rejected at admission.",
		}, []string{"reason"}),
		blocks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_mined_total",
			Help:      "Number of blocks mined by this node.",
		}),
		chainHeight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "chain_height",
			Help:      "Index of the latest block in the chain.",
		}),
		mining: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "mining_duration_seconds",
			Help:      "Time spent sealing a block.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
}

// =============================================================================

// AddRequest increments the request count and samples the goroutines every
// 100 requests.
func (m *Metrics) AddRequest() {
	m.requests.Inc()

	if m.count.Add(1)%100 == 0 {
		m.goroutines.Set(float64(runtime.NumGoroutine()))
	}
}

// AddError increments the error count.
func (m *Metrics) AddError() {
	m.errors.Inc()
}

// AddPanic increments the panic count.
func (m *Metrics) AddPanic() {
	m.panics.Inc()
}

// AddAdmitted increments the number of admitted transactions.
func (m *Metrics) AddAdmitted() {
	m.admitted.Inc()
}

// AddRejected increments the number of rejected transactions for the reason.
func (m *Metrics) AddRejected(reason string) {
	m.rejected.WithLabelValues(reason).Inc()
}

// AddBlock records a mined block along with how long it took to seal.
func (m *Metrics) AddBlock(index uint64, took time.Duration) {
	m.blocks.Inc()
	m.chainHeight.Set(float64(index))
	m.mining.Observe(took.Seconds())
}

// SetChainHeight records the index of the latest block.
func (m *Metrics) SetChainHeight(index uint64) {
	m.chainHeight.Set(float64(index))
}
