package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "coffeemachine"

// Recorder counts cycles and orders as the machine reports them.
type Recorder struct {
	cyclesStarted   prometheus.Counter
	cyclesFinished  prometheus.Counter
	cyclesAborted   prometheus.Counter
	ordersCompleted prometheus.Counter
	cycleOrders     prometheus.Gauge
	progressPercent prometheus.Gauge
	cycleDuration   prometheus.Histogram

	now       func() time.Time
	startedAt time.Time
}

// NewRecorder creates a Recorder and registers its collectors with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		cyclesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "cycles_started_total",
			Help: "Number of drain cycles started.",
		}),
		cyclesFinished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "cycles_finished_total",
			Help: "Number of drain cycles that served every queued order.",
		}),
		cyclesAborted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "cycles_aborted_total",
			Help: "Number of drain cycles aborted by an order or observer fault.",
		}),
		ordersCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "orders_completed_total",
			Help: "Number of orders executed successfully.",
		}),
		cycleOrders: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "cycle_orders",
			Help: "Number of orders queued when the current cycle started.",
		}),
		progressPercent: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "progress_percent",
			Help: "Completion of the current cycle in percent.",
		}),
		cycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "cycle_duration_seconds",
			Help:    "Wall-clock duration of finished drain cycles.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		now: time.Now,
	}

	for _, c := range []prometheus.Collector{
		r.cyclesStarted, r.cyclesFinished, r.cyclesAborted, r.ordersCompleted,
		r.cycleOrders, r.progressPercent, r.cycleDuration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// NewRegistry returns a registry preloaded with the Go runtime collector
// (heap, GC and goroutine statistics).
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	return reg
}

// Started counts a new cycle and records its queue size.
func (r *Recorder) Started(numOrders int) error {
	r.startedAt = r.now()
	r.cyclesStarted.Inc()
	r.cycleOrders.Set(float64(numOrders))
	r.progressPercent.Set(0)
	return nil
}

// Progress counts a completed order and updates the progress gauge.
func (r *Recorder) Progress(percent int) error {
	r.ordersCompleted.Inc()
	r.progressPercent.Set(float64(percent))
	return nil
}

// Finished counts a completed cycle and observes its duration.
func (r *Recorder) Finished() error {
	r.cyclesFinished.Inc()
	r.progressPercent.Set(100)
	r.cycleDuration.Observe(r.now().Sub(r.startedAt).Seconds())
	return nil
}

// Aborted counts a cycle stopped by a fault.
func (r *Recorder) Aborted(error) {
	r.cyclesAborted.Inc()
}

// WriteTextfile writes every metric gathered from g to path in the text
// exposition format. The file is replaced atomically.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
