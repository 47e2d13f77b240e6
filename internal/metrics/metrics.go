package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "banksajt"

// Login outcomes recorded by LoginAttempt.
const (
	LoginSuccess         = "success"
	LoginUserNotFound    = "user_not_found"
	LoginInvalidPassword = "invalid_password"
	LoginError           = "error"
)

// Metrics owns the service registry and its collectors.
type Metrics struct {
	registry *prometheus.Registry

	requests     *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	usersCreated prometheus.Counter
	logins       *prometheus.CounterVec
	transactions prometheus.Counter
	storageUp    prometheus.Gauge
}

// New creates Metrics backed by a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests processed, by method, route and status.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		usersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "users_created_total",
			Help:      "Users registered together with their account.",
		}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}),
		transactions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transactions_total",
			Help:      "Transactions applied to accounts.",
		}),
		storageUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "storage_up",
			Help:      "1 when the last storage health probe succeeded.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.latency,
		m.usersCreated,
		m.logins,
		m.transactions,
		m.storageUp,
	)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records a finished HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// UserCreated counts a registration.
func (m *Metrics) UserCreated() {
	m.usersCreated.Inc()
}

// LoginAttempt counts a login by result.
func (m *Metrics) LoginAttempt(result string) {
	m.logins.WithLabelValues(result).Inc()
}

// TransactionApplied counts a persisted transaction.
func (m *Metrics) TransactionApplied() {
	m.transactions.Inc()
}

// SetStorageUp reports the outcome of the latest storage probe.
func (m *Metrics) SetStorageUp(up bool) {
	if up {
		m.storageUp.Set(1)
		return
	}
	m.storageUp.Set(0)
}
