package daemon

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/theirongolddev/mealplan/internal/model"
)

type metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	receiptsCreated prometheus.Counter
	receiptsDeleted prometheus.Counter
	polls           prometheus.Counter
	pollErrors      prometheus.Counter

	budget      prometheus.Gauge
	spent       prometheus.Gauge
	remaining   prometheus.Gauge
	percentUsed prometheus.Gauge
	receipts    prometheus.Gauge
	subscribers prometheus.Gauge
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mealplan",
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route and status code.",
		}, []string{"route", "code"}),
		receiptsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mealplan",
			Name:      "receipts_created_total",
			Help:      "Receipts recorded through the API.",
		}),
		receiptsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mealplan",
			Name:      "receipts_deleted_total",
			Help:      "Receipts deleted through the API.",
		}),
		polls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mealplan",
			Name:      "polls_total",
			Help:      "Ledger polls performed.",
		}),
		pollErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mealplan",
			Name:      "poll_errors_total",
			Help:      "Ledger polls that failed.",
		}),
		budget: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "mealplan",
			Name:      "budget_weekly",
			Help:      "Weekly grocery budget.",
		}),
		spent: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "mealplan",
			Name:      "budget_spent",
			Help:      "Amount spent in the current week.",
		}),
		remaining: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "mealplan",
			Name:      "budget_remaining",
			Help:      "Budget left in the current week. Negative when over.",
		}),
		percentUsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "mealplan",
			Name:      "budget_percent_used",
			Help:      "Share of the weekly budget used, clamped to 100.",
		}),
		receipts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "mealplan",
			Name:      "receipts_current_week",
			Help:      "Receipts recorded for the current week.",
		}),
		subscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "mealplan",
			Name:      "stream_subscribers",
			Help:      "Open event stream connections.",
		}),
	}
	m.registry.MustRegister(
		m.requests, m.receiptsCreated, m.receiptsDeleted, m.polls, m.pollErrors,
		m.budget, m.spent, m.remaining, m.percentUsed, m.receipts, m.subscribers,
	)
	return m
}

func (m *metrics) observeBudget(st model.BudgetStatus, receipts int) {
	m.budget.Set(st.Budget)
	m.spent.Set(st.Spent)
	m.remaining.Set(st.Remaining)
	m.percentUsed.Set(st.PercentUsed)
	m.receipts.Set(float64(receipts))
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// instrument counts requests for route.
func (m *metrics) instrument(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		h(rec, r)
		m.requests.WithLabelValues(route, strconv.Itoa(rec.code)).Inc()
	}
}
