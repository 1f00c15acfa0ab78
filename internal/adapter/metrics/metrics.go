package metrics

import (
	"net/http"

	"github.com/MikeRez0/payopt/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const namespace = "payopt"

// Observer exports allocation results as prometheus metrics.
type Observer struct {
	logger   *zap.Logger
	registry *prometheus.Registry

	runs         prometheus.Counter
	ordersPaid   prometheus.Counter
	ordersUnpaid prometheus.Counter
	plans        *prometheus.CounterVec
	spent        *prometheus.CounterVec
	lastRunSize  prometheus.Gauge
}

func NewObserver(logger *zap.Logger) *Observer {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Observer{
		logger:   logger,
		registry: reg,
		runs: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocation_runs_total",
			Help:      "Total allocation runs.",
		}),
		ordersPaid: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "paid_total",
			Help:      "Total orders that received a payment plan.",
		}),
		ordersUnpaid: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "orders",
			Name:      "unpaid_total",
			Help:      "Total orders left without a payment plan.",
		}),
		plans: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "plans",
			Name:      "committed_total",
			Help:      "Committed payment plans by optimizer phase.",
		}, []string{"phase"}),
		spent: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "spending",
			Name:      "amount_total",
			Help:      "Total amount spent through each payment method.",
		}, []string{"method"}),
		lastRunSize: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_orders",
			Help:      "Number of orders in the most recent run.",
		}),
	}
}

func (o *Observer) ObserveAllocation(a *domain.Allocation) {
	o.runs.Inc()
	o.lastRunSize.Set(float64(a.OrderCount))
	o.ordersPaid.Add(float64(a.PaidCount()))
	o.ordersUnpaid.Add(float64(len(a.Unpaid)))

	for _, p := range a.Plans {
		o.plans.WithLabelValues(string(p.Phase)).Inc()
	}
	for id, amount := range a.Summary {
		f, ok := amount.Float64()
		if !ok || f < 0 {
			o.logger.Warn("Spending amount not exported", zap.String("method", id), zap.String("amount", amount.String()))
			continue
		}
		o.spent.WithLabelValues(id).Add(f)
	}
}

func (o *Observer) Registry() *prometheus.Registry {
	return o.registry
}

// Handler serves the observer's registry in the prometheus text format.
func (o *Observer) Handler() http.Handler {
	return promhttp.HandlerFor(o.registry, promhttp.HandlerOpts{})
}
