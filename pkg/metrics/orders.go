package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics records business counters for the ordering flow.
type OrderMetrics struct {
	created  *prometheus.CounterVec
	rejected *prometheus.CounterVec
}

// NewOrderMetrics registers the order metrics on the provided registerer.
func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	if reg == nil {
		return &OrderMetrics{}
	}
	created := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Orders accepted by the submission gate, by payment method.",
	}, []string{"payment_method"})
	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_rejected_total",
		Help: "Order submissions rejected before persistence, by failing field.",
	}, []string{"field"})
	reg.MustRegister(created, rejected)
	return &OrderMetrics{
		created:  created,
		rejected: rejected,
	}
}

// IncCreated increments the accepted order counter.
func (o *OrderMetrics) IncCreated(paymentMethod string) {
	if o == nil || o.created == nil {
		return
	}
	o.created.WithLabelValues(normalizeLabel(paymentMethod)).Inc()
}

// IncRejected increments the rejected order counter for the failing field.
func (o *OrderMetrics) IncRejected(field string) {
	if o == nil || o.rejected == nil {
		return
	}
	o.rejected.WithLabelValues(normalizeLabel(field)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
