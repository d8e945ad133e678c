// Package metrics holds the process-wide Prometheus instruments. Labels are
// kept to small fixed sets; nothing here carries per-entity cardinality.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// DeliveriesTotal counts delivery calls by outcome: admitted (campaign
	// pool queried), reserved (batch diverted to fallback) or error.
	DeliveriesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ads_deliveries_total",
		Help: "Delivery requests by admission outcome",
	}, []string{"outcome"})

	// SlotsTotal counts rendered slots by kind.
	SlotsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ads_slots_total",
		Help: "Rendered slots by kind (campaign or fallback)",
	}, []string{"kind"})

	// RecorderDroppedTotal counts request events dropped on a full queue.
	RecorderDroppedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ads_recorder_dropped_total",
		Help: "Request events dropped because the recorder queue was full",
	})

	// CounterWritesTotal counts successful aggregate counter upserts.
	CounterWritesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ads_counter_writes_total",
		Help: "Aggregate counter upserts by family",
	}, []string{"family"})

	// DeliveryDuration observes end-to-end delivery handling time.
	DeliveryDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ads_delivery_duration_seconds",
		Help:    "Delivery request duration",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(DeliveriesTotal, SlotsTotal, RecorderDroppedTotal, CounterWritesTotal, DeliveryDuration)
}
