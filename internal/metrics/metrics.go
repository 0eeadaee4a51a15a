package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MessagesAppended counts messages written to the log, by type.
	MessagesAppended = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kurz_messages_appended_total",
		Help: "Total messages appended to channel logs",
	}, []string{"type"})

	// MulticastDelivered counts events handed to a live connection.
	MulticastDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kurz_multicast_delivered_total",
		Help: "Events delivered to connected participants",
	})

	// MulticastSkipped counts participants who were offline at
	// delivery time (dropped by design; the message log is the
	// durability mechanism).
	MulticastSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kurz_multicast_skipped_total",
		Help: "Events skipped for offline participants",
	})

	MulticastErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kurz_multicast_errors_total",
		Help: "Failed deliveries to connected participants",
	})

	ConnectedUsers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "kurz_connected_users",
		Help: "Users currently holding a live connection",
	})
)
