package dispatch

import (
	"kurz/internal/metrics"
	"kurz/internal/presence"
	"kurz/pkg/logger"
)

// Dispatcher fans events out to whichever participants hold a live
// connection. Offline participants are skipped silently; the message
// log is what they catch up from.
type Dispatcher struct {
	registry *presence.Registry
	logger   *logger.Logger
}

func NewDispatcher(registry *presence.Registry, logger *logger.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		logger:   logger,
	}
}

// Multicast is best-effort: a failed write to one participant is
// logged and counted, never propagated, and never blocks delivery to
// the rest.
func (d *Dispatcher) Multicast(participants []string, event string, payload any) {
	for _, email := range participants {
		conn, ok := d.registry.Get(email)
		if !ok {
			metrics.MulticastSkipped.Inc()
			continue
		}
		if err := conn.Send(event, payload); err != nil {
			metrics.MulticastErrors.Inc()
			d.logger.Error("multicast delivery failed", "email", email, "event", event, "err", err)
			continue
		}
		metrics.MulticastDelivered.Inc()
	}
}
