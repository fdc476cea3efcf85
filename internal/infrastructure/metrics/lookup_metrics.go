package metrics

import (
	"buscador_cep/internal/domain/entities"
	"buscador_cep/internal/usecase/interfaces"
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const outcomeTransportError = "transport_error"

// InstrumentedGateway counts outbound ViaCEP lookups by outcome and records
// their latency. It forwards every call unchanged.
type InstrumentedGateway struct {
	next    interfaces.IAddressLookupGateway
	lookups *prometheus.CounterVec
	latency prometheus.Histogram
}

var _ interfaces.IAddressLookupGateway = (*InstrumentedGateway)(nil)

func NewInstrumentedGateway(next interfaces.IAddressLookupGateway, reg prometheus.Registerer) *InstrumentedGateway {
	g := &InstrumentedGateway{
		next: next,
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "buscador_cep",
			Name:      "viacep_lookups_total",
			Help:      "Outbound ViaCEP lookups by outcome (found, not_found, transport_error).",
		}, []string{"outcome"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "buscador_cep",
			Name:      "viacep_lookup_duration_seconds",
			Help:      "Latency of outbound ViaCEP lookups.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(g.lookups, g.latency)
	return g
}

func (g *InstrumentedGateway) Lookup(ctx context.Context, cep string) (entities.LookupResult, error) {
	start := time.Now()
	res, err := g.next.Lookup(ctx, cep)
	g.latency.Observe(time.Since(start).Seconds())

	outcome := string(res.Status)
	if err != nil {
		outcome = outcomeTransportError
	}
	g.lookups.WithLabelValues(outcome).Inc()
	return res, err
}
