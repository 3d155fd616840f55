package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	requests  *prometheus.CounterVec
	votesCast prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "secureballot_stub_requests_total",
			Help: "Requests handled by the stub backend, by method and status.",
		}, []string{"method", "status"}),
		votesCast: factory.NewCounter(prometheus.CounterOpts{
			Name: "secureballot_stub_votes_cast_total",
			Help: "Ballots accepted by the stub backend.",
		}),
	}
}
