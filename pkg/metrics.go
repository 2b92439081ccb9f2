package pkg

import "github.com/prometheus/client_golang/prometheus"

var (
	SignalServerSessionsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "signaling_server_sessions",
		Help: "A gauge of client sessions connected to the signaling server.",
	})

	SignalServerRoomsGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "signaling_server_rooms",
		Help: "A gauge of live rooms in the registry.",
	})

	SignalServerInFlightGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "signaling_server_in_flight_requests",
		Help: "A gauge of requests being handled by the signaling server.",
	})

	SignalServerRequestsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "signaling_server_requests_total",
		Help: "A counter for requests to the signaling server.",
	}, []string{"code", "method"})

	SignalServerRelayedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "signaling_server_relayed_messages_total",
		Help: "A counter for signaling messages relayed between peers.",
	}, []string{"event"})

	SignalServerJoinFailuresCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "signaling_server_join_failures_total",
		Help: "A counter for rejected join attempts.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(
		SignalServerSessionsGauge,
		SignalServerRoomsGauge,
		SignalServerInFlightGauge,
		SignalServerRequestsCounter,
		SignalServerRelayedCounter,
		SignalServerJoinFailuresCounter,
	)
}
