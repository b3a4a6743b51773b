// Package metrics defines prometheus metric types for x11tap's proxy
// loop: promauto-registered counters/histograms, one var block per
// concern.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ConnectionsTotal counts accepted client connections.
	ConnectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "x11tap_connections_total",
		Help: "total client connections accepted",
	})

	// MessagesTotal counts decoded wire messages by kind (request, reply,
	// event, error) and direction.
	MessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "x11tap_messages_total",
		Help: "decoded wire messages by kind and direction",
	}, []string{"kind", "direction"})

	// BytesRelayedTotal counts bytes forwarded between client and server,
	// by direction.
	BytesRelayedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "x11tap_bytes_relayed_total",
		Help: "bytes relayed between client and server",
	}, []string{"direction"})

	// DecodeErrorsTotal counts structural decode failures
	// (x11proto.DecodeError) encountered while parsing the stream.
	DecodeErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "x11tap_decode_errors_total",
		Help: "structural decode errors encountered",
	})

	// BurstAlertsTotal counts detect.Detector alerts fired for repeated
	// request opcodes.
	BurstAlertsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "x11tap_burst_alerts_total",
		Help: "burst/flood alerts fired by the request-rate detector",
	})

	// MessageSizeHistogram tracks decoded message size in bytes.
	MessageSizeHistogram = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "x11tap_message_size_bytes",
		Help:    "decoded message size distribution",
		Buckets: []float64{8, 16, 32, 64, 128, 256, 512, 1024, 4096, 16384, 65536},
	})
)
