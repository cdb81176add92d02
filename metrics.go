package search

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	clienterrors "github.com/avasquez614/search/internal/errors"
)

const (
	opSearch         = "search"
	opUpdate         = "update"
	opDelete         = "delete"
	opCommit         = "commit"
	opUpdateFile     = "update_file"
	opUpdateDocument = "update_document"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "search_client",
			Name:      "requests_total",
			Help:      "Client operations by outcome (ok, server, transport, invalid_url, reserved_field_name).",
		},
		[]string{"operation", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "search_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of client operations, including local validation.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// instrument runs fn and records its outcome and duration under op.
func instrument[T any](op string, fn func() (T, error)) (T, error) {
	start := time.Now()
	v, err := fn()
	requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(op, outcomeOf(err)).Inc()
	return v, err
}

func outcomeOf(err error) string {
	if err == nil {
		return "ok"
	}
	switch clienterrors.KindOf(err) {
	case clienterrors.KindServer:
		return "server"
	case clienterrors.KindTransport:
		return "transport"
	case clienterrors.KindInvalidURL:
		return "invalid_url"
	case clienterrors.KindReservedFieldName:
		return "reserved_field_name"
	default:
		return "error"
	}
}
