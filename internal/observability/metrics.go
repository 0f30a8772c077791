package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// LedgerOps counts ledger operations by outcome. Incremented in the
// service layer so the store itself stays free of side effects.
var LedgerOps = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "ledger_operations_total",
		Help: "Total number of ledger operations",
	},
	[]string{"op", "status"},
)

func init() {
	prometheus.MustRegister(LedgerOps)
}

// ObserveOp records one ledger operation outcome.
func ObserveOp(op string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	LedgerOps.WithLabelValues(op, status).Inc()
}

// Handler exposes the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
