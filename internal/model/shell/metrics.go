package shell

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramActionTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "expense_tracker",
		Subsystem: "shell",
		Name:      "histogram_action_time_seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
	},
	[]string{"action"},
)

var counterRejectedInput = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "expense_tracker",
		Subsystem: "shell",
		Name:      "rejected_input_total",
	},
	[]string{"field"},
)

var counterExpensesAdded = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: "expense_tracker",
		Subsystem: "shell",
		Name:      "expenses_added_total",
	},
)

func observeAction(action string, elapsed time.Duration) {
	histogramActionTime.
		WithLabelValues(action).
		Observe(elapsed.Seconds())
}

func observeRejected(field string) {
	counterRejectedInput.
		WithLabelValues(field).
		Inc()
}
