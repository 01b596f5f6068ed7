package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FormSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "form_submissions_total",
			Help: "Accepted form submissions",
		},
		[]string{"form"},
	)

	Emails = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emails_total",
			Help: "Email dispatch attempts by outcome",
		},
		[]string{"outcome"},
	)

	// Flips to 1 the moment the store downgrades to in-memory storage.
	// Users never see the downgrade, so this is the operator's only signal
	// besides the warning log line.
	StorageFallbackActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "storage_fallback_active",
			Help: "1 when submissions are held in memory instead of the database",
		},
	)
)

func Init() {
	prometheus.MustRegister(FormSubmissions)
	prometheus.MustRegister(Emails)
	prometheus.MustRegister(StorageFallbackActive)
}

func Handler() http.Handler {
	return promhttp.Handler()
}
