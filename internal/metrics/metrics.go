// Package metrics provides Prometheus metrics for the dcdn backend.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry is the Prometheus registry for all dcdn metrics.
var Registry = prometheus.NewRegistry()

// Metrics holds all Prometheus metrics for the API server.
type Metrics struct {
	UploadsTotal   prometheus.Counter
	UploadBytes    prometheus.Counter
	DownloadsTotal prometheus.Counter
	DeletesTotal   prometheus.Counter
	AuthFailures   prometheus.Counter

	StoredFiles prometheus.Gauge
	StoredBytes prometheus.Gauge
	ActiveNodes prometheus.Gauge
}

func init() {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

func New() *Metrics {
	return &Metrics{
		UploadsTotal: promauto.With(Registry).NewCounter(prometheus.CounterOpts{
			Name: "dcdn_uploads_total",
			Help: "Total successful file uploads",
		}),
		UploadBytes: promauto.With(Registry).NewCounter(prometheus.CounterOpts{
			Name: "dcdn_upload_bytes_total",
			Help: "Total bytes accepted by successful uploads",
		}),
		DownloadsTotal: promauto.With(Registry).NewCounter(prometheus.CounterOpts{
			Name: "dcdn_downloads_total",
			Help: "Total successful file downloads",
		}),
		DeletesTotal: promauto.With(Registry).NewCounter(prometheus.CounterOpts{
			Name: "dcdn_deletes_total",
			Help: "Total successful file deletions",
		}),
		AuthFailures: promauto.With(Registry).NewCounter(prometheus.CounterOpts{
			Name: "dcdn_auth_failures_total",
			Help: "Requests rejected by authorization rules",
		}),
		StoredFiles: promauto.With(Registry).NewGauge(prometheus.GaugeOpts{
			Name: "dcdn_stored_files",
			Help: "Files currently held by the storage engine",
		}),
		StoredBytes: promauto.With(Registry).NewGauge(prometheus.GaugeOpts{
			Name: "dcdn_stored_bytes",
			Help: "Bytes currently held by the storage engine",
		}),
		ActiveNodes: promauto.With(Registry).NewGauge(prometheus.GaugeOpts{
			Name: "dcdn_active_nodes",
			Help: "Nodes currently present in the registry",
		}),
	}
}

// Handler serves the metrics endpoint for this registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
