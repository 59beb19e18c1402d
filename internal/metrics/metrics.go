package metrics

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	danfeGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "danfe_generated_total",
			Help: "Quantidade de DANFEs geradas, por status e origem (xml/zip).",
		},
		// status: success|read_error|xsd_error|parse_error|render_error|write_error|db_error|duplicate
		[]string{"status", "source"},
	)

	danfeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "danfe_render_duration_seconds",
			Help:    "Tempo de geração de cada DANFE em segundos (parse + render + persistência).",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "source"},
	)
)

// Init registra as métricas no registry global.
func Init() {
	prometheus.MustRegister(danfeGenerated, danfeDuration)
}

// ObserveDanfe registra o resultado de uma DANFE gerada.
func ObserveDanfe(status, source string, d time.Duration) {
	labels := prometheus.Labels{
		"status": status,
		"source": source,
	}
	danfeGenerated.With(labels).Inc()
	danfeDuration.With(labels).Observe(d.Seconds())
}

// StartHTTPServer sobe um /metrics na porta indicada (ex: ":9101").
func StartHTTPServer(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		slog.Info("iniciando servidor de métricas Prometheus", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("erro no servidor de métricas", "addr", addr, "err", err)
		}
	}()
}
