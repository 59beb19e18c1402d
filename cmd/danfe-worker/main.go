package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/BarretoDiego/djf-danfe/internal/config"
	"github.com/BarretoDiego/djf-danfe/internal/logx"
	"github.com/BarretoDiego/djf-danfe/internal/metrics"
	"github.com/BarretoDiego/djf-danfe/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("erro carregando config", "err", err)
		os.Exit(1)
	}

	logx.Init(cfg.LogLevel)
	slog.Info("[danfe-worker] iniciando...")

	db, err := sql.Open("pgx", cfg.AppDSN())
	if err != nil {
		slog.Error("erro abrindo conexão com banco da aplicação", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		slog.Error("erro no ping ao banco da aplicação", "err", err)
		os.Exit(1)
	}
	slog.Info("conectado ao banco da aplicação com sucesso")

	// inicia métricas Prometheus
	metrics.Init()
	metricsAddr := os.Getenv("DANFE_METRICS_ADDR_WORKER")
	if metricsAddr == "" {
		metricsAddr = ":9101"
	}
	metrics.StartHTTPServer(metricsAddr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := worker.New(cfg, db)
	if err := w.Run(ctx); err != nil && err != context.Canceled {
		slog.Error("worker finalizou com erro", "err", err)
		os.Exit(1)
	}

	slog.Info("worker finalizado")
}
