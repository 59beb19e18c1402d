package config

import (
	"testing"
	"time"
)

func setEnvBase(t *testing.T) {
	t.Helper()
	t.Setenv("DANFE_DB_HOST", "localhost")
	t.Setenv("DANFE_DB_PORT", "5432")
	t.Setenv("DANFE_DB_USER", "danfe")
	t.Setenv("DANFE_DB_NAME", "danfe")
}

func TestLoadDefaults(t *testing.T) {
	setEnvBase(t)
	t.Setenv("DANFE_TIMEZONE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load retornou erro: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel padrão = %q, esperado \"info\"", cfg.LogLevel)
	}
	if cfg.WorkerPoolSize != 5 {
		t.Errorf("WorkerPoolSize padrão = %d, esperado 5", cfg.WorkerPoolSize)
	}
	if cfg.RabbitQueue != "danfe-jobs" {
		t.Errorf("RabbitQueue padrão = %q, esperado \"danfe-jobs\"", cfg.RabbitQueue)
	}
	if cfg.RabbitRetries != 3 {
		t.Errorf("RabbitRetries padrão = %d, esperado 3", cfg.RabbitRetries)
	}
	if cfg.Fuso != time.Local {
		t.Errorf("Fuso padrão = %v, esperado time.Local", cfg.Fuso)
	}
	if cfg.OutputDir == "" {
		t.Error("OutputDir não deveria ser vazio")
	}
}

func TestLoadTimezone(t *testing.T) {
	setEnvBase(t)
	t.Setenv("DANFE_TIMEZONE", "America/Sao_Paulo")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load retornou erro: %v", err)
	}
	if cfg.Fuso.String() != "America/Sao_Paulo" {
		t.Errorf("Fuso = %v, esperado America/Sao_Paulo", cfg.Fuso)
	}
}

func TestLoadTimezoneInvalida(t *testing.T) {
	setEnvBase(t)
	t.Setenv("DANFE_TIMEZONE", "Marte/Cratera")

	if _, err := Load(); err == nil {
		t.Fatal("Load deveria falhar com DANFE_TIMEZONE inválido")
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:    "db.interno",
		DBPort:    5433,
		DBUser:    "app",
		DBPass:    "segredo",
		DBName:    "danfe",
		DBSSLMode: "require",
	}

	got := cfg.AppDSN()
	esperado := "host=db.interno port=5433 user=app dbname=danfe sslmode=require password=segredo"
	if got != esperado {
		t.Errorf("AppDSN = %q, esperado %q", got, esperado)
	}

	if cfg.AdminDSN() == got {
		t.Error("AdminDSN deveria apontar para o banco postgres")
	}
}
