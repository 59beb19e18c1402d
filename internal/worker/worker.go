package worker

import (
	"archive/zip"
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/BarretoDiego/djf-danfe/danfe"
	"github.com/BarretoDiego/djf-danfe/internal/config"
	"github.com/BarretoDiego/djf-danfe/internal/metrics"
	"github.com/BarretoDiego/djf-danfe/internal/queue"
	"github.com/BarretoDiego/djf-danfe/internal/storage"
	"github.com/BarretoDiego/djf-danfe/nfe"
)

type Worker struct {
	cfg      *config.Config
	db       *sql.DB
	interval time.Duration

	rmq *queue.RabbitMQ
}

func New(cfg *config.Config, db *sql.DB) *Worker {
	w := &Worker{
		cfg:      cfg,
		db:       db,
		interval: 2 * time.Second,
	}

	if strings.ToLower(cfg.QueueBackend) == "rabbitmq" {
		rmq, err := queue.NewRabbitMQ(queue.Options{
			URL:        cfg.RabbitURL,
			Queue:      cfg.RabbitQueue,
			MaxRetries: cfg.RabbitRetries,
			Prefetch:   cfg.RabbitPrefetch,
		})
		if err != nil {
			slog.Error("erro criando cliente RabbitMQ no worker; caindo para modo polling",
				"err", err,
			)
		} else {
			w.rmq = rmq
			slog.Info("RabbitMQ habilitado no worker",
				"url", cfg.RabbitURL,
				"queue", cfg.RabbitQueue,
			)
		}
	} else {
		slog.Info("fila RabbitMQ desabilitada no worker (DANFE_QUEUE_BACKEND != rabbitmq)")
	}

	return w
}

func (w *Worker) Run(ctx context.Context) error {
	// garante diretórios
	dirs := []string{
		w.cfg.ProcessingDir,
		w.cfg.ProcessedDir,
		w.cfg.FailedDir,
		w.cfg.TmpDir,
		w.cfg.IgnoredDir,
		w.cfg.OutputDir,
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}

	if w.rmq != nil {
		defer w.rmq.Close()
		slog.Info("worker rodando em modo fila (RabbitMQ)",
			"processing_dir", w.cfg.ProcessingDir,
		)
		return w.runQueueMode(ctx)
	}

	slog.Info("worker rodando em modo polling de diretório",
		"processing_dir", w.cfg.ProcessingDir,
	)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("contexto cancelado, encerrando worker")
			return ctx.Err()
		case <-ticker.C:
			w.processProcessingFolder()
		}
	}
}

// ----------------------------------------------------------------------
// MODO FILA (RabbitMQ)
// ----------------------------------------------------------------------

func (w *Worker) runQueueMode(ctx context.Context) error {
	return w.rmq.ConsumeJobs(ctx, func(job queue.Job) error {
		return w.handleJob(job)
	})
}

func (w *Worker) handleJob(job queue.Job) error {
	info, err := os.Stat(job.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Warn("arquivo do job não existe mais, ignorando",
				"path", job.Path,
				"filename", job.Filename,
				"kind", job.Kind,
			)
			return nil
		}
		slog.Error("erro ao stat arquivo do job",
			"path", job.Path,
			"err", err,
		)
		return nil
	}
	if info.IsDir() {
		return nil
	}

	switch strings.ToLower(job.Kind) {
	case "xml":
		w.processXML(job.Path, job.Filename)
	case "zip":
		w.processZIP(job.Path, job.Filename)
	default:
		slog.Warn("tipo de job desconhecido",
			"path", job.Path,
			"filename", job.Filename,
			"kind", job.Kind,
		)
	}

	return nil
}

// ----------------------------------------------------------------------
// MODO POLLING (legado)
// ----------------------------------------------------------------------

func (w *Worker) processProcessingFolder() {
	entries, err := os.ReadDir(w.cfg.ProcessingDir)
	if err != nil {
		slog.Error("erro lendo diretório processing", "dir", w.cfg.ProcessingDir, "err", err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		srcPath := filepath.Join(w.cfg.ProcessingDir, entry.Name())
		w.handleProcessingFile(srcPath)
	}
}

func (w *Worker) handleProcessingFile(srcPath string) {
	info, err := os.Stat(srcPath)
	if err != nil {
		slog.Warn("arquivo em processing não está mais acessível, ignorando",
			"path", srcPath,
			"err", err,
		)
		return
	}
	if info.IsDir() {
		return
	}

	filename := filepath.Base(srcPath)
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".xml":
		w.processXML(srcPath, filename)
	case ".zip":
		w.processZIP(srcPath, filename)
	default:
		slog.Info("extensão não tratada em processing; movendo para processed",
			"path", srcPath,
			"ext", ext,
		)
		w.moveToProcessed(srcPath, filename)
	}
}

// ----------------------------------------------------------------------
// Pipeline de geração: XML -> DANFE em HTML -> disco + banco
// ----------------------------------------------------------------------

// generateDanfe roda o pipeline completo para um XML e devolve o status
// usado nas métricas (success|read_error|xsd_error|parse_error|
// render_error|write_error|duplicate|db_error).
func (w *Worker) generateDanfe(srcPath, filename string) string {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		slog.Error("erro lendo XML",
			"path", srcPath,
			"err", err,
		)
		return "read_error"
	}

	sum := sha256.Sum256(data)
	hash := hex.EncodeToString(sum[:])

	if err := nfe.CheckXSD(data); err != nil {
		slog.Error("XML reprovado na validação XSD",
			"path", srcPath,
			"err", err,
		)
		return "xsd_error"
	}

	doc, err := nfe.Parse(data)
	if err != nil {
		slog.Error("erro ao parsear XML",
			"path", srcPath,
			"err", err,
		)
		return "parse_error"
	}

	d := danfe.FromNFe(doc)
	html, err := d.ToHTML()
	if err != nil {
		slog.Error("erro renderizando DANFE",
			"path", srcPath,
			"chave", doc.Chave(),
			"err", err,
		)
		return "render_error"
	}
	if html == "" {
		slog.Error("nota sem dados mínimos para DANFE (totais ausentes)",
			"path", srcPath,
			"chave", doc.Chave(),
		)
		return "render_error"
	}

	outPath := filepath.Join(w.cfg.OutputDir, outputName(doc, filename))
	if err := os.WriteFile(outPath, []byte(html), 0o644); err != nil {
		slog.Error("erro gravando HTML da DANFE",
			"path", srcPath,
			"out", outPath,
			"err", err,
		)
		return "write_error"
	}

	reg := buildRegistro(doc, hash, filename, html, data)

	if _, err := storage.SaveDanfe(w.db, reg); err != nil {
		if errors.Is(err, storage.ErrDanfeJaExiste) {
			return "duplicate"
		}
		slog.Error("erro salvando DANFE no banco",
			"path", srcPath,
			"chave", reg.Chave,
			"err", err,
		)
		return "db_error"
	}

	slog.Info("DANFE gerada com sucesso",
		"path", srcPath,
		"out", outPath,
		"chave", reg.Chave,
		"numero", reg.Numero,
		"itens", reg.NrItens,
	)

	return "success"
}

// outputName usa a chave de acesso quando disponível; caso contrário,
// o nome do arquivo de origem.
func outputName(doc nfe.Documento, filename string) string {
	if chave := doc.Chave(); chave != "" {
		return chave + ".html"
	}
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return base + ".html"
}

func buildRegistro(doc nfe.Documento, hash, filename, html string, xmlRaw []byte) *storage.Registro {
	reg := &storage.Registro{
		Chave:         doc.Chave(),
		Hash:          hash,
		Numero:        doc.NrNota(),
		Serie:         doc.Serie(),
		Natureza:      doc.NaturezaOperacao(),
		NrItens:       doc.NrItens(),
		ArquivoOrigem: filename,
		HTML:          html,
		XMLRaw:        xmlRaw,
	}

	if emit := doc.Emitente(); emit != nil {
		reg.EmitenteRazao = emit.Nome()
	}
	if dest := doc.Destinatario(); dest != nil {
		reg.DestRazao = dest.Nome()
	}
	if total := doc.Total(); total != nil {
		reg.ValorTotal = total.ValorNota()
	}

	return reg
}

// moveForStatus decide o destino do arquivo de origem conforme o status.
func (w *Worker) moveForStatus(status, srcPath, filename string) {
	switch status {
	case "success":
		w.moveToProcessed(srcPath, filename)
	case "duplicate":
		w.moveToIgnored(srcPath, filename)
	default:
		w.moveToFailed(srcPath, filename)
	}
}

func (w *Worker) processXML(srcPath, filename string) {
	start := time.Now()
	source := "xml"

	status := w.generateDanfe(srcPath, filename)
	metrics.ObserveDanfe(status, source, time.Since(start))

	if status == "duplicate" {
		slog.Info("DANFE já existia no banco, ignorando reprocessamento (XML solto)",
			"path", srcPath,
		)
	}

	w.moveForStatus(status, srcPath, filename)
}

func (w *Worker) processZIP(srcPath, filename string) {
	slog.Info("ZIP identificado, iniciando extração e processamento",
		"path", srcPath,
	)

	ext := filepath.Ext(filename)
	baseName := strings.TrimSuffix(filename, ext)

	workDir := filepath.Join(w.cfg.TmpDir, baseName)
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		slog.Error("erro criando diretório temporário para ZIP",
			"zip", srcPath,
			"work_dir", workDir,
			"err", err,
		)
		_ = os.Remove(srcPath)
		return
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			slog.Warn("falha ao remover diretório temporário",
				"work_dir", workDir,
				"err", err,
			)
		}
	}()

	zr, err := zip.OpenReader(srcPath)
	if err != nil {
		slog.Error("erro abrindo ZIP",
			"path", srcPath,
			"err", err,
		)
		_ = os.Remove(srcPath)
		return
	}
	defer zr.Close()

	if len(zr.File) == 0 {
		slog.Warn("ZIP está vazio",
			"path", srcPath,
		)
		_ = os.Remove(srcPath)
		return
	}

	var (
		xmlCount     int
		successCount int
		dupCount     int
		failCount    int
	)

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}

		name := f.Name
		lowerName := strings.ToLower(name)
		if !strings.HasSuffix(lowerName, ".xml") {
			slog.Info("arquivo dentro do ZIP ignorado (não é XML)",
				"zip", srcPath,
				"inner_name", name,
			)
			continue
		}

		xmlCount++

		rc, err := f.Open()
		if err != nil {
			slog.Error("erro abrindo entrada do ZIP",
				"zip", srcPath,
				"inner_name", name,
				"err", err,
			)
			failCount++
			continue
		}

		innerFileName := filepath.Base(name)
		innerPath := filepath.Join(workDir, innerFileName)

		out, err := os.Create(innerPath)
		if err != nil {
			slog.Error("erro criando arquivo temporário para XML extraído",
				"zip", srcPath,
				"inner_name", name,
				"dest", innerPath,
				"err", err,
			)
			rc.Close()
			failCount++
			continue
		}

		if _, err := io.Copy(out, rc); err != nil {
			slog.Error("erro copiando conteúdo do ZIP para arquivo temporário",
				"zip", srcPath,
				"inner_name", name,
				"dest", innerPath,
				"err", err,
			)
			out.Close()
			rc.Close()
			failCount++
			continue
		}

		out.Close()
		rc.Close()

		slog.Info("XML extraído do ZIP para processamento",
			"zip", srcPath,
			"inner_name", name,
			"temp_path", innerPath,
		)

		// métrica por DANFE vinda de ZIP
		start := time.Now()
		status := w.generateDanfe(innerPath, innerFileName)
		metrics.ObserveDanfe(status, "zip", time.Since(start))

		switch status {
		case "success":
			successCount++
		case "duplicate":
			dupCount++
		default:
			failCount++
		}

		w.moveForStatus(status, innerPath, innerFileName)
	}

	if err := os.Remove(srcPath); err != nil {
		slog.Warn("falha ao remover ZIP original após processamento",
			"path", srcPath,
			"err", err,
		)
	}

	slog.Info("processamento de ZIP concluído",
		"zip", srcPath,
		"xml_total", xmlCount,
		"success", successCount,
		"duplicatas", dupCount,
		"failed", failCount,
	)
}

func (w *Worker) moveToProcessed(srcPath, filename string) {
	destPath := filepath.Join(w.cfg.ProcessedDir, filename)
	if err := os.Rename(srcPath, destPath); err != nil {
		slog.Error("erro movendo arquivo para processed",
			"src", srcPath,
			"dest", destPath,
			"err", err,
		)
		return
	}
	slog.Info("arquivo movido para processed",
		"src", srcPath,
		"dest", destPath,
	)
}

func (w *Worker) moveToFailed(srcPath, filename string) {
	destPath := filepath.Join(w.cfg.FailedDir, filename)
	if err := os.Rename(srcPath, destPath); err != nil {
		slog.Error("erro movendo arquivo para failed",
			"src", srcPath,
			"dest", destPath,
			"err", err,
		)
		return
	}
	slog.Info("arquivo movido para failed",
		"src", srcPath,
		"dest", destPath,
	)
}

func (w *Worker) moveToIgnored(srcPath, filename string) {
	destPath := filepath.Join(w.cfg.IgnoredDir, filename)
	if err := os.Rename(srcPath, destPath); err != nil {
		slog.Error("erro movendo arquivo para ignored",
			"src", srcPath,
			"dest", destPath,
			"err", err,
		)
		return
	}
	slog.Info("arquivo movido para ignored",
		"src", srcPath,
		"dest", destPath,
	)
}
