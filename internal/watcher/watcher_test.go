package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestIsZoneIdentifier(t *testing.T) {
	casos := []struct {
		nome     string
		esperado bool
	}{
		{"nota.xml:Zone.Identifier", true},
		{"nota.xml:zone.identifier", true},
		{"nota.xml", false},
		{"lote.zip", false},
	}

	for _, c := range casos {
		if got := isZoneIdentifier(c.nome); got != c.esperado {
			t.Errorf("isZoneIdentifier(%q) = %v, esperado %v", c.nome, got, c.esperado)
		}
	}
}

func TestWaitFileStable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nota.xml")
	if err := os.WriteFile(path, []byte("<NFe/>"), 0o644); err != nil {
		t.Fatalf("erro criando arquivo de teste: %v", err)
	}

	w := &Watcher{stableAttempts: 3, stableDelay: time.Millisecond}

	if !w.waitFileStable(path) {
		t.Error("arquivo com tamanho constante deveria ser considerado estável")
	}

	if w.waitFileStable(filepath.Join(dir, "inexistente.xml")) {
		t.Error("arquivo inexistente não deveria ser considerado estável")
	}
}
