package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDanfeJaExiste indica que a DANFE já está no banco
// (chave_acesso ou hash_integridade únicos).
var ErrDanfeJaExiste = errors.New("danfe já existe")

// Registro é o que o worker persiste por DANFE gerada:
// metadados extraídos da nota + o HTML renderizado + o XML de origem.
type Registro struct {
	Chave         string
	Hash          string
	Numero        string
	Serie         string
	Natureza      string
	EmitenteRazao string
	DestRazao     string
	ValorTotal    float64
	NrItens       int
	ArquivoOrigem string
	HTML          string
	XMLRaw        []byte
}

// SaveDanfe insere os metadados da DANFE e o HTML/XML
// (danfe_html) em uma única transação.
func SaveDanfe(db *sql.DB, reg *Registro) (danfeID int64, err error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("erro iniciando transação: %w", err)
	}

	// Se der erro em qualquer parte, rollback.
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	danfeID, err = insertDanfe(tx, reg)
	if err != nil {
		// Se for duplicata, deixamos o caller decidir o que fazer.
		if errors.Is(err, ErrDanfeJaExiste) {
			return 0, ErrDanfeJaExiste
		}
		return 0, err
	}

	if err = insertDanfeHTML(tx, danfeID, reg); err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("erro no commit da transação: %w", err)
	}

	slog.Info("DANFE persistida com sucesso",
		"danfe_id", danfeID,
		"chave", reg.Chave,
		"numero", reg.Numero,
		"itens", reg.NrItens,
	)

	return danfeID, nil
}

func insertDanfe(tx *sql.Tx, reg *Registro) (int64, error) {
	var id int64

	chave := strings.TrimSpace(reg.Chave)
	if chave == "" {
		return 0, fmt.Errorf("chave de acesso vazia (arquivo=%s)", reg.ArquivoOrigem)
	}

	const q = `
INSERT INTO danfe (
	chave_acesso,
	hash_integridade,
	numero,
	serie,
	natureza_operacao,
	emitente_razao,
	dest_razao,
	valor_total,
	itens,
	arquivo_origem
) VALUES (
	$1,$2,$3,$4,$5,$6,$7,$8,$9,$10
)
RETURNING id;
`

	err := tx.QueryRow(
		q,
		chave,
		reg.Hash,
		nullableString(reg.Numero),
		nullableString(reg.Serie),
		nullableString(reg.Natureza),
		nullableString(reg.EmitenteRazao),
		nullableString(reg.DestRazao),
		reg.ValorTotal,
		reg.NrItens,
		nullableString(reg.ArquivoOrigem),
	).Scan(&id)

	if err != nil {
		// Detecta erro de unique constraint (chave ou hash duplicados).
		if isUniqueViolation(err) {
			slog.Warn("DANFE já existe no banco, ignorando reprocessamento",
				"chave", chave,
			)
			return 0, ErrDanfeJaExiste
		}
		return 0, fmt.Errorf("erro inserindo danfe (chave=%s): %w", chave, err)
	}

	return id, nil
}

// danfe_html: guarda o HTML renderizado + o XML bruto de origem.
func insertDanfeHTML(tx *sql.Tx, danfeID int64, reg *Registro) error {
	const q = `
INSERT INTO danfe_html (
	danfe_id,
	html,
	xml_raw
) VALUES (
	$1,$2,$3
);
`

	_, err := tx.Exec(
		q,
		danfeID,
		reg.HTML,
		string(reg.XMLRaw),
	)
	if err != nil {
		return fmt.Errorf("erro inserindo danfe_html (danfe_id=%d): %w", danfeID, err)
	}

	return nil
}

// ========================= helpers =============================

func nullableString(s string) interface{} {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
