package migrations

import (
	"database/sql"
	"fmt"
)

// Run executa todas as migrations necessárias no banco da aplicação.
func Run(db *sql.DB) error {
	stmts := []string{
		// danfe
		`
CREATE TABLE IF NOT EXISTS danfe (
    id BIGSERIAL PRIMARY KEY,
    chave_acesso CHAR(44) NOT NULL,
    hash_integridade CHAR(64) NOT NULL,

    numero VARCHAR(20),
    serie VARCHAR(5),
    natureza_operacao VARCHAR(255),

    emitente_razao VARCHAR(255),
    dest_razao VARCHAR(255),

    valor_total NUMERIC(15,2) NOT NULL DEFAULT 0,
    itens INTEGER NOT NULL DEFAULT 0,

    arquivo_origem VARCHAR(512),

    created_at TIMESTAMP(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
    updated_at TIMESTAMP(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),

    CONSTRAINT uk_danfe_chave_acesso UNIQUE (chave_acesso),
    CONSTRAINT uk_danfe_hash_integridade UNIQUE (hash_integridade)
);
`,
		`CREATE INDEX IF NOT EXISTS idx_danfe_numero_serie ON danfe (numero, serie);`,
		`CREATE INDEX IF NOT EXISTS idx_danfe_emitente_razao ON danfe (emitente_razao);`,
		`CREATE INDEX IF NOT EXISTS idx_danfe_created_at ON danfe (created_at);`,

		// danfe_html
		`
CREATE TABLE IF NOT EXISTS danfe_html (
    danfe_id BIGINT PRIMARY KEY,
    html TEXT NOT NULL,
    xml_raw TEXT NOT NULL,

    created_at TIMESTAMP(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
    updated_at TIMESTAMP(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),

    CONSTRAINT fk_danfe_html_danfe
        FOREIGN KEY (danfe_id) REFERENCES danfe(id)
        ON DELETE CASCADE
);
`,
	}

	for i, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("erro executando migration %d: %w", i+1, err)
		}
	}

	return nil
}
