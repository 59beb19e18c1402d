// Package format contém as funções puras de formatação usadas na montagem
// do DANFE: máscaras de CPF/CNPJ, datas, horas, moeda e chave de acesso.
// Todas são totais: entrada malformada degrada para passthrough ou string
// vazia, nunca para erro.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Fuso é o fuso horário usado por Hora. Por padrão é o fuso do processo;
// pode ser trocado uma única vez no bootstrap (ver config.Load).
var Fuso = time.Local

// MascaraCPF aplica a máscara XXX.XXX.XXX-XX ao valor especificado.
// Grupos vazios (entrada mais curta que 11 dígitos) não recebem separador.
func MascaraCPF(valor string) string {
	retorno := sub(valor, 0, 3)
	if g := sub(valor, 3, 6); g != "" {
		retorno += "." + g
	}
	if g := sub(valor, 6, 9); g != "" {
		retorno += "." + g
	}
	if g := sub(valor, 9, len(valor)); g != "" {
		retorno += "-" + g
	}
	return retorno
}

// MascaraCNPJ aplica a máscara XX.XXX.XXX/XXXX-XX ao valor especificado.
func MascaraCNPJ(valor string) string {
	retorno := sub(valor, 0, 2)
	if g := sub(valor, 2, 5); g != "" {
		retorno += "." + g
	}
	if g := sub(valor, 5, 8); g != "" {
		retorno += "." + g
	}
	if g := sub(valor, 8, 12); g != "" {
		retorno += "/" + g
	}
	if g := sub(valor, 12, len(valor)); g != "" {
		retorno += "-" + g
	}
	return retorno
}

// InscricaoNacional formata o número de acordo com seu tipo: 11 dígitos
// recebe máscara de CPF, 14 de CNPJ, qualquer outro tamanho passa direto.
func InscricaoNacional(numero string) string {
	switch len(numero) {
	case 11:
		return MascaraCPF(numero)
	case 14:
		return MascaraCNPJ(numero)
	}
	return numero
}

// Data formata um timestamp UTC (YYYY-MM-DDThh:mm:ssTZD ou só YYYY-MM-DD)
// como DD/MM/YYYY. Entrada vazia ou que não se divide em dia/mês/ano
// numéricos devolve string vazia.
func Data(dt string) string {
	if dt == "" {
		return ""
	}
	if len(dt) == 10 {
		dt += "T00:00:00+00:00"
	}

	data, _, _ := strings.Cut(dt, "T")
	partes := strings.Split(data, "-")
	if len(partes) != 3 {
		return ""
	}
	for _, p := range partes {
		if !soDigitos(p) {
			return ""
		}
	}

	ano, mes, dia := partes[0], partes[1], partes[2]
	return pad2(dia) + "/" + pad2(mes) + "/" + ano
}

// Hora formata um timestamp como HH:MM:SS no fuso padrão (Fuso).
func Hora(dt string) string {
	return HoraEm(dt, Fuso)
}

// HoraEm formata um timestamp como HH:MM:SS no fuso especificado.
// Entrada vazia ou não parseável devolve string vazia.
func HoraEm(dt string, loc *time.Location) string {
	if dt == "" {
		return ""
	}

	t, ok := parseTimestamp(dt)
	if !ok {
		return ""
	}
	t = t.In(loc)

	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// Moeda formata o número com <decimais> casas, vírgula decimal e ponto como
// separador de milhar. Arredondamento half-away-from-zero. Sem símbolo de
// moeda. decimais = 0 suprime a parte fracionária; negativo cai para 2.
func Moeda(numero float64, decimais int) string {
	if decimais < 0 {
		decimais = 2
	}

	negativo := numero < 0
	if math.IsNaN(numero) || math.IsInf(numero, 0) {
		numero = 0
		negativo = false
	}

	valor := decimal.NewFromFloat(math.Abs(numero)).Round(int32(decimais))
	fixo := valor.StringFixed(int32(decimais))

	inteiro, fracao, _ := strings.Cut(fixo, ".")

	out := agrupaMilhares(inteiro)
	if decimais > 0 {
		out += "," + fracao
	}
	if negativo {
		out = "-" + out
	}
	return out
}

// Chave formata a chave de acesso da NF-e em grupos de 4 caracteres
// separados por espaço (espaço antes de cada grupo, inclusive o primeiro).
// Qualquer entrada que não tenha 44 caracteres passa direto.
func Chave(chave string) string {
	if len(chave) != 44 {
		return chave
	}

	var out strings.Builder
	for i := 0; i < len(chave); i++ {
		if i%4 == 0 {
			out.WriteByte(' ')
		}
		out.WriteByte(chave[i])
	}
	return out.String()
}

// ========================= helpers =============================

// sub devolve valor[i:j] com limites saturados no tamanho da string.
func sub(valor string, i, j int) string {
	if i > len(valor) {
		i = len(valor)
	}
	if j > len(valor) {
		j = len(valor)
	}
	return valor[i:j]
}

func pad2(s string) string {
	if len(s) < 2 {
		return strings.Repeat("0", 2-len(s)) + s
	}
	return s
}

func soDigitos(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseTimestamp(dt string) (time.Time, bool) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, dt); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// agrupaMilhares insere "." a cada 3 dígitos contando da direita,
// preservando um grupo inicial curto quando o tamanho não é múltiplo de 3.
func agrupaMilhares(inteiro string) string {
	j := 0
	if len(inteiro) > 3 {
		j = len(inteiro) % 3
	}

	var out strings.Builder
	if j > 0 {
		out.WriteString(inteiro[:j])
		out.WriteString(".")
	}
	resto := inteiro[j:]
	for i := 0; i < len(resto); i += 3 {
		if i > 0 {
			out.WriteString(".")
		}
		fim := i + 3
		if fim > len(resto) {
			fim = len(resto)
		}
		out.WriteString(resto[i:fim])
	}
	return out.String()
}
