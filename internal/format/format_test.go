package format

import (
	"math"
	"testing"
	"time"
)

func TestMascaraCPF(t *testing.T) {
	casos := []struct {
		entrada string
		saida   string
	}{
		{"12345678901", "123.456.789-01"},
		{"123456789", "123.456.789"},
		{"123456", "123.456"},
		{"123", "123"},
		{"12", "12"},
		{"", ""},
	}

	for _, c := range casos {
		if got := MascaraCPF(c.entrada); got != c.saida {
			t.Errorf("MascaraCPF(%q) = %q, esperado %q", c.entrada, got, c.saida)
		}
	}
}

func TestMascaraCNPJ(t *testing.T) {
	casos := []struct {
		entrada string
		saida   string
	}{
		{"12345678000199", "12.345.678/0001-99"},
		{"123456780001", "12.345.678/0001"},
		{"12345678", "12.345.678"},
		{"12", "12"},
		{"", ""},
	}

	for _, c := range casos {
		if got := MascaraCNPJ(c.entrada); got != c.saida {
			t.Errorf("MascaraCNPJ(%q) = %q, esperado %q", c.entrada, got, c.saida)
		}
	}
}

func TestInscricaoNacional(t *testing.T) {
	casos := []struct {
		entrada string
		saida   string
	}{
		{"12345678901", "123.456.789-01"},
		{"12345678000199", "12.345.678/0001-99"},
		{"123", "123"},
		{"123456789012", "123456789012"},
		{"", ""},
	}

	for _, c := range casos {
		if got := InscricaoNacional(c.entrada); got != c.saida {
			t.Errorf("InscricaoNacional(%q) = %q, esperado %q", c.entrada, got, c.saida)
		}
	}
}

func TestData(t *testing.T) {
	casos := []struct {
		entrada string
		saida   string
	}{
		{"2023-05-09", "09/05/2023"},
		{"2023-05-09T14:30:00-03:00", "09/05/2023"},
		{"2023-05-09T14:30:00+00:00", "09/05/2023"},
		{"2023-5-9", "09/05/2023"},
		{"", ""},
		{"lixo", ""},
		{"2023/05/09", ""},
		{"2023-05", ""},
	}

	for _, c := range casos {
		if got := Data(c.entrada); got != c.saida {
			t.Errorf("Data(%q) = %q, esperado %q", c.entrada, got, c.saida)
		}
	}
}

func TestHoraEm(t *testing.T) {
	recife := time.FixedZone("-03:00", -3*60*60)

	casos := []struct {
		entrada string
		loc     *time.Location
		saida   string
	}{
		{"2023-05-09T14:30:05-03:00", recife, "14:30:05"},
		{"2023-05-09T14:30:05-03:00", time.UTC, "17:30:05"},
		{"2023-05-09T14:30:05", time.UTC, "14:30:05"},
		{"2023-05-09", time.UTC, "00:00:00"},
		{"", time.UTC, ""},
		{"lixo", time.UTC, ""},
	}

	for _, c := range casos {
		if got := HoraEm(c.entrada, c.loc); got != c.saida {
			t.Errorf("HoraEm(%q, %v) = %q, esperado %q", c.entrada, c.loc, got, c.saida)
		}
	}
}

func TestMoeda(t *testing.T) {
	casos := []struct {
		numero   float64
		decimais int
		saida    string
	}{
		{1234567.891, 2, "1.234.567,89"},
		{-42, 2, "-42,00"},
		{0, 0, "0"},
		{0, 2, "0,00"},
		{1000, 0, "1.000"},
		{1234567.891, 4, "1.234.567,8910"},
		{12.5, 4, "12,5000"},
		{999.999, 2, "1.000,00"},
		{0.005, 2, "0,01"},
		{-0.005, 2, "-0,01"},
		{123, 2, "123,00"},
		{1234, 2, "1.234,00"},
		{123456, 2, "123.456,00"},
		{42, -1, "42,00"},
	}

	for _, c := range casos {
		if got := Moeda(c.numero, c.decimais); got != c.saida {
			t.Errorf("Moeda(%v, %d) = %q, esperado %q", c.numero, c.decimais, got, c.saida)
		}
	}
}

func TestMoedaNaoNumerico(t *testing.T) {
	// coerção de valores não numéricos para zero
	if got := Moeda(math.NaN(), 2); got != "0,00" {
		t.Errorf("Moeda(NaN, 2) = %q, esperado %q", got, "0,00")
	}
	if got := Moeda(math.Inf(1), 2); got != "0,00" {
		t.Errorf("Moeda(+Inf, 2) = %q, esperado %q", got, "0,00")
	}
}

func TestChave(t *testing.T) {
	chave := "35230512345678000199550010000012341000012349"
	got := Chave(chave)

	if len(got) != 44+11 {
		t.Fatalf("Chave: tamanho %d, esperado %d", len(got), 44+11)
	}
	if got != " 3523 0512 3456 7800 0199 5500 1000 0012 3410 0001 2349" {
		t.Errorf("Chave = %q", got)
	}

	// passthrough para tamanhos diferentes de 44
	for _, v := range []string{"", "1234", chave + "0"} {
		if Chave(v) != v {
			t.Errorf("Chave(%q) deveria passar direto", v)
		}
	}
}
