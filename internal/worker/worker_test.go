package worker

import (
	"testing"

	"github.com/BarretoDiego/djf-danfe/nfe"
)

const xmlNota = `<?xml version="1.0" encoding="UTF-8"?>
<nfeProc xmlns="http://www.portalfiscal.inf.br/nfe" versao="4.00">
  <NFe>
    <infNFe Id="NFe35230512345678000199550010000012341000012349" versao="4.00">
      <ide>
        <natOp>VENDA</natOp>
        <serie>1</serie>
        <nNF>1234</nNF>
        <dhEmi>2023-05-09T10:00:00-03:00</dhEmi>
        <tpNF>1</tpNF>
      </ide>
      <emit>
        <CNPJ>12345678000199</CNPJ>
        <xNome>ACME COMERCIO LTDA</xNome>
      </emit>
      <dest>
        <CPF>12345678909</CPF>
        <xNome>FULANO DE TAL</xNome>
      </dest>
      <det nItem="1">
        <prod>
          <cProd>A1</cProd>
          <xProd>PARAFUSO</xProd>
          <qCom>10.0000</qCom>
          <vUnCom>1.5000000000</vUnCom>
          <vProd>15.00</vProd>
        </prod>
      </det>
      <total>
        <ICMSTot>
          <vProd>15.00</vProd>
          <vNF>15.00</vNF>
        </ICMSTot>
      </total>
    </infNFe>
  </NFe>
  <protNFe>
    <infProt>
      <chNFe>35230512345678000199550010000012341000012349</chNFe>
      <nProt>135230000000001</nProt>
    </infProt>
  </protNFe>
</nfeProc>`

func parseNota(t *testing.T) nfe.Documento {
	t.Helper()
	doc, err := nfe.Parse([]byte(xmlNota))
	if err != nil {
		t.Fatalf("Parse retornou erro: %v", err)
	}
	return doc
}

func TestOutputName(t *testing.T) {
	doc := parseNota(t)

	got := outputName(doc, "nota.xml")
	esperado := "35230512345678000199550010000012341000012349.html"
	if got != esperado {
		t.Errorf("outputName = %q, esperado %q", got, esperado)
	}
}

func TestOutputNameSemChave(t *testing.T) {
	// documento nulo de chave: usa o nome do arquivo
	doc := semChave{parseNota(t)}

	if got := outputName(doc, "nota-123.xml"); got != "nota-123.html" {
		t.Errorf("outputName sem chave = %q, esperado \"nota-123.html\"", got)
	}
}

type semChave struct {
	nfe.Documento
}

func (semChave) Chave() string { return "" }

func TestBuildRegistro(t *testing.T) {
	doc := parseNota(t)

	reg := buildRegistro(doc, "abc123", "nota.xml", "<html/>", []byte(xmlNota))

	if reg.Chave != "35230512345678000199550010000012341000012349" {
		t.Errorf("Chave = %q", reg.Chave)
	}
	if reg.Hash != "abc123" {
		t.Errorf("Hash = %q", reg.Hash)
	}
	if reg.Numero != "1234" || reg.Serie != "1" {
		t.Errorf("Numero/Serie = %q/%q", reg.Numero, reg.Serie)
	}
	if reg.Natureza != "VENDA" {
		t.Errorf("Natureza = %q", reg.Natureza)
	}
	if reg.EmitenteRazao != "ACME COMERCIO LTDA" {
		t.Errorf("EmitenteRazao = %q", reg.EmitenteRazao)
	}
	if reg.DestRazao != "FULANO DE TAL" {
		t.Errorf("DestRazao = %q", reg.DestRazao)
	}
	if reg.ValorTotal != 15.00 {
		t.Errorf("ValorTotal = %v", reg.ValorTotal)
	}
	if reg.NrItens != 1 {
		t.Errorf("NrItens = %d", reg.NrItens)
	}
	if reg.ArquivoOrigem != "nota.xml" {
		t.Errorf("ArquivoOrigem = %q", reg.ArquivoOrigem)
	}
}
