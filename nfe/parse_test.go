package nfe

import (
	"testing"
)

const xmlProc = `<?xml version="1.0" encoding="UTF-8"?>
<nfeProc versao="4.00" xmlns="http://www.portalfiscal.inf.br/nfe">
  <NFe>
    <infNFe Id="NFe35230512345678000199550010000012341000012349" versao="4.00">
      <ide>
        <serie>3</serie>
        <nNF>777</nNF>
        <dhEmi>2023-05-09T10:11:12-03:00</dhEmi>
        <tpNF>1</tpNF>
        <natOp> VENDA </natOp>
      </ide>
      <emit>
        <CNPJ>12.345.678/0001-99</CNPJ>
        <xNome>ACME COMERCIO LTDA</xNome>
        <xFant>ACME</xFant>
        <IE>123456789</IE>
        <enderEmit>
          <xLgr>RUA DAS FLORES</xLgr>
          <nro>100</nro>
          <xBairro>CENTRO</xBairro>
          <xMun>SAO PAULO</xMun>
          <UF>SP</UF>
          <CEP>01001000</CEP>
          <fone>1133334444</fone>
        </enderEmit>
      </emit>
      <det nItem="1">
        <prod>
          <cProd>001</cProd>
          <xProd>PARAFUSO</xProd>
          <NCM>73181500</NCM>
          <CFOP>5102</CFOP>
          <uCom>UN</uCom>
          <qCom>2.0000</qCom>
          <vUnCom>10.5000</vUnCom>
          <vProd>21.00</vProd>
        </prod>
        <imposto>
          <ICMS>
            <ICMS60>
              <orig>0</orig>
              <CST>60</CST>
            </ICMS60>
          </ICMS>
        </imposto>
      </det>
      <total>
        <ICMSTot>
          <vBC>21.00</vBC>
          <vICMS>3.78</vICMS>
          <vProd>21.00</vProd>
          <vNF>21.00</vNF>
        </ICMSTot>
      </total>
    </infNFe>
  </NFe>
  <protNFe versao="4.00">
    <infProt>
      <chNFe>35230512345678000199550010000012341000012349</chNFe>
      <dhRecbto>2023-05-09T14:30:00-03:00</dhRecbto>
      <nProt>135230000000001</nProt>
    </infProt>
  </protNFe>
</nfeProc>`

const xmlSolta = `<?xml version="1.0" encoding="UTF-8"?>
<NFe xmlns="http://www.portalfiscal.inf.br/nfe">
  <infNFe Id="NFe35230512345678000199550010000012341000012349" versao="4.00">
    <ide>
      <serie>1</serie>
      <nNF>55</nNF>
      <dEmi>2023-05-09</dEmi>
      <tpNF>0</tpNF>
      <natOp>DEVOLUCAO</natOp>
    </ide>
    <emit>
      <CNPJ>12345678000199</CNPJ>
      <xNome>ACME COMERCIO LTDA</xNome>
    </emit>
    <total>
      <ICMSTot>
        <vProd>10.00</vProd>
        <vNF>10.00</vNF>
      </ICMSTot>
    </total>
  </infNFe>
</NFe>`

func TestParseNFeProc(t *testing.T) {
	doc, err := Parse([]byte(xmlProc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if doc.NrNota() != "777" {
		t.Errorf("NrNota = %q", doc.NrNota())
	}
	if doc.Serie() != "3" {
		t.Errorf("Serie = %q", doc.Serie())
	}
	if doc.NaturezaOperacao() != "VENDA" {
		t.Errorf("NaturezaOperacao = %q (deveria vir sem espaços)", doc.NaturezaOperacao())
	}
	if doc.Chave() != "35230512345678000199550010000012341000012349" {
		t.Errorf("Chave = %q", doc.Chave())
	}
	if doc.Protocolo() != "135230000000001" {
		t.Errorf("Protocolo = %q", doc.Protocolo())
	}
	if doc.DataHoraRecebimento() != "2023-05-09T14:30:00-03:00" {
		t.Errorf("DataHoraRecebimento = %q", doc.DataHoraRecebimento())
	}
	if doc.DataEmissao() != "2023-05-09T10:11:12-03:00" {
		t.Errorf("DataEmissao = %q", doc.DataEmissao())
	}

	emit := doc.Emitente()
	if emit == nil {
		t.Fatal("Emitente nil")
	}
	// CNPJ com pontuação no XML deve virar só dígitos
	if emit.InscricaoNacional() != "12345678000199" {
		t.Errorf("InscricaoNacional = %q", emit.InscricaoNacional())
	}
	if emit.Telefone() != "1133334444" {
		t.Errorf("Telefone = %q", emit.Telefone())
	}
	end := emit.Endereco()
	if end == nil {
		t.Fatal("Endereco do emitente nil")
	}
	if end.Logradouro() != "RUA DAS FLORES" || end.UF() != "SP" {
		t.Errorf("endereço: %q / %q", end.Logradouro(), end.UF())
	}

	if doc.Destinatario() != nil {
		t.Error("Destinatario deveria ser nil sem dest no XML")
	}
	if doc.Transportador() != nil {
		t.Error("Transportador deveria ser nil sem transporta no XML")
	}
	if doc.Cobranca() != nil {
		t.Error("Cobranca deveria ser nil sem cobr no XML")
	}
	if doc.Servico() != nil {
		t.Error("Servico deveria ser nil sem ISSQNtot no XML")
	}
}

func TestParseNFeSolta(t *testing.T) {
	doc, err := Parse([]byte(xmlSolta))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if doc.NrNota() != "55" {
		t.Errorf("NrNota = %q", doc.NrNota())
	}
	// sem protNFe a chave vem do atributo Id
	if doc.Chave() != "35230512345678000199550010000012341000012349" {
		t.Errorf("Chave = %q", doc.Chave())
	}
	if doc.Protocolo() != "" {
		t.Errorf("Protocolo = %q, esperado vazio", doc.Protocolo())
	}
	if doc.DataEmissao() != "2023-05-09" {
		t.Errorf("DataEmissao = %q (deveria cair no dEmi)", doc.DataEmissao())
	}
	if doc.TipoOperacao() != "0" {
		t.Errorf("TipoOperacao = %q", doc.TipoOperacao())
	}
}

func TestParseItens(t *testing.T) {
	doc, err := Parse([]byte(xmlProc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if doc.NrItens() != 1 {
		t.Fatalf("NrItens = %d", doc.NrItens())
	}

	// índices fora de 1..NrItens devolvem nil
	if doc.Item(0) != nil || doc.Item(2) != nil {
		t.Error("Item fora da faixa deveria ser nil")
	}

	it := doc.Item(1)
	if it == nil {
		t.Fatal("Item(1) nil")
	}
	if it.Codigo() != "001" || it.Descricao() != "PARAFUSO" {
		t.Errorf("item: %q / %q", it.Codigo(), it.Descricao())
	}
	if it.QuantidadeComercial() != 2 {
		t.Errorf("QuantidadeComercial = %v", it.QuantidadeComercial())
	}
	if it.Origem() != "0" || it.CST() != "60" {
		t.Errorf("origem/CST = %q / %q", it.Origem(), it.CST())
	}
}

func TestParseXMLInvalido(t *testing.T) {
	casos := [][]byte{
		nil,
		[]byte(""),
		[]byte("não é xml"),
		[]byte("<outra><coisa/></outra>"),
	}

	for i, c := range casos {
		if _, err := Parse(c); err == nil {
			t.Errorf("caso %d: Parse deveria falhar", i)
		}
	}
}

func TestModalidadeFreteTexto(t *testing.T) {
	casos := []struct {
		mod   string
		texto string
	}{
		{"0", "Emitente"},
		{"1", "Destinatário"},
		{"2", "Terceiros"},
		{"9", "Sem frete"},
		{"", ""},
	}

	for _, c := range casos {
		d := &documento{inf: infNFe{Transp: &transp{ModFrete: c.mod}}}
		if got := d.ModalidadeFreteTexto(); got != c.texto {
			t.Errorf("ModalidadeFreteTexto(%q) = %q, esperado %q", c.mod, got, c.texto)
		}
	}
}

func TestParseFloat(t *testing.T) {
	casos := []struct {
		entrada string
		saida   float64
	}{
		{"21.00", 21},
		{"21,50", 21.5},
		{" 3.78 ", 3.78},
		{"", 0},
		{"abc", 0},
	}

	for _, c := range casos {
		if got := parseFloat(c.entrada); got != c.saida {
			t.Errorf("parseFloat(%q) = %v, esperado %v", c.entrada, got, c.saida)
		}
	}
}

func TestOnlyDigits(t *testing.T) {
	if got := onlyDigits("12.345.678/0001-99"); got != "12345678000199" {
		t.Errorf("onlyDigits = %q", got)
	}
	if got := onlyDigits(""); got != "" {
		t.Errorf("onlyDigits de vazio = %q", got)
	}
}
